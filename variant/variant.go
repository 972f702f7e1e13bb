package variant

import (
	"github.com/dshills/keel/bstr"
	"github.com/dshills/keel/omap"
	"github.com/dshills/keel/seq"
)

// Kind identifies what a Var currently holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindObject
	KindList
	KindString
	KindFloat
	KindUint
	KindInt
	KindBool
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindObject:
		return "object"
	case KindList:
		return "list"
	case KindString:
		return "string"
	case KindFloat:
		return "float"
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Object is the ordered map type held by object variants.
type Object = omap.Map[bstr.Str, Var]

// List is the sequence type held by list variants.
type List = seq.Seq[Var]

func strCompare(a, b bstr.Str) int { return a.Compare(&b) }

// NewObjectMap returns an empty map ordered for use as an object payload.
func NewObjectMap() Object {
	return omap.NewFunc[bstr.Str, Var](strCompare)
}

// Var is a dynamically-typed value. The zero value is null.
type Var struct {
	kind Kind
	obj  Object
	list List
	str  bstr.Str
	f    float64
	u    uint64
	i    int64
	b    bool
}

// Kind returns what the Var currently holds.
func (v *Var) Kind() Kind { return v.kind }

// IsNull reports whether the Var is the null kind or a container whose
// backing is null.
func (v *Var) IsNull() bool {
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str.IsNull()
	case KindList:
		return v.list.IsNull()
	}
	return false
}

// reset drops any payload, releasing container storage.
func (v *Var) reset() {
	v.obj = Object{}
	v.list = List{}
	v.str = bstr.Str{}
	v.f, v.u, v.i, v.b = 0, 0, 0, false
}

// SetNull retypes the Var to null.
func (v *Var) SetNull() {
	v.reset()
	v.kind = KindNull
}

// Retyping mutators. Each switches the kind, destroying any prior
// payload; the numeric kinds preserve the value across one another.

// AsObject retypes to object and returns the map for direct use.
func (v *Var) AsObject() *Object {
	if v.kind != KindObject {
		v.reset()
		v.obj = NewObjectMap()
		v.kind = KindObject
	}
	return &v.obj
}

// AsList retypes to list and returns the sequence for direct use.
func (v *Var) AsList() *List {
	if v.kind != KindList {
		v.reset()
		v.list = seq.New[Var]()
		v.kind = KindList
	}
	return &v.list
}

// AsString retypes to string and returns the byte string for direct use.
func (v *Var) AsString() *bstr.Str {
	if v.kind != KindString {
		v.reset()
		v.str = bstr.New()
		v.kind = KindString
	}
	return &v.str
}

// numValue extracts the current numeric value, if the Var holds one.
func (v *Var) numValue() (f float64, u uint64, i int64, ok bool) {
	switch v.kind {
	case KindFloat:
		return v.f, uint64(v.f), int64(v.f), true
	case KindUint:
		return float64(v.u), v.u, int64(v.u), true
	case KindInt:
		return float64(v.i), uint64(v.i), v.i, true
	}
	return 0, 0, 0, false
}

// AsFloat retypes to float, preserving a numeric value, and returns the
// payload for writing.
func (v *Var) AsFloat() *float64 {
	if v.kind != KindFloat {
		f, _, _, _ := v.numValue()
		v.reset()
		v.f = f
		v.kind = KindFloat
	}
	return &v.f
}

// AsUint retypes to uint, preserving a numeric value, and returns the
// payload for writing.
func (v *Var) AsUint() *uint64 {
	if v.kind != KindUint {
		_, u, _, _ := v.numValue()
		v.reset()
		v.u = u
		v.kind = KindUint
	}
	return &v.u
}

// AsInt retypes to int, preserving a numeric value, and returns the
// payload for writing.
func (v *Var) AsInt() *int64 {
	if v.kind != KindInt {
		_, _, i, _ := v.numValue()
		v.reset()
		v.i = i
		v.kind = KindInt
	}
	return &v.i
}

// AsBool retypes to bool and returns the payload for writing.
func (v *Var) AsBool() *bool {
	if v.kind != KindBool {
		v.reset()
		v.kind = KindBool
	}
	return &v.b
}

// Value setters, for fluent building.

// SetString retypes to string holding s.
func (v *Var) SetString(s string) { v.AsString().SetString(s) }

// SetInt retypes to int holding i.
func (v *Var) SetInt(i int64) { *v.AsInt() = i }

// SetUint retypes to uint holding u.
func (v *Var) SetUint(u uint64) { *v.AsUint() = u }

// SetFloat retypes to float holding f.
func (v *Var) SetFloat(f float64) { *v.AsFloat() = f }

// SetBool retypes to bool holding b.
func (v *Var) SetBool(b bool) { *v.AsBool() = b }

// Indexing.

// Key retypes to object if needed and returns the child under name,
// inserting a null child when absent.
func (v *Var) Key(name string) *Var {
	return v.AsObject().GetOrInsert(bstr.FromString(name))
}

// Lookup returns the child under name without retyping or inserting; nil
// when v is not an object or has no such child.
func (v *Var) Lookup(name string) *Var {
	if v.kind != KindObject {
		return nil
	}
	key := bstr.FromString(name)
	return v.obj.Find(key)
}

// At retypes to list if needed, grows it to cover index i with null
// children, and returns the child at i.
func (v *Var) At(i int) *Var {
	l := v.AsList()
	if i >= l.Len() {
		l.Resize(i + 1)
	}
	return l.Ptr(i)
}

// Read accessors. These never fail: wrong kinds coerce or yield zero
// values, and the container accessors return a shared static null value
// that must be treated as read-only.

var (
	nullObject Object
	nullList   List
	nullStr    bstr.Str
)

// GetObject returns the object payload, or a static null object.
func (v *Var) GetObject() *Object {
	if v.kind == KindObject {
		return &v.obj
	}
	return &nullObject
}

// GetList returns the list payload, or a static null list.
func (v *Var) GetList() *List {
	if v.kind == KindList {
		return &v.list
	}
	return &nullList
}

// GetStr returns the string payload, or a static null string.
func (v *Var) GetStr() *bstr.Str {
	if v.kind == KindString {
		return &v.str
	}
	return &nullStr
}

// GetBool coerces the value to a bool: numbers are nonzero, strings
// parse, everything else is false.
func (v *Var) GetBool() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindFloat:
		return v.f != 0
	case KindUint:
		return v.u != 0
	case KindInt:
		return v.i != 0
	case KindString:
		b, err := v.str.ToBool()
		return err == nil && b
	}
	return false
}

// GetInt coerces the value to a signed integer; non-numeric yields 0.
func (v *Var) GetInt() int64 {
	switch v.kind {
	case KindInt:
		return v.i
	case KindUint:
		return int64(v.u)
	case KindFloat:
		return int64(v.f)
	case KindBool:
		if v.b {
			return 1
		}
	case KindString:
		n, err := v.str.ToInt(0)
		if err == nil {
			return n
		}
	}
	return 0
}

// GetUint coerces the value to an unsigned integer; non-numeric yields 0.
func (v *Var) GetUint() uint64 {
	switch v.kind {
	case KindUint:
		return v.u
	case KindInt:
		return uint64(v.i)
	case KindFloat:
		return uint64(v.f)
	case KindBool:
		if v.b {
			return 1
		}
	case KindString:
		n, err := v.str.ToUint(0)
		if err == nil {
			return n
		}
	}
	return 0
}

// GetFloat coerces the value to a float; non-numeric yields 0.
func (v *Var) GetFloat() float64 {
	switch v.kind {
	case KindFloat:
		return v.f
	case KindUint:
		return float64(v.u)
	case KindInt:
		return float64(v.i)
	case KindBool:
		if v.b {
			return 1
		}
	case KindString:
		f, err := v.str.ToFloat()
		if err == nil {
			return f
		}
	}
	return 0
}

// GetVal formats a scalar value into out and reports success. Objects
// and lists fail; the null kind writes "null".
func (v *Var) GetVal(out *bstr.Str) bool {
	switch v.kind {
	case KindNull:
		out.SetString("null")
	case KindString:
		if v.str.IsNull() {
			out.SetString("null")
		} else {
			out.Clear()
			out.Add(v.str.Bytes())
		}
	case KindFloat:
		out.SetFloat(v.f)
	case KindUint:
		out.SetUint(v.u)
	case KindInt:
		out.SetInt(v.i)
	case KindBool:
		out.SetBool(v.b)
	case KindList:
		if !v.list.IsNull() {
			return false
		}
		out.SetString("null")
	case KindObject:
		return false
	}
	return true
}

// Sharing.

// Retain adds a holder to the payload's backing storage, so a Var
// duplicated out of live storage counts as a holder of its container
// payload. Scalar kinds have nothing to count.
func (v *Var) Retain() {
	switch v.kind {
	case KindObject:
		v.obj.Retain()
	case KindList:
		v.list.Retain()
	case KindString:
		v.str.Retain()
	}
}

// SharedScan reports whether this Var or any descendant holds shared
// container storage.
func (v *Var) SharedScan() bool {
	switch v.kind {
	case KindString:
		return v.str.Shared()
	case KindList:
		if v.list.Shared() {
			return true
		}
		for _, child := range v.list.Items() {
			if child.SharedScan() {
				return true
			}
		}
	case KindObject:
		if v.obj.Shared() {
			return true
		}
		pairs := v.obj.Pairs()
		for i := range pairs {
			if pairs[i].Key.Shared() || pairs[i].Value.SharedScan() {
				return true
			}
		}
	}
	return false
}

// UnshareAll detaches every shared container in the tree, depth first.
func (v *Var) UnshareAll() {
	switch v.kind {
	case KindString:
		v.str.Unshare()
	case KindList:
		v.list.Unshare()
		for i := 0; i < v.list.Len(); i++ {
			v.list.Ptr(i).UnshareAll()
		}
	case KindObject:
		v.obj.Unshare()
		for i := 0; i < v.obj.Len(); i++ {
			p := v.obj.PairPtr(i)
			p.Key.Unshare()
			p.Value.UnshareAll()
		}
	}
}
