package variant

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/keel/bstr"
)

// ErrBadJSON reports input rejected by the JSON parser.
var ErrBadJSON = errors.New("variant: invalid JSON")

// ParseJSON builds a Var tree from strict JSON text. Object member order
// follows the ordered map, not the document.
func ParseJSON(data []byte) (Var, error) {
	if !gjson.ValidBytes(data) {
		return Var{}, ErrBadJSON
	}
	var v Var
	fromResult(&v, gjson.ParseBytes(data))
	return v, nil
}

func fromResult(v *Var, r gjson.Result) {
	switch {
	case r.IsObject():
		obj := v.AsObject()
		r.ForEach(func(key, value gjson.Result) bool {
			var child Var
			fromResult(&child, value)
			obj.Set(bstr.FromString(key.String()), child)
			return true
		})
	case r.IsArray():
		list := v.AsList()
		arr := r.Array()
		list.Resize(len(arr))
		for i, item := range arr {
			fromResult(list.Ptr(i), item)
		}
	case r.Type == gjson.String:
		v.SetString(r.String())
	case r.Type == gjson.Number:
		fromNumber(v, r)
	case r.Type == gjson.True:
		v.SetBool(true)
	case r.Type == gjson.False:
		v.SetBool(false)
	default:
		v.SetNull()
	}
}

// fromNumber keeps integral JSON numbers integral: a token without
// fraction or exponent becomes int (or uint when it only fits there).
func fromNumber(v *Var, r gjson.Result) {
	raw := r.Raw
	if strings.ContainsAny(raw, ".eE") {
		v.SetFloat(r.Float())
		return
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		v.SetInt(i)
		return
	}
	if u, err := strconv.ParseUint(raw, 10, 64); err == nil {
		v.SetUint(u)
		return
	}
	v.SetFloat(r.Float())
}

// JSON renders the tree as strict JSON. Keys keep comparator order.
// Unlike Dump, the output is always machine-parseable.
func (v *Var) JSON() ([]byte, error) {
	switch v.kind {
	case KindObject:
		out := []byte("{}")
		pairs := v.obj.Pairs()
		for i := range pairs {
			raw, err := pairs[i].Value.JSON()
			if err != nil {
				return nil, err
			}
			out, err = sjson.SetRawBytes(out, escapePath(pairs[i].Key.String()), raw)
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	case KindList:
		out := []byte("[]")
		items := v.list.Items()
		for i := range items {
			raw, err := items[i].JSON()
			if err != nil {
				return nil, err
			}
			out, err = sjson.SetRawBytes(out, "-1", raw)
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	case KindString:
		if v.str.IsNull() {
			return []byte("null"), nil
		}
		return strconv.AppendQuote(nil, v.str.String()), nil
	case KindFloat:
		return strconv.AppendFloat(nil, v.f, 'g', -1, 64), nil
	case KindUint:
		return strconv.AppendUint(nil, v.u, 10), nil
	case KindInt:
		return strconv.AppendInt(nil, v.i, 10), nil
	case KindBool:
		return strconv.AppendBool(nil, v.b), nil
	default:
		return []byte("null"), nil
	}
}

// escapePath protects sjson path metacharacters in object keys.
func escapePath(key string) string {
	if !strings.ContainsAny(key, `.\*?|#@`) {
		return key
	}
	var sb strings.Builder
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '.', '\\', '*', '?', '|', '#', '@':
			sb.WriteByte('\\')
		}
		sb.WriteByte(key[i])
	}
	return sb.String()
}
