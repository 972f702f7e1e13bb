package variant

import (
	"testing"

	"github.com/dshills/keel/bstr"
)

func TestZeroValueIsNull(t *testing.T) {
	var v Var
	if v.Kind() != KindNull {
		t.Errorf("expected null kind, got %v", v.Kind())
	}
	if !v.IsNull() {
		t.Error("zero value should be null")
	}
}

func TestRetypePreservesNumericValue(t *testing.T) {
	var v Var
	v.SetInt(-5)

	if got := *v.AsFloat(); got != -5 {
		t.Errorf("int->float: expected -5, got %g", got)
	}
	if v.Kind() != KindFloat {
		t.Errorf("expected float kind, got %v", v.Kind())
	}

	v.SetUint(42)
	if got := *v.AsInt(); got != 42 {
		t.Errorf("uint->int: expected 42, got %d", got)
	}
}

func TestRetypeFromNonNumericResets(t *testing.T) {
	var v Var
	v.SetString("123")
	if got := *v.AsInt(); got != 0 {
		t.Errorf("string->int retype should reset, got %d", got)
	}

	v.SetBool(true)
	if got := *v.AsFloat(); got != 0 {
		t.Errorf("bool->float retype should reset, got %g", got)
	}
}

func TestKeyAutovivifies(t *testing.T) {
	var v Var
	v.Key("user").Key("age").SetInt(30)

	if v.Kind() != KindObject {
		t.Fatalf("expected object, got %v", v.Kind())
	}
	user := v.Lookup("user")
	if user == nil || user.Kind() != KindObject {
		t.Fatal("expected user child object")
	}
	if got := user.Lookup("age").GetInt(); got != 30 {
		t.Errorf("expected 30, got %d", got)
	}
	if v.Lookup("missing") != nil {
		t.Error("lookup must not insert")
	}
}

func TestAtGrowsListWithNulls(t *testing.T) {
	var v Var
	v.At(2).SetString("x")

	list := v.GetList()
	if list.Len() != 3 {
		t.Fatalf("expected 3 elements, got %d", list.Len())
	}
	if list.Ptr(0).Kind() != KindNull || list.Ptr(1).Kind() != KindNull {
		t.Error("filler elements should be null")
	}
	if list.Ptr(2).GetStr().String() != "x" {
		t.Errorf("expected x, got %q", list.Ptr(2).GetStr().String())
	}
}

func TestAccessorsReturnStaticNull(t *testing.T) {
	var v Var
	v.SetInt(1)

	if !v.GetStr().IsNull() {
		t.Error("GetStr on non-string should be the null string")
	}
	if !v.GetList().IsNull() {
		t.Error("GetList on non-list should be the null list")
	}
	if v.GetObject().Len() != 0 {
		t.Error("GetObject on non-object should be empty")
	}
}

func TestCoercingAccessors(t *testing.T) {
	var v Var
	v.SetString("42")
	if v.GetInt() != 42 || v.GetUint() != 42 || v.GetFloat() != 42 {
		t.Error("numeric accessors should parse string payloads")
	}

	v.SetBool(true)
	if v.GetInt() != 1 {
		t.Errorf("true should read as 1, got %d", v.GetInt())
	}

	v.SetFloat(3.9)
	if v.GetInt() != 3 {
		t.Errorf("float should convert by cast, got %d", v.GetInt())
	}

	v.SetString("on")
	if !v.GetBool() {
		t.Error("expected on to read as true")
	}

	v.SetString("not a number")
	if v.GetInt() != 0 || v.GetFloat() != 0 {
		t.Error("unparseable string should read as 0")
	}
}

func TestGetVal(t *testing.T) {
	out := bstr.New()

	var v Var
	v.SetInt(-7)
	if !v.GetVal(&out) || out.String() != "-7" {
		t.Errorf("expected -7, got %q", out.String())
	}

	v.SetBool(true)
	if !v.GetVal(&out) || out.String() != "true" {
		t.Errorf("expected true, got %q", out.String())
	}

	v.SetNull()
	if !v.GetVal(&out) || out.String() != "null" {
		t.Errorf("expected null, got %q", out.String())
	}

	v.Key("x").SetInt(1)
	if v.GetVal(&out) {
		t.Error("GetVal on an object should fail")
	}
}

func TestSharedScanAndUnshareAll(t *testing.T) {
	s := bstr.FromString("hello")

	var v Var
	v.Key("a").AsString().Copy(&s)

	if !v.SharedScan() {
		t.Error("expected shared payload to be detected")
	}

	v.UnshareAll()

	if v.SharedScan() {
		t.Error("expected no shared payloads after UnshareAll")
	}
	if s.String() != "hello" {
		t.Errorf("source string disturbed: %q", s.String())
	}
}

func TestObjectCopyIsolatesNestedPayloads(t *testing.T) {
	var v Var
	v.Key("name").SetString("hello")

	var w Var
	w.AsObject().Copy(v.GetObject())

	w.Key("name").GetStr().SetAt(0, 'H')

	if got := v.Key("name").GetStr().String(); got != "hello" {
		t.Errorf("write leaked into source tree: got %q", got)
	}
	if got := w.Key("name").GetStr().String(); got != "Hello" {
		t.Errorf("expected Hello, got %q", got)
	}
}

func TestUnshareAllDetachesCopiedSubtree(t *testing.T) {
	var v Var
	v.Key("name").SetString("hello")
	v.Key("tags").At(0).SetString("x")

	var w Var
	w.AsObject().Copy(v.GetObject())
	if !w.SharedScan() {
		t.Fatal("expected shared storage after object copy")
	}

	w.UnshareAll()
	if w.SharedScan() {
		t.Error("expected no shared payloads after UnshareAll")
	}

	w.Key("name").GetStr().SetAt(0, 'H')
	w.Key("tags").At(0).GetStr().SetAt(0, 'X')

	if got := v.Key("name").GetStr().String(); got != "hello" {
		t.Errorf("write after UnshareAll leaked into source: got %q", got)
	}
	if got := v.Key("tags").At(0).GetStr().String(); got != "x" {
		t.Errorf("list write after UnshareAll leaked into source: got %q", got)
	}
}

func TestDumpScalars(t *testing.T) {
	tests := []struct {
		build func(v *Var)
		want  string
	}{
		{func(v *Var) { v.SetInt(30) }, "30\n"},
		{func(v *Var) { v.SetUint(7) }, "7\n"},
		{func(v *Var) { v.SetFloat(1.5) }, "1.5\n"},
		{func(v *Var) { v.SetBool(false) }, "false\n"},
		{func(v *Var) {}, "null\n"},
		{func(v *Var) { v.SetString("x") }, "'x'\n"},
	}
	for _, tt := range tests {
		var v Var
		tt.build(&v)
		out := bstr.New()
		v.Dump(&out)
		if out.String() != tt.want {
			t.Errorf("dump: expected %q, got %q", tt.want, out.String())
		}
	}
}

func TestDumpTree(t *testing.T) {
	var v Var
	v.Key("user").Key("age").SetInt(30)
	v.Key("user").Key("tags").At(0).SetString("x")

	out := bstr.New()
	v.Dump(&out)

	want := "{\n  user:{\n    age:30,\n    tags:['x']\n  }\n}\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

func TestDumpEmptyContainers(t *testing.T) {
	var v Var
	v.AsObject()
	out := bstr.New()
	v.Dump(&out)
	if out.String() != "{}\n" {
		t.Errorf("expected {}, got %q", out.String())
	}

	v.AsList()
	out.Clear()
	v.Dump(&out)
	if out.String() != "[]\n" {
		t.Errorf("expected [], got %q", out.String())
	}
}

func TestDumpIsDeterministic(t *testing.T) {
	build := func() Var {
		var v Var
		v.Key("b").SetInt(2)
		v.Key("a").SetString("one")
		v.Key("c").At(1).SetBool(true)
		return v
	}
	v1, v2 := build(), build()

	o1, o2 := bstr.New(), bstr.New()
	v1.Dump(&o1)
	v2.Dump(&o2)

	if o1.String() != o2.String() {
		t.Errorf("equal variants must dump identically:\n%q\n%q", o1.String(), o2.String())
	}
}

func TestDumpQuotesAwkwardKeys(t *testing.T) {
	var v Var
	v.Key("has space").SetInt(1)

	out := bstr.New()
	v.Dump(&out)

	want := "{\n  'has space':1\n}\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}
