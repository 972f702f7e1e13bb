package seq

import (
	"testing"

	"github.com/dshills/keel/bstr"
)

func TestZeroValueIsNull(t *testing.T) {
	var s Seq[int]

	if !s.IsNull() {
		t.Error("zero value should be null")
	}
	if !s.IsEmpty() {
		t.Error("null sequence should be empty")
	}
	if s.Len() != 0 {
		t.Errorf("expected length 0, got %d", s.Len())
	}
}

func TestNewIsEmptyNotNull(t *testing.T) {
	s := New[int]()

	if s.IsNull() {
		t.Error("New should produce a non-null sequence")
	}
	if !s.IsEmpty() {
		t.Error("New should produce an empty sequence")
	}
}

func TestEmptySequencesCompareEqual(t *testing.T) {
	a := New[int]()
	b := New[int]()

	if !Equal(&a, &b) {
		t.Error("two empty sequences should be equal")
	}

	var n Seq[int]
	if Equal(&a, &n) {
		t.Error("empty and null sequences must not be equal")
	}
}

func TestCopySharesUntilWrite(t *testing.T) {
	a := From(1, 2, 3)
	var b Seq[int]
	b.Copy(&a)

	if !a.Shared() || !b.Shared() {
		t.Error("copy should share storage")
	}

	b.SetAt(1, 9)

	if a.At(1) != 2 {
		t.Errorf("write leaked into source: got %d", a.At(1))
	}
	if b.At(1) != 9 {
		t.Errorf("expected 9, got %d", b.At(1))
	}
	if b.Shared() {
		t.Error("mutated copy should be detached")
	}
}

func TestSliceIdentity(t *testing.T) {
	s := From(1, 2, 3, 4, 5)
	for i := 0; i <= s.Len(); i++ {
		for n := 0; n <= 6; n++ {
			c := From(1, 2, 3, 4, 5)
			c.Slice(i, n)
			want := n
			if rest := 5 - i; want > rest {
				want = rest
			}
			if c.Len() != want {
				t.Errorf("slice(%d,%d): expected len %d, got %d", i, n, want, c.Len())
			}
		}
	}
}

func TestSlice2(t *testing.T) {
	s := From(10, 20, 30, 40)
	s.Slice2(1, 3)
	if s.Len() != 2 || s.At(0) != 20 || s.At(1) != 30 {
		t.Errorf("expected [20 30], got %v", s.Items())
	}
}

func TestUnslicePreservesContent(t *testing.T) {
	s := From(1, 2, 3, 4, 5)
	s.Slice(1, 3)
	want := []int{2, 3, 4}

	s.Unslice()

	if s.Len() != len(want) {
		t.Fatalf("unslice changed length: %d", s.Len())
	}
	for i, w := range want {
		if s.At(i) != w {
			t.Errorf("element %d: expected %d, got %d", i, w, s.At(i))
		}
	}
}

func TestAddPopRoundTrip(t *testing.T) {
	s := From(1, 2)
	s.Add(7)

	v, ok := s.Pop()
	if !ok || v != 7 {
		t.Errorf("expected pop 7, got %d ok=%v", v, ok)
	}
	if s.Len() != 2 {
		t.Errorf("expected length 2, got %d", s.Len())
	}
}

func TestPrependThenSliceYieldsOriginal(t *testing.T) {
	s := From(2, 3)
	s.Prepend(1)
	s.Slice(1, -1)

	want := From(2, 3)
	if !Equal(&s, &want) {
		t.Errorf("expected [2 3], got %v", s.Items())
	}
}

func TestInsertMiddle(t *testing.T) {
	s := From(1, 4)
	s.Insert(1, 2, 3)
	want := From(1, 2, 3, 4)
	if !Equal(&s, &want) {
		t.Errorf("expected [1 2 3 4], got %v", s.Items())
	}
}

func TestRemoveClamps(t *testing.T) {
	s := From(1, 2, 3)
	s.Remove(1, 99)
	if s.Len() != 1 || s.At(0) != 1 {
		t.Errorf("expected [1], got %v", s.Items())
	}

	s = From(1, 2, 3)
	s.Remove(3, 1)
	if s.Len() != 3 {
		t.Error("remove at size should be a no-op")
	}
}

func TestReplaceEquivalences(t *testing.T) {
	// replace(i, n, nothing) == remove(i, n)
	a := From(1, 2, 3, 4)
	a.Replace(1, 2, nil)
	aw := From(1, 4)
	if !Equal(&a, &aw) {
		t.Errorf("replace-with-nothing: expected [1 4], got %v", a.Items())
	}

	// replace(i, 0, vals) == insert(i, vals)
	b := From(1, 4)
	b.Replace(1, 0, []int{2, 3})
	bw := From(1, 2, 3, 4)
	if !Equal(&b, &bw) {
		t.Errorf("replace-with-insert: expected [1 2 3 4], got %v", b.Items())
	}

	// equal sizes overwrite in place
	c := From(1, 9, 9, 4)
	c.Replace(1, 2, []int{2, 3})
	cw := From(1, 2, 3, 4)
	if !Equal(&c, &cw) {
		t.Errorf("replace-in-place: expected [1 2 3 4], got %v", c.Items())
	}
}

func TestReverseTwiceIsIdentity(t *testing.T) {
	s := From(1, 2, 3, 4, 5)
	want := From(1, 2, 3, 4, 5)
	s.Reverse()
	s.Reverse()
	if !Equal(&s, &want) {
		t.Errorf("double reverse changed content: %v", s.Items())
	}
}

func TestFindPastEnd(t *testing.T) {
	s := From(1, 2, 3)
	if got := Find(&s, 1, s.Len()); got != -1 {
		t.Errorf("find starting at size should miss, got %d", got)
	}
}

func TestFindReverse(t *testing.T) {
	s := From(1, 2, 1, 2)
	if got := FindReverse(&s, 2, 0, -1); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if got := FindReverse(&s, 2, 0, 3); got != 1 {
		t.Errorf("end is exclusive; expected 1, got %d", got)
	}
	if got := FindReverse(&s, 9, 0, -1); got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
}

func TestFindAny(t *testing.T) {
	s := From(5, 6, 7, 8)
	if got := FindAny(&s, []int{7, 6}, 0); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if got := FindAnyReverse(&s, []int{7, 6}, 0, -1); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
}

func TestStartsEndsWith(t *testing.T) {
	s := From(1, 2, 3, 4)
	if !StartsWith(&s, []int{1, 2}) {
		t.Error("expected prefix match")
	}
	if !EndsWith(&s, []int{3, 4}) {
		t.Error("expected suffix match")
	}
	if StartsWith(&s, []int{2}) {
		t.Error("unexpected prefix match")
	}
	if !StartsWith(&s, nil) {
		t.Error("empty prefix always matches")
	}
}

func TestCompareOrdering(t *testing.T) {
	a := From(1, 2)
	b := From(1, 2, 3)
	c := From(1, 3)

	if Compare(&a, &b) >= 0 {
		t.Error("shorter prefix should order first")
	}
	if Compare(&b, &c) >= 0 {
		t.Error("expected [1 2 3] < [1 3]")
	}
	if Compare(&a, &a) != 0 {
		t.Error("sequence should equal itself")
	}

	var null Seq[int]
	empty := New[int]()
	if Compare(&null, &empty) >= 0 {
		t.Error("null should order before empty")
	}
}

func TestSplitAt(t *testing.T) {
	s := From(1, 2, 3, 4)
	var l, r Seq[int]
	s.SplitAt(1, &l, &r)

	lw, rw := From(1), From(2, 3, 4)
	if !Equal(&l, &lw) || !Equal(&r, &rw) {
		t.Errorf("split mismatch: %v / %v", l.Items(), r.Items())
	}
	if !l.Shared() || !r.Shared() {
		t.Error("split halves should share until mutated")
	}

	r.SetAt(0, 9)
	if s.At(1) != 2 {
		t.Error("mutating a split half must not disturb the source")
	}
}

func TestBorrowCopiesOnWrite(t *testing.T) {
	backing := []int{1, 2, 3}
	s := Borrow(backing)

	s.SetAt(0, 9)

	if backing[0] != 1 {
		t.Error("mutation must not write through to borrowed memory")
	}
	if s.At(0) != 9 {
		t.Errorf("expected 9, got %d", s.At(0))
	}
}

func TestResizeAndFill(t *testing.T) {
	s := From(1)
	s.Resize(3)
	want := From(1, 0, 0)
	if !Equal(&s, &want) {
		t.Errorf("expected [1 0 0], got %v", s.Items())
	}

	s.Fill(1, 2, 5)
	want = From(1, 5, 5)
	if !Equal(&s, &want) {
		t.Errorf("expected [1 5 5], got %v", s.Items())
	}
}

func TestAddSeqAndInsertSeq(t *testing.T) {
	a := From(1, 2)
	b := From(3, 4)
	a.AddSeq(&b)
	w := From(1, 2, 3, 4)
	if !Equal(&a, &w) {
		t.Errorf("expected [1 2 3 4], got %v", a.Items())
	}

	c := From(9)
	a.InsertSeq(2, &c)
	w = From(1, 2, 9, 3, 4)
	if !Equal(&a, &w) {
		t.Errorf("expected [1 2 9 3 4], got %v", a.Items())
	}
}

func TestCopyIsolatesNestedStrings(t *testing.T) {
	a := From(bstr.FromString("hello"))
	var b Seq[bstr.Str]
	b.Copy(&a)

	b.Ptr(0).SetAt(0, 'H')

	if got := a.Ptr(0).String(); got != "hello" {
		t.Errorf("write leaked into source element: got %q", got)
	}
	if got := b.Ptr(0).String(); got != "Hello" {
		t.Errorf("expected Hello, got %q", got)
	}
}

func TestSharedGrowthIsolatesNestedStrings(t *testing.T) {
	a := From(bstr.FromString("x"), bstr.FromString("y"))
	var b Seq[bstr.Str]
	b.Copy(&a)

	// Growing b detaches it; the element strings must not stay fused
	// to a's afterwards.
	b.Add(bstr.FromString("z"))
	b.Ptr(0).SetAt(0, 'X')

	if got := a.Ptr(0).String(); got != "x" {
		t.Errorf("write leaked into source element: got %q", got)
	}
	if a.Len() != 2 || b.Len() != 3 {
		t.Errorf("expected lengths 2 and 3, got %d and %d", a.Len(), b.Len())
	}
}

func TestInsertRetainsCallerElements(t *testing.T) {
	src := bstr.FromString("keep")
	s := New[bstr.Str]()
	s.Insert(0, src)

	s.Ptr(0).SetAt(0, 'K')

	if src.String() != "keep" {
		t.Errorf("insert must not fuse the stored copy to the caller's value: got %q", src.String())
	}
}
