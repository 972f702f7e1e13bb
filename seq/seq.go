package seq

import "github.com/dshills/keel/internal/buf"

// Seq is a sequence of T over copy-on-write storage. The zero value is a
// null sequence, ready to use.
type Seq[T any] struct {
	b buf.Buf[T]
}

// New returns an empty (non-null) sequence.
func New[T any]() Seq[T] {
	var s Seq[T]
	s.b.SetEmpty()
	return s
}

// From returns a sequence holding a copy of vals.
func From[T any](vals ...T) Seq[T] {
	var s Seq[T]
	s.b.SetCopy(vals, 0)
	return s
}

// Borrow returns a sequence viewing caller-owned memory without copying.
// The caller guarantees data outlives all use; the sequence copies it on
// the first mutation.
func Borrow[T any](data []T) Seq[T] {
	var s Seq[T]
	s.b.SetBorrowed(data)
	return s
}

// Queries.

// Len returns the number of elements in the view.
func (s *Seq[T]) Len() int { return s.b.Len() }

// IsNull reports whether the sequence has no view.
func (s *Seq[T]) IsNull() bool { return s.b.IsNull() }

// IsEmpty reports whether the view has no elements. Null is also empty.
func (s *Seq[T]) IsEmpty() bool { return s.b.Len() == 0 }

// Cap returns the capacity of the backing storage.
func (s *Seq[T]) Cap() int { return s.b.Cap() }

// Shared reports whether the storage is shared with another container.
func (s *Seq[T]) Shared() bool { return s.b.Shared() }

// Items returns the view for reading. Nil when null, non-nil and empty
// when empty. Invalidated by any mutator.
func (s *Seq[T]) Items() []T { return s.b.View() }

// At returns the element at index i; out of range panics.
func (s *Seq[T]) At(i int) T { return s.b.At(i) }

// First returns the first element, if any.
func (s *Seq[T]) First() (T, bool) {
	var zero T
	if s.Len() == 0 {
		return zero, false
	}
	return s.At(0), true
}

// Last returns the last element, if any.
func (s *Seq[T]) Last() (T, bool) {
	var zero T
	if s.Len() == 0 {
		return zero, false
	}
	return s.At(s.Len() - 1), true
}

// Lifecycle.

// SetNull drops the view; the sequence becomes null.
func (s *Seq[T]) SetNull() { s.b.SetNull() }

// Clear empties the sequence, keeping it non-null. A uniquely held
// allocation is retained for reuse by the next growth.
func (s *Seq[T]) Clear() { s.b.Clear() }

// Copy makes s share src's storage. Mutating either afterwards detaches.
func (s *Seq[T]) Copy(src *Seq[T]) { s.b.CopyFrom(&src.b) }

// Set replaces the content with a copy of vals.
func (s *Seq[T]) Set(vals []T) { s.b.SetCopy(vals, 0) }

// Slicing. These narrow the view without copying or reallocating.

// Slice narrows the view to count elements starting at i. A negative
// count keeps everything from i on. Bounds are clamped.
func (s *Seq[T]) Slice(i, count int) { s.b.Slice(i, count) }

// Slice2 narrows the view to the half-open index range [i, j).
func (s *Seq[T]) Slice2(i, j int) {
	if j < i {
		j = i
	}
	s.b.Slice(i, j-i)
}

// TrimLeft drops count elements from the front of the view.
func (s *Seq[T]) TrimLeft(count int) { s.b.TrimLeft(count) }

// TrimRight drops count elements from the end of the view.
func (s *Seq[T]) TrimRight(count int) { s.b.TrimRight(count) }

// Truncate limits the view to at most count elements.
func (s *Seq[T]) Truncate(count int) { s.b.Truncate(count) }

// Storage management.

// Unslice compacts the view to the start of a uniquely held allocation.
// No-op when shared, borrowed, or not sliced.
func (s *Seq[T]) Unslice() { s.b.Unslice() }

// Unshare detaches from shared storage; no-op otherwise.
func (s *Seq[T]) Unshare() {
	if s.b.Shared() {
		s.b.Detach(0)
	}
}

// Retain adds a holder to the backing allocation. Outer containers call
// it when they duplicate a sequence-typed element out of storage that
// stays live, so both copies register as holders.
func (s *Seq[T]) Retain() { s.b.Retain() }

// Reserve ensures capacity for additional more elements in unique
// storage, relocating if needed.
func (s *Seq[T]) Reserve(additional int) { s.b.Reserve(additional, 0) }

// Resize forces the length to exactly n, extending with zero values or
// trimming the tail.
func (s *Seq[T]) Resize(n int) { s.b.Resize(n, 0) }

// SetCap forces the capacity to exactly n, truncating the view if needed.
// Zero releases the allocation.
func (s *Seq[T]) SetCap(n int) { s.b.CapForce(n) }

// Compact trims capacity down to the view size when uniquely owned.
func (s *Seq[T]) Compact() { s.b.Compact(0) }

// Mutators. Every mutator detaches shared or borrowed storage first, so a
// write through one sequence is never visible through another.

// Add appends vals.
func (s *Seq[T]) Add(vals ...T) { s.b.Append(vals, 0) }

// AddSeq appends the content of another sequence.
func (s *Seq[T]) AddSeq(o *Seq[T]) { s.b.Append(o.Items(), 0) }

// AddNew appends count zero-valued elements and returns them for writing.
// The slice is invalidated by the next mutator.
func (s *Seq[T]) AddNew(count int) []T { return s.b.AppendNew(count, 0) }

// Prepend inserts vals at the front.
func (s *Seq[T]) Prepend(vals ...T) { s.b.Prepend(vals, 0) }

// Insert inserts vals at index i; i of 0 or Len() reduce to
// Prepend/Add.
func (s *Seq[T]) Insert(i int, vals ...T) {
	gap := s.b.InsertGap(i, len(vals), 0)
	copy(gap, vals)
	buf.RetainElems(gap)
}

// InsertSeq inserts another sequence's content at index i.
func (s *Seq[T]) InsertSeq(i int, o *Seq[T]) {
	items := o.Items()
	gap := s.b.InsertGap(i, len(items), 0)
	copy(gap, items)
	buf.RetainElems(gap)
}

// Remove deletes count elements starting at i, preserving order. Bounds
// are clamped; removal at Len() is a no-op.
func (s *Seq[T]) Remove(i, count int) { s.b.Remove(i, count) }

// Replace substitutes count elements at i with vals, overwriting the
// common run in place and inserting or removing the difference.
func (s *Seq[T]) Replace(i, count int, vals []T) {
	size := s.Len()
	if i < 0 {
		i = 0
	}
	if i > size {
		i = size
	}
	if count < 0 || count > size-i {
		count = size - i
	}
	common := min(count, len(vals))
	if common > 0 {
		mv := s.b.MutView()
		copy(mv[i:i+common], vals[:common])
		buf.RetainElems(mv[i : i+common])
	}
	switch {
	case len(vals) > count:
		gap := s.b.InsertGap(i+common, len(vals)-common, 0)
		copy(gap, vals[common:])
		buf.RetainElems(gap)
	case count > len(vals):
		s.b.Remove(i+common, count-common)
	}
}

// Ptr returns a pointer to element i for in-place mutation, detaching
// shared storage first. Invalidated by any mutator.
func (s *Seq[T]) Ptr(i int) *T { return &s.b.MutView()[i] }

// SetAt overwrites element i.
func (s *Seq[T]) SetAt(i int, v T) { s.b.SetAt(i, v) }

// Fill overwrites count elements from i with v, growing as needed.
func (s *Seq[T]) Fill(i, count int, v T) { s.b.Fill(i, count, v, 0) }

// Reverse reverses the elements in place.
func (s *Seq[T]) Reverse() { s.b.Reverse() }

// Pop slices off and returns the last element.
func (s *Seq[T]) Pop() (T, bool) { return s.b.Pop() }

// PopFront slices off and returns the first element.
func (s *Seq[T]) PopFront() (T, bool) { return s.b.PopFront() }

// SplitAt fills left with the first i elements and right with the rest;
// both share s's storage until mutated. Either output may be nil.
func (s *Seq[T]) SplitAt(i int, left, right *Seq[T]) {
	var lb, rb *buf.Buf[T]
	if left != nil {
		lb = &left.b
	}
	if right != nil {
		rb = &right.b
	}
	s.b.SplitAt(i, lb, rb)
}
