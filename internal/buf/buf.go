package buf

// state identifies which view model a Buf is in.
type state uint8

const (
	stateNull state = iota
	stateEmpty
	stateOwned
	stateBorrowed
)

// hdr is the shared allocation record. All containers copied from one
// another point at the same hdr and coordinate through its reference count.
type hdr[T any] struct {
	refs int // holders of this allocation, >= 1 while reachable
	used int // initialized elements at the front of data
	data []T // len(data) is the capacity
}

// Buf is a view onto owned or borrowed contiguous storage. The zero value
// is a null Buf and is ready to use.
type Buf[T any] struct {
	h   *hdr[T] // owned allocation; retained while null/empty for lazy reuse
	ext []T     // borrowed view, valid only in the borrowed state
	off int     // view start within h.data, valid only in the owned state
	n   int     // view length, valid in the owned state
	st  state
}

// State queries.

// IsNull reports whether the Buf has no view.
func (b *Buf[T]) IsNull() bool { return b.st == stateNull }

// Len returns the element count of the current view.
func (b *Buf[T]) Len() int {
	switch b.st {
	case stateOwned:
		return b.n
	case stateBorrowed:
		return len(b.ext)
	}
	return 0
}

// Cap returns the capacity backing the view: the allocation size when one
// is held (owned, or retained lazily while null/empty), the view length
// for borrowed storage, zero otherwise.
func (b *Buf[T]) Cap() int {
	if b.h != nil {
		return len(b.h.data)
	}
	if b.st == stateBorrowed {
		return len(b.ext)
	}
	return 0
}

// Shared reports whether the view's allocation is held by more than one Buf.
// Borrowed and null/empty views are never shared.
func (b *Buf[T]) Shared() bool {
	return b.st == stateOwned && b.h.refs > 1
}

// Borrowed reports whether the view aliases caller-owned memory.
func (b *Buf[T]) Borrowed() bool { return b.st == stateBorrowed }

// View returns the current view. It is nil for a null Buf and a non-nil
// empty slice for an empty one. The slice is invalidated by any mutator.
func (b *Buf[T]) View() []T {
	switch b.st {
	case stateOwned:
		return b.h.data[b.off : b.off+b.n]
	case stateBorrowed:
		return b.ext
	case stateEmpty:
		return emptyView[T]()
	}
	return nil
}

// emptyView returns a non-nil zero-length slice, the moral equivalent of
// the empty-but-not-null sentinel.
func emptyView[T any]() []T { return make([]T, 0) }

// At returns the element at view index i. The caller is responsible for
// bounds; out-of-range panics.
func (b *Buf[T]) At(i int) T { return b.View()[i] }

// Lifecycle.

// release drops this Buf's reference to its allocation, freeing it when
// the count reaches zero.
func (b *Buf[T]) release() {
	if b.h != nil {
		b.h.refs--
		if b.h.refs <= 0 {
			clearRange(b.h.data[:b.h.used])
		}
		b.h = nil
	}
}

// retire drops the view but keeps a uniquely-held allocation around for
// reuse by the next growth. Shared allocations are released instead.
func (b *Buf[T]) retire() {
	if b.h != nil && b.h.refs == 1 {
		clearRange(b.h.data[:b.h.used])
		b.h.used = 0
	} else {
		b.release()
	}
	b.ext = nil
	b.off, b.n = 0, 0
}

// SetNull drops the view entirely. A lazily retained allocation may be
// kept; Cap reflects it.
func (b *Buf[T]) SetNull() {
	b.retire()
	b.st = stateNull
}

// SetEmpty makes the view empty but non-null.
func (b *Buf[T]) SetEmpty() {
	b.retire()
	b.st = stateEmpty
}

// Clear is SetEmpty under its traditional name: size drops to zero, the
// container stays non-null, and a unique allocation is kept for reuse.
func (b *Buf[T]) Clear() { b.SetEmpty() }

// CopyFrom makes b share src's storage. An owned source bumps the
// reference count; a borrowed source is aliased without counting; null and
// empty propagate as-is. Self-assignment is a no-op.
func (b *Buf[T]) CopyFrom(src *Buf[T]) {
	if b == src {
		return
	}
	if src.st == stateOwned {
		src.h.refs++
	}
	b.release()
	b.h, b.ext, b.off, b.n, b.st = src.h, src.ext, src.off, src.n, src.st
	if src.st == stateOwned {
		// release() dropped our old ref; keep the one taken above.
		return
	}
	b.h = nil
}

// SetBorrowed points the view at caller-owned memory without copying.
// The caller guarantees the backing outlives every use of the view.
// A nil slice yields a null Buf; an empty one yields an empty Buf.
func (b *Buf[T]) SetBorrowed(data []T) {
	b.retire()
	switch {
	case data == nil:
		b.st = stateNull
	case len(data) == 0:
		b.st = stateEmpty
	default:
		b.ext = data
		b.st = stateBorrowed
	}
}

// SetCopy replaces the view with an owned copy of data, reserving term
// extra slots of headroom.
func (b *Buf[T]) SetCopy(data []T, term int) {
	if len(data) == 0 {
		if data == nil {
			b.SetNull()
		} else {
			b.SetEmpty()
		}
		return
	}
	b.SetBorrowed(data)
	b.Detach(term)
}

// Slicing. These narrow the view without touching the allocation, so they
// never detach and never copy.

// Slice narrows the view to count elements starting at i, clamping both to
// the view. A null Buf stays null.
func (b *Buf[T]) Slice(i, count int) {
	size := b.Len()
	if i < 0 {
		i = 0
	}
	if i > size {
		i = size
	}
	if count < 0 || count > size-i {
		count = size - i
	}
	switch b.st {
	case stateOwned:
		b.off += i
		b.n = count
		if b.n == 0 {
			b.toEmptyKeeping()
		}
	case stateBorrowed:
		b.ext = b.ext[i : i+count]
		if len(b.ext) == 0 {
			b.ext = nil
			b.st = stateEmpty
		}
	}
}

// toEmptyKeeping transitions an owned view of length zero to the empty
// state while retaining a unique allocation for reuse.
func (b *Buf[T]) toEmptyKeeping() {
	b.retire()
	b.st = stateEmpty
}

// TrimLeft removes count elements from the front of the view.
func (b *Buf[T]) TrimLeft(count int) { b.Slice(count, -1) }

// TrimRight removes count elements from the end of the view.
func (b *Buf[T]) TrimRight(count int) {
	size := b.Len()
	if count < 0 {
		count = 0
	}
	if count > size {
		count = size
	}
	b.Slice(0, size-count)
}

// Truncate limits the view to at most count elements.
func (b *Buf[T]) Truncate(count int) {
	if count < b.Len() {
		b.Slice(0, count)
	}
}

// SplitAt copies the first i view elements of b into left and the rest
// into right as views sharing b's allocation.
func (b *Buf[T]) SplitAt(i int, left, right *Buf[T]) {
	size := b.Len()
	if i < 0 {
		i = 0
	}
	if i > size {
		i = size
	}
	if left != nil {
		left.CopyFrom(b)
		left.Slice(0, i)
	}
	if right != nil {
		right.CopyFrom(b)
		right.Slice(i, -1)
	}
}

// clearRange zeroes a run of slots so the GC can reclaim what they
// referenced.
func clearRange[T any](s []T) {
	var zero T
	for i := range s {
		s[i] = zero
	}
}

// retainer is implemented by element types that themselves hold
// refcounted storage. Duplicating such an element out of live storage
// must bump its inner count so both copies register as holders.
type retainer interface{ Retain() }

// Retain adds a holder to an owned allocation. Null, empty, and borrowed
// views have nothing to count.
func (b *Buf[T]) Retain() {
	if b.st == stateOwned {
		b.h.refs++
	}
}

// RetainElems retains every element of elems whose type carries its own
// refcounted storage. Callers invoke it after copying elements out of
// storage that stays live, so the source and the copy both count. Plain
// element types cost one failed assertion.
func RetainElems[T any](elems []T) {
	if len(elems) == 0 {
		return
	}
	if _, ok := any(&elems[0]).(retainer); !ok {
		return
	}
	for i := range elems {
		any(&elems[i]).(retainer).Retain()
	}
}
