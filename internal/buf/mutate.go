package buf

// grownCap chooses the capacity for a growth from cur to at least need
// elements. The first allocation is exact; later growth at least doubles
// and never lands below need+1.
func grownCap(cur, need int) int {
	if cur == 0 {
		return need
	}
	c := cur * 2
	if c < need+1 {
		c = need + 1
	}
	return c
}

// materialize moves the view into a unique allocation of at least capNeed
// slots with the view copied to offset lead. A lazily retained unique
// allocation is reused when large enough.
func (b *Buf[T]) materialize(capNeed, lead int) {
	view := b.View()
	need := lead + len(view)
	if capNeed < need {
		capNeed = need
	}
	var h *hdr[T]
	if b.h != nil && b.h.refs == 1 && b.h.used == 0 && len(b.h.data) >= capNeed {
		h = b.h
		b.h = nil // keep it from being released below
	} else {
		h = &hdr[T]{refs: 1, data: make([]T, capNeed)}
	}
	copy(h.data[lead:], view)
	h.used = need
	b.release()
	b.h = h
	b.ext = nil
	b.off, b.n = lead, len(view)
	b.st = stateOwned
}

// Detach gives the Buf a unique owned allocation holding exactly the view
// plus term headroom slots. Shared and borrowed views are copied; a view
// that is already unique and owned is left alone.
func (b *Buf[T]) Detach(term int) {
	switch b.st {
	case stateOwned:
		if b.h.refs > 1 {
			b.materializeShared(b.n+term, 0)
		}
	case stateBorrowed:
		ext := b.ext
		b.ext = nil
		b.st = stateNull
		b.materialize(len(ext)+term, 0)
		copy(b.h.data, ext)
		RetainElems(b.h.data[:len(ext)])
		b.h.used = len(ext)
		b.n = len(ext)
		b.st = stateOwned
	}
}

// materializeShared is materialize for a shared owned source: the copy
// must be taken before the old reference is dropped, and the old
// allocation must not be zeroed while other holders remain.
func (b *Buf[T]) materializeShared(capNeed, lead int) {
	view := b.h.data[b.off : b.off+b.n]
	need := lead + len(view)
	if capNeed < need {
		capNeed = need
	}
	shared := b.h.refs > 1
	h := &hdr[T]{refs: 1, used: need, data: make([]T, capNeed)}
	copy(h.data[lead:], view)
	if shared {
		// The old allocation stays live for the other holders, so the
		// copied elements are duplicates, not moves.
		RetainElems(h.data[lead:need])
	}
	b.h.refs--
	b.h = h
	b.off, b.n = lead, len(view)
}

// Unslice compacts the view to the front of a uniquely held allocation,
// destroying elements outside it. A shared, borrowed, or unsliced view is
// left untouched.
func (b *Buf[T]) Unslice() {
	if b.st != stateOwned || b.h.refs > 1 {
		return
	}
	h := b.h
	if b.off == 0 && h.used == b.n {
		return
	}
	copy(h.data, h.data[b.off:b.off+b.n])
	clearRange(h.data[b.n:h.used])
	h.used = b.n
	b.off = 0
}

// Reserve guarantees room to append additional elements (plus term
// headroom) in place: afterwards the Buf is owned, unique, and has
// additional+term free slots past the view end. The view itself is
// preserved; everything past it is forfeit.
func (b *Buf[T]) Reserve(additional, term int) {
	need := b.Len() + additional + term
	if b.st != stateOwned {
		b.Detach(additional + term)
		if b.st != stateOwned {
			b.materialize(need, 0)
		}
		return
	}
	if b.h.refs > 1 {
		b.materializeShared(need, 0)
		return
	}
	switch {
	case b.off+b.n+additional+term <= len(b.h.data):
		// Trailing room already available.
	case b.n+additional+term <= len(b.h.data):
		b.Unslice()
	default:
		b.materialize(grownCap(len(b.h.data), need), 0)
	}
}

// endAppend commits count freshly written elements at the view end,
// destroying any stale right-sliced tail they did not cover.
func (b *Buf[T]) endAppend(count int) {
	b.n += count
	end := b.off + b.n
	if b.h.used > end {
		clearRange(b.h.data[end:b.h.used])
	}
	b.h.used = end
}

// Append adds vals after the view, reserving term headroom slots.
func (b *Buf[T]) Append(vals []T, term int) {
	if len(vals) == 0 {
		return
	}
	b.Reserve(len(vals), term)
	start := b.off + b.n
	copy(b.h.data[start:], vals)
	RetainElems(b.h.data[start : start+len(vals)])
	b.endAppend(len(vals))
}

// AppendNew extends the view by count default-valued elements and returns
// the writable slots.
func (b *Buf[T]) AppendNew(count, term int) []T {
	if count <= 0 {
		return nil
	}
	b.Reserve(count, term)
	start := b.off + b.n
	clearRange(b.h.data[start : start+count])
	b.endAppend(count)
	return b.h.data[start : start+count]
}

// Prepend adds vals before the view. A left-sliced unique allocation with
// enough leading gap reuses it; otherwise the view relocates.
func (b *Buf[T]) Prepend(vals []T, term int) {
	if len(vals) == 0 {
		return
	}
	if b.st == stateOwned && b.h.refs == 1 && b.off >= len(vals) {
		b.off -= len(vals)
		copy(b.h.data[b.off:], vals)
		RetainElems(b.h.data[b.off : b.off+len(vals)])
		b.n += len(vals)
		return
	}
	b.relocateWithGap(0, len(vals), term)
	copy(b.h.data[b.off:], vals)
	RetainElems(b.h.data[b.off : b.off+len(vals)])
}

// relocateWithGap moves the view into storage with count writable slots
// opened at view position i. The gap slots are zeroed.
func (b *Buf[T]) relocateWithGap(i, count, term int) {
	view := b.View()
	need := len(view) + count + term
	capNeed := need
	if b.st == stateOwned {
		capNeed = grownCap(len(b.h.data), need)
	}
	// When the source storage survives the relocation, the copies below
	// are duplicates and need their inner counts bumped.
	live := b.st == stateBorrowed || (b.st == stateOwned && b.h.refs > 1)
	h := &hdr[T]{refs: 1, used: len(view) + count, data: make([]T, capNeed)}
	copy(h.data, view[:i])
	copy(h.data[i+count:], view[i:])
	if live {
		RetainElems(h.data[:i])
		RetainElems(h.data[i+count : len(view)+count])
	}
	b.release()
	b.h = h
	b.ext = nil
	b.off, b.n = 0, len(view)+count
	b.st = stateOwned
}

// InsertGap opens count writable zeroed slots at view position i and
// returns them. Position 0 and Len() reduce to prepend/append.
func (b *Buf[T]) InsertGap(i, count, term int) []T {
	size := b.Len()
	if i < 0 {
		i = 0
	}
	if i > size {
		i = size
	}
	if count <= 0 {
		return nil
	}
	switch i {
	case size:
		return b.AppendNew(count, term)
	case 0:
		if b.st == stateOwned && b.h.refs == 1 && b.off >= count {
			b.off -= count
			b.n += count
			gap := b.h.data[b.off : b.off+count]
			clearRange(gap)
			return gap
		}
		b.relocateWithGap(0, count, term)
		return b.h.data[b.off : b.off+count]
	}
	if b.st != stateOwned || b.h.refs > 1 {
		b.relocateWithGap(i, count, term)
		return b.h.data[b.off+i : b.off+i+count]
	}
	h := b.h
	if b.off >= count && i <= b.n-i {
		// Shift the shorter head into the leading gap.
		copy(h.data[b.off-count:], h.data[b.off:b.off+i])
		b.off -= count
		b.n += count
		gap := h.data[b.off+i : b.off+i+count]
		clearRange(gap)
		return gap
	}
	if b.off+b.n+count+term > len(h.data) {
		if b.n+count+term <= len(h.data) {
			b.Unslice()
		} else {
			b.relocateWithGap(i, count, term)
			return b.h.data[b.off+i : b.off+i+count]
		}
		h = b.h
	}
	// Shift the tail right.
	copy(h.data[b.off+i+count:], h.data[b.off+i:b.off+b.n])
	b.n += count
	end := b.off + b.n
	if h.used > end {
		clearRange(h.data[end:h.used])
	}
	h.used = end
	gap := h.data[b.off+i : b.off+i+count]
	clearRange(gap)
	return gap
}

// Remove deletes count elements at view position i, preserving the order
// of the rest. Removal at either edge is pure slicing; interior removal
// detaches and shifts the shorter side.
func (b *Buf[T]) Remove(i, count int) {
	size := b.Len()
	if i < 0 {
		i = 0
	}
	if i >= size || count <= 0 {
		return
	}
	if count > size-i {
		count = size - i
	}
	switch {
	case i == 0:
		b.TrimLeft(count)
		return
	case i+count == size:
		b.TrimRight(count)
		return
	}
	b.Detach(0)
	h := b.h
	if i < size-i-count {
		// Head is shorter: shift it right over the gap.
		copy(h.data[b.off+count:], h.data[b.off:b.off+i])
		clearRange(h.data[b.off : b.off+count])
		b.off += count
	} else {
		copy(h.data[b.off+i:], h.data[b.off+i+count:b.off+b.n])
		clearRange(h.data[b.off+b.n-count : b.off+b.n])
		if h.used == b.off+b.n {
			h.used -= count
		}
	}
	b.n -= count
}

// Resize forces the view length to exactly newLen, appending
// default-valued elements or trimming the tail.
func (b *Buf[T]) Resize(newLen, term int) {
	size := b.Len()
	switch {
	case newLen < 0 || newLen == size:
	case newLen < size:
		b.Truncate(newLen)
	default:
		b.AppendNew(newLen-size, term)
	}
}

// Pop slices the last element off the view and returns it.
func (b *Buf[T]) Pop() (T, bool) {
	var zero T
	size := b.Len()
	if size == 0 {
		return zero, false
	}
	v := b.At(size - 1)
	b.TrimRight(1)
	return v, true
}

// PopFront slices the first element off the view and returns it.
func (b *Buf[T]) PopFront() (T, bool) {
	var zero T
	if b.Len() == 0 {
		return zero, false
	}
	v := b.At(0)
	b.TrimLeft(1)
	return v, true
}

// MutView returns the view as writable storage, detaching shared or
// borrowed backing first. Nil for null and empty views.
func (b *Buf[T]) MutView() []T {
	b.Detach(0)
	if b.st != stateOwned {
		return nil
	}
	return b.h.data[b.off : b.off+b.n]
}

// SetAt overwrites the element at view index i under detach-before-write.
func (b *Buf[T]) SetAt(i int, v T) {
	b.Detach(0)
	b.h.data[b.off+i] = v
	RetainElems(b.h.data[b.off+i : b.off+i+1])
}

// Reverse reverses the view in place.
func (b *Buf[T]) Reverse() {
	v := b.MutView()
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}

// Fill overwrites count elements starting at view position i with v,
// growing the view when i+count reaches past its end.
func (b *Buf[T]) Fill(i, count int, v T, term int) {
	if i < 0 || count <= 0 {
		return
	}
	if i+count > b.Len() {
		b.Resize(i+count, term)
	}
	mv := b.MutView()
	for k := i; k < i+count; k++ {
		mv[k] = v
	}
	RetainElems(mv[i : i+count])
}

// CapForce sets the capacity to exactly capacity slots, truncating the
// view when needed. Zero releases the allocation entirely.
func (b *Buf[T]) CapForce(capacity int) {
	if capacity <= 0 {
		wasNull := b.st == stateNull
		b.release()
		b.ext = nil
		b.off, b.n = 0, 0
		if wasNull {
			b.st = stateNull
		} else {
			b.st = stateEmpty
		}
		return
	}
	b.Truncate(capacity)
	if b.Cap() == capacity && b.st == stateOwned && b.h.refs == 1 {
		return
	}
	b.Detach(0)
	b.materialize(capacity, 0)
}

// Compact trims excess capacity beyond the view plus a conservation
// reserve (terminator headroom for byte storage). Shared and borrowed
// views are left alone.
func (b *Buf[T]) Compact(conserve int) {
	if b.st != stateOwned || b.h.refs > 1 {
		return
	}
	if len(b.h.data)-b.n > conserve {
		b.materializeShared(b.n+conserve, 0)
	}
}

// Headroom reports the free slots past the view end in a unique owned
// allocation, zero otherwise. Byte storage uses it to decide whether a
// terminator can be written without relocation.
func (b *Buf[T]) Headroom() int {
	if b.st != stateOwned || b.h.refs > 1 {
		return 0
	}
	return len(b.h.data) - (b.off + b.n)
}

// TermSlot returns writable storage for one slot just past the view end.
// The caller must have established headroom via Reserve or Detach.
func (b *Buf[T]) TermSlot() *T {
	return &b.h.data[b.off+b.n]
}
