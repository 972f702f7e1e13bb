package bstr

import (
	"bytes"

	"github.com/dshills/keel/internal/buf"
)

// termHeadroom is the extra slot every owned byte allocation reserves so
// a NUL terminator can be written without relocating.
const termHeadroom = 1

// Str is a byte string over copy-on-write storage. The zero value is a
// null string, ready to use.
type Str struct {
	b    buf.Buf[byte]
	term bool
}

// New returns an empty (non-null) string.
func New() Str {
	var s Str
	s.b.SetEmpty()
	return s
}

// FromString returns a Str holding a copy of s.
func FromString(s string) Str {
	var r Str
	r.SetString(s)
	return r
}

// FromBytes returns a Str holding a copy of data.
func FromBytes(data []byte) Str {
	var r Str
	r.Set(data)
	return r
}

// Borrow returns a Str viewing caller-owned bytes without copying. The
// caller guarantees data outlives all use; the string copies it on the
// first mutation.
func Borrow(data []byte) Str {
	var r Str
	r.b.SetBorrowed(data)
	return r
}

// Queries.

// Len returns the byte count of the view. A written terminator is not
// counted.
func (s *Str) Len() int { return s.b.Len() }

// IsNull reports whether the string has no view.
func (s *Str) IsNull() bool { return s.b.IsNull() }

// IsEmpty reports whether the view has no bytes. Null is also empty.
func (s *Str) IsEmpty() bool { return s.b.Len() == 0 }

// Cap returns the capacity of the backing storage.
func (s *Str) Cap() int { return s.b.Cap() }

// Shared reports whether the storage is shared with another container.
func (s *Str) Shared() bool { return s.b.Shared() }

// Terminated reports whether the view is known to be followed by a NUL
// byte in its backing storage.
func (s *Str) Terminated() bool { return s.term }

// Bytes returns the view for reading. Nil when null. Invalidated by any
// mutator.
func (s *Str) Bytes() []byte { return s.b.View() }

// String returns a copy of the view as a Go string.
func (s *Str) String() string { return string(s.b.View()) }

// At returns the byte at index i; out of range panics.
func (s *Str) At(i int) byte { return s.b.At(i) }

// dirty records that the view or its backing may have changed, dropping
// the terminator guarantee.
func (s *Str) dirty() { s.term = false }

// Lifecycle.

// SetNull drops the view; the string becomes null.
func (s *Str) SetNull() { s.dirty(); s.b.SetNull() }

// Clear empties the string, keeping it non-null and retaining a uniquely
// held allocation for reuse.
func (s *Str) Clear() { s.dirty(); s.b.Clear() }

// Copy makes s share src's storage; the first mutation of either
// detaches.
func (s *Str) Copy(src *Str) {
	s.b.CopyFrom(&src.b)
	s.term = src.term
}

// Retain adds a holder to the backing allocation. Outer containers call
// it when they duplicate a string-typed element out of storage that
// stays live, so both copies register as holders.
func (s *Str) Retain() { s.b.Retain() }

// Set replaces the content with a copy of data.
func (s *Str) Set(data []byte) { s.dirty(); s.b.SetCopy(data, termHeadroom) }

// SetString replaces the content with a copy of str.
func (s *Str) SetString(str string) {
	s.dirty()
	s.b.Clear()
	if str == "" {
		return
	}
	copy(s.b.InsertGap(0, len(str), termHeadroom), str)
}

// Slicing.

// Slice narrows the view to count bytes starting at i; negative count
// keeps the rest. Bounds are clamped.
func (s *Str) Slice(i, count int) { s.dirty(); s.b.Slice(i, count) }

// Slice2 narrows the view to the half-open byte range [i, j).
func (s *Str) Slice2(i, j int) {
	if j < i {
		j = i
	}
	s.Slice(i, j-i)
}

// TrimLeft drops count bytes from the front of the view.
func (s *Str) TrimLeft(count int) { s.b.TrimLeft(count) }

// TrimRight drops count bytes from the end of the view.
func (s *Str) TrimRight(count int) { s.dirty(); s.b.TrimRight(count) }

// Truncate limits the view to at most count bytes.
func (s *Str) Truncate(count int) {
	if count < s.Len() {
		s.dirty()
	}
	s.b.Truncate(count)
}

// TrimSpace narrows the view past ASCII whitespace at both ends.
func (s *Str) TrimSpace() {
	v := s.b.View()
	i, j := 0, len(v)
	for i < j && isSpace(v[i]) {
		i++
	}
	for j > i && isSpace(v[j-1]) {
		j--
	}
	s.Slice2(i, j)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// Storage management.

// Unslice compacts the view to the start of a uniquely held allocation.
func (s *Str) Unslice() { s.b.Unslice() }

// Unshare detaches from shared storage; no-op otherwise.
func (s *Str) Unshare() {
	if s.b.Shared() {
		s.b.Detach(termHeadroom)
	}
}

// Reserve ensures capacity for additional more bytes plus terminator
// headroom in unique storage.
func (s *Str) Reserve(additional int) { s.dirty(); s.b.Reserve(additional, termHeadroom) }

// Resize forces the length to exactly n, zero-filling growth.
func (s *Str) Resize(n int) { s.dirty(); s.b.Resize(n, termHeadroom) }

// SetCap forces the capacity to exactly n; zero releases the allocation.
func (s *Str) SetCap(n int) { s.dirty(); s.b.CapForce(n) }

// Compact trims capacity down to the view plus one terminator slot.
func (s *Str) Compact() { s.dirty(); s.b.Compact(termHeadroom) }

// CStr returns the view with a NUL byte guaranteed to follow it in the
// backing storage. Shared or borrowed storage is detached first, so the
// caller's terminator cannot leak into another holder's bytes. The NUL
// is not part of the view and Len is unchanged.
func (s *Str) CStr() []byte {
	if s.b.Len() == 0 {
		return zeroTerm[:0]
	}
	if s.b.Headroom() < 1 {
		// Covers shared, borrowed, and full-to-capacity storage alike.
		s.b.Reserve(0, termHeadroom)
	}
	*s.b.TermSlot() = 0
	s.term = true
	return s.b.View()
}

// zeroTerm backs the terminated view handed out for null and empty
// strings.
var zeroTerm [1]byte

// Mutators.

// Add appends data.
func (s *Str) Add(data []byte) { s.dirty(); s.b.Append(data, termHeadroom) }

// AddString appends str.
func (s *Str) AddString(str string) {
	if str == "" {
		return
	}
	s.dirty()
	copy(s.b.InsertGap(s.b.Len(), len(str), termHeadroom), str)
}

// AddByte appends a single byte.
func (s *Str) AddByte(c byte) {
	s.dirty()
	s.b.Append([]byte{c}, termHeadroom)
}

// AddStr appends another string's content.
func (s *Str) AddStr(o *Str) { s.Add(o.Bytes()) }

// Prepend inserts data at the front.
func (s *Str) Prepend(data []byte) { s.dirty(); s.b.Prepend(data, termHeadroom) }

// PrependString inserts str at the front.
func (s *Str) PrependString(str string) {
	if str == "" {
		return
	}
	s.dirty()
	copy(s.b.InsertGap(0, len(str), termHeadroom), str)
}

// Insert inserts data at byte index i.
func (s *Str) Insert(i int, data []byte) {
	s.dirty()
	copy(s.b.InsertGap(i, len(data), termHeadroom), data)
}

// InsertString inserts str at byte index i.
func (s *Str) InsertString(i int, str string) {
	if str == "" {
		return
	}
	s.dirty()
	copy(s.b.InsertGap(i, len(str), termHeadroom), str)
}

// Remove deletes count bytes starting at i, preserving order.
func (s *Str) Remove(i, count int) { s.dirty(); s.b.Remove(i, count) }

// Replace substitutes count bytes at i with data.
func (s *Str) Replace(i, count int, data []byte) {
	s.dirty()
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
	common := min(count, len(data))
	if common > 0 {
		copy(s.b.MutView()[i:], data[:common])
	}
	switch {
	case len(data) > count:
		copy(s.b.InsertGap(i+common, len(data)-common, termHeadroom), data[common:])
	case count > len(data):
		s.b.Remove(i+common, count-common)
	}
}

// SetAt overwrites the byte at index i.
func (s *Str) SetAt(i int, c byte) { s.dirty(); s.b.SetAt(i, c) }

// Fill overwrites count bytes from i with c, growing as needed.
func (s *Str) Fill(i, count int, c byte) { s.dirty(); s.b.Fill(i, count, c, termHeadroom) }

// Reverse reverses the bytes in place.
func (s *Str) Reverse() { s.dirty(); s.b.Reverse() }

// Pop slices off and returns the last byte.
func (s *Str) Pop() (byte, bool) { s.dirty(); return s.b.Pop() }

// PopFront slices off and returns the first byte.
func (s *Str) PopFront() (byte, bool) { return s.b.PopFront() }

// ToUpper folds ASCII letters to upper case in place.
func (s *Str) ToUpper() {
	s.dirty()
	v := s.b.MutView()
	for i, c := range v {
		if c >= 'a' && c <= 'z' {
			v[i] = c - ('a' - 'A')
		}
	}
}

// ToLower folds ASCII letters to lower case in place.
func (s *Str) ToLower() {
	s.dirty()
	v := s.b.MutView()
	for i, c := range v {
		if c >= 'A' && c <= 'Z' {
			v[i] = c + ('a' - 'A')
		}
	}
}

// Comparison and search.

// Equal reports byte-wise equality with o. Null equals only null.
func (s *Str) Equal(o *Str) bool {
	if s.IsNull() != o.IsNull() {
		return false
	}
	return bytes.Equal(s.Bytes(), o.Bytes())
}

// EqualString reports byte-wise equality with str.
func (s *Str) EqualString(str string) bool {
	v := s.Bytes()
	return len(v) == len(str) && string(v) == str
}

// Compare orders s against o lexicographically; null orders first.
func (s *Str) Compare(o *Str) int {
	if s.IsNull() || o.IsNull() {
		switch {
		case s.IsNull() && o.IsNull():
			return 0
		case s.IsNull():
			return -1
		default:
			return 1
		}
	}
	return bytes.Compare(s.Bytes(), o.Bytes())
}

// CompareBytes orders the view against data.
func (s *Str) CompareBytes(data []byte) int { return bytes.Compare(s.Bytes(), data) }

// StartsWith reports whether the view begins with prefix.
func (s *Str) StartsWith(prefix []byte) bool { return bytes.HasPrefix(s.Bytes(), prefix) }

// StartsWithString reports whether the view begins with prefix.
func (s *Str) StartsWithString(prefix string) bool {
	v := s.Bytes()
	return len(v) >= len(prefix) && string(v[:len(prefix)]) == prefix
}

// EndsWith reports whether the view ends with suffix.
func (s *Str) EndsWith(suffix []byte) bool { return bytes.HasSuffix(s.Bytes(), suffix) }

// EndsWithString reports whether the view ends with suffix.
func (s *Str) EndsWithString(suffix string) bool {
	v := s.Bytes()
	return len(v) >= len(suffix) && string(v[len(v)-len(suffix):]) == suffix
}

// Find returns the index of the first c at or after start, or -1. A
// start at or past the length finds nothing.
func (s *Str) Find(c byte, start int) int {
	v := s.Bytes()
	if start < 0 {
		start = 0
	}
	if start >= len(v) {
		return -1
	}
	if i := bytes.IndexByte(v[start:], c); i >= 0 {
		return start + i
	}
	return -1
}

// FindReverse returns the index of the last c in [start, end), or -1.
// Negative end means the view length.
func (s *Str) FindReverse(c byte, start, end int) int {
	v := s.Bytes()
	if end < 0 || end > len(v) {
		end = len(v)
	}
	if start < 0 {
		start = 0
	}
	if start >= end {
		return -1
	}
	if i := bytes.LastIndexByte(v[start:end], c); i >= 0 {
		return start + i
	}
	return -1
}

// FindAny returns the index of the first byte in set at or after start,
// or -1.
func (s *Str) FindAny(set []byte, start int) int {
	v := s.Bytes()
	if start < 0 {
		start = 0
	}
	if start >= len(v) {
		return -1
	}
	if i := bytes.IndexAny(v[start:], string(set)); i >= 0 {
		return start + i
	}
	return -1
}

// Contains reports whether c occurs in the view.
func (s *Str) Contains(c byte) bool { return s.Find(c, 0) >= 0 }

// Index returns the index of the first occurrence of sub, or -1.
func (s *Str) Index(sub []byte) int { return bytes.Index(s.Bytes(), sub) }

// SplitNext slices the next delim-separated token off the front of s and
// returns it sharing s's storage. When no delimiter remains the whole
// view is the token and s becomes empty. Returns false once s is empty
// or null.
func (s *Str) SplitNext(delim byte) (Str, bool) {
	if s.Len() == 0 {
		return Str{}, false
	}
	var tok Str
	i := s.Find(delim, 0)
	if i < 0 {
		tok.Copy(s)
		s.Clear()
		return tok, true
	}
	s.b.SplitAt(i, &tok.b, nil)
	s.TrimLeft(i + 1)
	return tok, true
}

// SplitAt fills left with the first i bytes and right with the rest,
// both sharing s's storage until mutated.
func (s *Str) SplitAt(i int, left, right *Str) {
	var lb, rb *buf.Buf[byte]
	if left != nil {
		left.dirty()
		lb = &left.b
	}
	if right != nil {
		right.dirty()
		rb = &right.b
	}
	s.b.SplitAt(i, lb, rb)
}
