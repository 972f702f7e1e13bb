package seq

import "cmp"

// Equal reports element-wise equality of the two views. A null sequence
// equals only another null sequence; null and empty differ.
func Equal[T comparable](a, b *Seq[T]) bool {
	if a.IsNull() != b.IsNull() {
		return false
	}
	av, bv := a.Items(), b.Items()
	if len(av) != len(bv) {
		return false
	}
	for i := range av {
		if av[i] != bv[i] {
			return false
		}
	}
	return true
}

// Compare orders two sequences lexicographically, with shorter prefixes
// first. Null orders before empty.
func Compare[T cmp.Ordered](a, b *Seq[T]) int {
	if a.IsNull() || b.IsNull() {
		switch {
		case a.IsNull() && b.IsNull():
			return 0
		case a.IsNull():
			return -1
		default:
			return 1
		}
	}
	av, bv := a.Items(), b.Items()
	n := min(len(av), len(bv))
	for i := 0; i < n; i++ {
		if c := cmp.Compare(av[i], bv[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(av), len(bv))
}

// Find returns the index of the first occurrence of v at or after start,
// or -1. A start at or past the length finds nothing.
func Find[T comparable](s *Seq[T], v T, start int) int {
	items := s.Items()
	if start < 0 {
		start = 0
	}
	for i := start; i < len(items); i++ {
		if items[i] == v {
			return i
		}
	}
	return -1
}

// FindReverse returns the index of the last occurrence of v in the
// half-open range [start, end), scanning from end-1 down, or -1. A
// negative end means the sequence length.
func FindReverse[T comparable](s *Seq[T], v T, start, end int) int {
	items := s.Items()
	if end < 0 || end > len(items) {
		end = len(items)
	}
	if start < 0 {
		start = 0
	}
	for i := end - 1; i >= start; i-- {
		if items[i] == v {
			return i
		}
	}
	return -1
}

// FindAny returns the index of the first element at or after start that
// occurs in set, or -1.
func FindAny[T comparable](s *Seq[T], set []T, start int) int {
	items := s.Items()
	if start < 0 {
		start = 0
	}
	for i := start; i < len(items); i++ {
		for _, w := range set {
			if items[i] == w {
				return i
			}
		}
	}
	return -1
}

// FindAnyReverse returns the index of the last element in [start, end)
// that occurs in set, or -1. A negative end means the sequence length.
func FindAnyReverse[T comparable](s *Seq[T], set []T, start, end int) int {
	items := s.Items()
	if end < 0 || end > len(items) {
		end = len(items)
	}
	if start < 0 {
		start = 0
	}
	for i := end - 1; i >= start; i-- {
		for _, w := range set {
			if items[i] == w {
				return i
			}
		}
	}
	return -1
}

// Contains reports whether v occurs in the sequence.
func Contains[T comparable](s *Seq[T], v T) bool {
	return Find(s, v, 0) >= 0
}

// StartsWith reports whether the sequence begins with prefix.
func StartsWith[T comparable](s *Seq[T], prefix []T) bool {
	items := s.Items()
	if len(prefix) > len(items) {
		return false
	}
	for i := range prefix {
		if items[i] != prefix[i] {
			return false
		}
	}
	return true
}

// EndsWith reports whether the sequence ends with suffix.
func EndsWith[T comparable](s *Seq[T], suffix []T) bool {
	items := s.Items()
	if len(suffix) > len(items) {
		return false
	}
	off := len(items) - len(suffix)
	for i := range suffix {
		if items[off+i] != suffix[i] {
			return false
		}
	}
	return true
}
