// Package omap provides Map, an ordered associative map stored as a
// sorted sequence of key/value pairs. Lookups binary-search the pairs
// (O(log n)); inserts shift the tail to keep order (O(n)). Iteration
// visits pairs in comparator order.
//
// The backing sequence shares storage on Copy exactly like seq.Seq, so
// copying a Map is cheap and the first mutation through either copy
// detaches. Like all containers in this library, a Map must be copied
// with Copy, never by plain assignment.
package omap

import (
	"cmp"

	"github.com/dshills/keel/seq"
)

// Pair is one key/value entry.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// retainer matches container types whose duplicates must register as
// holders of their backing storage.
type retainer interface{ Retain() }

func retain[T any](p *T) {
	if r, ok := any(p).(retainer); ok {
		r.Retain()
	}
}

// Retain bumps the inner reference counts of a duplicated pair's key and
// value, for key and value types that carry refcounted storage.
func (p *Pair[K, V]) Retain() {
	retain(&p.Key)
	retain(&p.Value)
}

// Map is an ordered map of K to V. Create one with New or NewFunc.
type Map[K, V any] struct {
	pairs seq.Seq[Pair[K, V]]
	cmp   func(a, b K) int
}

// New returns a Map ordered by the natural ordering of K.
func New[K cmp.Ordered, V any]() Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc returns a Map ordered by compare, which must return a negative,
// zero, or positive value for a<b, a==b, a>b.
func NewFunc[K, V any](compare func(a, b K) int) Map[K, V] {
	return Map[K, V]{pairs: seq.New[Pair[K, V]](), cmp: compare}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.pairs.Len() }

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.pairs.Len() == 0 }

// Cap returns the capacity of the backing sequence.
func (m *Map[K, V]) Cap() int { return m.pairs.Cap() }

// Shared reports whether the backing sequence is shared with a copy.
func (m *Map[K, V]) Shared() bool { return m.pairs.Shared() }

// Copy makes m share src's entries; the first mutation of either
// detaches. The comparator is adopted from src.
func (m *Map[K, V]) Copy(src *Map[K, V]) {
	m.pairs.Copy(&src.pairs)
	m.cmp = src.cmp
}

// Clear removes all entries, retaining unique storage for reuse.
func (m *Map[K, V]) Clear() { m.pairs.Clear() }

// Unshare detaches from shared storage; no-op otherwise.
func (m *Map[K, V]) Unshare() { m.pairs.Unshare() }

// Retain adds a holder to the backing pair storage; called when a map
// is duplicated as an element of an outer container.
func (m *Map[K, V]) Retain() { m.pairs.Retain() }

// search returns the index of key or, when absent, the index at which it
// would be inserted.
func (m *Map[K, V]) search(key K) (int, bool) {
	items := m.pairs.Items()
	lo, hi := 0, len(items)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		c := m.cmp(items[mid].Key, key)
		switch {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			return mid, true
		}
	}
	return lo, false
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.search(key)
	return ok
}

// Get returns the value for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if i, ok := m.search(key); ok {
		return m.pairs.At(i).Value, true
	}
	var zero V
	return zero, false
}

// Find returns a pointer to the value for key, or nil. The map detaches
// shared storage first so writes through the pointer stay private. The
// pointer is invalidated by the next mutator.
func (m *Map[K, V]) Find(key K) *V {
	if i, ok := m.search(key); ok {
		return &m.pairs.Ptr(i).Value
	}
	return nil
}

// GetOrInsert returns a pointer to the value for key, inserting a
// zero-valued entry at its ordered position when absent.
func (m *Map[K, V]) GetOrInsert(key K) *V {
	i, ok := m.search(key)
	if !ok {
		m.pairs.Insert(i, Pair[K, V]{Key: key})
	}
	return &m.pairs.Ptr(i).Value
}

// Set stores value under key, inserting or overwriting.
func (m *Map[K, V]) Set(key K, value V) {
	v := m.GetOrInsert(key)
	*v = value
	retain(v)
}

// Remove deletes the entry for key, reporting whether it was present.
func (m *Map[K, V]) Remove(key K) bool {
	i, ok := m.search(key)
	if ok {
		m.pairs.Remove(i, 1)
	}
	return ok
}

// Pairs returns the entries in comparator order for reading. Invalidated
// by any mutator.
func (m *Map[K, V]) Pairs() []Pair[K, V] { return m.pairs.Items() }

// Each calls fn for every entry in comparator order until fn returns
// false.
func (m *Map[K, V]) Each(fn func(key K, value *V) bool) {
	for i := 0; i < m.pairs.Len(); i++ {
		p := m.pairs.Ptr(i)
		if !fn(p.Key, &p.Value) {
			return
		}
	}
}

// At returns the entry at position i in comparator order.
func (m *Map[K, V]) At(i int) Pair[K, V] { return m.pairs.At(i) }

// PairPtr returns a pointer to the entry at position i in comparator
// order, detaching shared storage first. The key's contents must not be
// changed through it; that would break the order.
func (m *Map[K, V]) PairPtr(i int) *Pair[K, V] { return m.pairs.Ptr(i) }

// AddAll merges src's entries into m. Existing keys are overwritten when
// update is set and kept otherwise.
func (m *Map[K, V]) AddAll(src *Map[K, V], update bool) {
	for _, p := range src.Pairs() {
		i, ok := m.search(p.Key)
		switch {
		case !ok:
			m.pairs.Insert(i, p)
		case update:
			v := &m.pairs.Ptr(i).Value
			*v = p.Value
			retain(v)
		}
	}
}
