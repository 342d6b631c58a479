package container

import "cmp"

// FlatMap is a sorted associative container storing key/value pairs in a
// contiguous Array. Lookups are binary searches; insertion keeps the pairs
// ordered by the stored comparer. Create it with NewFlatMap or
// NewFlatMapFunc; the zero value has no comparer and must not be used.
//
// The map shares the Array's poison protocol: a failed Add poisons the
// map, and Clear or Purge reset the flag.
type FlatMap[K, V any] struct {
	pairs   Array[Pair[K, V]]
	compare Comparer[K]
}

// NewFlatMap creates an empty map ordered by the natural comparison of
// its keys.
func NewFlatMap[K cmp.Ordered, V any]() *FlatMap[K, V] {
	return NewFlatMapFunc[K, V](Compare[K])
}

// NewFlatMapFunc creates an empty map ordered by compare.
func NewFlatMapFunc[K, V any](compare Comparer[K]) *FlatMap[K, V] {
	return &FlatMap[K, V]{compare: compare}
}

// NewFlatMapAlloc creates an empty map ordered by compare whose backing
// array allocates through alloc.
func NewFlatMapAlloc[K, V any](compare Comparer[K], alloc Allocator[Pair[K, V]]) *FlatMap[K, V] {
	return &FlatMap[K, V]{pairs: Array[Pair[K, V]]{alloc: alloc}, compare: compare}
}

// Data returns the pairs in key order. The view is invalidated by any
// mutation of the map.
func (m *FlatMap[K, V]) Data() []Pair[K, V] {
	return m.pairs.Data()
}

// Valid reports whether the map is not poisoned.
func (m *FlatMap[K, V]) Valid() bool {
	return m.pairs.Valid()
}

// Pollute sets the sticky error flag.
func (m *FlatMap[K, V]) Pollute() *FlatMap[K, V] {
	m.pairs.Pollute()
	return m
}

// Unpollute acknowledges and clears the error flag.
func (m *FlatMap[K, V]) Unpollute() *FlatMap[K, V] {
	m.pairs.Unpollute()
	return m
}

// Empty reports whether the map holds no pairs.
func (m *FlatMap[K, V]) Empty() bool {
	return m.pairs.Empty()
}

// Length returns the number of stored pairs.
func (m *FlatMap[K, V]) Length() int {
	return m.pairs.Length()
}

// Capacity returns the pair count the map can hold before reallocating.
func (m *FlatMap[K, V]) Capacity() int {
	return m.pairs.Capacity()
}

// SetCapacity grows the capacity to hold at least n pairs.
func (m *FlatMap[K, V]) SetCapacity(n int) bool {
	return m.pairs.SetCapacity(n)
}

// Clear removes all pairs and resets the poison flag, keeping the storage.
func (m *FlatMap[K, V]) Clear() {
	m.pairs.Clear()
}

// Shrink reallocates so that capacity matches the stored pair count.
func (m *FlatMap[K, V]) Shrink() bool {
	return m.pairs.Shrink()
}

// Purge removes all pairs, releases the storage and resets the poison
// flag.
func (m *FlatMap[K, V]) Purge() {
	m.pairs.Purge()
}

// Exists reports whether key is present.
func (m *FlatMap[K, V]) Exists(key K) bool {
	_, found := m.search(key)
	return found
}

// Find locates key. The returned location is invalid when key is absent.
func (m *FlatMap[K, V]) Find(key K) Location {
	if index, found := m.search(key); found {
		return LocationAt(index)
	}
	return Location{}
}

// FindInsert locates key, reporting whether it exists. When absent, the
// returned location is the insertion point that keeps the map sorted and
// may be passed to Insert.
func (m *FlatMap[K, V]) FindInsert(key K) (Location, bool) {
	index, found := m.search(key)
	return LocationAt(index), found
}

// Insert places a pair at a location previously obtained from FindInsert
// for the same key with no intervening mutation. Returns false when the
// location is invalid or the backing array cannot grow.
func (m *FlatMap[K, V]) Insert(at Location, key K, value V) bool {
	if !at.Valid() || at.Index() > m.pairs.Length() {
		return false
	}
	return m.pairs.Insert(at.Index(), Pair[K, V]{Key: key, Value: value})
}

// Add sets key to value, overwriting any existing pair, and returns the
// pair's location. On allocation failure the map is poisoned and the
// location is invalid.
func (m *FlatMap[K, V]) Add(key K, value V) Location {
	index, found := m.search(key)
	if found {
		m.pairs.data[index].Value = value
		return LocationAt(index)
	}
	if !m.pairs.Insert(index, Pair[K, V]{Key: key, Value: value}) {
		m.Pollute()
		return Location{}
	}
	return LocationAt(index)
}

// AddP sets key to value, poisoning the map on failure. Returns the map
// for chaining.
func (m *FlatMap[K, V]) AddP(key K, value V) *FlatMap[K, V] {
	m.Add(key, value)
	return m
}

// Value returns a pointer to the value stored under key, or nil when key
// is absent. The pointer is invalidated by any mutation of the map.
func (m *FlatMap[K, V]) Value(key K) *V {
	if index, found := m.search(key); found {
		return &m.pairs.data[index].Value
	}
	return nil
}

// At returns a pointer to the pair at a valid location, or nil otherwise.
// Mutating the pair's key breaks the map's ordering.
func (m *FlatMap[K, V]) At(at Location) *Pair[K, V] {
	if !at.Valid() || at.Index() >= m.pairs.Length() {
		return nil
	}
	return &m.pairs.data[at.Index()]
}

// Erase removes key. Returns false when key is absent.
func (m *FlatMap[K, V]) Erase(key K) bool {
	index, found := m.search(key)
	return found && m.pairs.Erase(index)
}

// EraseAt removes the pair at a location. Returns false when the location
// is invalid or out of range.
func (m *FlatMap[K, V]) EraseAt(at Location) bool {
	return at.Valid() && m.pairs.Erase(at.Index())
}

// search binary-searches for key and returns its index when found, or the
// insertion point that keeps the pairs sorted when not.
func (m *FlatMap[K, V]) search(key K) (int, bool) {
	left, right := 0, m.pairs.Length()-1
	for left <= right {
		middle := left + (right-left)/2
		switch res := m.compare(m.pairs.data[middle].Key, key); {
		case res < 0:
			left = middle + 1
		case res > 0:
			right = middle - 1
		default:
			return middle, true
		}
	}
	return left, false
}
