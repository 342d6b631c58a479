package container

import "cmp"

// NotFound denotes an invalid or nonexistent index.
const NotFound = -1

// Comparer performs a three-way comparison: negative when left orders
// before right, zero when they are equivalent, positive otherwise.
type Comparer[E any] func(left, right E) int

// Compare is the default comparer for ordered element types.
func Compare[E cmp.Ordered](left, right E) int {
	return cmp.Compare(left, right)
}

// Pair is a key/value record with full value semantics; it is the storage
// unit of FlatMap.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// PairEqual reports whether both key and value match.
func PairEqual[K, V comparable](a, b Pair[K, V]) bool {
	return a.Key == b.Key && a.Value == b.Value
}

// ComparePair orders pairs lexicographically: by key, then by value.
func ComparePair[K, V cmp.Ordered](a, b Pair[K, V]) int {
	if c := cmp.Compare(a.Key, b.Key); c != 0 {
		return c
	}
	return cmp.Compare(a.Value, b.Value)
}

// Location is an opaque index handle returned by a container search. It is
// valid only until the next structural mutation of its source container.
// The zero value is invalid.
type Location struct {
	// One plus the referenced index; zero marks an invalid location.
	pos int
}

// LocationAt constructs a location referencing the given index. Negative
// indices produce an invalid location.
func LocationAt(index int) Location {
	if index < 0 {
		return Location{}
	}
	return Location{pos: index + 1}
}

// Valid reports whether the location references an element.
func (l Location) Valid() bool {
	return l.pos > 0
}

// Index returns the referenced index, or NotFound for an invalid location.
func (l Location) Index() int {
	return l.pos - 1
}
