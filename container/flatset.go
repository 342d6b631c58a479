package container

import "cmp"

// FlatSet is a sorted set of unique values stored in a contiguous Array.
// Create it with NewFlatSet or NewFlatSetFunc; the zero value has no
// comparer and must not be used.
//
// The set shares the Array's poison protocol.
type FlatSet[V any] struct {
	values  Array[V]
	compare Comparer[V]
}

// NewFlatSet creates an empty set ordered by the natural comparison of
// its values.
func NewFlatSet[V cmp.Ordered]() *FlatSet[V] {
	return NewFlatSetFunc(Compare[V])
}

// NewFlatSetFunc creates an empty set ordered by compare. The comparer
// defines identity: values comparing equal are the same member.
func NewFlatSetFunc[V any](compare Comparer[V]) *FlatSet[V] {
	return &FlatSet[V]{compare: compare}
}

// NewFlatSetAlloc creates an empty set ordered by compare whose backing
// array allocates through alloc.
func NewFlatSetAlloc[V any](compare Comparer[V], alloc Allocator[V]) *FlatSet[V] {
	return &FlatSet[V]{values: Array[V]{alloc: alloc}, compare: compare}
}

// Data returns the members in sorted order. The view is invalidated by
// any mutation of the set.
func (s *FlatSet[V]) Data() []V {
	return s.values.Data()
}

// Valid reports whether the set is not poisoned.
func (s *FlatSet[V]) Valid() bool {
	return s.values.Valid()
}

// Pollute sets the sticky error flag.
func (s *FlatSet[V]) Pollute() *FlatSet[V] {
	s.values.Pollute()
	return s
}

// Unpollute acknowledges and clears the error flag.
func (s *FlatSet[V]) Unpollute() *FlatSet[V] {
	s.values.Unpollute()
	return s
}

// Empty reports whether the set holds no members.
func (s *FlatSet[V]) Empty() bool {
	return s.values.Empty()
}

// Length returns the number of members.
func (s *FlatSet[V]) Length() int {
	return s.values.Length()
}

// Capacity returns the member count the set can hold before reallocating.
func (s *FlatSet[V]) Capacity() int {
	return s.values.Capacity()
}

// SetCapacity grows the capacity to hold at least n members.
func (s *FlatSet[V]) SetCapacity(n int) bool {
	return s.values.SetCapacity(n)
}

// Clear removes all members and resets the poison flag, keeping the
// storage.
func (s *FlatSet[V]) Clear() {
	s.values.Clear()
}

// Shrink reallocates so that capacity matches the member count.
func (s *FlatSet[V]) Shrink() bool {
	return s.values.Shrink()
}

// Purge removes all members, releases the storage and resets the poison
// flag.
func (s *FlatSet[V]) Purge() {
	s.values.Purge()
}

// Exists reports whether value is a member.
func (s *FlatSet[V]) Exists(value V) bool {
	_, found := s.search(value)
	return found
}

// Find locates value. The returned location is invalid when value is not
// a member.
func (s *FlatSet[V]) Find(value V) Location {
	if index, found := s.search(value); found {
		return LocationAt(index)
	}
	return Location{}
}

// FindBy locates the member for which compare reports zero. compare
// receives a stored member and reports negative when the target sorts
// after it, positive when before. It must be consistent with the set's
// ordering.
func (s *FlatSet[V]) FindBy(compare func(candidate V) int) Location {
	if index := s.values.BinarySearchFunc(0, s.values.Length()-1, compare); index != NotFound {
		return LocationAt(index)
	}
	return Location{}
}

// FindInsert locates value, reporting whether it is a member. When absent,
// the returned location is the insertion point that keeps the set sorted
// and may be passed to Insert.
func (s *FlatSet[V]) FindInsert(value V) (Location, bool) {
	index, found := s.search(value)
	return LocationAt(index), found
}

// Insert places a value at a location previously obtained from FindInsert
// for the same value with no intervening mutation. Returns false when the
// location is invalid or the backing array cannot grow.
func (s *FlatSet[V]) Insert(at Location, value V) bool {
	if !at.Valid() || at.Index() > s.values.Length() {
		return false
	}
	return s.values.Insert(at.Index(), value)
}

// Add makes value a member and returns its location. An existing member
// is left as stored. On allocation failure the set is poisoned and the
// location is invalid.
func (s *FlatSet[V]) Add(value V) Location {
	index, found := s.search(value)
	if found {
		return LocationAt(index)
	}
	if !s.values.Insert(index, value) {
		s.Pollute()
		return Location{}
	}
	return LocationAt(index)
}

// AddP makes value a member, poisoning the set on failure. Returns the
// set for chaining.
func (s *FlatSet[V]) AddP(value V) *FlatSet[V] {
	s.Add(value)
	return s
}

// Update makes value a member, overwriting an existing equal member with
// the new representation. Returns false on allocation failure.
func (s *FlatSet[V]) Update(value V) bool {
	index, found := s.search(value)
	if found {
		s.values.data[index] = value
		return true
	}
	return s.values.Insert(index, value)
}

// At returns a pointer to the member at a valid location, or nil
// otherwise. Mutating the member in a way that changes its ordering
// breaks the set.
func (s *FlatSet[V]) At(at Location) *V {
	if !at.Valid() || at.Index() >= s.values.Length() {
		return nil
	}
	return &s.values.data[at.Index()]
}

// Erase removes value. Returns false when value is not a member.
func (s *FlatSet[V]) Erase(value V) bool {
	index, found := s.search(value)
	return found && s.values.Erase(index)
}

// EraseAt removes the member at a location. Returns false when the
// location is invalid or out of range.
func (s *FlatSet[V]) EraseAt(at Location) bool {
	return at.Valid() && s.values.Erase(at.Index())
}

func (s *FlatSet[V]) search(value V) (int, bool) {
	left, right := 0, s.values.Length()-1
	for left <= right {
		middle := left + (right-left)/2
		switch res := s.compare(s.values.data[middle], value); {
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
