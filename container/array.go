package container

import (
	"math"

	"github.com/parhelia512/tinytrl/mathx"
)

// maxLength is the largest element count a container may reach.
const maxLength = math.MaxInt

// Array is a dynamic array with exponentially growing capacity. The zero
// value is an empty array using the heap allocator.
//
// Elements [0, Length) are live; storage beyond that is kept zeroed so the
// garbage collector never sees stale references. All mutating operations
// are all-or-nothing: on failure the array is left unchanged.
type Array[E any] struct {
	data     []E // backing storage; len(data) is the capacity
	length   int
	poisoned bool
	alloc    Allocator[E]
}

// NewArray creates an empty array. A nil allocator selects HeapAllocator.
func NewArray[E any](alloc Allocator[E]) *Array[E] {
	return &Array[E]{alloc: alloc}
}

// NewArrayCapacity creates an array with at least the requested capacity.
// On allocation failure the array is empty and poisoned.
func NewArrayCapacity[E any](capacity int, alloc Allocator[E]) *Array[E] {
	a := NewArray[E](alloc)
	if !a.SetCapacity(capacity) {
		a.Pollute()
	}
	return a
}

// NewArrayFill creates an array holding length copies of value. On
// allocation failure the array is empty and poisoned.
func NewArrayFill[E any](length int, value E, alloc Allocator[E]) *Array[E] {
	a := NewArray[E](alloc)
	if !a.Populate(length, value) {
		a.Pollute()
	}
	return a
}

// ArrayOf creates a heap-backed array from a literal element list.
func ArrayOf[E any](elements ...E) *Array[E] {
	a := NewArray[E](nil)
	if len(elements) > 0 {
		data := a.allocator().Alloc(len(elements))
		copy(data, elements)
		a.data, a.length = data, len(elements)
	}
	return a
}

// Clone returns a deep copy sharing the source's allocator. On allocation
// failure the copy is empty and poisoned rather than partial.
func (a *Array[E]) Clone() *Array[E] {
	res := NewArray[E](a.alloc)
	if a.length > 0 {
		data := res.allocator().Alloc(a.length)
		if data == nil {
			return res.Pollute()
		}
		copy(data, a.data[:a.length])
		res.data, res.length = data, a.length
	}
	return res
}

// Assign replaces the array's contents with a copy of source. On
// allocation failure the array is emptied and poisoned.
func (a *Array[E]) Assign(source *Array[E]) *Array[E] {
	if a == source {
		return a
	}
	a.Purge()
	if source.length > 0 {
		data := a.allocator().Alloc(source.length)
		if data == nil {
			return a.Pollute()
		}
		copy(data, source.data[:source.length])
		a.data, a.length = data, source.length
	}
	return a
}

// Data returns the live elements as a contiguous view. The view is
// invalidated by any structural mutation; mutating the array during
// iteration over the view is undefined behavior.
func (a *Array[E]) Data() []E {
	return a.data[:a.length]
}

// At returns the element at index. Out-of-range indices panic.
func (a *Array[E]) At(index int) E {
	return a.data[:a.length][index]
}

// Set overwrites the element at index. Out-of-range indices panic.
func (a *Array[E]) Set(index int, element E) {
	a.data[:a.length][index] = element
}

// First returns the first element. Panics when the array is empty.
func (a *Array[E]) First() E {
	return a.Data()[0]
}

// Last returns the last element. Panics when the array is empty.
func (a *Array[E]) Last() E {
	return a.Data()[a.length-1]
}

// Valid reports whether the array is not poisoned.
func (a *Array[E]) Valid() bool {
	return !a.poisoned
}

// Pollute sets the sticky error flag.
func (a *Array[E]) Pollute() *Array[E] {
	a.poisoned = true
	return a
}

// Unpollute acknowledges and clears the error flag.
func (a *Array[E]) Unpollute() *Array[E] {
	a.poisoned = false
	return a
}

// Empty reports whether the array holds no elements.
func (a *Array[E]) Empty() bool {
	return a.length == 0
}

// Length returns the number of live elements.
func (a *Array[E]) Length() int {
	return a.length
}

// Capacity returns the number of elements the array can hold before
// reallocating.
func (a *Array[E]) Capacity() int {
	return len(a.data)
}

// SetCapacity grows the capacity to hold at least n elements. It never
// shrinks. Returns false and leaves the array unchanged on allocation
// failure.
func (a *Array[E]) SetCapacity(n int) bool {
	if n < 0 {
		n = 0
	}
	if current := len(a.data); current < n {
		return a.reallocate(mathx.GrowCapacity(n, current))
	}
	return true
}

// SetLength resizes the array to n elements, zero-filling any growth and
// truncating otherwise. Returns false on allocation failure.
func (a *Array[E]) SetLength(n int) bool {
	if n < 0 {
		n = 0
	}
	switch current := a.length; {
	case n > current:
		if !a.SetCapacity(n) {
			return false
		}
		clear(a.data[current:n])
	case n < current:
		clear(a.data[n:current])
	}
	a.length = n
	return true
}

// Clear removes all elements and resets the poison flag, keeping the
// allocated storage.
func (a *Array[E]) Clear() {
	clear(a.data[:a.length])
	a.length = 0
	a.poisoned = false
}

// Shrink reallocates so that capacity matches the stored length. Applying
// it twice changes nothing the second time.
func (a *Array[E]) Shrink() bool {
	switch {
	case a.length == len(a.data):
		return true
	case a.length == 0:
		a.allocator().Free(a.data)
		a.data = nil
		return true
	default:
		return a.reallocate(a.length)
	}
}

// Purge removes all elements, releases the storage and resets the poison
// flag.
func (a *Array[E]) Purge() {
	a.allocator().Free(a.data)
	a.data = nil
	a.length = 0
	a.poisoned = false
}

// Populate appends count copies of value. Returns false on overflow or
// allocation failure, leaving the array unchanged.
func (a *Array[E]) Populate(count int, value E) bool {
	if count <= 0 {
		return true
	}
	if a.length > maxLength-count {
		return false
	}
	if !a.SetCapacity(a.length + count) {
		return false
	}
	for i := range count {
		a.data[a.length+i] = value
	}
	a.length += count
	return true
}

// Add appends an element and returns its index, or NotFound on overflow or
// allocation failure.
func (a *Array[E]) Add(element E) int {
	if a.length >= maxLength {
		return NotFound
	}
	if !a.SetCapacity(a.length + 1) {
		return NotFound
	}
	a.data[a.length] = element
	a.length++
	return a.length - 1
}

// Insert places an element at index, clamped into [0, Length], shifting
// the tail right. A regrowth is done with a single allocation and copy.
// Returns false on overflow or allocation failure with no partial shift.
func (a *Array[E]) Insert(index int, element E) bool {
	if a.length >= maxLength {
		return false
	}
	index = mathx.Saturate(index, 0, a.length)

	if a.length < len(a.data) {
		copy(a.data[index+1:a.length+1], a.data[index:a.length])
		a.data[index] = element
	} else {
		next := a.allocator().Alloc(mathx.GrowCapacity(a.length+1, len(a.data)))
		if next == nil {
			return false
		}
		copy(next, a.data[:index])
		next[index] = element
		copy(next[index+1:], a.data[index:a.length])
		a.allocator().Free(a.data)
		a.data = next
	}
	a.length++
	return true
}

// AddP appends an element, poisoning the array on failure. Returns the
// array for chaining.
func (a *Array[E]) AddP(element E) *Array[E] {
	if a.Add(element) == NotFound {
		a.Pollute()
	}
	return a
}

// InsertP inserts an element at index, poisoning the array on failure.
// Returns the array for chaining.
func (a *Array[E]) InsertP(index int, element E) *Array[E] {
	if !a.Insert(index, element) {
		a.Pollute()
	}
	return a
}

// Erase removes the element at index, shifting the tail left. Returns
// false when index is out of range.
func (a *Array[E]) Erase(index int) bool {
	if index < 0 || index >= a.length {
		return false
	}
	copy(a.data[index:], a.data[index+1:a.length])
	clear(a.data[a.length-1 : a.length])
	a.length--
	return true
}

// EraseRange removes count elements starting at start. A negative start
// consumes part of the count. Returns false with no effect when the range
// does not intersect the live elements.
func (a *Array[E]) EraseRange(start, count int) bool {
	if a.length == 0 {
		return false
	}
	if start < 0 {
		count += start
		start = 0
	}
	if start >= a.length || count <= 0 {
		return false
	}
	right := min(start+count, a.length)
	cut := right - start
	copy(a.data[start:], a.data[right:a.length])
	clear(a.data[a.length-cut : a.length])
	a.length -= cut
	return true
}

// Swap exchanges two elements without bounds checking beyond the slice's
// own. Swapping an element with itself is safe.
func (a *Array[E]) Swap(first, second int) {
	a.data[first], a.data[second] = a.data[second], a.data[first]
}

func (a *Array[E]) allocator() Allocator[E] {
	if a.alloc == nil {
		a.alloc = HeapAllocator[E]{}
	}
	return a.alloc
}

// reallocate moves the live elements into fresh storage of the given
// capacity. Returns false and leaves the array unchanged on failure.
func (a *Array[E]) reallocate(capacity int) bool {
	next := a.allocator().Alloc(capacity)
	if next == nil {
		return false
	}
	copy(next, a.data[:a.length])
	a.allocator().Free(a.data)
	a.data = next
	return true
}
