package container

import "github.com/parhelia512/tinytrl/mathx"

// Sort orders the whole array in place using the comparer. The sort is
// deterministic but not stable.
func (a *Array[E]) Sort(compare Comparer[E]) {
	a.QuickSort(0, a.length-1, compare)
}

// QuickSort orders the inclusive index range [first, last] in place.
// Out-of-range bounds are clamped to the live elements.
func (a *Array[E]) QuickSort(first, last int, compare Comparer[E]) {
	if a.length > 1 {
		first = mathx.Saturate(first, 0, a.length-1)
		last = mathx.Saturate(last, 0, a.length-1)
		a.recursiveQuickSort(first, last, compare)
	}
}

func (a *Array[E]) recursiveQuickSort(first, last int, compare Comparer[E]) {
	if first < last {
		middle := first + (last-first)/2
		if first != middle {
			a.Swap(first, middle)
		}
		split := a.partition(first, last, compare)
		a.recursiveQuickSort(first, split-1, compare)
		a.recursiveQuickSort(split+1, last, compare)
	}
}

// partition is a Hoare scheme with the pivot parked at first. The pivot's
// final slot is returned.
func (a *Array[E]) partition(first, last int, compare Comparer[E]) int {
	left, right := first+1, last
	for left <= right {
		for left <= last && compare(a.data[left], a.data[first]) < 0 {
			left++
		}
		for right > first && compare(a.data[right], a.data[first]) >= 0 {
			right--
		}
		if left < right {
			a.Swap(left, right)
		}
	}
	if first != right {
		a.Swap(first, right)
	}
	return right
}

// Search locates element across the whole array, which must be sorted
// consistently with the comparer. Returns the index or NotFound.
func (a *Array[E]) Search(element E, compare Comparer[E]) int {
	return a.BinarySearch(element, 0, a.length-1, compare)
}

// BinarySearch locates element within the inclusive index range
// [first, last], clamped to the live elements. Returns the index or
// NotFound.
func (a *Array[E]) BinarySearch(element E, first, last int, compare Comparer[E]) int {
	return a.BinarySearchFunc(first, last, func(candidate E) int {
		return compare(candidate, element)
	})
}

// BinarySearchFunc locates the element for which compare reports zero
// within the inclusive index range [first, last]. compare receives a
// stored element and reports negative when the target lies to its right,
// positive when to its left. Returns the index or NotFound.
func (a *Array[E]) BinarySearchFunc(first, last int, compare func(candidate E) int) int {
	if a.length == 0 {
		return NotFound
	}
	left := mathx.Saturate(first, 0, a.length-1)
	right := mathx.Saturate(last, 0, a.length-1)
	for left <= right {
		middle := left + (right-left)/2
		switch res := compare(a.data[middle]); {
		case res < 0:
			left = middle + 1
		case res > 0:
			right = middle - 1
		default:
			return middle
		}
	}
	return NotFound
}
