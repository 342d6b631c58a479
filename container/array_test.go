package container

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray_ZeroValue(t *testing.T) {
	var a Array[int]
	assert.True(t, a.Valid())
	assert.True(t, a.Empty())
	assert.Equal(t, 0, a.Length())
	assert.Equal(t, 0, a.Capacity())

	require.Equal(t, 0, a.Add(42))
	assert.Equal(t, []int{42}, a.Data())
}

func TestArray_AddReturnsIndex(t *testing.T) {
	a := NewArray[string](nil)
	assert.Equal(t, 0, a.Add("one"))
	assert.Equal(t, 1, a.Add("two"))
	assert.Equal(t, 2, a.Add("three"))
	assert.Equal(t, 3, a.Length())
	assert.Equal(t, "two", a.At(1))
}

// TestArray_InsertSortSearch exercises insertion with index clamping,
// in-place sorting and binary search on the result.
func TestArray_InsertSortSearch(t *testing.T) {
	a := ArrayOf(25, 100, 75)
	a.InsertP(1, 5)
	require.True(t, a.Valid())
	assert.Equal(t, []int{25, 5, 100, 75}, a.Data())

	a.Sort(Compare[int])
	assert.Equal(t, []int{5, 25, 75, 100}, a.Data())

	assert.Equal(t, 2, a.Search(75, Compare[int]))
	assert.Equal(t, NotFound, a.Search(50, Compare[int]))
}

func TestArray_InsertClamps(t *testing.T) {
	a := ArrayOf(1, 2, 3)
	require.True(t, a.Insert(-10, 0))
	require.True(t, a.Insert(99, 4))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, a.Data())
}

func TestArray_InsertGrowsOnce(t *testing.T) {
	a := NewArrayCapacity[int](4, nil)
	for i := range 4 {
		a.Add(i)
	}
	require.Equal(t, 4, a.Capacity())

	// Inserting into a full array regrows and shifts in one pass.
	require.True(t, a.Insert(2, 99))
	assert.Equal(t, []int{0, 1, 99, 2, 3}, a.Data())
	assert.Greater(t, a.Capacity(), 4)
}

func TestArray_Erase(t *testing.T) {
	a := ArrayOf(10, 20, 30, 40)
	require.True(t, a.Erase(1))
	assert.Equal(t, []int{10, 30, 40}, a.Data())

	assert.False(t, a.Erase(-1))
	assert.False(t, a.Erase(3))
	assert.Equal(t, 3, a.Length())

	// Erase never shrinks the storage.
	capacity := a.Capacity()
	a.Erase(0)
	assert.Equal(t, capacity, a.Capacity())
}

func TestArray_EraseRange(t *testing.T) {
	a := ArrayOf(0, 1, 2, 3, 4, 5)
	require.True(t, a.EraseRange(1, 3))
	assert.Equal(t, []int{0, 4, 5}, a.Data())

	// A negative start consumes part of the count.
	b := ArrayOf(0, 1, 2, 3)
	require.True(t, b.EraseRange(-2, 4))
	assert.Equal(t, []int{2, 3}, b.Data())
	assert.False(t, b.EraseRange(-5, 3))

	// Counts past the end are truncated.
	c := ArrayOf(0, 1, 2)
	require.True(t, c.EraseRange(1, 100))
	assert.Equal(t, []int{0}, c.Data())

	assert.False(t, c.EraseRange(1, 1))
	assert.False(t, c.EraseRange(0, 0))
}

func TestArray_SetLength(t *testing.T) {
	a := ArrayOf(1, 2, 3)
	require.True(t, a.SetLength(5))
	assert.Equal(t, []int{1, 2, 3, 0, 0}, a.Data())

	require.True(t, a.SetLength(2))
	assert.Equal(t, []int{1, 2}, a.Data())

	// Truncated slots are zeroed, so regrowth exposes no stale values.
	require.True(t, a.SetLength(4))
	assert.Equal(t, []int{1, 2, 0, 0}, a.Data())
}

func TestArray_Populate(t *testing.T) {
	a := NewArrayFill(3, "x", Allocator[string](nil))
	require.True(t, a.Valid())
	assert.Equal(t, []string{"x", "x", "x"}, a.Data())

	require.True(t, a.Populate(2, "y"))
	assert.Equal(t, []string{"x", "x", "x", "y", "y"}, a.Data())

	require.True(t, a.Populate(0, "z"))
	assert.Equal(t, 5, a.Length())
}

func TestArray_ClearKeepsStorage(t *testing.T) {
	a := ArrayOf(1, 2, 3)
	capacity := a.Capacity()
	a.Pollute()

	a.Clear()
	assert.True(t, a.Empty())
	assert.True(t, a.Valid(), "Clear resets the poison flag")
	assert.Equal(t, capacity, a.Capacity())
}

func TestArray_PurgeReleasesStorage(t *testing.T) {
	a := ArrayOf(1, 2, 3)
	a.Pollute()
	a.Purge()
	assert.True(t, a.Empty())
	assert.True(t, a.Valid())
	assert.Equal(t, 0, a.Capacity())
}

func TestArray_Shrink(t *testing.T) {
	a := NewArrayCapacity[int](100, nil)
	a.Add(1)
	a.Add(2)
	require.True(t, a.Shrink())
	assert.Equal(t, 2, a.Capacity())
	assert.Equal(t, []int{1, 2}, a.Data())

	// Idempotent.
	require.True(t, a.Shrink())
	assert.Equal(t, 2, a.Capacity())

	// Shrinking an empty array releases the storage.
	a.Clear()
	require.True(t, a.Shrink())
	assert.Equal(t, 0, a.Capacity())
}

func TestArray_SetCapacityNeverShrinks(t *testing.T) {
	a := NewArrayCapacity[int](64, nil)
	require.True(t, a.SetCapacity(8))
	assert.Equal(t, 64, a.Capacity())
	require.True(t, a.SetCapacity(-5))
	assert.Equal(t, 64, a.Capacity())
}

func TestArray_GrowthSequence(t *testing.T) {
	a := NewArray[int](nil)
	var capacities []int
	for i := range 40 {
		a.Add(i)
		if n := len(capacities); n == 0 || capacities[n-1] != a.Capacity() {
			capacities = append(capacities, a.Capacity())
		}
	}
	assert.Equal(t, []int{1, 2, 4, 8, 16, 24, 32, 48}, capacities)
}

func TestArray_PoisonIsSticky(t *testing.T) {
	a := ArrayOf(1, 2, 3)
	a.Pollute()
	assert.False(t, a.Valid())

	// Ordinary operations do not clear the flag.
	a.Add(4)
	a.Erase(0)
	assert.False(t, a.Valid())

	a.Unpollute()
	assert.True(t, a.Valid())
}

func TestArray_CloneAndAssign(t *testing.T) {
	a := ArrayOf(1, 2, 3)
	b := a.Clone()
	require.Equal(t, a.Data(), b.Data())

	b.Set(0, 99)
	assert.Equal(t, 1, a.At(0), "clone must not share storage")

	c := ArrayOf(7, 8)
	c.Assign(a)
	assert.Equal(t, []int{1, 2, 3}, c.Data())

	// Self-assignment is a no-op.
	c.Assign(c)
	assert.Equal(t, []int{1, 2, 3}, c.Data())
}

func TestArray_ArenaAllocFailurePoisons(t *testing.T) {
	// Capacity for the 1+2+4 slot growth steps and nothing more.
	arena := NewArena[int](7)
	a := NewArray(Allocator[int](arena))
	for i := range 4 {
		require.NotEqual(t, NotFound, a.Add(i))
	}

	// The next growth step (8) exceeds the arena, so Add fails and AddP
	// records the failure as poison. The stored elements survive.
	assert.Equal(t, NotFound, a.Add(4))
	assert.Equal(t, []int{0, 1, 2, 3}, a.Data())

	a.AddP(4)
	assert.False(t, a.Valid())
}

func TestArray_SortRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := NewArray[int](nil)
	for range 1000 {
		a.Add(rng.Intn(100000))
	}
	a.Sort(Compare[int])

	data := a.Data()
	for i := 1; i < len(data); i++ {
		require.LessOrEqual(t, data[i-1], data[i], "unsorted at %d", i)
	}
}

// TestArray_BinarySearchDense verifies that every stored element of a
// large sorted array is found at its own index and that gaps miss.
func TestArray_BinarySearchDense(t *testing.T) {
	a := NewArray[int](nil)
	for i := range 1000 {
		a.Add(i * 2)
	}
	for i := range 1000 {
		require.Equal(t, i, a.Search(i*2, Compare[int]))
	}
	assert.Equal(t, NotFound, a.Search(1, Compare[int]))
	assert.Equal(t, NotFound, a.Search(-2, Compare[int]))
	assert.Equal(t, NotFound, a.Search(2001, Compare[int]))
}

func TestArray_BinarySearchClampsRange(t *testing.T) {
	a := ArrayOf(10, 20, 30, 40)
	assert.Equal(t, 2, a.BinarySearch(30, -100, 100, Compare[int]))
	assert.Equal(t, NotFound, a.BinarySearch(40, 0, 2, Compare[int]))

	var empty Array[int]
	assert.Equal(t, NotFound, empty.Search(1, Compare[int]))
}

func TestArray_QuickSortSubrange(t *testing.T) {
	a := ArrayOf(9, 5, 3, 8, 1)
	a.QuickSort(1, 3, Compare[int])
	assert.Equal(t, []int{9, 3, 5, 8, 1}, a.Data())
}

func TestArray_SortEdgeCases(t *testing.T) {
	var empty Array[int]
	empty.Sort(Compare[int]) // must not panic

	single := ArrayOf(1)
	single.Sort(Compare[int])
	assert.Equal(t, []int{1}, single.Data())

	dup := ArrayOf(3, 1, 3, 2, 3, 1)
	dup.Sort(Compare[int])
	assert.Equal(t, []int{1, 1, 2, 3, 3, 3}, dup.Data())

	rev := ArrayOf(5, 4, 3, 2, 1)
	rev.Sort(Compare[int])
	assert.Equal(t, []int{1, 2, 3, 4, 5}, rev.Data())
}
