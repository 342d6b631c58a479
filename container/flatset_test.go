package container

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatSet_AddKeepsSortedUnique(t *testing.T) {
	s := NewFlatSet[int]()
	for _, v := range []int{5, 1, 5, 3, 1, 9} {
		s.Add(v)
	}
	assert.Equal(t, []int{1, 3, 5, 9}, s.Data())
	assert.True(t, s.Exists(3))
	assert.False(t, s.Exists(4))
}

func TestFlatSet_AddReturnsExistingLocation(t *testing.T) {
	s := NewFlatSet[string]()
	s.Add("b")
	s.Add("a")

	loc := s.Add("b")
	require.True(t, loc.Valid())
	assert.Equal(t, 1, loc.Index())
	assert.Equal(t, 2, s.Length())
}

// TestFlatSet_Update verifies insert-or-overwrite on a set whose comparer
// inspects only part of the value.
func TestFlatSet_Update(t *testing.T) {
	type entry struct {
		name  string
		count int
	}
	s := NewFlatSetFunc(func(left, right entry) int {
		return strings.Compare(left.name, right.name)
	})

	require.True(t, s.Update(entry{"a", 1}))
	require.True(t, s.Update(entry{"b", 1}))
	assert.Equal(t, 2, s.Length())

	// Same identity, new representation.
	require.True(t, s.Update(entry{"a", 7}))
	assert.Equal(t, 2, s.Length())

	loc := s.Find(entry{name: "a"})
	require.True(t, loc.Valid())
	assert.Equal(t, 7, s.At(loc).count)
}

func TestFlatSet_FindInsert(t *testing.T) {
	s := NewFlatSet[int]()
	s.Add(10)
	s.Add(30)

	loc, found := s.FindInsert(20)
	require.False(t, found)
	assert.Equal(t, 1, loc.Index())
	require.True(t, s.Insert(loc, 20))
	assert.Equal(t, []int{10, 20, 30}, s.Data())
}

func TestFlatSet_FindBy(t *testing.T) {
	type user struct {
		id   int
		name string
	}
	s := NewFlatSetFunc(func(left, right user) int {
		return Compare(left.id, right.id)
	})
	s.Add(user{1, "ada"})
	s.Add(user{2, "grace"})
	s.Add(user{3, "edsger"})

	loc := s.FindBy(func(candidate user) int {
		return Compare(candidate.id, 2)
	})
	require.True(t, loc.Valid())
	assert.Equal(t, "grace", s.At(loc).name)

	assert.False(t, s.FindBy(func(candidate user) int {
		return Compare(candidate.id, 99)
	}).Valid())
}

func TestFlatSet_Erase(t *testing.T) {
	s := NewFlatSet[int]()
	for i := range 5 {
		s.Add(i)
	}
	require.True(t, s.Erase(3))
	assert.Equal(t, []int{0, 1, 2, 4}, s.Data())
	assert.False(t, s.Erase(3))

	require.True(t, s.EraseAt(s.Find(0)))
	assert.Equal(t, []int{1, 2, 4}, s.Data())
	assert.False(t, s.EraseAt(Location{}))
}

func TestFlatSet_PoisonProtocol(t *testing.T) {
	arena := NewArena[int](7)
	s := NewFlatSetAlloc(Compare[int], arena)
	for i := range 4 {
		s.Add(i)
	}
	require.True(t, s.Valid())

	assert.False(t, s.Add(4).Valid())
	assert.False(t, s.Valid())

	s.Unpollute()
	assert.True(t, s.Valid())
}

func TestFlatSet_ClearShrinkPurge(t *testing.T) {
	s := NewFlatSet[int]()
	require.True(t, s.SetCapacity(64))
	for i := range 10 {
		s.Add(i)
	}
	require.True(t, s.Shrink())
	assert.Equal(t, 10, s.Capacity())

	s.Clear()
	assert.True(t, s.Empty())
	assert.Equal(t, 10, s.Capacity())

	s.Purge()
	assert.Equal(t, 0, s.Capacity())
	assert.True(t, s.Empty())
}
