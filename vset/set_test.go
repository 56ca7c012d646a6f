package vset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/submatch/vset"
)

func TestIntersectCommutativeAndInclusionExclusion(t *testing.T) {
	a := vset.FromSlice([]int{1, 2, 3, 5, 8})
	b := vset.FromSlice([]int{2, 3, 4, 8, 9})

	ab := vset.Intersect(&a, &b)
	ba := vset.Intersect(&b, &a)
	require.Equal(t, ab.Data(), ba.Data(), "intersection must be commutative")
	require.Equal(t, []int{2, 3, 8}, ab.Data())

	// |A ∩ B| = |A| + |B| - |A ∪ B|
	union := map[int]struct{}{}
	for _, v := range a.Data() {
		union[v] = struct{}{}
	}
	for _, v := range b.Data() {
		union[v] = struct{}{}
	}
	require.Equal(t, a.Len()+b.Len()-len(union), ab.Len())
}

func TestUnorderedSubtractionSize(t *testing.T) {
	a := vset.FromSlice([]int{1, 2, 3, 4, 5})
	b := vset.FromSlice([]int{2, 4})

	got := vset.UnorderedSubtractionSize(&a, &b)
	require.Equal(t, 3, got) // {1,3,5}

	// limit restricts to the first k elements of A
	got = vset.UnorderedSubtractionSize(&a, &b, 2)
	require.Equal(t, 1, got) // only {1,2} considered, 2 is in B -> just {1}
}

func TestBorrowedPromotesOnMutation(t *testing.T) {
	backing := []int{1, 2, 3}
	s := vset.Borrow(backing)
	require.False(t, s.Owned())

	other := vset.FromSlice([]int{2, 3, 4})
	require.NoError(t, s.IntersectWith(&other))
	require.True(t, s.Owned())
	require.Equal(t, []int{2, 3}, s.Data())

	// backing must be untouched by the mutation
	require.Equal(t, []int{1, 2, 3}, backing)
}

func TestPushPopBalance(t *testing.T) {
	s := vset.Empty(4)
	require.NoError(t, s.PushBack(1))
	require.NoError(t, s.PushBack(5))
	require.Equal(t, 2, s.Len())
	require.Equal(t, 5, s.Last())
	s.PopBack()
	require.Equal(t, 1, s.Len())
	require.Equal(t, 1, s.Last())
	s.PopBack()
	require.Equal(t, 0, s.Len())
}

func TestHasBinarySearch(t *testing.T) {
	s := vset.FromSlice([]int{2, 4, 6, 8, 10})
	require.True(t, s.Has(6))
	require.False(t, s.Has(7))
	require.False(t, s.Has(1))
	require.False(t, s.Has(11))
}

func TestAllocFailedOnCapacityBreach(t *testing.T) {
	s := vset.Empty(0)
	s.SetMaxCapacity(2)
	other := vset.FromSlice([]int{1, 2, 3})
	require.ErrorIs(t, s.CopyFrom(&other), vset.ErrAllocFailed)
}
