package ordmap

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBST_InsertFindDelete(t *testing.T) {
	t.Parallel()
	tr := NewBST[int, string]()
	values := []int{5, 3, 8, 1, 4, 7, 9, 2, 6}
	for _, v := range values {
		tr.Insert(v, "v")
	}
	require.Equal(t, len(values), tr.Len())

	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	require.Equal(t, sorted, tr.InOrder())

	mn, _, ok := tr.Min()
	require.True(t, ok)
	require.Equal(t, 1, mn)

	mx, _, ok := tr.Max()
	require.True(t, ok)
	require.Equal(t, 9, mx)

	succ, _, ok := tr.Successor(4)
	require.True(t, ok)
	require.Equal(t, 5, succ)

	pred, _, ok := tr.Predecessor(5)
	require.True(t, ok)
	require.Equal(t, 4, pred)

	tr.Delete(5)
	require.Equal(t, len(values)-1, tr.Len())
	_, _, ok = tr.Find(5)
	require.False(t, ok)
}

func TestBST_StaysBalanced(t *testing.T) {
	t.Parallel()
	tr := NewBST[int, int]()
	for i := 0; i < 1000; i++ {
		tr.Insert(i, i)
	}
	require.Equal(t, 1000, tr.Len())
	// An AVL tree over 1000 keys has height O(log n); root height should
	// never approach a degenerate 1000-deep chain.
	require.LessOrEqual(t, height(tr.root), 20)
}

func TestVEB_Basic(t *testing.T) {
	t.Parallel()
	v, err := NewVEB(64)
	require.NoError(t, err)

	for _, x := range []int{2, 3, 4, 5, 7, 14, 15} {
		require.NoError(t, v.Insert(x))
	}
	for _, x := range []int{2, 3, 4, 5, 7, 14, 15} {
		require.True(t, v.Member(x))
	}
	require.False(t, v.Member(6))

	mn, ok := v.Min()
	require.True(t, ok)
	require.Equal(t, 2, mn)

	mx, ok := v.Max()
	require.True(t, ok)
	require.Equal(t, 15, mx)

	succ, ok := v.Successor(4)
	require.True(t, ok)
	require.Equal(t, 5, succ)

	pred, ok := v.Predecessor(5)
	require.True(t, ok)
	require.Equal(t, 4, pred)

	v.Delete(5)
	require.False(t, v.Member(5))
	succ, ok = v.Successor(4)
	require.True(t, ok)
	require.Equal(t, 7, succ)
}

func TestVEB_AgainstSortedSet(t *testing.T) {
	t.Parallel()
	const universe = 256
	v, err := NewVEB(universe)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	present := map[int]bool{}
	for i := 0; i < 80; i++ {
		x := rng.Intn(universe)
		present[x] = true
		require.NoError(t, v.Insert(x))
	}

	var sorted []int
	for x := range present {
		sorted = append(sorted, x)
	}
	sort.Ints(sorted)

	for i, x := range sorted {
		if i+1 < len(sorted) {
			succ, ok := v.Successor(x)
			require.True(t, ok)
			require.Equal(t, sorted[i+1], succ)
		}
		if i > 0 {
			pred, ok := v.Predecessor(x)
			require.True(t, ok)
			require.Equal(t, sorted[i-1], pred)
		}
	}
}

func TestVEB_InvalidUniverse(t *testing.T) {
	t.Parallel()
	_, err := NewVEB(1)
	require.ErrorIs(t, err, ErrInvalidUniverse)
}
