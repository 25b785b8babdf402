package sortselect_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/graphkit/sortselect"
	"github.com/stretchr/testify/require"
)

func sampleInts() []int {
	return []int{5, 3, 8, 1, 9, 2, 7, 0, 4, 6}
}

func TestMergeSort(t *testing.T) {
	got := sortselect.MergeSort(sampleInts())
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestMergeSort_DoesNotMutateInput(t *testing.T) {
	in := sampleInts()
	orig := append([]int(nil), in...)
	_ = sortselect.MergeSort(in)
	require.Equal(t, orig, in)
}

func TestQuickSort_Deterministic(t *testing.T) {
	items := sampleInts()
	sortselect.QuickSort(items, sortselect.WithRand(rand.New(rand.NewSource(42))))
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, items)
}

func TestHeapSort(t *testing.T) {
	items := sampleInts()
	sortselect.HeapSort(items)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, items)
}

func TestRadixSort(t *testing.T) {
	got := sortselect.RadixSort([]int{170, 45, 75, 90, 802, 24, 2, 66, 0})
	require.Equal(t, []int{0, 2, 24, 45, 66, 75, 90, 170, 802}, got)
}

func TestSelect_MatchesSortedOrder(t *testing.T) {
	items := sampleInts()
	want := append([]int(nil), items...)
	sort.Ints(want)
	for k := 0; k < len(items); k++ {
		require.Equal(t, want[k], sortselect.Select(items, k))
	}
}

func TestSelect_LargeRandomInput(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	items := make([]int, 500)
	for i := range items {
		items[i] = r.Intn(10000)
	}
	want := append([]int(nil), items...)
	sort.Ints(want)

	require.Equal(t, want[0], sortselect.Select(items, 0))
	require.Equal(t, want[len(want)/2], sortselect.Select(items, len(items)/2))
	require.Equal(t, want[len(want)-1], sortselect.Select(items, len(items)-1))
}
