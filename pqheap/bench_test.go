// Package pqheap_test provides benchmarks for the heap family.
package pqheap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphkit/pqheap"
)

var intLess = func(a, b int) bool { return a < b }

func randomInts(n int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for i := range out {
		out[i] = r.Intn(n * 10)
	}
	return out
}

// BenchmarkHeap_InsertRemoveRoot measures the array-backed Heap's
// Insert/RemoveRoot cycle, the baseline every addressable variant is
// compared against.
//
// Complexity: O(log n) per Insert and per RemoveRoot.
func BenchmarkHeap_InsertRemoveRoot(b *testing.B) {
	values := randomInts(b.N, 1)
	b.ReportAllocs()
	b.ResetTimer()
	h := pqheap.NewHeap(intLess)
	for i := 0; i < b.N; i++ {
		h.Insert(values[i])
	}
	for i := 0; i < b.N; i++ {
		_, _ = h.RemoveRoot()
	}
}

// BenchmarkNodeHeap_Decrease measures NodeHeap's Decrease, the
// addressable binary heap's O(log n) sift-up from a random slot.
func BenchmarkNodeHeap_Decrease(b *testing.B) {
	const n = 10000
	h := pqheap.NewNodeHeap(intLess)
	handles := make([]pqheap.Handle, n)
	values := randomInts(n, 2)
	for i, v := range values {
		handles[i] = h.Insert(v)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx := i % n
		_ = h.Decrease(handles[idx], -(i + 1))
	}
}

// BenchmarkBinomial_InsertMerge measures Binomial.Insert followed by a
// Merge of two equally sized heaps, exercising the carry-tree linking
// that gives binomial heaps their amortized O(1) insert.
func BenchmarkBinomial_InsertMerge(b *testing.B) {
	values := randomInts(b.N, 3)
	b.ReportAllocs()
	b.ResetTimer()
	h1, h2 := pqheap.NewBinomial(intLess), pqheap.NewBinomial(intLess)
	for i, v := range values {
		if i%2 == 0 {
			h1.Insert(v)
		} else {
			h2.Insert(v)
		}
	}
	h1.Merge(h2)
}

// BenchmarkFibonacci_DecreaseKey measures Fibonacci.Decrease, the
// O(1)-amortized cut/cascading-cut decrease-key shortest.Dijkstra relies
// on for its relaxation step.
func BenchmarkFibonacci_DecreaseKey(b *testing.B) {
	const n = 10000
	h := pqheap.NewFibonacci(intLess)
	handles := make([]pqheap.FibonacciHandle[int], n)
	values := randomInts(n, 4)
	for i, v := range values {
		handles[i] = h.Insert(v)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx := i % n
		_ = h.Decrease(handles[idx], -(i + 1))
	}
}
