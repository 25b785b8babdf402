// Package graph_test provides benchmarks for the graph container.
package graph_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/graphkit/graph"
)

// Benchmark sinks prevent accidental dead-code elimination in microbenchmarks.
var (
	benchSinkInt   int
	benchSinkEdges []graph.Edge[string]
	benchSinkGraph graph.Graph[string]
)

// BenchmarkList_AddVertex measures List.AddVertex throughput, excluding
// string formatting costs from the timed region.
//
// Complexity: O(1) amortized per call.
func BenchmarkList_AddVertex(b *testing.B) {
	g := graph.NewList[string](false, false)
	ids := make([]string, b.N)
	for i := 0; i < b.N; i++ {
		ids[i] = fmt.Sprintf("N%d", i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx, _ := g.AddVertex(ids[i])
		benchSinkInt = idx
	}
}

// BenchmarkMatrixGraph_AddVertex mirrors BenchmarkList_AddVertex for the
// adjacency-matrix backend, where each AddVertex may grow the dense
// weight table.
func BenchmarkMatrixGraph_AddVertex(b *testing.B) {
	g, err := graph.NewMatrixGraph[string](false, false)
	if err != nil {
		b.Fatal(err)
	}
	ids := make([]string, b.N)
	for i := 0; i < b.N; i++ {
		ids[i] = fmt.Sprintf("N%d", i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx, _ := g.AddVertex(ids[i])
		benchSinkInt = idx
	}
}

// BenchmarkList_Neighbors measures neighbor enumeration via
// Edges("Center") on a fixed star topology, the per-call cost of
// assembling the outgoing edge slice.
//
// Complexity: O(d) where d is the degree of "Center".
func BenchmarkList_Neighbors(b *testing.B) {
	g := graph.NewList[string](false, true)
	g.AddVertex("Center")
	for i := 0; i < 1000; i++ {
		leaf := fmt.Sprintf("Leaf%d", i)
		g.AddVertex(leaf)
		_ = g.SetEdge("Center", leaf, float64(i+1))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		edges, _ := g.Edges("Center")
		benchSinkEdges = edges
	}
}

// BenchmarkList_Convert measures converting a pre-populated adjacency-list
// graph to matrix storage, the deep isomorphic copy across storage kinds.
//
// Complexity: O(V+E).
func BenchmarkList_Convert(b *testing.B) {
	g := graph.NewList[string](true, true)
	g.AddVertex("A")
	for i := 0; i < 1000; i++ {
		v := fmt.Sprintf("V%d", i)
		g.AddVertex(v)
		_ = g.SetEdge("A", v, float64(i+1))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := g.Convert(graph.KindMatrix)
		if err != nil {
			b.Fatal(err)
		}
		benchSinkGraph = out
	}
}
