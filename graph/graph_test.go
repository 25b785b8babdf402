package graph

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBoth(t *testing.T, directed, weighted bool) []Graph[string] {
	t.Helper()
	l := NewList[string](directed, weighted)
	m, err := NewMatrixGraph[string](directed, weighted)
	require.NoError(t, err)
	return []Graph[string]{l, m}
}

func TestGraph_AddVertexAndEdges(t *testing.T) {
	for _, g := range newBoth(t, false, true) {
		_, err := g.AddVertex("a")
		require.NoError(t, err)
		_, err = g.AddVertex("b")
		require.NoError(t, err)
		_, err = g.AddVertex("a")
		require.ErrorIs(t, err, ErrVertexExists)

		require.NoError(t, g.SetEdge("a", "b", 2.5))
		require.True(t, g.HasEdge("a", "b"))
		require.True(t, g.HasEdge("b", "a")) // undirected mirror

		cost, err := g.EdgeCost("a", "b")
		require.NoError(t, err)
		require.Equal(t, 2.5, cost)
	}
}

func TestGraph_SelfLoopRejected(t *testing.T) {
	for _, g := range newBoth(t, true, false) {
		_, err := g.AddVertex("a")
		require.NoError(t, err)
		require.ErrorIs(t, g.SetEdge("a", "a", UnitWeight), ErrSelfLoop)
	}
}

func TestGraph_UnweightedRejectsNonUnit(t *testing.T) {
	for _, g := range newBoth(t, true, false) {
		g.AddVertex("a")
		g.AddVertex("b")
		require.ErrorIs(t, g.SetEdge("a", "b", 3.0), ErrBadWeight)
		require.NoError(t, g.SetEdge("a", "b", UnitWeight))
	}
}

func TestGraph_DirectedEdgeNotMirrored(t *testing.T) {
	for _, g := range newBoth(t, true, true) {
		g.AddVertex("a")
		g.AddVertex("b")
		require.NoError(t, g.SetEdge("a", "b", 1))
		require.True(t, g.HasEdge("a", "b"))
		require.False(t, g.HasEdge("b", "a"))
	}
}

func TestGraph_RemoveRenumbers(t *testing.T) {
	for _, g := range newBoth(t, true, true) {
		for _, n := range []string{"a", "b", "c", "d"} {
			g.AddVertex(n)
		}
		require.NoError(t, g.SetEdge("a", "b", 1))
		require.NoError(t, g.SetEdge("b", "c", 1))
		require.NoError(t, g.SetEdge("a", "d", 1))
		require.NoError(t, g.SetEdge("d", "a", 1))

		require.NoError(t, g.Remove("b"))
		require.Equal(t, 3, g.Order())

		// b's edges are gone; edges involving the renumbered vertex (d,
		// swapped into b's old slot) must still resolve correctly by name.
		require.False(t, g.HasEdge("a", "b"))
		require.True(t, g.HasEdge("a", "d"))
		require.True(t, g.HasEdge("d", "a"))

		_, ok := g.IndexOf("b")
		require.False(t, ok)

		// no stray self-loop was introduced on the swapped-in vertex
		require.False(t, g.HasEdge("d", "d"))
	}
}

func TestGraph_RemoveVertexNotFound(t *testing.T) {
	for _, g := range newBoth(t, true, true) {
		require.ErrorIs(t, g.Remove("ghost"), ErrVertexNotFound)
	}
}

func TestGraph_Isolate(t *testing.T) {
	for _, g := range newBoth(t, false, true) {
		for _, n := range []string{"a", "b", "c"} {
			g.AddVertex(n)
		}
		g.SetEdge("a", "b", 1)
		g.SetEdge("b", "c", 1)
		require.NoError(t, g.Isolate("b"))
		require.False(t, g.HasEdge("a", "b"))
		require.False(t, g.HasEdge("b", "c"))
	}
}

func TestGraph_ConvertPreservesTopology(t *testing.T) {
	list := NewList[string](true, true)
	list.AddVertex("a")
	list.AddVertex("b")
	list.AddVertex("c")
	list.SetEdge("a", "b", 4)
	list.SetEdge("b", "c", 9)

	matrix, err := list.Convert(KindMatrix)
	require.NoError(t, err)
	require.Equal(t, KindMatrix, matrix.Kind())
	require.Equal(t, 3, matrix.Order())
	cost, err := matrix.EdgeCost("a", "b")
	require.NoError(t, err)
	require.Equal(t, 4.0, cost)

	back, err := matrix.Convert(KindList)
	require.NoError(t, err)
	require.ElementsMatch(t, list.AllEdges(), back.AllEdges())
}

func TestGraph_InducedSubgraph(t *testing.T) {
	for _, g := range newBoth(t, true, true) {
		for _, n := range []string{"a", "b", "c", "d"} {
			g.AddVertex(n)
		}
		g.SetEdge("a", "b", 1)
		g.SetEdge("b", "c", 1)
		g.SetEdge("c", "d", 1)

		sub, mapping, err := g.InducedSubgraph([]string{"a", "b", "c"})
		require.NoError(t, err)
		require.Equal(t, 3, sub.Order())
		require.True(t, sub.HasEdge("a", "b"))
		require.True(t, sub.HasEdge("b", "c"))
		require.Len(t, mapping, 3)
	}
}

func TestGraph_New(t *testing.T) {
	g, err := New[string](WithDirected(true), WithWeighted(), WithKind(KindMatrix))
	require.NoError(t, err)
	require.True(t, g.Directed())
	require.True(t, g.Weighted())
	require.Equal(t, KindMatrix, g.Kind())
}

// sortedEdges normalizes AllEdges output for comparison: convert round-
// trips and the two storage kinds report edges in different, storage-
// dependent orders.
func sortedEdges[V comparable](t *testing.T, edges []Edge[V]) []Edge[V] {
	t.Helper()
	out := append([]Edge[V](nil), edges...)
	sort.Slice(out, func(i, j int) bool {
		si, sj := fmt.Sprint(out[i]), fmt.Sprint(out[j])
		return si < sj
	})
	return out
}

// TestGraph_ConvertRoundTrip_Property asserts that for every random
// graph g and every storage kind k, g.Convert(k).Convert(g.Kind())
// reproduces g's edge set, up to neighbor ordering. Exercised across
// directed/undirected and weighted/unweighted combinations and both
// starting storage kinds, with a fixed seed for determinism.
func TestGraph_ConvertRoundTrip_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const trials = 40
	const maxVertices = 12

	for trial := 0; trial < trials; trial++ {
		directed := rng.Intn(2) == 0
		weighted := rng.Intn(2) == 0
		n := 2 + rng.Intn(maxVertices-1)

		build := func() Graph[int] {
			var g Graph[int]
			if rng.Intn(2) == 0 {
				g = NewList[int](directed, weighted)
			} else {
				mg, err := NewMatrixGraph[int](directed, weighted)
				require.NoError(t, err)
				g = mg
			}
			for i := 0; i < n; i++ {
				_, err := g.AddVertex(i)
				require.NoError(t, err)
			}
			// Random edges among distinct vertices; SetEdge dedups repeats.
			for i := 0; i < n*2; i++ {
				u, v := rng.Intn(n), rng.Intn(n)
				if u == v {
					continue
				}
				w := 1.0
				if weighted {
					w = float64(1 + rng.Intn(20))
				}
				require.NoError(t, g.SetEdge(u, v, w))
			}
			return g
		}

		original := build()
		otherKind := KindMatrix
		if original.Kind() == KindMatrix {
			otherKind = KindList
		}

		converted, err := original.Convert(otherKind)
		require.NoError(t, err)
		require.Equal(t, otherKind, converted.Kind())
		require.Equal(t, original.Order(), converted.Order())

		back, err := converted.Convert(original.Kind())
		require.NoError(t, err)
		require.Equal(t, original.Kind(), back.Kind())

		require.Equal(t, sortedEdges(t, original.AllEdges()), sortedEdges(t, back.AllEdges()))
	}
}
