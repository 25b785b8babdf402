package bipartite_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/bipartite"
	"github.com/katalvlaran/graphkit/graph"
	"github.com/stretchr/testify/require"
)

// buildSquare builds an undirected 4-cycle 0-1-2-3-0, which is bipartite
// with parts {0,2} and {1,3}.
func buildSquare(t *testing.T) graph.Graph[int] {
	t.Helper()
	g, err := graph.New[int]()
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, err := g.AddVertex(i)
		require.NoError(t, err)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		require.NoError(t, g.SetEdge(e[0], e[1], graph.UnitWeight))
	}

	return g
}

func buildTriangle(t *testing.T) graph.Graph[int] {
	t.Helper()
	g, err := graph.New[int]()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := g.AddVertex(i)
		require.NoError(t, err)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		require.NoError(t, g.SetEdge(e[0], e[1], graph.UnitWeight))
	}

	return g
}

func TestTwoColor_SquareIsBipartite(t *testing.T) {
	g := buildSquare(t)
	color, err := bipartite.TwoColor[int](g)
	require.NoError(t, err)
	require.NotEqual(t, color[0], color[1])
	require.Equal(t, color[0], color[2])
	require.Equal(t, color[1], color[3])
}

func TestTwoColor_TriangleIsNotBipartite(t *testing.T) {
	g := buildTriangle(t)
	_, err := bipartite.TwoColor[int](g)
	require.ErrorIs(t, err, bipartite.ErrNotBipartite)
}

func TestMaxMatching_SquarePerfectMatching(t *testing.T) {
	g := buildSquare(t)
	color, err := bipartite.TwoColor[int](g)
	require.NoError(t, err)
	a, b := bipartite.Parts[int](g, color)

	matched, err := bipartite.MaxMatching[int](g, a, b)
	require.NoError(t, err)
	require.Len(t, matched, 2)
}

func TestMaxMatching_EmptyGraph(t *testing.T) {
	g, err := graph.New[int]()
	require.NoError(t, err)
	matched, err := bipartite.MaxMatching[int](g, nil, nil)
	require.NoError(t, err)
	require.Empty(t, matched)
}
