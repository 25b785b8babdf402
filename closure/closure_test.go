package closure_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/graphkit/closure"
	"github.com/katalvlaran/graphkit/graph"
	"github.com/stretchr/testify/require"
)

func buildStarWithTriangle(t *testing.T) graph.Graph[int] {
	t.Helper()
	// triangle 0-1-2 plus pendant vertices 3,4 hanging off 0.
	g, err := graph.New[int]()
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := g.AddVertex(i)
		require.NoError(t, err)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {0, 4}} {
		require.NoError(t, g.SetEdge(e[0], e[1], graph.UnitWeight))
	}

	return g
}

func TestKCore_TriangleSurvivesPendantsDont(t *testing.T) {
	g := buildStarWithTriangle(t)
	core := closure.KCore[int](g, 2)
	sort.Ints(core)
	require.Equal(t, []int{0, 1, 2}, core)
}

func TestKCore_ZeroIncludesEveryVertex(t *testing.T) {
	g := buildStarWithTriangle(t)
	core := closure.KCore[int](g, 0)
	require.Len(t, core, g.Order())
}

func TestTransitiveClosure_ChainReachesAll(t *testing.T) {
	g, err := graph.New[int](graph.WithDirected(true))
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, err := g.AddVertex(i)
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, g.SetEdge(i, i+1, graph.UnitWeight))
	}

	tc, err := closure.TransitiveClosure[int](g)
	require.NoError(t, err)
	require.True(t, tc.HasEdge(0, 3))
	require.True(t, tc.HasEdge(1, 3))
	require.False(t, tc.HasEdge(3, 0))
}

func TestChvatalBondyClosure_CompletesHamiltonianCandidate(t *testing.T) {
	// 4-cycle 0-1-2-3-0 plus diagonal 0-2: every non-adjacent pair
	// (1,3) has degree sum 2+2=4 >= n=4, so closure must add edge 1-3,
	// yielding K4.
	g, err := graph.New[int]()
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, err := g.AddVertex(i)
		require.NoError(t, err)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}} {
		require.NoError(t, g.SetEdge(e[0], e[1], graph.UnitWeight))
	}

	closed, err := closure.ChvatalBondyClosure[int](g)
	require.NoError(t, err)
	require.True(t, closed.HasEdge(1, 3))
}
