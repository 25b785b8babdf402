package mst

import (
	"testing"

	"github.com/katalvlaran/graphkit/graph"
	"github.com/stretchr/testify/require"
)

func buildSample(t *testing.T) graph.Graph[string] {
	t.Helper()
	g, err := graph.New[string](graph.WithDirected(false), graph.WithWeighted())
	require.NoError(t, err)
	for _, v := range []string{"a", "b", "c", "d"} {
		_, err := g.AddVertex(v)
		require.NoError(t, err)
	}
	edges := []struct {
		u, v string
		w    float64
	}{
		{"a", "b", 1}, {"b", "c", 2}, {"c", "d", 3}, {"a", "d", 4}, {"b", "d", 5},
	}
	for _, e := range edges {
		require.NoError(t, g.SetEdge(e.u, e.v, e.w))
	}

	return g
}

// Property 9: all three MST algorithms produce trees of equal total weight.
func TestMST_AllThreeAgree(t *testing.T) {
	t.Parallel()
	g := buildSample(t)

	krTree, krWeight, err := Kruskal[string](g)
	require.NoError(t, err)
	require.Len(t, krTree, 3)

	prTree, prWeight, err := Prim[string](g)
	require.NoError(t, err)
	require.Len(t, prTree, 3)

	boTree, boWeight, err := Boruvka[string](g)
	require.NoError(t, err)
	require.Len(t, boTree, 3)

	require.Equal(t, krWeight, prWeight)
	require.Equal(t, krWeight, boWeight)
	require.Equal(t, 6.0, krWeight) // 1+2+3
}

func TestMST_RejectsDirectedOrUnweighted(t *testing.T) {
	t.Parallel()
	g, err := graph.New[int](graph.WithDirected(true), graph.WithWeighted())
	require.NoError(t, err)
	_, _, err = Kruskal[int](g)
	require.ErrorIs(t, err, ErrInvalidGraph)
	_, _, err = Prim[int](g)
	require.ErrorIs(t, err, ErrInvalidGraph)
	_, _, err = Boruvka[int](g)
	require.ErrorIs(t, err, ErrInvalidGraph)
}

func TestMST_Disconnected(t *testing.T) {
	t.Parallel()
	g, err := graph.New[int](graph.WithDirected(false), graph.WithWeighted())
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, _ = g.AddVertex(i)
	}
	require.NoError(t, g.SetEdge(0, 1, 1))
	// 2, 3 left isolated.
	_, _, err = Kruskal[int](g)
	require.ErrorIs(t, err, ErrDisconnected)
}
