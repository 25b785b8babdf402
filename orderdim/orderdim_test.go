package orderdim_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphkit/orderdim"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrder2D_InvalidSize(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	_, err := orderdim.GenerateOrder2D(0, r)
	require.ErrorIs(t, err, orderdim.ErrInvalidDimension)
}

func TestComparabilityGraph2D_ChainIsAcyclicAndConsistent(t *testing.T) {
	pts := []orderdim.Point2D{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}
	g, err := orderdim.ComparabilityGraph2D(pts)
	require.NoError(t, err)
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 2))
	require.True(t, g.HasEdge(0, 2))
	require.False(t, g.HasEdge(1, 0))
}

func TestIncomparabilityGraph2D_AntichainIsComplete(t *testing.T) {
	// two points with crossed coordinates are mutually incomparable.
	pts := []orderdim.Point2D{{X: 0, Y: 1}, {X: 1, Y: 0}}
	g, err := orderdim.IncomparabilityGraph2D(pts)
	require.NoError(t, err)
	require.True(t, g.HasEdge(0, 1))
}

func TestTransitiveReduction_ChainDropsShortcut(t *testing.T) {
	pts := []orderdim.Point3D{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}, {X: 2, Y: 2, Z: 2}}
	g, err := orderdim.ComparabilityGraph3D(pts)
	require.NoError(t, err)
	require.True(t, g.HasEdge(0, 2))

	reduced, err := orderdim.TransitiveReduction[int](g)
	require.NoError(t, err)
	require.True(t, reduced.HasEdge(0, 1))
	require.True(t, reduced.HasEdge(1, 2))
	require.False(t, reduced.HasEdge(0, 2))
}
