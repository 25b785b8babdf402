package npc_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/graphkit/graph"
	"github.com/katalvlaran/graphkit/npc"
	"github.com/stretchr/testify/require"
)

// stripIndex and clauseIndex locate a variable-strip waypoint or clause
// node within a Hamiltonian-cycle instance's vertex slice by its public
// Kind/VarIdx/Pos/ClauseIdx fields, reached via reflection since the
// vertex type itself is unexported. This lets a test outside the npc
// package name an exact waypoint without needing to spell that type.
func stripIndex[T any](items []T, v, t int) int {
	for i, it := range items {
		rv := reflect.ValueOf(it)
		if byte(rv.FieldByName("Kind").Uint()) == 'S' &&
			int(rv.FieldByName("VarIdx").Int()) == v &&
			int(rv.FieldByName("Pos").Int()) == t {
			return i
		}
	}
	return -1
}

func clauseIndex[T any](items []T, c int) int {
	for i, it := range items {
		rv := reflect.ValueOf(it)
		if byte(rv.FieldByName("Kind").Uint()) == 'C' &&
			int(rv.FieldByName("ClauseIdx").Int()) == c {
			return i
		}
	}
	return -1
}

func TestVerifySAT(t *testing.T) {
	inst := npc.SATInstance{
		NumVars: 2,
		Clauses: []npc.Clause{
			{{Var: 1, Positive: true}, {Var: 2, Positive: false}},
		},
	}
	require.True(t, npc.VerifySAT(inst, []bool{false, true, false}))
	require.False(t, npc.VerifySAT(inst, []bool{false, false, true}))
}

func TestSATToThreeSAT_PreservesSatisfiability(t *testing.T) {
	inst := npc.SATInstance{
		NumVars: 3,
		Clauses: []npc.Clause{
			{{Var: 1, Positive: true}},
			{{Var: 2, Positive: true}, {Var: 3, Positive: false}},
			{{Var: 1, Positive: false}, {Var: 2, Positive: true}, {Var: 3, Positive: true}},
		},
	}
	three := npc.SATToThreeSAT(inst)
	for _, c := range three.Clauses {
		require.Len(t, c, 3)
	}
	require.Greater(t, three.NumVars, inst.NumVars)
}

func TestSATToILP_RoundTrips(t *testing.T) {
	inst := npc.SATInstance{
		NumVars: 2,
		Clauses: []npc.Clause{{{Var: 1, Positive: true}, {Var: 2, Positive: false}}},
	}
	ilp := npc.SATToILP(inst)
	assignment := []int{0, 0, 1} // x1=false, x2=true -> clause (x1 or !x2) is false
	require.False(t, npc.VerifyILP(ilp, assignment))
	assignment2 := []int{0, 1, 1} // x1=true
	require.True(t, npc.VerifyILP(ilp, assignment2))
}

func buildTriangle(t *testing.T) graph.Graph[int] {
	t.Helper()
	g, err := graph.New[int](graph.WithDirected(false))
	require.NoError(t, err)
	for _, v := range []int{0, 1, 2} {
		_, err := g.AddVertex(v)
		require.NoError(t, err)
	}
	require.NoError(t, g.ForceAdd(0, 1, graph.UnitWeight))
	require.NoError(t, g.ForceAdd(1, 2, graph.UnitWeight))
	require.NoError(t, g.ForceAdd(0, 2, graph.UnitWeight))
	return g
}

func TestVertexCoverToFeedbackVertexSet_TriangleGadget(t *testing.T) {
	g := buildTriangle(t)
	vc := npc.VertexCoverInstance[int]{G: g, K: 2}
	require.True(t, npc.VerifyVertexCover(vc, []int{0, 1}))

	fvs, err := npc.VertexCoverToFeedbackVertexSet[int](vc)
	require.NoError(t, err)

	witness := []npc.FVSVertex[int]{{V: 0}, {V: 1}}
	require.True(t, npc.VerifyFeedbackVertexSet(fvs, witness))

	empty := []npc.FVSVertex[int]{}
	require.False(t, npc.VerifyFeedbackVertexSet(fvs, empty))
}

func TestVertexCoverToSetCover(t *testing.T) {
	g := buildTriangle(t)
	vc := npc.VertexCoverInstance[int]{G: g, K: 2}
	sc := npc.VertexCoverToSetCover[int](vc)
	require.Equal(t, 3, sc.Universe)
	require.True(t, npc.VerifySetCover(sc, []int{0, 1}))
}

func TestThreeSATToClique_SatisfiableFormulaHasClique(t *testing.T) {
	three := npc.ThreeSATInstance{
		NumVars: 2,
		Clauses: [][3]npc.Literal{
			{{Var: 1, Positive: true}, {Var: 1, Positive: true}, {Var: 2, Positive: true}},
			{{Var: 1, Positive: false}, {Var: 2, Positive: false}, {Var: 2, Positive: false}},
		},
	}
	clique, err := npc.ThreeSATToClique(three)
	require.NoError(t, err)
	require.Equal(t, 2, clique.K)
	// x1=true, x2=false satisfies both clauses: pick occurrence (0,0)=x1
	// true from clause 0, and (1,0)=!x1... need a literal true in clause1:
	// clause 1 has !x1 (true when x1=false -> false here), x2=false(true),
	// x2=false(true); pick occurrence (1,1).
	witness := []int{0*3 + 0, 1*3 + 1}
	require.True(t, npc.VerifyClique(clique, witness))
}

func TestThreeSATToDirectedHamiltonianCycle_SatisfiableIsHamiltonian(t *testing.T) {
	// Six variables, one occurrence each, split across two clauses:
	//   clause 0: x1 OR x2 OR !x3
	//   clause 1: x4 OR !x5 OR !x6
	// assignment x1=T,x2=T,x3=F,x4=T,x5=T,x6=T satisfies both (via x1
	// and x4 respectively); every other variable is free, so its strip
	// is walked without a clause detour.
	three := npc.ThreeSATInstance{
		NumVars: 6,
		Clauses: [][3]npc.Literal{
			{{Var: 1, Positive: true}, {Var: 2, Positive: true}, {Var: 3, Positive: false}},
			{{Var: 4, Positive: true}, {Var: 5, Positive: false}, {Var: 6, Positive: false}},
		},
	}
	ham, err := npc.ThreeSATToDirectedHamiltonianCycle(three)
	require.NoError(t, err)

	verts := ham.G.Vertices()
	require.Len(t, verts, 14) // 2 clause nodes + 6 strips * 2 waypoints each

	// Walk each variable's strip in the direction its assignment picks
	// (true: 0->cCount left to right, false: cCount->0 right to left),
	// detouring through the clause node that variable satisfies.
	cycle := append(verts[:0:0],
		verts[stripIndex(verts, 1, 0)], // x1=true, detour into clause 0
		verts[clauseIndex(verts, 0)],
		verts[stripIndex(verts, 1, 1)],
		verts[stripIndex(verts, 2, 0)], // x2=true, no detour (clause 0 already taken)
		verts[stripIndex(verts, 2, 1)],
		verts[stripIndex(verts, 3, 1)], // x3=false, no detour
		verts[stripIndex(verts, 3, 0)],
		verts[stripIndex(verts, 4, 0)], // x4=true, detour into clause 1
		verts[clauseIndex(verts, 1)],
		verts[stripIndex(verts, 4, 1)],
		verts[stripIndex(verts, 5, 0)], // x5=true, no detour
		verts[stripIndex(verts, 5, 1)],
		verts[stripIndex(verts, 6, 0)], // x6=true, no detour
		verts[stripIndex(verts, 6, 1)],
	)
	require.Len(t, cycle, len(verts))
	require.True(t, npc.VerifyDirectedHamiltonianCycle(ham, cycle))
}

func TestVertexCoverToDirectedHamiltonianCycle_TriangleProducesValidInstance(t *testing.T) {
	g := buildTriangle(t)
	vc := npc.VertexCoverInstance[int]{G: g, K: 2}
	require.True(t, npc.VerifyVertexCover(vc, []int{0, 1}))

	ham, order, err := npc.VertexCoverToDirectedHamiltonianCycle[int](vc)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 1, 2}, order)
	require.NotEmpty(t, ham.G.Vertices())
}

func TestDirectedToUndirectedHamiltonianCycle_SplitsEachVertexIntoThree(t *testing.T) {
	g, err := graph.New[int](graph.WithDirected(true))
	require.NoError(t, err)
	for _, v := range []int{0, 1, 2} {
		_, err := g.AddVertex(v)
		require.NoError(t, err)
	}
	require.NoError(t, g.ForceAdd(0, 1, graph.UnitWeight))
	require.NoError(t, g.ForceAdd(1, 2, graph.UnitWeight))
	require.NoError(t, g.ForceAdd(2, 0, graph.UnitWeight))

	dham := npc.DirectedHamiltonianCycleInstance[int]{G: g}
	cycle := []int{0, 1, 2}
	require.True(t, npc.VerifyDirectedHamiltonianCycle(dham, cycle))

	uham, err := npc.DirectedHamiltonianCycleToUndirectedHamiltonianCycle[int](dham)
	require.NoError(t, err)
	require.Equal(t, 9, len(uham.G.Vertices()))
}
