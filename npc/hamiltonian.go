package npc

import "github.com/katalvlaran/graphkit/graph"

// hamNode is the vertex type of the directed graph built by
// ThreeSATToDirectedHamiltonianCycle: either a variable-strip waypoint
// (Kind 'S', VarIdx the 0-based variable, Pos the 0-based waypoint
// along that variable's strip) or a clause node (Kind 'C', ClauseIdx
// the clause it represents).
type hamNode struct {
	Kind      byte
	VarIdx    int
	Pos       int
	ClauseIdx int
}

func stripNode(v, t int) hamNode  { return hamNode{Kind: 'S', VarIdx: v, Pos: t} }
func clauseNode(c int) hamNode    { return hamNode{Kind: 'C', ClauseIdx: c} }

// ThreeSATToDirectedHamiltonianCycle builds, for each variable, a
// "strip" of waypoints — one per clause mentioning that variable —
// that the cycle must traverse either left-to-right (the variable set
// true) or right-to-left (set false); strips are linked end-to-end
// into one big loop, with both directions of travel offered at every
// junction so the reduction doesn't fix an assignment in advance.
//
// At the waypoint for clause c on variable v's strip, the forward
// (true) direction offers a side trip through clauseNode(c) exactly
// when v appears positively in c; the backward (false) direction
// offers it exactly when v appears negated. A clause's node can only
// be reached by a detour from one of the (up to three) variables whose
// literal it contains, traversed in the direction that satisfies that
// literal — so the whole graph admits a Hamiltonian cycle (every
// waypoint and every clause node visited exactly once) iff some
// consistent true/false choice per variable satisfies every clause.
//
// This sidesteps the classical vertex-cover-gadget route documented in
// npc/doc.go: a per-vertex "is this vertex active" gate cannot be
// wired into a Hamiltonian-cycle instance without either leaving
// inactive gadget copies unreachable (breaking Hamiltonicity outright)
// or failing to bound how many vertices may activate — the per-
// variable binary direction used here needs no such bound, since every
// variable strip is always fully traversed in one direction or the
// other regardless of the formula's satisfiability.
func ThreeSATToDirectedHamiltonianCycle(inst ThreeSATInstance) (DirectedHamiltonianCycleInstance[hamNode], error) {
	g, err := graph.New[hamNode](graph.WithDirected(true))
	if err != nil {
		return DirectedHamiltonianCycleInstance[hamNode]{}, err
	}

	for c := range inst.Clauses {
		if _, err := g.AddVertex(clauseNode(c)); err != nil {
			return DirectedHamiltonianCycleInstance[hamNode]{}, err
		}
	}

	type occurrence struct {
		clause   int
		positive bool
	}
	occ := make([][]occurrence, inst.NumVars+1) // 1-based variable numbers
	for c, cl := range inst.Clauses {
		for _, lit := range cl {
			occ[lit.Var] = append(occ[lit.Var], occurrence{clause: c, positive: lit.Positive})
		}
	}

	addEdge := func(from, to hamNode) error {
		if g.HasEdge(from, to) {
			return nil
		}
		return g.ForceAdd(from, to, graph.UnitWeight)
	}

	ends := make([][2]hamNode, inst.NumVars+1) // [0]=left end, [1]=right end, per variable
	for v := 1; v <= inst.NumVars; v++ {
		occs := occ[v]
		cCount := len(occs)
		for t := 0; t <= cCount; t++ {
			if _, err := g.AddVertex(stripNode(v, t)); err != nil {
				return DirectedHamiltonianCycleInstance[hamNode]{}, err
			}
		}

		for t := 0; t < cCount; t++ {
			left, right := stripNode(v, t), stripNode(v, t+1)
			if err := addEdge(left, right); err != nil { // forward skip
				return DirectedHamiltonianCycleInstance[hamNode]{}, err
			}
			if err := addEdge(right, left); err != nil { // backward skip
				return DirectedHamiltonianCycleInstance[hamNode]{}, err
			}

			cn := clauseNode(occs[t].clause)
			if occs[t].positive {
				if err := addEdge(left, cn); err != nil {
					return DirectedHamiltonianCycleInstance[hamNode]{}, err
				}
				if err := addEdge(cn, right); err != nil {
					return DirectedHamiltonianCycleInstance[hamNode]{}, err
				}
			} else {
				if err := addEdge(right, cn); err != nil {
					return DirectedHamiltonianCycleInstance[hamNode]{}, err
				}
				if err := addEdge(cn, left); err != nil {
					return DirectedHamiltonianCycleInstance[hamNode]{}, err
				}
			}
		}

		ends[v] = [2]hamNode{stripNode(v, 0), stripNode(v, cCount)}
	}

	for v := 1; v <= inst.NumVars; v++ {
		next := v + 1
		if next > inst.NumVars {
			next = 1
		}
		for _, from := range ends[v] {
			for _, to := range ends[next] {
				if err := addEdge(from, to); err != nil {
					return DirectedHamiltonianCycleInstance[hamNode]{}, err
				}
			}
		}
	}

	return DirectedHamiltonianCycleInstance[hamNode]{G: g}, nil
}

// VertexCoverToDirectedHamiltonianCycle composes VertexCoverToSAT,
// SATToThreeSAT, and ThreeSATToDirectedHamiltonianCycle: the classical
// direct vertex-cover gadget for Hamiltonian cycle needs machinery
// (see ThreeSATToDirectedHamiltonianCycle's doc comment) this module
// does not attempt from scratch, so the reduction instead routes
// through the already-verified SAT leg.
func VertexCoverToDirectedHamiltonianCycle[V comparable](inst VertexCoverInstance[V]) (DirectedHamiltonianCycleInstance[hamNode], []V, error) {
	sat, order := VertexCoverToSAT(inst)
	three := SATToThreeSAT(sat)
	ham, err := ThreeSATToDirectedHamiltonianCycle(three)
	return ham, order, err
}

// VerifyDirectedHamiltonianCycle reports whether cycle lists every
// vertex of inst.G exactly once such that consecutive vertices
// (wrapping from the last back to the first) are joined by an arc.
func VerifyDirectedHamiltonianCycle[V comparable](inst DirectedHamiltonianCycleInstance[V], cycle []V) bool {
	verts := inst.G.Vertices()
	if len(cycle) != len(verts) {
		return false
	}
	seen := make(map[V]bool, len(cycle))
	for _, v := range cycle {
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	for _, v := range verts {
		if !seen[v] {
			return false
		}
	}
	for i := range cycle {
		next := cycle[(i+1)%len(cycle)]
		if !inst.G.HasEdge(cycle[i], next) {
			return false
		}
	}
	return true
}

// splitNode is the vertex type used by
// DirectedHamiltonianCycleToUndirectedHamiltonianCycle's vertex-split
// construction: each original vertex becomes three parts, In -> Mid ->
// Out, joined by undirected edges, so a directed arc u->w becomes the
// undirected edge (u.Out, w.In).
type splitNode[V comparable] struct {
	v    V
	part byte // 0 = in, 1 = mid, 2 = out
}

// DirectedHamiltonianCycleToUndirectedHamiltonianCycle is the standard
// vertex-splitting reduction: a directed Hamiltonian cycle must enter
// and leave each vertex through distinct arcs, which the undirected
// In-Mid-Out triple forces structurally (Mid has degree exactly 2, so
// any Hamiltonian cycle must pass straight through it), and a directed
// arc u->w survives as the undirected edge between u's Out and w's In.
func DirectedHamiltonianCycleToUndirectedHamiltonianCycle[V comparable](inst DirectedHamiltonianCycleInstance[V]) (UndirectedHamiltonianCycleInstance[splitNode[V]], error) {
	g, err := graph.New[splitNode[V]](graph.WithDirected(false))
	if err != nil {
		return UndirectedHamiltonianCycleInstance[splitNode[V]]{}, err
	}

	for _, v := range inst.G.Vertices() {
		in, mid, out := splitNode[V]{v, 0}, splitNode[V]{v, 1}, splitNode[V]{v, 2}
		if _, err := g.AddVertex(in); err != nil {
			return UndirectedHamiltonianCycleInstance[splitNode[V]]{}, err
		}
		if _, err := g.AddVertex(mid); err != nil {
			return UndirectedHamiltonianCycleInstance[splitNode[V]]{}, err
		}
		if _, err := g.AddVertex(out); err != nil {
			return UndirectedHamiltonianCycleInstance[splitNode[V]]{}, err
		}
		if err := g.ForceAdd(in, mid, graph.UnitWeight); err != nil {
			return UndirectedHamiltonianCycleInstance[splitNode[V]]{}, err
		}
		if err := g.ForceAdd(mid, out, graph.UnitWeight); err != nil {
			return UndirectedHamiltonianCycleInstance[splitNode[V]]{}, err
		}
	}

	for _, e := range inst.G.AllEdges() {
		u := splitNode[V]{e.From, 2}
		w := splitNode[V]{e.To, 0}
		if !g.HasEdge(u, w) {
			if err := g.ForceAdd(u, w, graph.UnitWeight); err != nil {
				return UndirectedHamiltonianCycleInstance[splitNode[V]]{}, err
			}
		}
	}

	return UndirectedHamiltonianCycleInstance[splitNode[V]]{G: g}, nil
}

// VerifyUndirectedHamiltonianCycle reports whether cycle lists every
// vertex of inst.G exactly once such that consecutive vertices
// (wrapping from the last back to the first) are joined by an edge.
func VerifyUndirectedHamiltonianCycle[V comparable](inst UndirectedHamiltonianCycleInstance[V], cycle []V) bool {
	verts := inst.G.Vertices()
	if len(cycle) != len(verts) {
		return false
	}
	seen := make(map[V]bool, len(cycle))
	for _, v := range cycle {
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	for _, v := range verts {
		if !seen[v] {
			return false
		}
	}
	for i := range cycle {
		next := cycle[(i+1)%len(cycle)]
		if !inst.G.HasEdge(cycle[i], next) && !inst.G.HasEdge(next, cycle[i]) {
			return false
		}
	}
	return true
}
