package npc

// VertexCoverToSAT encodes "does inst.G have a vertex cover of size <=
// inst.K" as CNF: one boolean variable x_v per vertex (true means v is
// in the cover), one clause x_u OR x_v per edge (at least one endpoint
// covers it), and a standard sequential-counter cardinality encoding
// (Sinz 2005) over auxiliary variables bounding the number of true
// x_v's to inst.K. The returned slice maps SAT variable i (1-based) to
// the vertex it represents, for i in [1, len(order)].
func VertexCoverToSAT[V comparable](inst VertexCoverInstance[V]) (SATInstance, []V) {
	order := inst.G.Vertices()
	n := len(order)
	x := func(i int) int { return i + 1 } // vertex order[i] -> variable i+1

	var clauses []Clause
	for _, e := range inst.G.AllEdges() {
		var ui, vi int = -1, -1
		for i, v := range order {
			if v == e.From {
				ui = i
			}
			if v == e.To {
				vi = i
			}
		}
		if ui < 0 || vi < 0 {
			continue
		}
		clauses = append(clauses, Clause{
			{Var: x(ui), Positive: true},
			{Var: x(vi), Positive: true},
		})
	}

	nextVar := n + 1
	k := inst.K
	switch {
	case k <= 0:
		for i := 0; i < n; i++ {
			clauses = append(clauses, Clause{{Var: x(i), Positive: false}})
		}
	case k >= n:
		// every subset already satisfies the bound; no cardinality clauses needed.
	default:
		// s[i][j] (i in [0,n-2], j in [1,k]) means "at least j of
		// x(0)..x(i) are true".
		s := make([][]int, n-1)
		for i := range s {
			s[i] = make([]int, k+1) // index 0 unused
			for j := 1; j <= k; j++ {
				s[i][j] = nextVar
				nextVar++
			}
		}
		lit := func(v int, positive bool) Literal { return Literal{Var: v, Positive: positive} }

		clauses = append(clauses, Clause{lit(x(0), false), lit(s[0][1], true)})
		for j := 2; j <= k; j++ {
			clauses = append(clauses, Clause{lit(s[0][j], false)})
		}

		for i := 1; i <= n-2; i++ {
			clauses = append(clauses, Clause{lit(x(i), false), lit(s[i][1], true)})
			clauses = append(clauses, Clause{lit(s[i-1][1], false), lit(s[i][1], true)})
			for j := 2; j <= k; j++ {
				clauses = append(clauses, Clause{lit(x(i), false), lit(s[i-1][j-1], false), lit(s[i][j], true)})
				clauses = append(clauses, Clause{lit(s[i-1][j], false), lit(s[i][j], true)})
			}
			clauses = append(clauses, Clause{lit(x(i), false), lit(s[i-1][k], false)})
		}

		if n >= 2 {
			clauses = append(clauses, Clause{lit(x(n-1), false), lit(s[n-2][k], false)})
		}
	}

	return SATInstance{NumVars: nextVar - 1, Clauses: clauses}, order
}

// IndependentSetToVertexCover reuses inst.G unchanged: the complement
// of an independent set is always a vertex cover, so a set of size
// >= inst.K independent vertices corresponds to a vertex cover of the
// remaining <= N-inst.K vertices.
func IndependentSetToVertexCover[V comparable](inst IndependentSetInstance[V]) VertexCoverInstance[V] {
	n := len(inst.G.Vertices())
	return VertexCoverInstance[V]{G: inst.G, K: n - inst.K}
}

// VerifyVertexCover reports whether witness (size <= inst.K) touches
// every edge of inst.G.
func VerifyVertexCover[V comparable](inst VertexCoverInstance[V], witness []V) bool {
	if len(witness) > inst.K {
		return false
	}
	in := make(map[V]bool, len(witness))
	for _, v := range witness {
		in[v] = true
	}
	for _, e := range inst.G.AllEdges() {
		if !in[e.From] && !in[e.To] {
			return false
		}
	}
	return true
}
