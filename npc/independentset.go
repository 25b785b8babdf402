package npc

import "github.com/katalvlaran/graphkit/graph"

// CliqueToIndependentSet builds the complement graph of inst.G: u-v is
// an edge in the complement iff it is not an edge of inst.G. A clique
// of size K in inst.G is exactly an independent set of size K in the
// complement, and vice versa, so K is carried through unchanged.
func CliqueToIndependentSet[V comparable](inst CliqueInstance[V]) (IndependentSetInstance[V], error) {
	comp, err := graph.New[V](graph.WithDirected(false))
	if err != nil {
		return IndependentSetInstance[V]{}, err
	}

	verts := inst.G.Vertices()
	for _, v := range verts {
		if _, err := comp.AddVertex(v); err != nil {
			return IndependentSetInstance[V]{}, err
		}
	}
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			u, v := verts[i], verts[j]
			if inst.G.HasEdge(u, v) || inst.G.HasEdge(v, u) {
				continue
			}
			if err := comp.ForceAdd(u, v, graph.UnitWeight); err != nil {
				return IndependentSetInstance[V]{}, err
			}
		}
	}

	return IndependentSetInstance[V]{G: comp, K: inst.K}, nil
}

// VerifyIndependentSet reports whether witness is a set of >= inst.K
// pairwise non-adjacent vertices of inst.G.
func VerifyIndependentSet[V comparable](inst IndependentSetInstance[V], witness []V) bool {
	if len(witness) < inst.K {
		return false
	}
	for i := 0; i < len(witness); i++ {
		for j := i + 1; j < len(witness); j++ {
			if witness[i] == witness[j] {
				return false
			}
			if inst.G.HasEdge(witness[i], witness[j]) || inst.G.HasEdge(witness[j], witness[i]) {
				return false
			}
		}
	}
	return true
}
