package npc

import "github.com/katalvlaran/graphkit/graph"

// occurrence identifies one literal occurrence of a 3-CNF instance:
// clause index * 3 + position within the clause (0, 1, or 2).
func occurrence(clause, pos int) int { return clause*3 + pos }

// ThreeSATToClique builds Karp's literal-occurrence graph: one vertex
// per literal occurrence, an edge between two occurrences in
// different clauses unless they are the same variable negated against
// each other. A satisfying assignment picks one true literal per
// clause; those occurrences are pairwise compatible (different
// clauses, never mutually negating) and so form a clique of size
// NumClauses — and conversely any clique of that size must take
// exactly one occurrence per clause, giving a consistent assignment.
func ThreeSATToClique(inst ThreeSATInstance) (CliqueInstance[int], error) {
	g, err := graph.New[int](graph.WithDirected(false))
	if err != nil {
		return CliqueInstance[int]{}, err
	}

	for ci := range inst.Clauses {
		for p := 0; p < 3; p++ {
			if _, err := g.AddVertex(occurrence(ci, p)); err != nil {
				return CliqueInstance[int]{}, err
			}
		}
	}

	for ci := range inst.Clauses {
		for cj := ci + 1; cj < len(inst.Clauses); cj++ {
			for pi := 0; pi < 3; pi++ {
				for pj := 0; pj < 3; pj++ {
					li, lj := inst.Clauses[ci][pi], inst.Clauses[cj][pj]
					if li.Var == lj.Var && li.Positive != lj.Positive {
						continue // mutually negating: not compatible
					}
					u, v := occurrence(ci, pi), occurrence(cj, pj)
					if g.HasEdge(u, v) {
						continue
					}
					if err := g.ForceAdd(u, v, graph.UnitWeight); err != nil {
						return CliqueInstance[int]{}, err
					}
				}
			}
		}
	}

	return CliqueInstance[int]{G: g, K: len(inst.Clauses)}, nil
}

// VerifyClique reports whether witness is a set of >= inst.K pairwise
// adjacent vertices of inst.G.
func VerifyClique[V comparable](inst CliqueInstance[V], witness []V) bool {
	if len(witness) < inst.K {
		return false
	}
	for i := 0; i < len(witness); i++ {
		for j := i + 1; j < len(witness); j++ {
			if witness[i] == witness[j] {
				return false
			}
			if !inst.G.HasEdge(witness[i], witness[j]) {
				return false
			}
		}
	}
	return true
}
