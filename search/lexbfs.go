package search

import "github.com/katalvlaran/graphkit/graph"

// LexBFS computes a lexicographic breadth-first-search ordering via
// partition refinement: state is an ordered list of vertex sets. At
// each step the back of the frontmost non-empty set is picked and
// recorded, then every set touched by that vertex's neighbors is split
// into "neighbors" (kept in front) and "non-neighbors" (kept after).
//
// This reference implementation favors clarity over an O(1)
// vertex→set lookup index: each refine step scans every live set once,
// O(n) per step, O(n²) overall — ample for the graph sizes this module
// targets.
func LexBFS[V comparable](g graph.Graph[V]) []V {
	partition := [][]V{append([]V(nil), g.Vertices()...)}
	order := make([]V, 0, g.Order())

	for len(partition) > 0 {
		front := partition[0]
		if len(front) == 0 {
			partition = partition[1:]
			continue
		}

		p := front[len(front)-1]
		partition[0] = front[:len(front)-1]
		order = append(order, p)

		neighbors, _ := g.Neighbors(p)
		neighborSet := make(map[V]bool, len(neighbors))
		for _, n := range neighbors {
			neighborSet[n] = true
		}

		var refined [][]V
		for _, set := range partition {
			if len(set) == 0 {
				continue
			}
			var in, out []V
			for _, v := range set {
				if neighborSet[v] {
					in = append(in, v)
				} else {
					out = append(out, v)
				}
			}
			if len(in) > 0 {
				refined = append(refined, in)
			}
			if len(out) > 0 {
				refined = append(refined, out)
			}
		}
		partition = refined
	}

	return order
}
