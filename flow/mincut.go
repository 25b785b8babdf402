package flow

import (
	"github.com/katalvlaran/graphkit/graph"
)

// MinCut runs strategy to max-flow completion, then reads the min s-t
// cut off the resulting residual graph: the reachable set from s (via
// arcs with remaining capacity) versus the rest, with the cut itself
// being every original edge crossing from the reachable side to the
// unreachable side. Its weight equals the max-flow value, by the
// max-flow/min-cut theorem.
func MinCut[V comparable](g graph.Graph[V], source, sink V, strategy Strategy, opts FlowOptions) ([]graph.Edge[V], float64, error) {
	s, ok := g.IndexOf(source)
	if !ok {
		return nil, 0, ErrSourceNotFound
	}
	t, ok := g.IndexOf(sink)
	if !ok {
		return nil, 0, ErrSinkNotFound
	}

	r, err := buildResidual(g, opts)
	if err != nil {
		return nil, 0, err
	}

	_, value, err := run(r, s, t, strategy, opts)
	if err != nil {
		return nil, 0, err
	}

	reachable := reachableSet(r, s)

	var cut []graph.Edge[V]
	for _, e := range g.AllEdges() {
		u, _ := g.IndexOf(e.From)
		v, _ := g.IndexOf(e.To)
		if reachable[u] && !reachable[v] {
			cut = append(cut, e)
		}
	}

	return cut, value, nil
}

// reachableSet is the BFS closure of s over arcs with residual capacity
// still above eps.
func reachableSet(r *Residual, s int) []bool {
	seen := make([]bool, r.N())
	seen[s] = true
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, a := range r.Neighbors(u) {
			if a.cap > r.eps && !seen[a.to] {
				seen[a.to] = true
				queue = append(queue, a.to)
			}
		}
	}

	return seen
}
