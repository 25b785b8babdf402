package shortest

import (
	"math"

	"github.com/katalvlaran/graphkit/graph"
	"github.com/katalvlaran/graphkit/search"
)

// DAGRelax computes single-source shortest distances over a directed
// acyclic graph in O(V+E) by relaxing every edge once, in topological
// order — valid even with negative edge weights, since a DAG has no
// cycle for negative weights to accumulate around. Fails with ErrNotDAG
// if g contains a cycle.
func DAGRelax[V comparable](g graph.Graph[V], start V) (map[V]float64, error) {
	if _, ok := g.IndexOf(start); !ok {
		return nil, ErrSourceNotFound
	}

	order, err := search.TopoSort(g)
	if err != nil {
		return nil, ErrNotDAG
	}

	dist := make(map[V]float64, len(order))
	for _, v := range order {
		dist[v] = math.Inf(1)
	}
	dist[start] = 0

	for _, u := range order {
		if math.IsInf(dist[u], 1) {
			continue
		}
		edges, _ := g.Edges(u)
		for _, e := range edges {
			if nd := dist[u] + e.Weight; nd < dist[e.To] {
				dist[e.To] = nd
			}
		}
	}

	return dist, nil
}
