package shortest

import "github.com/katalvlaran/graphkit/graph"

// BellmanFord computes single-source shortest distances from start,
// tolerating negative edge weights. It performs up to V-1 relaxation
// sweeps over every edge, exiting early if a sweep makes no change; a
// V-th sweep that would still relax an edge indicates a negative-weight
// cycle reachable from start, reported as ErrNegativeCycle.
func BellmanFord[V comparable](g graph.Graph[V], start V) (map[V]float64, map[V]V, error) {
	if _, ok := g.IndexOf(start); !ok {
		return nil, nil, ErrSourceNotFound
	}

	vertices := g.Vertices()
	edges := g.AllEdges()

	const inf = 1e18
	dist := make(map[V]float64, len(vertices))
	for _, v := range vertices {
		dist[v] = inf
	}
	dist[start] = 0
	parent := make(map[V]V)

	for i := 0; i < len(vertices)-1; i++ {
		changed := false
		for _, e := range edges {
			if dist[e.From] == inf {
				continue
			}
			if nd := dist[e.From] + e.Weight; nd < dist[e.To] {
				dist[e.To] = nd
				parent[e.To] = e.From
				changed = true
			}
		}
		if !changed {
			return dist, parent, nil
		}
	}

	for _, e := range edges {
		if dist[e.From] == inf {
			continue
		}
		if dist[e.From]+e.Weight < dist[e.To] {
			return nil, nil, ErrNegativeCycle
		}
	}

	return dist, parent, nil
}
