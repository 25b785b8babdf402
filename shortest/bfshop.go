package shortest

import "github.com/katalvlaran/graphkit/graph"

// BFSHop computes, for every vertex reachable from start, the minimum
// number of edges (hop count) on any path from start — the correct
// notion of "shortest path" when every edge is implicitly unit-weight.
// Unreached vertices are omitted. Complexity: O(V+E).
func BFSHop[V comparable](g graph.Graph[V], start V) (map[V]int, error) {
	if _, ok := g.IndexOf(start); !ok {
		return nil, ErrSourceNotFound
	}

	dist := map[V]int{start: 0}
	queue := []V{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		neighbors, _ := g.Neighbors(v)
		for _, n := range neighbors {
			if _, seen := dist[n]; !seen {
				dist[n] = dist[v] + 1
				queue = append(queue, n)
			}
		}
	}

	return dist, nil
}
