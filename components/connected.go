package components

import "github.com/katalvlaran/graphkit/graph"

// Connected labels every vertex of g (treated as undirected for the
// purpose of reachability — directed edges are traversed in both
// directions) with its connected-component index, numbered from 0 in
// first-visit order. Complexity: O(V+E).
func Connected[V comparable](g graph.Graph[V]) map[V]int {
	label := make(map[V]int, g.Order())
	undirected := buildUndirectedAdjacency(g)

	next := 0
	for _, v := range g.Vertices() {
		if _, seen := label[v]; seen {
			continue
		}
		queue := []V{v}
		label[v] = next
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, w := range undirected[u] {
				if _, seen := label[w]; !seen {
					label[w] = next
					queue = append(queue, w)
				}
			}
		}
		next++
	}

	return label
}

// buildUndirectedAdjacency returns, for every vertex, the set of
// vertices reachable by one edge in either direction — used by
// Connected and ArticulationPoints, both of which treat directed graphs
// as their underlying undirected skeleton.
func buildUndirectedAdjacency[V comparable](g graph.Graph[V]) map[V][]V {
	adj := make(map[V][]V, g.Order())
	for _, v := range g.Vertices() {
		neighbors, _ := g.Neighbors(v)
		adj[v] = append(adj[v], neighbors...)
		if g.Directed() {
			for _, n := range neighbors {
				adj[n] = append(adj[n], v)
			}
		}
	}

	return adj
}
