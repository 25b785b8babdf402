package closure

import "github.com/katalvlaran/graphkit/graph"

// KCore returns the vertex set of g's k-core: the maximal induced
// subgraph in which every vertex has degree at least k, found by
// repeatedly peeling away vertices whose current degree falls below k
// until no more can be removed. Uses the caller-supplied k throughout.
func KCore[V comparable](g graph.Graph[V], k int) []V {
	degree := make(map[V]int, g.Order())
	adj := make(map[V]map[V]bool, g.Order())
	for _, v := range g.Vertices() {
		adj[v] = make(map[V]bool)
	}
	for _, e := range g.AllEdges() {
		if e.From == e.To {
			continue
		}
		adj[e.From][e.To] = true
		adj[e.To][e.From] = true
	}
	alive := make(map[V]bool, g.Order())
	for _, v := range g.Vertices() {
		degree[v] = len(adj[v])
		alive[v] = true
	}

	var queue []V
	for _, v := range g.Vertices() {
		if degree[v] < k {
			queue = append(queue, v)
		}
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if !alive[v] {
			continue
		}
		alive[v] = false
		for w := range adj[v] {
			if !alive[w] {
				continue
			}
			degree[w]--
			if degree[w] < k {
				queue = append(queue, w)
			}
		}
	}

	var core []V
	for _, v := range g.Vertices() {
		if alive[v] {
			core = append(core, v)
		}
	}

	return core
}
