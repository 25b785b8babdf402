package components

import "github.com/katalvlaran/graphkit/graph"

// articState carries the DFS bookkeeping classic articulation-point
// detection needs: discovery time, low-link value, and the current
// recursion parent per vertex.
type articState[V comparable] struct {
	adj     map[V][]V
	disc    map[V]int
	low     map[V]int
	parent  map[V]V
	hasPar  map[V]bool
	timer   int
	cutSet  map[V]bool
}

// ArticulationPoints returns every cut vertex of g's underlying
// undirected skeleton: a vertex whose removal increases the number of
// connected components. Complexity: O(V+E).
func ArticulationPoints[V comparable](g graph.Graph[V]) []V {
	adj := buildUndirectedAdjacency(g)
	st := &articState[V]{
		adj:    adj,
		disc:   make(map[V]int, g.Order()),
		low:    make(map[V]int, g.Order()),
		parent: make(map[V]V),
		hasPar: make(map[V]bool),
		cutSet: make(map[V]bool),
	}

	for _, v := range g.Vertices() {
		if _, visited := st.disc[v]; !visited {
			st.dfs(v, true)
		}
	}

	out := make([]V, 0, len(st.cutSet))
	for v := range st.cutSet {
		out = append(out, v)
	}

	return out
}

func (st *articState[V]) dfs(u V, isRoot bool) {
	st.disc[u] = st.timer
	st.low[u] = st.timer
	st.timer++
	children := 0

	for _, w := range st.adj[u] {
		if st.hasPar[u] && w == st.parent[u] {
			// graph.Graph disallows parallel edges between the same pair,
			// so the parent back-edge appears at most once in adj[u].
			continue
		}
		if _, visited := st.disc[w]; !visited {
			st.parent[w] = u
			st.hasPar[w] = true
			children++
			st.dfs(w, false)
			if st.low[w] < st.low[u] {
				st.low[u] = st.low[w]
			}
			if !isRoot && st.low[w] >= st.disc[u] {
				st.cutSet[u] = true
			}
		} else if st.disc[w] < st.low[u] {
			st.low[u] = st.disc[w]
		}
	}
	if isRoot && children > 1 {
		st.cutSet[u] = true
	}
}
