package components

import "github.com/katalvlaran/graphkit/graph"

// tarjanState carries the bookkeeping Tarjan's algorithm threads
// through its DFS: discovery index, low-link value, an explicit stack of
// vertices on the current path, and a membership flag for that stack.
type tarjanState[V comparable] struct {
	g        graph.Graph[V]
	index    map[V]int
	lowlink  map[V]int
	onStack  map[V]bool
	stack    []V
	counter  int
	comps    [][]V
}

// SCC computes the strongly connected components of directed graph g
// via Tarjan's algorithm: a single DFS pass tracking each vertex's
// discovery index and low-link value, popping a complete component off
// an explicit stack whenever a DFS root's low-link equals its own
// index, following search.DFS's recursion/stack shape extended to full
// Tarjan. Complexity: O(V+E).
func SCC[V comparable](g graph.Graph[V]) [][]V {
	st := &tarjanState[V]{
		g:       g,
		index:   make(map[V]int, g.Order()),
		lowlink: make(map[V]int, g.Order()),
		onStack: make(map[V]bool, g.Order()),
	}
	for _, v := range g.Vertices() {
		if _, visited := st.index[v]; !visited {
			st.strongConnect(v)
		}
	}

	return st.comps
}

func (st *tarjanState[V]) strongConnect(v V) {
	st.index[v] = st.counter
	st.lowlink[v] = st.counter
	st.counter++
	st.stack = append(st.stack, v)
	st.onStack[v] = true

	neighbors, _ := st.g.Neighbors(v)
	for _, w := range neighbors {
		if _, visited := st.index[w]; !visited {
			st.strongConnect(w)
			if st.lowlink[w] < st.lowlink[v] {
				st.lowlink[v] = st.lowlink[w]
			}
		} else if st.onStack[w] {
			if st.index[w] < st.lowlink[v] {
				st.lowlink[v] = st.index[w]
			}
		}
	}

	if st.lowlink[v] == st.index[v] {
		var comp []V
		for {
			n := len(st.stack) - 1
			w := st.stack[n]
			st.stack = st.stack[:n]
			st.onStack[w] = false
			comp = append(comp, w)
			if w == v {
				break
			}
		}
		st.comps = append(st.comps, comp)
	}
}
