package approx

import (
	"github.com/katalvlaran/graphkit/graph"
	"github.com/katalvlaran/graphkit/pqheap"
)

// degreeItem is one lazy-heap entry: vertex v believed (as of push
// time) to have degree deg.
type degreeItem[V comparable] struct {
	v   V
	deg int
}

// VertexCover returns a 2-approximate minimum vertex cover of g's
// undirected skeleton via edge-doubling: repeatedly take the
// highest-current-degree vertex with at least one remaining edge, add
// BOTH it and one of its neighbors to the cover (the "doubling" that
// bounds the result to twice the size of any maximal matching, hence
// twice OPT), then delete every edge incident to either. A plain
// pqheap.Heap drives vertex selection with lazy invalidation (stale
// entries are pushed over rather than updated in place) since
// the approximation ratio does not depend on always popping the true
// maximum — only on eventually covering every edge.
func VertexCover[V comparable](g graph.Graph[V]) []V {
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

	h := pqheap.NewHeap(func(a, b degreeItem[V]) bool { return a.deg > b.deg })
	for v, nbrs := range adj {
		if len(nbrs) > 0 {
			h.Insert(degreeItem[V]{v: v, deg: len(nbrs)})
		}
	}

	remove := func(v V) {
		for w := range adj[v] {
			delete(adj[w], v)
			if len(adj[w]) > 0 {
				h.Insert(degreeItem[V]{v: w, deg: len(adj[w])})
			}
		}
		adj[v] = make(map[V]bool)
	}

	cover := make(map[V]bool)
	var out []V
	for !h.Empty() {
		item, _ := h.RemoveRoot()
		if len(adj[item.v]) != item.deg || len(adj[item.v]) == 0 {
			continue
		}

		var partner V
		for w := range adj[item.v] {
			partner = w
			break
		}

		for _, u := range []V{item.v, partner} {
			if !cover[u] {
				cover[u] = true
				out = append(out, u)
			}
		}

		remove(item.v)
		remove(partner)
	}

	return out
}
