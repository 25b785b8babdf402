package mst

import (
	"math"

	"github.com/katalvlaran/graphkit/graph"
	"github.com/katalvlaran/graphkit/pqheap"
)

// primItem is one addressable-heap entry: v's best known connecting
// edge so far (from, cost), every vertex starting at from=self,
// cost=+Inf.
type primItem[V comparable] struct {
	v, from V
	cost    float64
}

// Prim computes a minimum spanning tree of g starting from an arbitrary
// vertex, using an addressable binary heap to extract the cheapest
// frontier edge and relax neighbors in O(log n) via Decrease. Grounded
// directly on prim_kruskal/prim.go. Complexity: O(E log V).
func Prim[V comparable](g graph.Graph[V]) ([]graph.Edge[V], float64, error) {
	if g.Directed() || !g.Weighted() {
		return nil, 0, ErrInvalidGraph
	}
	vertices := g.Vertices()
	if len(vertices) <= 1 {
		return []graph.Edge[V]{}, 0, nil
	}

	less := func(a, b primItem[V]) bool { return a.cost < b.cost }
	h := pqheap.NewNodeHeap(less)
	handles := make(map[V]pqheap.Handle, len(vertices))
	inTree := make(map[V]bool, len(vertices))

	for i, v := range vertices {
		cost := math.Inf(1)
		from := v
		if i == 0 {
			cost = 0
		}
		handles[v] = h.Insert(primItem[V]{v: v, from: from, cost: cost})
	}

	tree := make([]graph.Edge[V], 0, len(vertices)-1)
	var total float64
	for !h.Empty() {
		item, err := h.RemoveRoot()
		if err != nil {
			break
		}
		if inTree[item.v] {
			continue
		}
		inTree[item.v] = true
		delete(handles, item.v)
		if item.v != item.from {
			tree = append(tree, graph.Edge[V]{From: item.from, To: item.v, Weight: item.cost})
			total += item.cost
		}

		neighbors, _ := g.Edges(item.v)
		for _, e := range neighbors {
			if inTree[e.To] {
				continue
			}
			if handle, ok := handles[e.To]; ok {
				_ = h.Decrease(handle, primItem[V]{v: e.To, from: item.v, cost: e.Weight})
			}
		}
	}

	if len(tree) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
