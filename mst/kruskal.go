package mst

import (
	"sort"

	"github.com/katalvlaran/graphkit/dsu"
	"github.com/katalvlaran/graphkit/graph"
)

// Kruskal computes a minimum spanning tree of g by sorting edges
// ascending and adding each cross-component edge via union-find,
// stopping once the tree has order-1 edges, using dsu.DSU for the
// union-find bookkeeping. Complexity: O(E log E).
func Kruskal[V comparable](g graph.Graph[V]) ([]graph.Edge[V], float64, error) {
	if g.Directed() || !g.Weighted() {
		return nil, 0, ErrInvalidGraph
	}
	vertices := g.Vertices()
	if len(vertices) <= 1 {
		return []graph.Edge[V]{}, 0, nil
	}

	edges := undirectedEdges(g)
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	set := dsu.New[V]()
	for _, v := range vertices {
		set.MakeSet(v)
	}

	tree := make([]graph.Edge[V], 0, len(vertices)-1)
	var total float64
	for _, e := range edges {
		if set.Find(e.From) == set.Find(e.To) {
			continue
		}
		set.Union(e.From, e.To)
		tree = append(tree, e)
		total += e.Weight
		if len(tree) == len(vertices)-1 {
			break
		}
	}

	if len(tree) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// undirectedEdges collects every edge of g once (u,v with u<v by first
// occurrence), since g.AllEdges() reports undirected edges in both
// directions.
func undirectedEdges[V comparable](g graph.Graph[V]) []graph.Edge[V] {
	seen := make(map[[2]int]bool)
	var out []graph.Edge[V]
	for _, e := range g.AllEdges() {
		ui, _ := g.IndexOf(e.From)
		vi, _ := g.IndexOf(e.To)
		key := [2]int{ui, vi}
		if ui > vi {
			key = [2]int{vi, ui}
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}

	return out
}
