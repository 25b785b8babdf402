package mst

import (
	"github.com/katalvlaran/graphkit/dsu"
	"github.com/katalvlaran/graphkit/graph"
)

// Boruvka computes a minimum spanning tree of g by repeated phases:
// treat every vertex as a singleton component, and in each phase add,
// for every component, its minimum-weight outgoing edge (deduplicating
// when two components pick the same edge toward each other), halting
// once the component count stops decreasing. Complexity: O(E log V)
// across O(log V) phases of O(E) work each.
func Boruvka[V comparable](g graph.Graph[V]) ([]graph.Edge[V], float64, error) {
	if g.Directed() || !g.Weighted() {
		return nil, 0, ErrInvalidGraph
	}
	vertices := g.Vertices()
	if len(vertices) <= 1 {
		return []graph.Edge[V]{}, 0, nil
	}

	set := dsu.New[V]()
	for _, v := range vertices {
		set.MakeSet(v)
	}
	edges := undirectedEdges(g)

	tree := make([]graph.Edge[V], 0, len(vertices)-1)
	var total float64
	numComponents := len(vertices)

	for numComponents > 1 {
		cheapest := make(map[V]graph.Edge[V])
		for _, e := range edges {
			ra, rb := set.Find(e.From), set.Find(e.To)
			if ra == rb {
				continue
			}
			if cur, ok := cheapest[ra]; !ok || e.Weight < cur.Weight {
				cheapest[ra] = e
			}
			if cur, ok := cheapest[rb]; !ok || e.Weight < cur.Weight {
				cheapest[rb] = e
			}
		}
		if len(cheapest) == 0 {
			break // no cross-component edge left: graph is disconnected
		}

		progressed := false
		for _, e := range cheapest {
			if set.Union(e.From, e.To) {
				tree = append(tree, e)
				total += e.Weight
				numComponents--
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}

	if len(tree) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
