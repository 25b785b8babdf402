package shortest

import (
	"math"

	"github.com/katalvlaran/graphkit/graph"
)

// Johnson computes all-pairs shortest distances for graphs that may
// have negative edge weights but no negative cycle, in
// O(V^2 log V + VE): a Bellman-Ford run from a synthetic super-source
// (implemented without mutating g, by seeding every vertex's potential
// at zero rather than literally adding a zero-weight arc from a new
// vertex — the two are equivalent since every original vertex starts
// reachable at distance zero from the synthetic source either way)
// computes a potential h(v); edges
// are reweighted w'(u,v) = w(u,v) + h(u) - h(v), which is always
// non-negative, then Dijkstra runs once per source on the reweighted
// graph and results are un-reweighted back.
func Johnson[V comparable](g graph.Graph[V]) (map[V]map[V]float64, error) {
	vertices := g.Vertices()
	edges := g.AllEdges()

	h := make(map[V]float64, len(vertices))
	for _, v := range vertices {
		h[v] = 0
	}
	for i := 0; i < len(vertices); i++ {
		changed := false
		for _, e := range edges {
			if nd := h[e.From] + e.Weight; nd < h[e.To] {
				if i == len(vertices)-1 {
					return nil, ErrNegativeCycle
				}
				h[e.To] = nd
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	reweighted, err := reweightedCopy(g, h)
	if err != nil {
		return nil, err
	}

	out := make(map[V]map[V]float64, len(vertices))
	for _, s := range vertices {
		dist, _, err := Dijkstra[V](reweighted, s)
		if err != nil {
			return nil, err
		}
		row := make(map[V]float64, len(vertices))
		for _, v := range vertices {
			if math.IsInf(dist[v], 1) {
				row[v] = fwInf
				continue
			}
			row[v] = dist[v] - h[s] + h[v]
		}
		out[s] = row
	}

	return out, nil
}

// reweightedCopy builds a fresh graph with the same vertices and edges
// as g, each edge's weight shifted by w(u,v) + h(u) - h(v).
func reweightedCopy[V comparable](g graph.Graph[V], h map[V]float64) (graph.Graph[V], error) {
	out, err := graph.New[V](graph.WithDirected(true), graph.WithWeighted())
	if err != nil {
		return nil, err
	}
	for _, v := range g.Vertices() {
		if _, err := out.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for _, e := range g.AllEdges() {
		w := e.Weight + h[e.From] - h[e.To]
		if err := out.ForceAdd(e.From, e.To, w); err != nil {
			return nil, err
		}
	}

	return out, nil
}
