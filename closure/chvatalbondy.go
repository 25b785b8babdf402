package closure

import "github.com/katalvlaran/graphkit/graph"

// ChvatalBondyClosure computes the Bondy-Chvátal closure of undirected
// graph g: repeatedly, for any non-adjacent pair (u,v) whose degrees
// sum to at least n = g.Order(), add edge (u,v); repeat until no such
// pair remains. This is the classic sufficient-condition closure for
// Hamiltonicity (g is Hamiltonian iff its closure is). Returns a new
// undirected, unweighted graph; g itself is left untouched.
func ChvatalBondyClosure[V comparable](g graph.Graph[V]) (graph.Graph[V], error) {
	n := g.Order()
	vertices := g.Vertices()

	adj := make(map[V]map[V]bool, n)
	for _, v := range vertices {
		adj[v] = make(map[V]bool)
	}
	for _, e := range g.AllEdges() {
		if e.From == e.To {
			continue
		}
		adj[e.From][e.To] = true
		adj[e.To][e.From] = true
	}

	for {
		added := false
		for i := 0; i < len(vertices); i++ {
			u := vertices[i]
			for j := i + 1; j < len(vertices); j++ {
				v := vertices[j]
				if adj[u][v] {
					continue
				}
				if len(adj[u])+len(adj[v]) >= n {
					adj[u][v] = true
					adj[v][u] = true
					added = true
				}
			}
		}
		if !added {
			break
		}
	}

	out, err := graph.New[V]()
	if err != nil {
		return nil, err
	}
	for _, v := range vertices {
		if _, err := out.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for u, nbrs := range adj {
		for v := range nbrs {
			if !out.HasEdge(u, v) {
				if err := out.ForceAdd(u, v, graph.UnitWeight); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}
