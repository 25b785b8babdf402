package closure

import (
	"github.com/katalvlaran/graphkit/graph"
	"github.com/katalvlaran/graphkit/spacematrix"
)

// TransitiveClosure computes g's reachability relation via a
// Floyd-Warshall-style boolean table built on spacematrix.Matrix's
// O(1)-initialized storage: reach[i][j] starts true for
// every direct edge, then for every intermediate k, reach[i][j] is set
// whenever reach[i][k] and reach[k][j] both hold. Returns a new
// directed, unweighted graph with the same vertex set, containing arc
// u->v (u != v) iff v is reachable from u in g.
func TransitiveClosure[V comparable](g graph.Graph[V]) (graph.Graph[V], error) {
	n := g.Order()

	out, err := graph.New[V](graph.WithDirected(true))
	if err != nil {
		return nil, err
	}
	for _, v := range g.Vertices() {
		if _, err := out.AddVertex(v); err != nil {
			return nil, err
		}
	}
	if n == 0 {
		return out, nil
	}

	reach, err := spacematrix.New[bool](n, n, false)
	if err != nil {
		return nil, err
	}

	for _, e := range g.AllEdges() {
		ui, _ := g.IndexOf(e.From)
		vi, _ := g.IndexOf(e.To)
		_ = reach.Set(ui, vi, true)
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik, _ := reach.Get(i, k)
			if !ik {
				continue
			}
			for j := 0; j < n; j++ {
				kj, _ := reach.Get(k, j)
				if kj {
					_ = reach.Set(i, j, true)
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			ij, _ := reach.Get(i, j)
			if !ij {
				continue
			}
			from, _ := g.NameAt(i)
			to, _ := g.NameAt(j)
			if err := out.ForceAdd(from, to, graph.UnitWeight); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
