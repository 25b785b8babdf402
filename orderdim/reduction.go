package orderdim

import (
	"github.com/katalvlaran/graphkit/closure"
	"github.com/katalvlaran/graphkit/graph"
)

// ComparabilityGraph3D builds the directed comparability relation of
// pts: arc i->j iff Dominates3D(pts, i, j). The result is acyclic
// (dominance is a strict partial order), ready for TransitiveReduction.
func ComparabilityGraph3D(pts []Point3D) (graph.Graph[int], error) {
	g, err := graph.New[int](graph.WithDirected(true))
	if err != nil {
		return nil, err
	}
	for i := range pts {
		if _, err := g.AddVertex(i); err != nil {
			return nil, err
		}
	}

	for i := 0; i < len(pts); i++ {
		for j := 0; j < len(pts); j++ {
			if i == j {
				continue
			}
			if Dominates3D(pts, i, j) {
				if err := g.ForceAdd(i, j, graph.UnitWeight); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// TransitiveReduction computes the Hasse diagram of a DAG g: the
// minimal edge set whose transitive closure reproduces g's own
// reachability relation, generalized here to any acyclic graph.Graph
// rather than only a fixed-dimension comparability graph. An edge u->v
// is redundant, and dropped, when some other vertex w is reachable
// from u and itself reaches v — reuses closure.TransitiveClosure for
// that reachability test rather than re-deriving it.
func TransitiveReduction[V comparable](g graph.Graph[V]) (graph.Graph[V], error) {
	reach, err := closure.TransitiveClosure[V](g)
	if err != nil {
		return nil, err
	}

	out, err := graph.New[V](graph.WithDirected(true))
	if err != nil {
		return nil, err
	}
	for _, v := range g.Vertices() {
		if _, err := out.AddVertex(v); err != nil {
			return nil, err
		}
	}

	for _, e := range g.AllEdges() {
		if e.From == e.To {
			continue
		}
		redundant := false
		through, err := reach.Neighbors(e.From)
		if err != nil {
			return nil, err
		}
		for _, w := range through {
			if w == e.From || w == e.To {
				continue
			}
			if reach.HasEdge(w, e.To) {
				redundant = true
				break
			}
		}
		if !redundant {
			if err := out.ForceAdd(e.From, e.To, e.Weight); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
