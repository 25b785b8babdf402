package npc

import (
	"github.com/katalvlaran/graphkit/dsu"
	"github.com/katalvlaran/graphkit/graph"
)

// FVSVertex is the sum type for VertexCoverToFeedbackVertexSet's
// output graph: either one of the original instance's vertices
// (Synthetic false, V set), or a synthetic per-edge vertex introduced
// by the triangle gadget (Synthetic true, EdgeIdx the index into
// inst.G.AllEdges() of the edge it was attached to).
type FVSVertex[V comparable] struct {
	Synthetic bool
	V         V
	EdgeIdx   int
}

// VertexCoverToFeedbackVertexSet attaches, to every edge (u, v) of
// inst.G, a fresh degree-2 vertex w_e adjacent to both u and v,
// forming a triangle u-v-w_e while keeping the original edge u-v.
//
// Any vertex cover of inst.G already hits every cycle already present
// in inst.G (a cycle's edges are all covered, so at least one of its
// vertices must be in the cover), and it hits every new triangle too
// (the cover touches edge (u, v), so u or v is in it). So a vertex
// cover of size K is directly a feedback vertex set of size K.
//
// Conversely, a feedback vertex set F of size <= K must, for every
// triangle gadget, contain one of {u, v, w_e}: if it only contained
// w_e, swapping w_e out for u (or v) still breaks the triangle (w_e
// has no other incident edges) without growing F or uncovering any
// other cycle, so F can always be normalized to avoid synthetic
// vertices while remaining a valid feedback vertex set of the same
// size — and a normalized F, containing u or v for every edge, is
// exactly a vertex cover.
func VertexCoverToFeedbackVertexSet[V comparable](inst VertexCoverInstance[V]) (FeedbackVertexSetInstance[FVSVertex[V]], error) {
	g, err := graph.New[FVSVertex[V]](graph.WithDirected(false))
	if err != nil {
		return FeedbackVertexSetInstance[FVSVertex[V]]{}, err
	}

	for _, v := range inst.G.Vertices() {
		if _, err := g.AddVertex(FVSVertex[V]{V: v}); err != nil {
			return FeedbackVertexSetInstance[FVSVertex[V]]{}, err
		}
	}

	edges := inst.G.AllEdges()
	for i, e := range edges {
		w := FVSVertex[V]{Synthetic: true, EdgeIdx: i}
		if _, err := g.AddVertex(w); err != nil {
			return FeedbackVertexSetInstance[FVSVertex[V]]{}, err
		}
		uv := FVSVertex[V]{V: e.From}
		vv := FVSVertex[V]{V: e.To}
		if err := g.ForceAdd(uv, vv, graph.UnitWeight); err != nil {
			return FeedbackVertexSetInstance[FVSVertex[V]]{}, err
		}
		if err := g.ForceAdd(uv, w, graph.UnitWeight); err != nil {
			return FeedbackVertexSetInstance[FVSVertex[V]]{}, err
		}
		if err := g.ForceAdd(w, vv, graph.UnitWeight); err != nil {
			return FeedbackVertexSetInstance[FVSVertex[V]]{}, err
		}
	}

	return FeedbackVertexSetInstance[FVSVertex[V]]{G: g, K: inst.K}, nil
}

// VerifyFeedbackVertexSet reports whether removing witness from
// inst.G leaves a forest: every edge not touching witness is added to
// a disjoint-set forest, and a second union of two vertices already in
// the same set witnesses a cycle.
func VerifyFeedbackVertexSet[V comparable](inst FeedbackVertexSetInstance[V], witness []V) bool {
	if len(witness) > inst.K {
		return false
	}
	removed := make(map[V]bool, len(witness))
	for _, v := range witness {
		removed[v] = true
	}

	d := dsu.New[V]()
	for _, v := range inst.G.Vertices() {
		if !removed[v] {
			d.MakeSet(v)
		}
	}
	seen := make(map[[2]V]bool)
	for _, e := range inst.G.AllEdges() {
		if removed[e.From] || removed[e.To] || e.From == e.To {
			continue
		}
		if !inst.G.Directed() {
			if seen[[2]V{e.To, e.From}] {
				continue // reverse listing of an undirected edge already added
			}
			seen[[2]V{e.From, e.To}] = true
		}
		if !d.Union(e.From, e.To) {
			return false
		}
	}
	return true
}
