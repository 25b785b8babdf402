package bipartite

import (
	"github.com/katalvlaran/graphkit/flow"
	"github.com/katalvlaran/graphkit/graph"
)

// side tags a node in the synthetic matching network: the two
// synthetic endpoints plus every original vertex, wrapped so the whole
// thing stays one comparable type graph.Graph can index.
type side byte

const (
	sideSource side = iota
	sideSink
	sideOrig
)

type node[V comparable] struct {
	side side
	v    V
}

// MaxMatching computes a maximum matching on the bipartite graph g
// (parts a, b as produced by TwoColor/Parts) by building a unit-
// capacity flow network — synthetic source feeding every a-vertex,
// every g-edge between an a-vertex and a b-vertex, every b-vertex
// feeding a synthetic sink — and running this module's own flow
// package over it, rather than re-deriving Hopcroft-Karp's own
// augmenting-path search: max-flow on a unit-capacity bipartite
// construction carries the same graph-theoretic content. Returns the
// matched pairs (a-vertex, b-vertex).
func MaxMatching[V comparable](g graph.Graph[V], a, b []V) ([][2]V, error) {
	bSet := make(map[V]bool, len(b))
	for _, v := range b {
		bSet[v] = true
	}

	net, err := graph.New[node[V]](graph.WithDirected(true), graph.WithWeighted())
	if err != nil {
		return nil, err
	}
	src := node[V]{side: sideSource}
	snk := node[V]{side: sideSink}
	if _, err := net.AddVertex(src); err != nil {
		return nil, err
	}
	if _, err := net.AddVertex(snk); err != nil {
		return nil, err
	}
	for _, v := range a {
		n := node[V]{side: sideOrig, v: v}
		if _, err := net.AddVertex(n); err != nil {
			return nil, err
		}
		if err := net.SetEdge(src, n, 1); err != nil {
			return nil, err
		}
	}
	for _, v := range b {
		n := node[V]{side: sideOrig, v: v}
		if _, err := net.AddVertex(n); err != nil {
			return nil, err
		}
		if err := net.SetEdge(n, snk, 1); err != nil {
			return nil, err
		}
	}
	for _, v := range a {
		neighbors, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		for _, w := range neighbors {
			if !bSet[w] {
				continue
			}
			from := node[V]{side: sideOrig, v: v}
			to := node[V]{side: sideOrig, v: w}
			if net.HasEdge(from, to) {
				continue
			}
			if err := net.SetEdge(from, to, 1); err != nil {
				return nil, err
			}
		}
	}

	flowGraph, _, err := flow.MaxFlow[node[V]](net, src, snk, flow.Dinic, flow.FlowOptions{})
	if err != nil {
		return nil, err
	}

	var matched [][2]V
	for _, e := range flowGraph.AllEdges() {
		if e.From.side != sideOrig || e.To.side != sideOrig {
			continue
		}
		if e.Weight > 0.5 {
			matched = append(matched, [2]V{e.From.v, e.To.v})
		}
	}

	return matched, nil
}
