package shortest

import (
	"math"

	"github.com/katalvlaran/graphkit/graph"
	"github.com/katalvlaran/graphkit/pqheap"
)

// Options configures Dijkstra via the module's functional-options
// convention.
type Options struct {
	// ReturnPath requests the predecessor map for path reconstruction.
	ReturnPath bool
	// MaxDistance, if > 0, stops exploring past this tentative distance.
	MaxDistance float64
}

// Option configures Dijkstra.
type Option func(*Options)

// WithReturnPath requests the predecessor map alongside distances.
func WithReturnPath() Option { return func(o *Options) { o.ReturnPath = true } }

// WithMaxDistance caps exploration at the given tentative distance.
func WithMaxDistance(max float64) Option { return func(o *Options) { o.MaxDistance = max } }

type dijkstraItem[V comparable] struct {
	vertex V
	dist   float64
}

// Dijkstra computes single-source shortest distances from start using
// an addressable Fibonacci heap for its decrease-key step. Fails with
// ErrNegativeWeight if
// any edge in g has a negative weight, since Dijkstra's correctness
// depends on non-negative weights; the pre-scan catches that up front
// instead of surfacing a silently wrong distance.
func Dijkstra[V comparable](g graph.Graph[V], start V, opts ...Option) (map[V]float64, map[V]V, error) {
	if _, ok := g.IndexOf(start); !ok {
		return nil, nil, ErrSourceNotFound
	}

	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	for _, e := range g.AllEdges() {
		if e.Weight < 0 {
			return nil, nil, ErrNegativeWeight
		}
	}

	dist := make(map[V]float64, g.Order())
	for _, v := range g.Vertices() {
		dist[v] = math.Inf(1)
	}
	dist[start] = 0

	var parent map[V]V
	if o.ReturnPath {
		parent = make(map[V]V)
	}

	less := func(a, b dijkstraItem[V]) bool { return a.dist < b.dist }
	h := pqheap.NewFibonacci(less)
	handles := make(map[V]pqheap.FibonacciHandle[dijkstraItem[V]], g.Order())
	handles[start] = h.Insert(dijkstraItem[V]{vertex: start, dist: 0})

	done := make(map[V]bool, g.Order())
	for !h.Empty() {
		item, err := h.RemoveRoot()
		if err != nil {
			break
		}
		u := item.vertex
		if done[u] {
			continue
		}
		done[u] = true
		if o.MaxDistance > 0 && item.dist > o.MaxDistance {
			break
		}

		edges, _ := g.Edges(u)
		for _, e := range edges {
			v := e.To
			if done[v] {
				continue
			}
			nd := dist[u] + e.Weight
			if nd < dist[v] {
				dist[v] = nd
				if o.ReturnPath {
					parent[v] = u
				}
				if handle, ok := handles[v]; ok {
					_ = h.Decrease(handle, dijkstraItem[V]{vertex: v, dist: nd})
				} else {
					handles[v] = h.Insert(dijkstraItem[V]{vertex: v, dist: nd})
				}
			}
		}
	}

	return dist, parent, nil
}
