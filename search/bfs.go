package search

import "github.com/katalvlaran/graphkit/graph"

// BFSResult collects the bookkeeping a breadth-first traversal produces.
type BFSResult[V comparable] struct {
	Order  []V
	Depth  map[V]int
	Parent map[V]V
}

// BFSOptions configures a BFS traversal.
type BFSOptions[V comparable] struct {
	// OnVisit is called once per dequeued vertex; returning true stops
	// the scan early.
	OnVisit func(v V, depth int) (stop bool)
}

// BFSOption configures BFS.
type BFSOption[V comparable] func(*BFSOptions[V])

// WithBFSOnVisit sets the per-vertex hook.
func WithBFSOnVisit[V comparable](fn func(v V, depth int) bool) BFSOption[V] {
	return func(o *BFSOptions[V]) { o.OnVisit = fn }
}

// BFS runs a single-source breadth-first scan from start. Vertex order
// inside a layer follows the order g.Neighbors(v) reports.
func BFS[V comparable](g graph.Graph[V], start V, opts ...BFSOption[V]) (*BFSResult[V], error) {
	if _, ok := g.IndexOf(start); !ok {
		return nil, ErrStartNotFound
	}

	var o BFSOptions[V]
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Order()
	res := &BFSResult[V]{
		Order:  make([]V, 0, n),
		Depth:  make(map[V]int, n),
		Parent: make(map[V]V, n),
	}
	visited := map[V]bool{start: true}
	queue := []V{start}
	res.Depth[start] = 0

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, v)
		if o.OnVisit != nil && o.OnVisit(v, res.Depth[v]) {
			break
		}

		neighbors, _ := g.Neighbors(v)
		for _, nb := range neighbors {
			if !visited[nb] {
				visited[nb] = true
				res.Depth[nb] = res.Depth[v] + 1
				res.Parent[nb] = v
				queue = append(queue, nb)
			}
		}
	}

	return res, nil
}
