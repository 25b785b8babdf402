package search

import "github.com/katalvlaran/graphkit/graph"

// DFSResult collects the bookkeeping a depth-first traversal produces.
type DFSResult[V comparable] struct {
	Order  []V        // visit order (pre-order)
	Depth  map[V]int  // depth of each visited vertex
	Parent map[V]V    // DFS-tree parent of each non-root visited vertex
}

// DFSOptions configures a traversal.
type DFSOptions[V comparable] struct {
	// OnVisit is called when v is first reached; returning true requests
	// early termination of the whole traversal.
	OnVisit func(v V, depth int) (stop bool)
	// OnBacktrack is called as the recursion unwinds the edge
	// parent→child.
	OnBacktrack func(parent, child V)
}

// Option configures DFS/DFSForest.
type Option[V comparable] func(*DFSOptions[V])

// WithOnVisit sets the pre-order hook.
func WithOnVisit[V comparable](fn func(v V, depth int) bool) Option[V] {
	return func(o *DFSOptions[V]) { o.OnVisit = fn }
}

// WithOnBacktrack sets the backtrack hook.
func WithOnBacktrack[V comparable](fn func(parent, child V)) Option[V] {
	return func(o *DFSOptions[V]) { o.OnBacktrack = fn }
}

type dfsWalker[V comparable] struct {
	g       graph.Graph[V]
	opts    DFSOptions[V]
	visited map[V]bool
	res     *DFSResult[V]
	stopped bool
}

// DFS runs a single-source depth-first traversal from start.
func DFS[V comparable](g graph.Graph[V], start V, opts ...Option[V]) (*DFSResult[V], error) {
	if _, ok := g.IndexOf(start); !ok {
		return nil, ErrStartNotFound
	}
	w := newDFSWalker(g, opts)
	w.visit(start, 0)
	return w.res, nil
}

// DFSForest runs depth-first search from every unvisited vertex, in
// vertex order, covering disconnected graphs. OnVisit's early-stop
// request halts the whole forest walk.
func DFSForest[V comparable](g graph.Graph[V], opts ...Option[V]) *DFSResult[V] {
	w := newDFSWalker(g, opts)
	for _, v := range g.Vertices() {
		if w.stopped {
			break
		}
		if !w.visited[v] {
			w.visit(v, 0)
		}
	}
	return w.res
}

func newDFSWalker[V comparable](g graph.Graph[V], opts []Option[V]) *dfsWalker[V] {
	var o DFSOptions[V]
	for _, opt := range opts {
		opt(&o)
	}
	n := g.Order()
	return &dfsWalker[V]{
		g:       g,
		opts:    o,
		visited: make(map[V]bool, n),
		res: &DFSResult[V]{
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}
}

// visit recurses from v at depth, honoring an OnVisit early-stop request.
func (w *dfsWalker[V]) visit(v V, depth int) {
	if w.stopped || w.visited[v] {
		return
	}
	w.visited[v] = true
	w.res.Depth[v] = depth
	w.res.Order = append(w.res.Order, v)
	if w.opts.OnVisit != nil && w.opts.OnVisit(v, depth) {
		w.stopped = true
		return
	}

	neighbors, _ := w.g.Neighbors(v)
	for _, n := range neighbors {
		if w.stopped {
			return
		}
		if !w.visited[n] {
			w.res.Parent[n] = v
			w.visit(n, depth+1)
			if w.opts.OnBacktrack != nil {
				w.opts.OnBacktrack(v, n)
			}
		}
	}
}
