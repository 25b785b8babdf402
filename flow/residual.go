package flow

// resArc is one residual adjacency-list entry: a destination vertex
// index and its remaining capacity.
type resArc struct {
	to  int
	cap float64
}

// Residual is the Ford-Fulkerson residual graph: a per-vertex adjacency
// slice plus a per-vertex map ptr[u][v] giving O(1) "does arc u->v
// exist, and at what slice position" lookup, so the driver can mutate
// exactly the arcs an augmenting step touches without rescanning a
// neighbor list.
//
// Arcs are removed via swap-with-last (mirroring graph.List's own
// renumbering discipline) so every mutation stays O(1); the ptr table
// is kept in lockstep with each swap.
type Residual struct {
	n   int
	adj [][]resArc
	ptr []map[int]int // ptr[u][v] = index into adj[u], or absent
	eps float64
}

// newResidual allocates an empty residual graph over n vertices.
func newResidual(n int, eps float64) *Residual {
	r := &Residual{n: n, adj: make([][]resArc, n), ptr: make([]map[int]int, n), eps: eps}
	for i := range r.ptr {
		r.ptr[i] = make(map[int]int)
	}

	return r
}

// N returns the number of vertices.
func (r *Residual) N() int { return r.n }

// Cap returns the residual capacity of arc u->v, 0 if absent.
func (r *Residual) Cap(u, v int) float64 {
	if i, ok := r.ptr[u][v]; ok {
		return r.adj[u][i].cap
	}

	return 0
}

// Neighbors returns every residual arc leaving u.
func (r *Residual) Neighbors(u int) []resArc {
	return r.adj[u]
}

// add increases (creating if absent) the residual capacity of arc u->v
// by delta. delta may be negative; a result at or below eps removes
// the arc entirely via swap-with-last.
func (r *Residual) add(u, v int, delta float64) {
	if i, ok := r.ptr[u][v]; ok {
		r.adj[u][i].cap += delta
		if r.adj[u][i].cap <= r.eps {
			r.removeAt(u, i)
		}
		return
	}
	if delta <= r.eps {
		return
	}
	r.adj[u] = append(r.adj[u], resArc{to: v, cap: delta})
	r.ptr[u][v] = len(r.adj[u]) - 1
}

// set overwrites (creating if absent) the residual capacity of arc
// u->v to cap, removing the arc if cap <= eps.
func (r *Residual) set(u, v int, capVal float64) {
	if capVal <= r.eps {
		if i, ok := r.ptr[u][v]; ok {
			r.removeAt(u, i)
		}
		return
	}
	if i, ok := r.ptr[u][v]; ok {
		r.adj[u][i].cap = capVal
		return
	}
	r.adj[u] = append(r.adj[u], resArc{to: v, cap: capVal})
	r.ptr[u][v] = len(r.adj[u]) - 1
}

// removeAt deletes adj[u][i] via swap-with-last, repairing ptr[u] for
// whichever arc moved into slot i.
func (r *Residual) removeAt(u, i int) {
	removedTo := r.adj[u][i].to
	last := len(r.adj[u]) - 1
	if i != last {
		r.adj[u][i] = r.adj[u][last]
		r.ptr[u][r.adj[u][i].to] = i
	}
	r.adj[u] = r.adj[u][:last]
	delete(r.ptr[u], removedTo)
}
