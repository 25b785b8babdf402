package flow

import "math"

// bfsLayers computes each vertex's BFS layer from s in r, -1 if
// unreached. The layer graph keeps only arcs that go strictly one
// layer forward.
func bfsLayers(r *Residual, s int) []int {
	layer := make([]int, r.N())
	for i := range layer {
		layer[i] = -1
	}
	layer[s] = 0
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, a := range r.Neighbors(u) {
			if a.cap <= r.eps || layer[a.to] != -1 {
				continue
			}
			layer[a.to] = layer[u] + 1
			queue = append(queue, a.to)
		}
	}

	return layer
}

// Dinic is the Strategy that rebuilds the layer graph from scratch,
// then finds one blocking flow in it by DFS with saturation, advancing
// a per-vertex "current arc" pointer so no edge is rescanned once
// exhausted within the phase. Complexity: O(V^2 E) overall (O(VE) per
// phase, O(V) phases).
func Dinic(r *Residual, s, t int, opts FlowOptions) ([]Step, bool) {
	layer := bfsLayers(r, s)
	if layer[t] < 0 {
		return nil, false
	}

	steps := blockingFlow(r, s, t, layer)
	if len(steps) == 0 {
		return nil, false
	}

	return steps, true
}

// blockingFlow finds every path of the current blocking flow in the
// layer graph, tracking capacity consumed so far locally (the real
// Residual is only mutated by the driver once the whole batch is
// verified) so successive paths within the same phase see each other's
// saturation.
func blockingFlow(r *Residual, s, t int, layer []int) []Step {
	consumed := make(map[[2]int]float64)
	avail := func(u, v int) float64 {
		return r.Cap(u, v) - consumed[[2]int{u, v}]
	}

	it := make([]int, r.N())
	var steps []Step

	var dfs func(u int, pushed float64) float64
	dfs = func(u int, pushed float64) float64 {
		if u == t {
			return pushed
		}
		neighbors := r.Neighbors(u)
		for ; it[u] < len(neighbors); it[u]++ {
			a := neighbors[it[u]]
			if layer[a.to] != layer[u]+1 {
				continue
			}
			rem := avail(u, a.to)
			if rem <= r.eps {
				continue
			}
			bottleneck := pushed
			if rem < bottleneck {
				bottleneck = rem
			}
			got := dfs(a.to, bottleneck)
			if got > r.eps {
				consumed[[2]int{u, a.to}] += got
				steps = append(steps, Step{U: u, V: a.to, Delta: got})

				return got
			}
		}

		return 0
	}

	for {
		got := dfs(s, math.Inf(1))
		if got <= r.eps {
			break
		}
	}

	return steps
}
