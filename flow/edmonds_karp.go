package flow

import "math"

// EdmondsKarp is the Strategy that runs a single BFS in the residual
// graph from s, tracking each vertex's predecessor and the minimum
// capacity along the path discovered so far; if t is reached, it
// returns that one s->t path as a batch of steps with its bottleneck
// delta. Complexity: O(V+E) per call, O(VE^2) overall across the
// driver loop.
func EdmondsKarp(r *Residual, s, t int, opts FlowOptions) ([]Step, bool) {
	n := r.N()
	pred := make([]int, n)
	predCap := make([]float64, n)
	visited := make([]bool, n)
	for i := range pred {
		pred[i] = -1
	}
	visited[s] = true
	queue := []int{s}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == t {
			break
		}
		for _, a := range r.Neighbors(u) {
			if visited[a.to] || a.cap <= r.eps {
				continue
			}
			visited[a.to] = true
			pred[a.to] = u
			b := a.cap
			if u != s && predCap[u] < b {
				b = predCap[u]
			}
			predCap[a.to] = b
			queue = append(queue, a.to)
		}
	}

	if !visited[t] {
		return nil, false
	}

	delta := math.Inf(1)
	for v := t; pred[v] != -1; v = pred[v] {
		if predCap[v] < delta {
			delta = predCap[v]
		}
	}

	var steps []Step
	for v := t; pred[v] != -1; v = pred[v] {
		steps = append(steps, Step{U: pred[v], V: v, Delta: delta})
	}
	// reverse into source->sink order
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return steps, true
}
