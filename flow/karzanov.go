package flow

// Karzanov is the Strategy that runs preflow-push on the layer graph,
// alternating a forward sweep (BFS order: push each overflowed
// vertex's excess along its current-pointer edge, partial pushes
// allowed, pointer only advances once that edge saturates) and a
// reverse sweep (reverse BFS order: return any excess still stuck at a
// vertex back along the arcs that fed it, then freeze the vertex out of
// future scans) until a forward sweep makes no further progress — at
// which point the phase has reached a blocking flow. Complexity: O(V^3).
func Karzanov(r *Residual, s, t int, opts FlowOptions) ([]Step, bool) {
	layer := bfsLayers(r, s)
	if layer[t] < 0 {
		return nil, false
	}

	steps := karzanovPhase(r, s, t, layer)
	if len(steps) == 0 {
		return nil, false
	}

	return steps, true
}

func karzanovPhase(r *Residual, s, t int, layer []int) []Step {
	flow := make(map[[2]int]float64)
	excess := make(map[int]float64)
	frozen := make(map[int]bool)
	predList := make(map[int][]int)
	ptr := make([]int, r.N())
	eps := r.eps

	avail := func(u, v int) float64 { return r.Cap(u, v) - flow[[2]int{u, v}] }
	pushForward := func(u, v int, amt float64) {
		key := [2]int{u, v}
		if flow[key] <= eps {
			predList[v] = append(predList[v], u)
		}
		flow[key] += amt
		excess[v] += amt
	}

	order := vertexOrderByLayer(layer, s, false)
	revOrder := vertexOrderByLayer(layer, s, true)

	for _, a := range r.Neighbors(s) {
		if layer[a.to] != 1 {
			continue
		}
		if amt := avail(s, a.to); amt > eps {
			pushForward(s, a.to, amt)
		}
	}

	for {
		forwardProgress := false
		for _, v := range order {
			if frozen[v] || v == t {
				continue
			}
			for excess[v] > eps {
				neighbors := r.Neighbors(v)
				advanced := false
				for ptr[v] < len(neighbors) {
					a := neighbors[ptr[v]]
					if layer[a.to] == layer[v]+1 && !frozen[a.to] {
						rem := avail(v, a.to)
						if rem > eps {
							amt := excess[v]
							if rem < amt {
								amt = rem
							}
							pushForward(v, a.to, amt)
							excess[v] -= amt
							forwardProgress = true
							advanced = true
							if amt >= rem-eps {
								ptr[v]++
							}
							break
						}
					}
					ptr[v]++
				}
				if !advanced {
					break
				}
			}
		}

		backwardProgress := false
		for _, v := range revOrder {
			if frozen[v] || v == t || v == s || excess[v] <= eps {
				continue
			}
			preds := predList[v]
			for len(preds) > 0 && excess[v] > eps {
				u := preds[len(preds)-1]
				key := [2]int{u, v}
				cur := flow[key]
				if cur <= eps {
					preds = preds[:len(preds)-1]
					continue
				}
				amt := excess[v]
				if cur < amt {
					amt = cur
				}
				flow[key] -= amt
				if flow[key] <= eps {
					flow[key] = 0
					preds = preds[:len(preds)-1]
				}
				excess[v] -= amt
				excess[u] += amt
				backwardProgress = true
			}
			predList[v] = preds
			if excess[v] <= eps {
				frozen[v] = true
			}
		}

		if !forwardProgress && !backwardProgress {
			break
		}
	}

	var steps []Step
	for pair, amt := range flow {
		if amt > eps {
			steps = append(steps, Step{U: pair[0], V: pair[1], Delta: amt})
		}
	}

	return steps
}

// vertexOrderByLayer returns every layered vertex except s, in ascending
// (or, if reverse, descending) layer order.
func vertexOrderByLayer(layer []int, s int, reverse bool) []int {
	maxLayer := 0
	for _, l := range layer {
		if l > maxLayer {
			maxLayer = l
		}
	}
	buckets := make([][]int, maxLayer+1)
	for v, l := range layer {
		if l < 0 || v == s {
			continue
		}
		buckets[l] = append(buckets[l], v)
	}

	var out []int
	if reverse {
		for l := maxLayer; l >= 0; l-- {
			out = append(out, buckets[l]...)
		}
	} else {
		for l := 0; l <= maxLayer; l++ {
			out = append(out, buckets[l]...)
		}
	}

	return out
}
