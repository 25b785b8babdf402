package flow

import (
	"fmt"

	"github.com/katalvlaran/graphkit/graph"
)

// buildResidual constructs a fresh Residual from g's capacities: for
// every edge (u,v,w), a forward residual arc of capacity w (parallel
// edges toward the same pair are summed). Self-loops are impossible
// (graph.Graph rejects them at insertion) so none need skipping here.
func buildResidual[V comparable](g graph.Graph[V], opts FlowOptions) (*Residual, error) {
	n := g.Order()
	eps := opts.epsilon()
	r := newResidual(n, eps)
	for _, e := range g.AllEdges() {
		if e.Weight < -eps {
			return nil, EdgeError{From: fmt.Sprint(e.From), To: fmt.Sprint(e.To), Cap: e.Weight}
		}
		u, _ := g.IndexOf(e.From)
		v, _ := g.IndexOf(e.To)
		r.add(u, v, e.Weight)
	}

	return r, nil
}

// run is the Ford-Fulkerson driver: repeatedly call strategy, verify
// flow conservation across the returned batch, then
// apply each step's effect on both the tracked flow values and the
// residual graph, stopping when the strategy signals no path remains.
// value is computed once at the end as s's net outflow, rather than
// accumulated step-by-step, since a later batch's reverse-flow
// cancellation can reduce an s-incident arc set earlier.
func run(r *Residual, s, t int, strategy Strategy, opts FlowOptions) (flow map[[2]int]float64, value float64, err error) {
	flow = make(map[[2]int]float64)
	eps := opts.epsilon()

	for {
		steps, ok := strategy(r, s, t, opts)
		if !ok {
			break
		}
		if err := verifyConservation(steps, s, t, eps); err != nil {
			return nil, 0, err
		}
		for _, step := range steps {
			if opts.Verbose {
				fmt.Printf("flow: augment %d->%d by %g\n", step.U, step.V, step.Delta)
			}
			applyStep(flow, r, step)
		}
	}

	for pair, f := range flow {
		if pair[0] == s {
			value += f
		} else if pair[1] == s {
			value -= f
		}
	}

	return flow, value, nil
}

// applyStep realizes one augmenting step: net flow on (u,v) increases
// by delta, canceling any existing reverse flow
// on (v,u) first; the residual is updated with the back-arc gaining the
// full delta and the front-arc losing it.
func applyStep(flow map[[2]int]float64, r *Residual, step Step) {
	u, v, delta := step.U, step.V, step.Delta

	rev := flow[[2]int{v, u}]
	if rev > 0 {
		cancel := rev
		if delta < cancel {
			cancel = delta
		}
		flow[[2]int{v, u}] -= cancel
		delta -= cancel
	}
	if delta > 0 {
		flow[[2]int{u, v}] += delta
	}

	r.add(v, u, step.Delta)
	r.add(u, v, -step.Delta)
}

// verifyConservation checks that, across the whole batch, the sum of
// delta into every intermediate vertex (not s or t) equals the sum out
// of it.
func verifyConservation(steps []Step, s, t int, eps float64) error {
	net := make(map[int]float64)
	for _, step := range steps {
		net[step.U] -= step.Delta
		net[step.V] += step.Delta
	}
	for v, n := range net {
		if v == s || v == t {
			continue
		}
		if n > eps || n < -eps {
			return ErrNonConservation
		}
	}

	return nil
}

// MaxFlow runs the Ford-Fulkerson driver with strategy over g from
// source to sink, returning the resulting flow as a directed, weighted
// graph.Graph[V] (weight = flow value on that arc) and the flow's total
// value.
func MaxFlow[V comparable](g graph.Graph[V], source, sink V, strategy Strategy, opts FlowOptions) (graph.Graph[V], float64, error) {
	s, ok := g.IndexOf(source)
	if !ok {
		return nil, 0, ErrSourceNotFound
	}
	t, ok := g.IndexOf(sink)
	if !ok {
		return nil, 0, ErrSinkNotFound
	}

	r, err := buildResidual(g, opts)
	if err != nil {
		return nil, 0, err
	}

	flowMap, value, err := run(r, s, t, strategy, opts)
	if err != nil {
		return nil, 0, err
	}

	out, err := graph.New[V](graph.WithDirected(true), graph.WithWeighted())
	if err != nil {
		return nil, 0, err
	}
	for _, v := range g.Vertices() {
		if _, err := out.AddVertex(v); err != nil {
			return nil, 0, err
		}
	}
	eps := opts.epsilon()
	for pair, f := range flowMap {
		if f <= eps {
			continue
		}
		from, _ := g.NameAt(pair[0])
		to, _ := g.NameAt(pair[1])
		if err := out.ForceAdd(from, to, f); err != nil {
			return nil, 0, err
		}
	}

	return out, value, nil
}
