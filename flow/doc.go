// Package flow is the module's max-flow core: a residual-graph
// representation with O(1) edge lookup and mutation, a Ford-Fulkerson
// driver parameterized by a pluggable augmenting-path strategy, three
// strategies (Edmonds-Karp, Dinic, Karzanov), and min-cut extraction
// from a completed max-flow.
//
// FlowOptions and the Verbose/Epsilon surface, plus the
// ErrSourceNotFound/ErrSinkNotFound/EdgeError sentinel set, follow the
// module's own functional-options and sentinel-error conventions. A
// plain map[string]map[string]float64 residual would not give O(1)
// iterator-stable edge lookup, so Residual instead keeps a per-vertex
// adjacency slice plus a ptr[u][v] side table recording each arc's
// slice position, letting every driver step mutate exactly the arcs it
// touches without rescanning. Karzanov's preflow strategy works in two
// sweeps over the layer graph: a forward sweep that pushes excess
// toward t, and a reverse sweep that returns unmovable excess and
// freezes the vertex. It has no relabel step.
package flow
