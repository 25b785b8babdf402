package shortest

import "errors"

// ErrSourceNotFound indicates the requested source vertex is absent.
var ErrSourceNotFound = errors.New("shortest: source vertex not found")

// ErrNegativeWeight indicates Dijkstra was given a graph with a negative
// edge weight; Dijkstra's relaxation order is only correct for
// non-negative weights, so it fails fast instead of returning a wrong
// distance.
var ErrNegativeWeight = errors.New("shortest: negative edge weight")

// ErrNegativeCycle indicates Bellman-Ford, Floyd-Warshall, or Johnson
// detected a cycle of negative total weight.
var ErrNegativeCycle = errors.New("shortest: negative-weight cycle detected")

// ErrNotDAG indicates DAGRelax was given a graph containing a cycle.
var ErrNotDAG = errors.New("shortest: graph is not a DAG")
