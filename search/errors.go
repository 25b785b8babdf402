package search

import "errors"

// ErrStartNotFound indicates the requested start vertex is absent.
var ErrStartNotFound = errors.New("search: start vertex not found")

// ErrNotDAG indicates TopoSort was given a graph containing a cycle.
var ErrNotDAG = errors.New("search: graph is not a DAG")
