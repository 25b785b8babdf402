package graph

import "errors"

// ErrVertexExists indicates AddVertex was called with a name already present.
var ErrVertexExists = errors.New("graph: vertex already exists")

// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
var ErrVertexNotFound = errors.New("graph: vertex not found")

// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
var ErrEdgeNotFound = errors.New("graph: edge not found")

// ErrSelfLoop indicates an attempt to connect a vertex to itself.
var ErrSelfLoop = errors.New("graph: self-loops are not allowed")

// ErrBadWeight indicates a non-unit weight supplied to an unweighted graph.
var ErrBadWeight = errors.New("graph: non-unit weight on unweighted graph")
