// Package graph provides the central graph abstraction every other
// package in this module builds on: directed/undirected,
// weighted/unweighted graphs over dense 0..n-1 vertex indices, backed by
// either an adjacency list or an adjacency matrix behind one shared
// interface.
//
// A Graph associates arbitrary, caller-supplied vertex names with dense
// internal indices. The name↔index mapping is an invariant: the index
// space is always exactly 0..Order()-1 with no gaps, maintained by
// swap-with-last renumbering on Remove. Self-loops are rejected at edge
// insertion. Unweighted graphs fix every edge's weight to 1 (the "unit"
// value); a missing edge is distinguished from a zero-weight edge — List
// storage by absence from the neighbor slice, Matrix storage with a NaN
// sentinel.
//
// The sentinel-error set and functional-option construction style
// follow the module's own conventions, built as an interface over a
// generic comparable name type with two swappable, dense-index storage
// backends — a runtime variant/sum type rather than inheritance.
package graph
