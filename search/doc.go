// Package search provides the traversal primitives every higher-level
// algorithm package builds on: depth-first search (single-source and
// full-forest variants) with enter/backtrack hooks, breadth-first
// search, Kahn's topological sort, and lexicographic BFS via
// partition refinement.
//
// Every traversal operates on a graph.Graph[V] and is purely
// sequential: no context.Context, no cancellation token — these
// algorithms never suspend mid-traversal. Hooks return a bool
// requesting early termination instead of an error-as-control-flow
// channel.
//
// Traversal results carry the same Order/Depth/Parent bookkeeping
// throughout the visitor-hook shape, built directly against
// graph.Graph[V] with no context plumbing.
package search
