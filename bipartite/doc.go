// Package bipartite provides two-coloring (bipartiteness testing) and
// maximum-matching on bipartite graphs.
//
// Two-coloring is a BFS sweep over the same visitor-hook shape
// search.BFS uses. Maximum matching is built on top of the module's own
// flow package: rather than the classical augmenting-path-in-the-
// bipartite-graph formulation, the two parts and a synthetic
// source/sink are assembled into a unit-capacity flow network and
// handed to flow's max-flow driver.
package bipartite
