// Package mst implements minimum-spanning-tree algorithms over an
// undirected, weighted graph.Graph[V]: Kruskal (sort edges, union-find
// cross-component test), Prim (addressable-heap extraction with stored
// from/cost), and Boruvka (phase-wise minimum outgoing edge per
// component).
//
// Kruskal reuses dsu.DSU for its union-find bookkeeping instead of
// inline parent/rank closures. Boruvka is built fresh in the same
// package idiom.
package mst
