// Package ordmap implements ordered-key primitives: an AVL-balanced
// binary search tree (BST[K,V]) for general ordered keys, and a van
// Emde Boas tree (VEB) giving O(log log U) successor/predecessor over a
// bounded integer universe.
//
// BST[K,V] is built in the repository's sentinel-error, doc-comment-
// heavy idiom, on the classic AVL rebalancing algorithm.
//
// VEB is built on spacematrix's dense table for its per-level cluster
// array: each level keeps a lazily populated spacematrix.Matrix[*VEB]
// row of child clusters, and a child VEB is only created when a key
// first lands in its cluster.
package ordmap
