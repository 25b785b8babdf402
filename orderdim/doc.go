// Package orderdim generates random finite partial orders as
// coordinate-dominance relations — the standard construction for
// posets of a given order dimension — and computes transitive
// reductions (Hasse diagrams) over them.
//
// Built in the repository's constructive-generator idiom (Stage 1/2/3
// comment structure, sentinel errors for invalid dimension).
// ComparabilityGraph2D sorts the points by x-coordinate via an
// ordmap.BST so the O(n^2) pairwise dominance check only visits each
// pair once, in x order.
package orderdim
