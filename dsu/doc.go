// Package dsu implements a disjoint-set (union–find) forest: equivalence
// classes over a generic comparable element type, with union by size and
// path compression on find, giving amortized near-constant cost per
// operation over any sequence of m operations on n elements (inverse-
// Ackermann, per Tarjan).
//
// The parent/union-by-size shape is exported as a single reusable
// generic type so Kruskal's MST, Borůvka's phase bookkeeping, and npc's
// feedback-vertex-set verifier can all share one implementation instead
// of re-deriving it as private closures.
package dsu
