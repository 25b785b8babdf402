// Package spacematrix provides a generic dense table with a default
// fill value and O(1) reset.
//
// Matrix[T] stores an r×c grid of values of type T with a caller-chosen
// default fill. It uses the classic Aho–Hopcroft–Ullman "space trick":
// a stack of touched indices plus a stamp per cell tells Get whether a
// cell has ever been written, in O(1), so the default is never copied
// into the cells and Fill resets the whole table by discarding the
// stack.
//
// The backing store is a row-major flat slice with a bounds-checked
// index helper. Its slices are allocated with make, which the Go
// runtime zero-fills, so construction of an n×n table costs O(n²).
package spacematrix
