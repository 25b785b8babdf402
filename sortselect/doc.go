// Package sortselect implements the classic comparison sorts (merge,
// quick, heap) plus radix sort over non-negative integers and
// median-of-medians (deterministic linear-time) selection. Quicksort's
// pivot draw uses an injectable *rand.Rand (WithRand) rather than a
// bare global generator, so its behavior is reproducible in tests,
// using the module's functional-option idiom with a package-level
// *rand.Rand seeded once at init() as the default.
package sortselect
