// Package closure implements three graph-closure operations: k-core
// (the maximal subgraph where every vertex has degree >= k, found by
// repeated peeling), transitive closure (reachability, via a
// Floyd-Warshall-style boolean relation over a spacematrix table), and
// the Chvátal-Bondy closure (repeatedly joining
// non-adjacent vertex pairs whose degree sum is at least n, the
// classic sufficient condition for Hamiltonicity).
//
// K-core's peeling order follows search's queue-processing shape; the
// other two have no shared code with the rest of the module beyond
// the spacematrix.Matrix[bool] table transitive closure works on.
package closure
