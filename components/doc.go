// Package components implements connected-component labeling (a
// BFS/DFS sweep over every unvisited vertex), strongly connected
// components via Tarjan's algorithm, and articulation points via the
// classic DFS low-link sweep.
//
// Connected components and articulation points run their own BFS/DFS
// sweeps rather than calling package search; SCC reuses the same stack + low-link
// bookkeeping shape, extended here to full Tarjan's algorithm.
package components
