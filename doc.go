// Package graphkit is a library of fundamental graph algorithms and
// data structures built around one shared graph abstraction.
//
// It is a correctness-oriented reference implementation: the value is in
// the algorithms themselves — their invariants, numerical care, and
// asymptotic bounds — not in any framework around them. Everything is
// organized as flat top-level packages, each independently importable:
//
//	graph/       — the directed/undirected, weighted/unweighted graph
//	               container (adjacency-list and adjacency-matrix storage)
//	pqheap/      — priority queue and addressable-heap family (array,
//	               addressable binary, binomial, Fibonacci)
//	spacematrix/ — dense table with a default fill value and O(1) reset
//	ordmap/      — ordered map primitives (AVL tree, van Emde Boas tree)
//	dsu/         — disjoint-set (union-find)
//	search/      — DFS, BFS, topological sort, lexicographic BFS
//	shortest/    — Dijkstra, Bellman-Ford, Floyd-Warshall, Johnson
//	mst/         — Borůvka, Prim, Kruskal
//	components/  — connected components, SCC, articulation points
//	bipartite/   — two-coloring and matching
//	closure/     — k-core, transitive closure, Chvátal-Bondy
//	flow/        — Ford-Fulkerson driver with pluggable augmenting-path
//	               strategies (Edmonds-Karp, Dinic, Karzanov) and min-cut
//	orderdim/    — partial-order generators and transitive reduction
//	approx/      — vertex-cover and 3-coloring approximation
//	npc/         — Karp's NP-complete reduction chain and certificates
//	sortselect/  — merge/quick/heap sort, radix sort, median-of-medians
//	twosat/      — 2-SAT implication-graph solver
//	misc/        — Floyd cycle-finding and small shared helpers
//	dimacs/      — CNF DIMACS file reader for 2-SAT/3-SAT instances
//
// The core the rest of the module depends on is the graph container
// (graph), the heap family (pqheap), and the flow-oriented algorithms
// (flow) — they tie together the residual-graph representation and the
// most intricate invariants in the repo.
//
//	go get github.com/katalvlaran/graphkit/graph
package graphkit
