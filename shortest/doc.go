// Package shortest implements the module's shortest-path family over a
// graph.Graph[V]: an O(V+E) BFS-hop distance for unweighted graphs, a
// linear DAG relaxation, Dijkstra (using a Fibonacci heap for its
// decrease-key step), Bellman-Ford (with early-exit and negative-cycle
// detection), Floyd-Warshall (all-pairs, O(V^3)), and Johnson (Bellman-
// Ford reweighting plus one Dijkstra run per source).
//
// Dijkstra uses the module's functional-options surface and an upfront
// negative-weight pre-scan. Floyd-Warshall follows the classic O(V^3)
// triple-loop with a diagonal negative-cycle scan; Johnson composes
// Bellman-Ford reweighting with that same Dijkstra.
package shortest
