// Package approx implements two classic approximation algorithms: a
// 2-approximate vertex cover via edge-doubling, and Wigderson's
// O(sqrt(n))-color approximation for 3-colorable graphs. Vertex cover
// reuses mst.Prim's heap-extraction loop shape, re-targeted at vertex
// degree instead of tentative distance; Wigderson's algorithm is an
// iterative loop that 2-colors high-degree neighborhoods by BFS and
// then colors the low-degree remainder greedily.
package approx
