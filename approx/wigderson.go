package approx

import (
	"math"

	"github.com/katalvlaran/graphkit/graph"
)

// Wigderson3Coloring colors a 3-colorable graph using O(sqrt(n)) colors
// (rather than an unbounded greedy coloring), via Wigderson's 1983
// algorithm: while some uncolored vertex v has remaining-degree at
// least sqrt(n), its neighborhood in a 3-colorable graph must be
// properly 2-colorable (v's own color excludes both), so it is
// 2-colored by BFS bipartition with two fresh colors, v itself gets a
// third fresh color, and all of them are removed from further
// consideration. Once every remaining vertex has degree below
// sqrt(n), the rest is colored greedily — each needs at most
// sqrt(n) colors to avoid its already-colored neighbors. Total colors
// used is O(sqrt(n)) assuming g is in fact 3-colorable; on an input
// that is not, the BFS bipartition step may find a conflict, in which
// case that vertex's neighborhood falls back to the same greedy pass
// (a best-effort relaxation, not a certificate of 3-colorability).
func Wigderson3Coloring[V comparable](g graph.Graph[V]) map[V]int {
	n := g.Order()
	color := make(map[V]int, n)
	if n == 0 {
		return color
	}
	threshold := int(math.Ceil(math.Sqrt(float64(n))))

	adj := make(map[V]map[V]bool, n)
	for _, v := range g.Vertices() {
		adj[v] = make(map[V]bool)
	}
	for _, e := range g.AllEdges() {
		if e.From == e.To {
			continue
		}
		adj[e.From][e.To] = true
		adj[e.To][e.From] = true
	}

	remaining := make(map[V]bool, n)
	for _, v := range g.Vertices() {
		remaining[v] = true
	}

	nextColor := 0
	for {
		var hub V
		found := false
		for v := range remaining {
			deg := 0
			for w := range adj[v] {
				if remaining[w] {
					deg++
				}
			}
			if deg >= threshold {
				hub = v
				found = true
				break
			}
		}
		if !found {
			break
		}

		neighbors := make([]V, 0, len(adj[hub]))
		for w := range adj[hub] {
			if remaining[w] {
				neighbors = append(neighbors, w)
			}
		}

		bipartition, _ := bfs2Color(neighbors, adj, remaining)
		colorA, colorB := nextColor, nextColor+1
		hubColor := nextColor + 2
		nextColor += 3
		for w, side := range bipartition {
			if side {
				color[w] = colorA
			} else {
				color[w] = colorB
			}
			delete(remaining, w)
		}
		color[hub] = hubColor
		delete(remaining, hub)
	}

	// greedy cleanup over whatever remains (every remaining vertex has
	// degree below threshold).
	for v := range remaining {
		greedyColorOne(v, adj, color)
	}
	for v := range color {
		// re-verify: any vertex whose assigned color clashes with an
		// already-settled neighbor (possible only from the bipartition
		// fallback above) is recolored greedily.
		if hasConflict(v, adj, color) {
			delete(color, v)
			greedyColorOne(v, adj, color)
		}
	}

	return color
}

func hasConflict[V comparable](v V, adj map[V]map[V]bool, color map[V]int) bool {
	for w := range adj[v] {
		if c, ok := color[w]; ok && c == color[v] {
			return true
		}
	}

	return false
}

func greedyColorOne[V comparable](v V, adj map[V]map[V]bool, color map[V]int) {
	used := make(map[int]bool)
	for w := range adj[v] {
		if c, ok := color[w]; ok {
			used[c] = true
		}
	}
	c := 0
	for used[c] {
		c++
	}
	color[v] = c
}

// bfs2Color attempts a proper 2-coloring of the induced subgraph on
// vertices, restricted to edges whose other endpoint is still in
// remaining. ok is false if an odd cycle is found (the subgraph is not
// bipartite, meaning the caller's 3-colorability assumption failed
// for this neighborhood).
func bfs2Color[V comparable](vertices []V, adj map[V]map[V]bool, remaining map[V]bool) (map[V]bool, bool) {
	side := make(map[V]bool, len(vertices))
	visited := make(map[V]bool, len(vertices))
	set := make(map[V]bool, len(vertices))
	for _, v := range vertices {
		set[v] = true
	}

	ok := true
	for _, start := range vertices {
		if visited[start] {
			continue
		}
		visited[start] = true
		side[start] = true
		queue := []V{start}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for w := range adj[v] {
				if !set[w] || !remaining[w] {
					continue
				}
				if !visited[w] {
					visited[w] = true
					side[w] = !side[v]
					queue = append(queue, w)
				} else if side[w] == side[v] {
					ok = false
				}
			}
		}
	}

	return side, ok
}
