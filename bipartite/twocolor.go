package bipartite

import "github.com/katalvlaran/graphkit/graph"

// Color is one side of a bipartition.
type Color int

const (
	// ColorA is the first side.
	ColorA Color = iota
	// ColorB is the second side.
	ColorB
)

// TwoColor tests whether g is bipartite via a BFS sweep that assigns
// each frontier vertex the opposite color of its discoverer: every
// unvisited vertex seeds its own BFS so disconnected graphs are
// covered, and a same-colored edge found mid-scan is reported as
// ErrNotBipartite. On success returns every vertex's assigned side.
func TwoColor[V comparable](g graph.Graph[V]) (map[V]Color, error) {
	color := make(map[V]Color, g.Order())

	for _, start := range g.Vertices() {
		if _, seen := color[start]; seen {
			continue
		}
		color[start] = ColorA
		queue := []V{start}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			neighbors, err := g.Neighbors(v)
			if err != nil {
				return nil, err
			}
			for _, n := range neighbors {
				if c, seen := color[n]; seen {
					if c == color[v] {
						return nil, ErrNotBipartite
					}
					continue
				}
				color[n] = opposite(color[v])
				queue = append(queue, n)
			}
		}
	}

	return color, nil
}

func opposite(c Color) Color {
	if c == ColorA {
		return ColorB
	}

	return ColorA
}

// Parts splits color into the two sides, in Vertices order for each.
func Parts[V comparable](g graph.Graph[V], color map[V]Color) (a, b []V) {
	for _, v := range g.Vertices() {
		if color[v] == ColorA {
			a = append(a, v)
		} else {
			b = append(b, v)
		}
	}

	return a, b
}
