package shortest

import "github.com/katalvlaran/graphkit/graph"

const fwInf = 1e18

// FloydWarshall computes all-pairs shortest distances in O(V^3) via the
// classic dense triple-loop relaxation, indexed through graph.Graph[V]'s
// vertex-name indirection. The diagonal is checked after the relaxation
// loop: a vertex whose self-distance has gone negative witnesses a
// negative-weight cycle through it, reported as ErrNegativeCycle.
func FloydWarshall[V comparable](g graph.Graph[V]) (map[V]map[V]float64, error) {
	vertices := g.Vertices()
	n := len(vertices)
	idx := make(map[V]int, n)
	for i, v := range vertices {
		idx[v] = i
	}

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = fwInf
			}
		}
	}
	for _, e := range g.AllEdges() {
		i, j := idx[e.From], idx[e.To]
		if e.Weight < dist[i][j] {
			dist[i][j] = e.Weight
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if dist[i][k] >= fwInf {
				continue
			}
			for j := 0; j < n; j++ {
				if nd := dist[i][k] + dist[k][j]; nd < dist[i][j] {
					dist[i][j] = nd
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if dist[i][i] < 0 {
			return nil, ErrNegativeCycle
		}
	}

	out := make(map[V]map[V]float64, n)
	for i, u := range vertices {
		row := make(map[V]float64, n)
		for j, v := range vertices {
			row[v] = dist[i][j]
		}
		out[u] = row
	}

	return out, nil
}
