package search

import "github.com/katalvlaran/graphkit/graph"

// TopoSort computes a topological ordering of every vertex in g via
// Kahn's algorithm: seed a queue with every zero-in-degree vertex,
// then repeatedly emit and decrement. If fewer than g.Order() vertices
// are emitted, the graph has a cycle and ErrNotDAG is returned.
func TopoSort[V comparable](g graph.Graph[V]) ([]V, error) {
	vertices := g.Vertices()
	inDegree := make(map[V]int, len(vertices))
	for _, v := range vertices {
		inDegree[v] = 0
	}
	for _, v := range vertices {
		neighbors, _ := g.Neighbors(v)
		for _, n := range neighbors {
			inDegree[n]++
		}
	}

	var queue []V
	for _, v := range vertices {
		if inDegree[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]V, 0, len(vertices))
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)

		neighbors, _ := g.Neighbors(v)
		for _, n := range neighbors {
			inDegree[n]--
			if inDegree[n] == 0 {
				queue = append(queue, n)
			}
		}
	}

	if len(order) < len(vertices) {
		return nil, ErrNotDAG
	}

	return order, nil
}
