package npc

// VertexCoverToSetCover builds a set-cover instance whose universe is
// the edge set of inst.G (each undirected edge once, indexed in the
// order of its first listing in inst.G.AllEdges()) and
// whose sets are, one per vertex (indexed in inst.G.Vertices()
// order), the indices of the edges incident to that vertex. A vertex
// cover of size <= K touches every edge, i.e. the corresponding sets
// cover the whole universe, and conversely a set cover of size <= K
// names exactly a vertex cover of size <= K.
func VertexCoverToSetCover[V comparable](inst VertexCoverInstance[V]) SetCoverInstance {
	var edges [][2]V
	seen := make(map[[2]V]bool)
	for _, e := range inst.G.AllEdges() {
		if !inst.G.Directed() && seen[[2]V{e.To, e.From}] {
			continue // reverse listing of an undirected edge already indexed
		}
		seen[[2]V{e.From, e.To}] = true
		edges = append(edges, [2]V{e.From, e.To})
	}
	verts := inst.G.Vertices()

	index := make(map[V]int, len(verts))
	for i, v := range verts {
		index[v] = i
	}

	sets := make([][]int, len(verts))
	for ei, e := range edges {
		if fi, ok := index[e[0]]; ok {
			sets[fi] = append(sets[fi], ei)
		}
		if ti, ok := index[e[1]]; ok {
			sets[ti] = append(sets[ti], ei)
		}
	}

	return SetCoverInstance{Universe: len(edges), Sets: sets, K: inst.K}
}

// VerifySetCover reports whether the sets named by chosen (indices
// into inst.Sets) number at most inst.K and together cover every
// element of the universe.
func VerifySetCover(inst SetCoverInstance, chosen []int) bool {
	if len(chosen) > inst.K {
		return false
	}
	covered := make([]bool, inst.Universe)
	for _, si := range chosen {
		if si < 0 || si >= len(inst.Sets) {
			return false
		}
		for _, e := range inst.Sets[si] {
			if e >= 0 && e < inst.Universe {
				covered[e] = true
			}
		}
	}
	for _, ok := range covered {
		if !ok {
			return false
		}
	}
	return true
}
