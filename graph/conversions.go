package graph

// convert builds an isomorphic copy of g under the requested storage
// kind, preserving vertex indices and names exactly. Asking for the
// kind g already has still yields a fresh, independent copy rather than
// a no-op, so callers can freely mutate the result.
func convert[V comparable](g Graph[V], kind Kind) (Graph[V], error) {
	var fresh func() (Graph[V], error)
	switch kind {
	case KindList:
		fresh = func() (Graph[V], error) { return NewList[V](g.Directed(), g.Weighted()), nil }
	case KindMatrix:
		fresh = func() (Graph[V], error) { return NewMatrixGraph[V](g.Directed(), g.Weighted()) }
	default:
		return nil, ErrVertexNotFound
	}

	out, err := fresh()
	if err != nil {
		return nil, err
	}
	for i := 0; i < g.Order(); i++ {
		name, _ := g.NameAt(i)
		if _, err := out.AddVertex(name); err != nil {
			return nil, err
		}
	}
	for _, e := range g.AllEdges() {
		if err := out.ForceAdd(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return out, nil
}
