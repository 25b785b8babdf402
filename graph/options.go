package graph

// config collects the construction-time settings New applies via
// GraphOption, grounded on core/types.go's WithDirected/WithWeighted
// functional-option pair.
type config struct {
	directed bool
	weighted bool
	kind     Kind
}

// GraphOption configures a Graph before construction.
type GraphOption func(*config)

// WithDirected sets whether edges are one-way.
func WithDirected(directed bool) GraphOption {
	return func(c *config) { c.directed = directed }
}

// WithWeighted allows non-unit edge weights.
func WithWeighted() GraphOption {
	return func(c *config) { c.weighted = true }
}

// WithKind selects the storage representation. The default is KindList.
func WithKind(kind Kind) GraphOption {
	return func(c *config) { c.kind = kind }
}

// New constructs an empty Graph per opts.
func New[V comparable](opts ...GraphOption) (Graph[V], error) {
	c := &config{kind: KindList}
	for _, opt := range opts {
		opt(c)
	}

	switch c.kind {
	case KindMatrix:
		return NewMatrixGraph[V](c.directed, c.weighted)
	default:
		return NewList[V](c.directed, c.weighted), nil
	}
}
