package graph

import "math"

// UnitWeight is the fixed weight every edge carries in an unweighted graph.
const UnitWeight = 1.0

// Kind selects a Graph's storage representation.
type Kind int

const (
	// KindList is adjacency-list storage.
	KindList Kind = iota
	// KindMatrix is adjacency-matrix storage.
	KindMatrix
)

// String renders the Kind for diagnostics and test output.
func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindMatrix:
		return "matrix"
	default:
		return "unknown"
	}
}

// Edge is one directed arc (From, To) with its Weight, as reported by
// Edges/AllEdges. For undirected graphs an edge between u and v is
// reported once per endpoint's own Edges call (as u→v and as v→u).
type Edge[V comparable] struct {
	From, To V
	Weight   float64
}

// Graph is the shared contract both storage representations satisfy:
// vertex-name indirection over a dense 0..Order()-1 index space, plus
// directed/undirected and weighted/unweighted variants as construction
// flags — a single runtime discriminant rather than a compile-time
// template flag.
type Graph[V comparable] interface {
	// Order returns the number of vertices.
	Order() int
	// Directed reports whether edges are one-way.
	Directed() bool
	// Weighted reports whether non-unit edge weights are accepted.
	Weighted() bool
	// Kind reports the storage representation in use.
	Kind() Kind

	// AddVertex inserts name as a new vertex and returns its index.
	// Fails with ErrVertexExists if name is already present.
	AddVertex(name V) (int, error)
	// Remove deletes name and all incident edges, renumbering by
	// swapping the freed index with the last. If name is absent the
	// graph is left unchanged and ErrVertexNotFound is returned.
	Remove(name V) error
	// Clear resets the graph to zero vertices and edges.
	Clear()

	// HasEdge reports whether an arc u→v exists.
	HasEdge(u, v V) bool
	// EdgeCost returns the weight of arc u→v, or ErrEdgeNotFound.
	EdgeCost(u, v V) (float64, error)
	// SetEdge inserts or overwrites arc u→v with weight w, creating
	// either endpoint if absent and mirroring to v→u when undirected.
	// Rejects u==v with ErrSelfLoop.
	SetEdge(u, v V, w float64) error
	// ForceAdd inserts or overwrites arc u→v exactly as SetEdge does;
	// it performs the same existence lookup, so an arc already present
	// is overwritten rather than duplicated.
	ForceAdd(u, v V, w float64) error
	// RemoveEdge deletes arc u→v (and its mirror when undirected).
	RemoveEdge(u, v V) error
	// Isolate removes every edge incident to v.
	Isolate(v V) error

	// Neighbors returns the names reachable by one outgoing arc from v.
	Neighbors(v V) ([]V, error)
	// Edges returns every outgoing arc from v.
	Edges(v V) ([]Edge[V], error)
	// AllEdges returns every arc in the graph. For undirected graphs
	// each edge is reported once per direction (see Edge doc).
	AllEdges() []Edge[V]
	// Vertices returns every vertex name, indexed 0..Order()-1.
	Vertices() []V

	// IndexOf returns name's dense index, if present.
	IndexOf(name V) (int, bool)
	// NameAt returns the vertex name at dense index i, if valid.
	NameAt(i int) (V, bool)

	// Convert returns an isomorphic copy under the requested storage,
	// preserving vertex indices.
	Convert(kind Kind) (Graph[V], error)
	// InducedSubgraph returns the subgraph on the given names plus a map
	// from old indices to new ones.
	InducedSubgraph(names []V) (Graph[V], map[int]int, error)
}

// missingWeight is the adjacency-matrix "no edge" sentinel.
var missingWeight = math.NaN()
