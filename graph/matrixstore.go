package graph

import (
	"math"
	"sync"

	"github.com/katalvlaran/graphkit/spacematrix"
)

const initialMatrixCap = 8

// MatrixGraph is a Graph backed by a dense weight matrix: cell (i, j)
// holds the weight of arc i→j, or missingWeight (NaN) if absent.
// Grounded on matrix/dense.go's weight table, swapped onto
// spacematrix.Matrix for its O(1)-init growth discipline: directed and
// weighted are a construction-time runtime discriminant rather than
// separate compile-time types. Locking mirrors List: muVert guards the
// name/index table, muEdgeAdj guards the weight matrix.
type MatrixGraph[V comparable] struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex
	idx       *index[V]
	directed  bool
	weighted  bool
	w         *spacematrix.Matrix[float64]
}

// NewMatrixGraph returns an empty matrix-backed graph.
func NewMatrixGraph[V comparable](directed, weighted bool) (*MatrixGraph[V], error) {
	m, err := spacematrix.New(initialMatrixCap, initialMatrixCap, missingWeight)
	if err != nil {
		return nil, err
	}
	return &MatrixGraph[V]{idx: newIndex[V](), directed: directed, weighted: weighted, w: m}, nil
}

func (g *MatrixGraph[V]) Order() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return g.idx.order()
}

func (g *MatrixGraph[V]) Directed() bool { return g.directed }
func (g *MatrixGraph[V]) Weighted() bool { return g.weighted }
func (g *MatrixGraph[V]) Kind() Kind     { return KindMatrix }

func (g *MatrixGraph[V]) Vertices() []V {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return g.idx.vertices()
}

func (g *MatrixGraph[V]) IndexOf(name V) (int, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return g.idx.indexOf(name)
}

func (g *MatrixGraph[V]) NameAt(i int) (V, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return g.idx.nameAt(i)
}

func (g *MatrixGraph[V]) ensureCapacityLocked(n int) {
	if n <= g.w.Rows() {
		return
	}
	size := g.w.Rows()
	for size < n {
		size *= 2
	}
	_ = g.w.Resize(size, size)
}

func (g *MatrixGraph[V]) addVertexLocked(name V) (int, error) {
	if _, ok := g.idx.indexOf(name); ok {
		return 0, ErrVertexExists
	}
	i := g.idx.add(name)
	g.ensureCapacityLocked(i + 1)
	return i, nil
}

func (g *MatrixGraph[V]) AddVertex(name V) (int, error) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	return g.addVertexLocked(name)
}

func (g *MatrixGraph[V]) resolveEdgeLocked(u, v V) (ui, vi int, err error) {
	ui, ok := g.idx.indexOf(u)
	if !ok {
		return 0, 0, ErrVertexNotFound
	}
	vi, ok = g.idx.indexOf(v)
	if !ok {
		return 0, 0, ErrVertexNotFound
	}
	return ui, vi, nil
}

func (g *MatrixGraph[V]) HasEdge(u, v V) bool {
	g.muVert.RLock()
	g.muEdgeAdj.RLock()
	defer g.muVert.RUnlock()
	defer g.muEdgeAdj.RUnlock()
	ui, vi, err := g.resolveEdgeLocked(u, v)
	if err != nil {
		return false
	}
	val, _ := g.w.Get(ui, vi)
	return !math.IsNaN(val)
}

func (g *MatrixGraph[V]) EdgeCost(u, v V) (float64, error) {
	g.muVert.RLock()
	g.muEdgeAdj.RLock()
	defer g.muVert.RUnlock()
	defer g.muEdgeAdj.RUnlock()
	ui, vi, err := g.resolveEdgeLocked(u, v)
	if err != nil {
		return 0, err
	}
	val, _ := g.w.Get(ui, vi)
	if math.IsNaN(val) {
		return 0, ErrEdgeNotFound
	}
	return val, nil
}

func (g *MatrixGraph[V]) checkWeight(w float64) (float64, error) {
	if !g.weighted {
		if w != UnitWeight {
			return 0, ErrBadWeight
		}
		return UnitWeight, nil
	}
	return w, nil
}

func (g *MatrixGraph[V]) setEdgeLocked(u, v V, w float64) error {
	if u == v {
		return ErrSelfLoop
	}
	w, err := g.checkWeight(w)
	if err != nil {
		return err
	}
	ui, ok := g.idx.indexOf(u)
	if !ok {
		ui, _ = g.addVertexLocked(u)
	}
	vi, ok := g.idx.indexOf(v)
	if !ok {
		vi, _ = g.addVertexLocked(v)
	}
	_ = g.w.Set(ui, vi, w)
	if !g.directed {
		_ = g.w.Set(vi, ui, w)
	}
	return nil
}

func (g *MatrixGraph[V]) SetEdge(u, v V, w float64) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	return g.setEdgeLocked(u, v, w)
}

func (g *MatrixGraph[V]) ForceAdd(u, v V, w float64) error {
	return g.SetEdge(u, v, w)
}

func (g *MatrixGraph[V]) RemoveEdge(u, v V) error {
	g.muVert.RLock()
	g.muEdgeAdj.Lock()
	defer g.muVert.RUnlock()
	defer g.muEdgeAdj.Unlock()

	ui, vi, err := g.resolveEdgeLocked(u, v)
	if err != nil {
		return err
	}
	val, _ := g.w.Get(ui, vi)
	if math.IsNaN(val) {
		return ErrEdgeNotFound
	}
	_ = g.w.Unset(ui, vi)
	if !g.directed {
		_ = g.w.Unset(vi, ui)
	}
	return nil
}

func (g *MatrixGraph[V]) Isolate(v V) error {
	g.muVert.RLock()
	g.muEdgeAdj.Lock()
	defer g.muVert.RUnlock()
	defer g.muEdgeAdj.Unlock()

	vi, ok := g.idx.indexOf(v)
	if !ok {
		return ErrVertexNotFound
	}
	n := g.idx.order()
	for other := 0; other < n; other++ {
		_ = g.w.Unset(vi, other)
		_ = g.w.Unset(other, vi)
	}
	return nil
}

func (g *MatrixGraph[V]) Neighbors(v V) ([]V, error) {
	g.muVert.RLock()
	g.muEdgeAdj.RLock()
	defer g.muVert.RUnlock()
	defer g.muEdgeAdj.RUnlock()

	vi, ok := g.idx.indexOf(v)
	if !ok {
		return nil, ErrVertexNotFound
	}
	var out []V
	n := g.idx.order()
	for other := 0; other < n; other++ {
		val, _ := g.w.Get(vi, other)
		if !math.IsNaN(val) {
			name, _ := g.idx.nameAt(other)
			out = append(out, name)
		}
	}
	return out, nil
}

func (g *MatrixGraph[V]) Edges(v V) ([]Edge[V], error) {
	g.muVert.RLock()
	g.muEdgeAdj.RLock()
	defer g.muVert.RUnlock()
	defer g.muEdgeAdj.RUnlock()

	vi, ok := g.idx.indexOf(v)
	if !ok {
		return nil, ErrVertexNotFound
	}
	var out []Edge[V]
	n := g.idx.order()
	for other := 0; other < n; other++ {
		val, _ := g.w.Get(vi, other)
		if !math.IsNaN(val) {
			name, _ := g.idx.nameAt(other)
			out = append(out, Edge[V]{From: v, To: name, Weight: val})
		}
	}
	return out, nil
}

func (g *MatrixGraph[V]) AllEdges() []Edge[V] {
	g.muVert.RLock()
	g.muEdgeAdj.RLock()
	defer g.muVert.RUnlock()
	defer g.muEdgeAdj.RUnlock()

	var out []Edge[V]
	n := g.idx.order()
	for i := 0; i < n; i++ {
		fromName, _ := g.idx.nameAt(i)
		for j := 0; j < n; j++ {
			val, _ := g.w.Get(i, j)
			if !math.IsNaN(val) {
				toName, _ := g.idx.nameAt(j)
				out = append(out, Edge[V]{From: fromName, To: toName, Weight: val})
			}
		}
	}
	return out
}

// Remove deletes name, swapping the last live index into its slot. The
// matrix is updated in two passes — row lastIdx into row removedIdx,
// then column lastIdx into column removedIdx — which leaves
// (removedIdx, removedIdx) correctly unset: pass one copies the old
// (last, removedIdx) cell's status into (removedIdx, removedIdx), and
// pass two then overwrites that same cell with the old (last, last)
// status, which is always NaN since self-loops are never permitted.
func (g *MatrixGraph[V]) Remove(name V) error {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	defer g.muVert.Unlock()
	defer g.muEdgeAdj.Unlock()

	removedIdx, ok := g.idx.indexOf(name)
	if !ok {
		return ErrVertexNotFound
	}
	n := g.idx.order()
	lastIdx := n - 1

	_, _, moved := g.idx.remove(removedIdx)
	if moved {
		for col := 0; col < n; col++ {
			val, _ := g.w.Get(lastIdx, col)
			if math.IsNaN(val) {
				_ = g.w.Unset(removedIdx, col)
			} else {
				_ = g.w.Set(removedIdx, col, val)
			}
		}
		for row := 0; row < n; row++ {
			val, _ := g.w.Get(row, lastIdx)
			if math.IsNaN(val) {
				_ = g.w.Unset(row, removedIdx)
			} else {
				_ = g.w.Set(row, removedIdx, val)
			}
		}
	}
	for col := 0; col < n; col++ {
		_ = g.w.Unset(lastIdx, col)
		_ = g.w.Unset(col, lastIdx)
	}

	return nil
}

func (g *MatrixGraph[V]) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	defer g.muVert.Unlock()
	defer g.muEdgeAdj.Unlock()

	g.idx.clear()
	m, _ := spacematrix.New(initialMatrixCap, initialMatrixCap, missingWeight)
	g.w = m
}

func (g *MatrixGraph[V]) Convert(kind Kind) (Graph[V], error) {
	return convert[V](g, kind)
}

func (g *MatrixGraph[V]) InducedSubgraph(names []V) (Graph[V], map[int]int, error) {
	return inducedSubgraph[V](g, names)
}
