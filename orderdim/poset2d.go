package orderdim

import (
	"math/rand"

	"github.com/katalvlaran/graphkit/graph"
	"github.com/katalvlaran/graphkit/ordmap"
)

// Point2D is one element of a 2-dimensional poset, represented by its
// rank along each of the two realizing linear extensions: a poset of
// dimension <= 2 is exactly the intersection of two total orders.
type Point2D struct {
	X, Y int
}

// GenerateOrder2D draws n elements whose X and Y coordinates are each
// an independent random permutation of 0..n-1, the standard
// realizer construction for a random 2-dimensional poset. r must be
// non-nil; callers needing determinism inject their own *rand.Rand,
// mirroring sortselect.WithRand.
func GenerateOrder2D(n int, r *rand.Rand) ([]Point2D, error) {
	if n <= 0 {
		return nil, ErrInvalidDimension
	}

	xs := r.Perm(n)
	ys := r.Perm(n)
	pts := make([]Point2D, n)
	for i := 0; i < n; i++ {
		pts[i] = Point2D{X: xs[i], Y: ys[i]}
	}

	return pts, nil
}

// Dominates2D reports whether element i precedes element j in the
// poset: both coordinates strictly less.
func Dominates2D(pts []Point2D, i, j int) bool {
	return pts[i].X < pts[j].X && pts[i].Y < pts[j].Y
}

// linearExtensionByX returns element indices in ascending X order —
// a valid linear extension of the poset, since i <_poset j implies
// pts[i].X < pts[j].X. Built via ordmap.BST: Stage 1 inserts every
// element keyed by its X coordinate, Stage 2 walks the tree in order.
func linearExtensionByX(pts []Point2D) []int {
	tree := ordmap.NewBST[int, int]()
	for i, p := range pts {
		tree.Insert(p.X, i)
	}

	keys := tree.InOrder()
	order := make([]int, 0, len(keys))
	for _, k := range keys {
		idx, _ := tree.Find(k)
		order = append(order, idx)
	}

	return order
}

// ComparabilityGraph2D builds the directed comparability relation of
// pts: arc i->j iff Dominates2D(pts, i, j). Stage 3 restricts the
// pairwise scan to (order[a], order[b]) pairs with a < b, where order
// is the X-sorted linear extension from Stage 2 — any comparable pair
// must respect that order, halving the candidate set relative to a
// blind all-pairs scan.
func ComparabilityGraph2D(pts []Point2D) (graph.Graph[int], error) {
	g, err := graph.New[int](graph.WithDirected(true))
	if err != nil {
		return nil, err
	}
	for i := range pts {
		if _, err := g.AddVertex(i); err != nil {
			return nil, err
		}
	}

	order := linearExtensionByX(pts)
	for a := 0; a < len(order); a++ {
		for b := a + 1; b < len(order); b++ {
			i, j := order[a], order[b]
			if Dominates2D(pts, i, j) {
				if err := g.ForceAdd(i, j, graph.UnitWeight); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// IncomparabilityGraph2D builds the undirected graph on 0..len(pts)-1
// with an edge between every pair neither of which dominates the
// other.
func IncomparabilityGraph2D(pts []Point2D) (graph.Graph[int], error) {
	g, err := graph.New[int]()
	if err != nil {
		return nil, err
	}
	for i := range pts {
		if _, err := g.AddVertex(i); err != nil {
			return nil, err
		}
	}

	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if !Dominates2D(pts, i, j) && !Dominates2D(pts, j, i) {
				if err := g.ForceAdd(i, j, graph.UnitWeight); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
