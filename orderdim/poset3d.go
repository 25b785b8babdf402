package orderdim

import "math/rand"

// Point3D is one element of a 3-dimensional poset: its rank along
// each of three realizing linear extensions.
type Point3D struct {
	X, Y, Z int
}

// GenerateOrder3D draws n elements whose X, Y and Z coordinates are
// each an independent random permutation of 0..n-1.
func GenerateOrder3D(n int, r *rand.Rand) ([]Point3D, error) {
	if n <= 0 {
		return nil, ErrInvalidDimension
	}

	xs, ys, zs := r.Perm(n), r.Perm(n), r.Perm(n)
	pts := make([]Point3D, n)
	for i := 0; i < n; i++ {
		pts[i] = Point3D{X: xs[i], Y: ys[i], Z: zs[i]}
	}

	return pts, nil
}

// Dominates3D reports whether element i precedes element j: all three
// coordinates strictly less.
func Dominates3D(pts []Point3D, i, j int) bool {
	return pts[i].X < pts[j].X && pts[i].Y < pts[j].Y && pts[i].Z < pts[j].Z
}
