package ordmap

import (
	"math/bits"

	"github.com/katalvlaran/graphkit/spacematrix"
)

// VEB is a van Emde Boas tree over the bounded integer universe [0, U):
// Insert/Delete/Member/Successor/Predecessor/Min/Max all run in
// O(log log U), via the classic recursive sqrt-decomposition (summary +
// clusters); the per-level cluster array is a lazily populated
// spacematrix.Matrix[*VEB] row rather than a plain Go slice.
type VEB struct {
	u         int // universe size for this node, a power of two >= 2
	lowerSize int // cluster size 2^ceil(log2(u)/2), the upper square root of u
	min, max  int // -1 means "empty"
	summary   *VEB
	cluster   *spacematrix.Matrix[*VEB]
}

// NewVEB returns an empty van Emde Boas tree over [0, universe), rounding
// the universe up to the next power of two internally.
func NewVEB(universe int) (*VEB, error) {
	if universe < 2 {
		return nil, ErrInvalidUniverse
	}

	return newVEB(nextPow2(universe)), nil
}

func nextPow2(n int) int {
	if n <= 2 {
		return 2
	}

	return 1 << bits.Len(uint(n-1))
}

func newVEB(u int) *VEB {
	v := &VEB{u: u, min: -1, max: -1}
	if u > 2 {
		lb := bits.Len(uint(u)) / 2
		v.lowerSize = 1 << lb
		upperSize := u / v.lowerSize
		v.cluster, _ = spacematrix.New[*VEB](1, upperSize, nil)
	}

	return v
}

func (v *VEB) high(x int) int { return x / v.lowerSize }
func (v *VEB) low(x int) int  { return x % v.lowerSize }

func (v *VEB) getCluster(i int) *VEB {
	c, _ := v.cluster.Get(0, i)

	return c
}

// ensureCluster returns cluster i, lazily constructing an empty
// lowerSize-universe VEB for it on first access.
func (v *VEB) ensureCluster(i int) *VEB {
	c := v.getCluster(i)
	if c == nil {
		c = newVEB(v.lowerSize)
		_ = v.cluster.Set(0, i, c)
	}

	return c
}

func (v *VEB) ensureSummary() *VEB {
	if v.summary == nil {
		v.summary = newVEB(v.cluster.Cols())
	}

	return v.summary
}

// Min returns the smallest member, if any.
func (v *VEB) Min() (int, bool) {
	if v.min == -1 {
		return 0, false
	}

	return v.min, true
}

// Max returns the largest member, if any.
func (v *VEB) Max() (int, bool) {
	if v.max == -1 {
		return 0, false
	}

	return v.max, true
}

// Member reports whether x is present. Complexity: O(log log U).
func (v *VEB) Member(x int) bool {
	if x < 0 || x >= v.u {
		return false
	}
	if x == v.min || x == v.max {
		return true
	}
	if v.u <= 2 {
		return false
	}
	c := v.getCluster(v.high(x))
	if c == nil {
		return false
	}

	return c.Member(v.low(x))
}

// Insert adds x. Complexity: amortized O(log log U).
func (v *VEB) Insert(x int) error {
	if x < 0 || x >= v.u {
		return ErrOutOfRange
	}
	v.insert(x)

	return nil
}

func (v *VEB) insert(x int) {
	if v.min == -1 {
		v.min, v.max = x, x
		return
	}
	if x < v.min {
		x, v.min = v.min, x
	}
	if v.u > 2 {
		h, l := v.high(x), v.low(x)
		c := v.ensureCluster(h)
		if min, ok := c.Min(); !ok {
			v.ensureSummary().insert(h)
			c.min, c.max = l, l
		} else if l != min {
			c.insert(l)
		}
	}
	if x > v.max {
		v.max = x
	}
}

// Delete removes x, if present. Complexity: amortized O(log log U).
func (v *VEB) Delete(x int) {
	if x < 0 || x >= v.u || v.min == -1 {
		return
	}
	if v.min == v.max {
		if v.min == x {
			v.min, v.max = -1, -1
		}
		return
	}
	if v.u == 2 {
		if x == 0 {
			v.min = 1
		} else {
			v.min = 0
		}
		v.max = v.min
		return
	}
	if x == v.min {
		firstCluster, ok := v.ensureSummary().Min()
		if !ok {
			v.min = v.max
			return
		}
		c := v.ensureCluster(firstCluster)
		x = firstCluster*v.lowerSize + c.min
		v.min = x
	}
	h, l := v.high(x), v.low(x)
	c := v.ensureCluster(h)
	c.Delete(l)
	if _, ok := c.Min(); !ok {
		v.summary.Delete(h)
		if x == v.max {
			if sMax, ok := v.summary.Max(); ok {
				v.max = sMax*v.lowerSize + v.ensureCluster(sMax).max
			} else {
				v.max = v.min
			}
		}
	} else if x == v.max {
		v.max = h*v.lowerSize + c.max
	}
}

// Successor returns the smallest member strictly greater than x.
func (v *VEB) Successor(x int) (int, bool) {
	if v.u == 2 {
		if x == 0 && v.max == 1 {
			return 1, true
		}

		return 0, false
	}
	if v.min != -1 && x < v.min {
		return v.min, true
	}
	h, l := v.high(x), v.low(x)
	if c := v.getCluster(h); c != nil {
		if maxL, ok := c.Max(); ok && l < maxL {
			off, _ := c.Successor(l)

			return h*v.lowerSize + off, true
		}
	}
	if v.summary == nil {
		return 0, false
	}
	succCluster, ok := v.summary.Successor(h)
	if !ok {
		return 0, false
	}
	c := v.ensureCluster(succCluster)

	return succCluster*v.lowerSize + c.min, true
}

// Predecessor returns the largest member strictly less than x.
func (v *VEB) Predecessor(x int) (int, bool) {
	if v.u == 2 {
		if x == 1 && v.min == 0 {
			return 0, true
		}

		return 0, false
	}
	if v.max != -1 && x > v.max {
		return v.max, true
	}
	h, l := v.high(x), v.low(x)
	if c := v.getCluster(h); c != nil {
		if minL, ok := c.Min(); ok && l > minL {
			off, _ := c.Predecessor(l)

			return h*v.lowerSize + off, true
		}
	}
	if v.summary != nil {
		if predCluster, ok := v.summary.Predecessor(h); ok {
			c := v.ensureCluster(predCluster)

			return predCluster*v.lowerSize + c.max, true
		}
	}
	if v.min != -1 && x > v.min {
		return v.min, true
	}

	return 0, false
}
