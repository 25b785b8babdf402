package misc

// DefaultEpsilon is the tolerance NearZero and Equal fall back to when
// the caller supplies none. It has the same value as the default of
// flow.FlowOptions.Epsilon, which flow defines separately.
const DefaultEpsilon = 1e-9

// NearZero reports whether v is within eps of zero. eps <= 0 falls
// back to DefaultEpsilon.
func NearZero(v, eps float64) bool {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	if v < 0 {
		v = -v
	}

	return v <= eps
}

// Equal reports whether a and b are within eps of each other. eps <= 0
// falls back to DefaultEpsilon.
func Equal(a, b, eps float64) bool {
	return NearZero(a-b, eps)
}
