package orderdim

import "errors"

// ErrInvalidDimension indicates a requested element count or dimension
// parameter was non-positive.
var ErrInvalidDimension = errors.New("orderdim: dimension or size must be positive")
