package ordmap

import "errors"

// ErrNotFound indicates a lookup key (BST) or member (VEB) is absent.
var ErrNotFound = errors.New("ordmap: key not found")

// ErrInvalidUniverse indicates a VEB universe size smaller than 2.
var ErrInvalidUniverse = errors.New("ordmap: universe size must be >= 2")

// ErrOutOfRange indicates a VEB operation on a value outside [0, U).
var ErrOutOfRange = errors.New("ordmap: value out of universe range")
