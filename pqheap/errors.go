package pqheap

import "errors"

// ErrEmpty indicates an operation (RemoveRoot, GetRoot) on an empty heap.
var ErrEmpty = errors.New("pqheap: heap is empty")

// ErrInvalidHandle indicates a Handle that does not refer to a live node,
// either because it was already removed or because it belongs to a
// different heap (generation mismatch).
var ErrInvalidHandle = errors.New("pqheap: invalid or stale handle")

// ErrIncreaseNotAllowed indicates Decrease was called with a value that
// does not precede the node's current value under the heap's comparator.
var ErrIncreaseNotAllowed = errors.New("pqheap: decrease must not increase the key")
