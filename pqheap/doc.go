// Package pqheap implements the mergeable/addressable heap family used
// throughout graphkit (Dijkstra, Prim, vertex-cover approximation): a
// plain array binary heap with no handles, and three addressable
// variants — a node-addressable binary heap, a binomial heap, and a
// Fibonacci heap — each exposing a stable Handle per inserted element so
// callers can Decrease a specific element's key without re-scanning.
//
// Comparator contract: every heap is generic over (T, Compare), where
// Compare(a, b) reports whether a must come out of the heap no later
// than b (a strict weak order — the conventional "less" for a min-heap,
// or its complement for a max-heap). Decrease refuses to move an element
// backward: Decrease(h, v) requires Compare(v, current) to hold, else it
// fails with ErrIncreaseNotAllowed.
//
// Heap[T] wraps container/heap.Interface directly, exported and
// parameterized by a Comparator instead of a private, dist-only field.
// The addressable variants reject stale handles: NodeHeap holds a slab
// of nodes keyed by (slot, generation), and the Binomial and Fibonacci
// handles point at a cell or node that is marked removed on
// extraction, so a handle used after its element is removed fails
// loudly (ErrInvalidHandle) instead of silently touching an unrelated
// element.
package pqheap
