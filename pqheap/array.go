package pqheap

import "container/heap"

// Comparator reports whether a must be extracted no later than b. It
// must be a strict weak order: irreflexive, transitive, with
// transitivity of incomparability.
type Comparator[T any] func(a, b T) bool

// Heap is a plain array binary heap with no addressable handles.
// Grounded on dijkstra/dijkstra.go's nodePQ: a container/heap.Interface
// implementation over a slice, generalized with an injected Comparator
// instead of a hardcoded distance field.
//
// Complexity: Insert and RemoveRoot are O(log n). Merge is O(n): it
// rebuilds from the concatenation of both heaps' backing slices.
type Heap[T any] struct {
	less Comparator[T]
	data []T
}

// NewHeap returns an empty Heap ordered by less.
func NewHeap[T any](less Comparator[T]) *Heap[T] {
	return &Heap[T]{less: less}
}

// arrayAdapter satisfies container/heap.Interface over h.data.
type arrayAdapter[T any] struct{ h *Heap[T] }

func (a arrayAdapter[T]) Len() int           { return len(a.h.data) }
func (a arrayAdapter[T]) Less(i, j int) bool { return a.h.less(a.h.data[i], a.h.data[j]) }
func (a arrayAdapter[T]) Swap(i, j int)      { a.h.data[i], a.h.data[j] = a.h.data[j], a.h.data[i] }
func (a arrayAdapter[T]) Push(x any)         { a.h.data = append(a.h.data, x.(T)) }
func (a arrayAdapter[T]) Pop() any {
	old := a.h.data
	n := len(old)
	v := old[n-1]
	a.h.data = old[:n-1]

	return v
}

// Insert adds value to the heap. Complexity: O(log n).
func (h *Heap[T]) Insert(value T) {
	heap.Push(arrayAdapter[T]{h}, value)
}

// GetRoot returns the current minimal element without removing it.
func (h *Heap[T]) GetRoot() (T, error) {
	var zero T
	if len(h.data) == 0 {
		return zero, ErrEmpty
	}

	return h.data[0], nil
}

// RemoveRoot extracts and returns the current minimal element.
// Complexity: O(log n).
func (h *Heap[T]) RemoveRoot() (T, error) {
	var zero T
	if len(h.data) == 0 {
		return zero, ErrEmpty
	}

	return heap.Pop(arrayAdapter[T]{h}).(T), nil
}

// Size returns the number of elements currently in the heap.
func (h *Heap[T]) Size() int { return len(h.data) }

// Empty reports whether the heap holds no elements.
func (h *Heap[T]) Empty() bool { return len(h.data) == 0 }

// Merge absorbs other's elements into h, leaving other empty.
// Complexity: O(n) — concatenates both backing slices and re-heapifies.
func (h *Heap[T]) Merge(other *Heap[T]) {
	h.data = append(h.data, other.data...)
	other.data = nil
	heap.Init(arrayAdapter[T]{h})
}
