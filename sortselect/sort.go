package sortselect

import "cmp"

// MergeSort returns a sorted copy of items using the classic
// divide-and-conquer merge sort. O(n log n) time, O(n) auxiliary space.
func MergeSort[T cmp.Ordered](items []T) []T {
	out := append([]T(nil), items...)
	if len(out) < 2 {
		return out
	}
	buf := make([]T, len(out))
	mergeSort(out, buf)

	return out
}

func mergeSort[T cmp.Ordered](a, buf []T) {
	n := len(a)
	if n < 2 {
		return
	}
	mid := n / 2
	mergeSort(a[:mid], buf[:mid])
	mergeSort(a[mid:], buf[mid:])

	copy(buf, a)
	i, j, k := 0, mid, 0
	for i < mid && j < n {
		if buf[i] <= buf[j] {
			a[k] = buf[i]
			i++
		} else {
			a[k] = buf[j]
			j++
		}
		k++
	}
	for i < mid {
		a[k] = buf[i]
		i++
		k++
	}
	for j < n {
		a[k] = buf[j]
		j++
		k++
	}
}

// QuickSort sorts items in place via randomized quicksort (pivot drawn
// from an injectable RNG, default Option), Lomuto partitioning, and a
// tail-recursion-elimination pass on the larger side to bound stack
// depth to O(log n). Expected O(n log n), worst case O(n^2).
func QuickSort[T cmp.Ordered](items []T, opts ...Option) {
	c := newConfig(opts)
	quickSort(items, c)
}

func quickSort[T cmp.Ordered](a []T, c *config) {
	for len(a) > 1 {
		p := partition(a, c)
		if p < len(a)-p-1 {
			quickSort(a[:p], c)
			a = a[p+1:]
		} else {
			quickSort(a[p+1:], c)
			a = a[:p]
		}
	}
}

func partition[T cmp.Ordered](a []T, c *config) int {
	pivotIdx := c.rng.Intn(len(a))
	a[pivotIdx], a[len(a)-1] = a[len(a)-1], a[pivotIdx]
	pivot := a[len(a)-1]

	i := 0
	for j := 0; j < len(a)-1; j++ {
		if a[j] < pivot {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}
	a[i], a[len(a)-1] = a[len(a)-1], a[i]

	return i
}

// HeapSort sorts items in place by building a max-heap in place (via
// siftDown, like container/heap's own init) then repeatedly swapping
// the root with the last live element and sifting down. O(n log n)
// time, O(1) auxiliary space.
func HeapSort[T cmp.Ordered](items []T) {
	n := len(items)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(items, i, n)
	}
	for end := n - 1; end > 0; end-- {
		items[0], items[end] = items[end], items[0]
		siftDown(items, 0, end)
	}
}

func siftDown[T cmp.Ordered](a []T, root, n int) {
	for {
		left := 2*root + 1
		if left >= n {
			return
		}
		largest := left
		if right := left + 1; right < n && a[right] > a[left] {
			largest = right
		}
		if a[root] >= a[largest] {
			return
		}
		a[root], a[largest] = a[largest], a[root]
		root = largest
	}
}

// RadixSort returns a sorted copy of a slice of non-negative integers
// via LSD radix sort, base 256, stable per digit. O(n·k) time for
// k = number of byte-digits in the largest value, O(n) auxiliary space.
func RadixSort(items []int) []int {
	out := append([]int(nil), items...)
	if len(out) < 2 {
		return out
	}

	max := out[0]
	for _, v := range out {
		if v > max {
			max = v
		}
	}

	const base = 256
	buf := make([]int, len(out))
	for shift := 0; max > 0; shift += 8 {
		var count [base + 1]int
		for _, v := range out {
			digit := (v >> shift) & (base - 1)
			count[digit+1]++
		}
		for i := 0; i < base; i++ {
			count[i+1] += count[i]
		}
		for _, v := range out {
			digit := (v >> shift) & (base - 1)
			buf[count[digit]] = v
			count[digit]++
		}
		out, buf = buf, out
		max >>= 8
	}

	return out
}
