package sortselect

import "cmp"

// Select returns the k-th smallest element (0-indexed) of items via the
// median-of-medians algorithm: items are split into groups of 5, each
// group's median is computed by insertion sort, the median of those
// medians becomes the pivot for a three-way partition, and the search
// recurses into whichever partition contains position k. This
// guarantees a good pivot every call, giving worst-case O(n) time
// (unlike a randomized quickselect's expected-O(n)/worst-O(n^2) split).
//
// items is not mutated; Select copies it once up front.
func Select[T cmp.Ordered](items []T, k int) T {
	a := append([]T(nil), items...)

	return selectK(a, k)
}

func selectK[T cmp.Ordered](a []T, k int) T {
	if len(a) == 1 {
		return a[0]
	}

	pivot := medianOfMedians(a)

	var less, equal, greater []T
	for _, v := range a {
		switch {
		case v < pivot:
			less = append(less, v)
		case v > pivot:
			greater = append(greater, v)
		default:
			equal = append(equal, v)
		}
	}

	switch {
	case k < len(less):
		return selectK(less, k)
	case k < len(less)+len(equal):
		return pivot
	default:
		return selectK(greater, k-len(less)-len(equal))
	}
}

// medianOfMedians partitions a into groups of 5, finds each group's
// median via insertion sort, and recursively selects the median of
// those medians.
func medianOfMedians[T cmp.Ordered](a []T) T {
	if len(a) <= 5 {
		return medianOfSmall(a)
	}

	numGroups := (len(a) + 4) / 5
	medians := make([]T, 0, numGroups)
	for i := 0; i < len(a); i += 5 {
		end := i + 5
		if end > len(a) {
			end = len(a)
		}
		medians = append(medians, medianOfSmall(append([]T(nil), a[i:end]...)))
	}

	return selectK(medians, (len(medians)-1)/2)
}

// medianOfSmall returns the median of a (mutating it in place via
// insertion sort), which is safe since callers always pass a private
// slice.
func medianOfSmall[T cmp.Ordered](a []T) T {
	for i := 1; i < len(a); i++ {
		v := a[i]
		j := i - 1
		for j >= 0 && a[j] > v {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}

	return a[(len(a)-1)/2]
}
