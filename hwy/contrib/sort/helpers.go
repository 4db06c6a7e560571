package sort

import (
	"math/bits"
	"sync/atomic"

	"github.com/ajroetker/vsort/hwy"
	"github.com/ajroetker/vsort/hwy/contrib/workerpool"
)

// Scalar helpers shared by the driver and the selection routine.

// depthLimit returns the recursion depth after which a range is finished
// with heapsort: 2*floor(log2 n) + 2.
func depthLimit(n int) int {
	return 2*bits.Len(uint(n)) + 2
}

// medianOfThree returns whichever of the indices a, b, c holds the median of
// the three values.
func medianOfThree[T hwy.Lanes](data []T, a, b, c int) int {
	if data[a] > data[b] {
		a, b = b, a
	}
	// data[a] <= data[b]
	if data[b] <= data[c] {
		return b
	}
	if data[a] > data[c] {
		return a
	}
	return c
}

// heapSort is heapsort for O(n log n) worst-case guarantee.
func heapSort[T hwy.Lanes](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n)
	}

	// Extract elements
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i)
	}
}

func siftDown[T hwy.Lanes](data []T, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && data[left] > data[largest] {
			largest = left
		}
		if right < n && data[right] > data[largest] {
			largest = right
		}

		if largest == i {
			break
		}

		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}

// isSortedParallel splits the n-1 adjacent pairs of data across the pool.
// Each chunk checks one element past its end so no pair is skipped.
func isSortedParallel[T hwy.Lanes](d hwy.Desc[T], pool *workerpool.Pool, data []T) bool {
	n := len(data)
	if n < sortedCheckGrain || pool == nil {
		return BaseIsSorted(d, data)
	}

	var unsorted atomic.Bool
	pool.ParallelFor(n-1, func(start, end int) {
		if unsorted.Load() {
			return
		}
		if !BaseIsSorted(d, data[start:end+1]) {
			unsorted.Store(true)
		}
	})
	return !unsorted.Load()
}
