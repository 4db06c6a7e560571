// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import (
	"go.uber.org/zap"

	"github.com/ajroetker/vsort/hwy/contrib/workerpool"
)

// Sort sorts data in ascending order. It is an introsort variant that
// combines:
//   - the block sort (lane network plus block merge network) for ranges
//     shorter than SortLimit
//   - vectorized partitioning around a median-of-three pivot otherwise
//   - a heapsort fallback once the recursion is deeper than
//     2*floor(log2 n)+2, which bounds the worst case to O(n log n)
func (s *Sorter[T]) Sort(data []T) {
	n := len(data)
	if n <= 1 {
		return
	}
	s.sortRange(data, 0, n-1, depthLimit(n))
}

// sortRange sorts data[left:right+1]. It recurses into the smaller side of
// each partition and loops on the larger one, so the stack depth stays
// logarithmic.
func (s *Sorter[T]) sortRange(data []T, left, right, depth int) {
	for {
		n := right - left + 1
		if n < s.sortLimit {
			s.sortRun(data[left : right+1])
			return
		}
		if depth == 0 {
			s.logger.Debug("recursion depth limit reached, finishing with heapsort",
				zap.Int("left", left), zap.Int("n", n))
			heapSort(data[left : right+1])
			return
		}
		depth--

		b := s.partitionAroundPivot(data, left, right)
		if b-left < right-b {
			s.sortRange(data, left, b-1, depth)
			left = b + 1
		} else {
			s.sortRange(data, b+1, right, depth)
			right = b - 1
		}
	}
}

// partitionAroundPivot partitions data[left:right+1] around the median of
// its first, middle and last elements and returns the pivot's final index
// b. Afterwards data[left:b] <= data[b] < data[b+1:right+1].
func (s *Sorter[T]) partitionAroundPivot(data []T, left, right int) int {
	mid := left + (right-left)/2
	m := medianOfThree(data, left, mid, right)
	data[m], data[right] = data[right], data[m]
	pivot := data[right]

	b := BasePartition(s.d, data, left, right-1, pivot)
	data[b], data[right] = data[right], data[b]
	return b
}

// sortRun sorts a range known to fit the block sort.
func (s *Sorter[T]) sortRun(data []T) {
	if err := BaseSortRun(s.d, data); err != nil {
		panic(err)
	}
}

// SortRun sorts a slice of at most MaxBlocks*Lanes() elements with the
// block sort. It panics with an error wrapping ErrInvalidSize if data is
// longer.
func (s *Sorter[T]) SortRun(data []T) {
	s.sortRun(data)
}

// TrySortRun is SortRun returning ErrInvalidSize instead of panicking.
func (s *Sorter[T]) TrySortRun(data []T) error {
	return BaseSortRun(s.d, data)
}

// Partition rearranges data[left:right+1] around pivot at the Sorter's
// width and returns the boundary. See BasePartition.
func (s *Sorter[T]) Partition(data []T, left, right int, pivot T) int {
	return BasePartition(s.d, data, left, right, pivot)
}

// SortParallel sorts data like Sort, forking the larger side of each
// partition to the worker pool while the spawn budget lasts and the range
// is at least the parallel grain. When no worker is idle the fork runs on
// the current goroutine, so SortParallel never blocks on the pool. Input
// that is already sorted returns after a parallel check.
//
// Panics raised while sorting a forked range are re-raised on the calling
// goroutine.
func (s *Sorter[T]) SortParallel(data []T) {
	n := len(data)
	if n <= 1 {
		return
	}
	pool := s.workerPool()
	if isSortedParallel(s.d, pool, data) {
		return
	}

	g := pool.NewGroup()
	s.sortRangeParallel(g, data, 0, n-1, depthLimit(n), s.spawnBudget)
	g.Wait()

	stats := g.Stats()
	s.logger.Debug("parallel sort finished",
		zap.Int("n", n),
		zap.Int("spawnBudget", s.spawnBudget),
		zap.Int64("forked", stats.Forked),
		zap.Int64("inlined", stats.Inlined))
}

// sortRangeParallel sorts data[left:right+1]. Every task it forks works on
// a range disjoint from all others: the pivot slot belongs to neither side.
func (s *Sorter[T]) sortRangeParallel(g *workerpool.Group, data []T, left, right, depth, budget int) {
	n := right - left + 1
	if budget <= 0 || n < s.parallelGrain || n < s.sortLimit || depth == 0 {
		s.sortRange(data, left, right, depth)
		return
	}

	b := s.partitionAroundPivot(data, left, right)
	depth--
	budget--

	if b-left >= right-b {
		g.Go(func() { s.sortRangeParallel(g, data, left, b-1, depth, budget) })
		s.sortRangeParallel(g, data, b+1, right, depth, budget)
	} else {
		g.Go(func() { s.sortRangeParallel(g, data, b+1, right, depth, budget) })
		s.sortRangeParallel(g, data, left, b-1, depth, budget)
	}
}

// NthElement rearranges data such that the element at index k is the one
// that would be there if data were sorted, every element before it is <=
// data[k] and every element after it is >= data[k]. k outside [0, len(data))
// leaves data unchanged.
func (s *Sorter[T]) NthElement(data []T, k int) {
	n := len(data)
	if k < 0 || k >= n {
		return
	}

	left, right := 0, n-1
	depth := depthLimit(n)
	for {
		if right-left+1 < s.sortLimit {
			s.sortRun(data[left : right+1])
			return
		}
		if depth == 0 {
			heapSort(data[left : right+1])
			return
		}
		depth--

		b := s.partitionAroundPivot(data, left, right)
		switch {
		case k < b:
			right = b - 1
		case k > b:
			left = b + 1
		default:
			return
		}
	}
}

// IsSorted reports whether data is sorted in ascending order.
func (s *Sorter[T]) IsSorted(data []T) bool {
	return BaseIsSorted(s.d, data)
}
