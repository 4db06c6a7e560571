// Package sort provides vectorized in-place sorting of fixed-width numeric
// keys (int32, int64, uint32, uint64, float32, float64) built from register
// primitives of a SIMD unit with W lanes.
//
// # Building blocks
//
// The package is layered bottom-up, and every layer is exported so it can
// be used and tested on its own:
//   - SortLane sorts the lanes of one register with a bitonic network;
//     SortLaneAdaptive is an odd-even transposition variant that stops early
//   - MergeBlocks and SortBlocks turn up to 16 registers into one sorted run
//   - SortRun sorts any slice of up to 16*W elements, padding the last
//     register with the maximum value of the element type
//   - Partition splits a range around a pivot with compress-stores
//   - Sort and SortParallel are the hybrid quicksort driving all of the above
//
// # Algorithm
//
// Sort is an introsort variant: ranges shorter than 16 registers go to
// SortRun, longer ranges are partitioned around a median-of-three pivot, and
// a depth limit of 2*floor(log2 n)+2 hands pathological inputs to heapsort.
// SortParallel forks the larger side of each partition to a
// workerpool.Pool for the first few recursion levels. Sorting is not stable
// and NaN keys give unspecified order.
//
// # Example Usage
//
//	import "github.com/ajroetker/vsort/hwy/contrib/sort"
//
//	func ProcessData(data []float32) {
//	    sort.Sort(data)  // In-place ascending sort
//	}
//
//	func CheckSorted(data []float32) bool {
//	    return sort.IsSorted(data)
//	}
//
// A Sorter fixes the register width and driver settings:
//
//	s := sort.New[int64](sort.WithWidth(hwy.Width256), sort.WithWorkers(8))
//	defer s.Close()
//	s.SortParallel(keys)
//
// # Register width
//
// Without options the width detected at startup is used (see
// hwy.CurrentWidth); HWY_NO_SIMD=1 forces 16-byte registers and
// HWY_WIDTH=16|32|64 forces a width.
package sort
