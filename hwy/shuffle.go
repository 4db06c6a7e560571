package hwy

// This file provides the lane permutations used by the comparator networks.
// These are pure Go (scalar) implementations; each corresponds to a single
// permute instruction (vpermd/vpermpd, tbl) on real hardware.

// Reverse reverses the order of lanes in the vector.
func Reverse[T Lanes](v Vec[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := 0; i < v.n; i++ {
		r.data[i] = v.data[v.n-1-i]
	}
	return r
}

// PermuteXor returns the vector whose lane i is v[i^k]. With k = 1 it swaps
// adjacent lanes, with k = W-1 it reverses, and with any other power of two
// it swaps blocks of k lanes. k must be below NumLanes.
// [0,1,2,3,4,5,6,7], k=2 -> [2,3,0,1,6,7,4,5]
func PermuteXor[T Lanes](v Vec[T], k int) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := 0; i < v.n; i++ {
		r.data[i] = v.data[i^k]
	}
	return r
}

// GetLane extracts a single lane value from the vector.
// Returns zero value if index is out of bounds.
func GetLane[T Lanes](v Vec[T], idx int) T {
	if idx < 0 || idx >= v.n {
		var zero T
		return zero
	}
	return v.data[idx]
}

// Indices is a precomputed lane permutation for TableLookupLanes.
type Indices[T Lanes] struct {
	idx [MaxLanesLimit]uint8
	n   int
}

// SetTableIndices builds a permutation for registers described by d.
// idx[i] names the source lane of output lane i; out-of-range entries and
// missing entries select lane i itself.
func SetTableIndices[T Lanes](d Desc[T], idx []int) Indices[T] {
	ind := Indices[T]{n: d.lanes}
	for i := 0; i < d.lanes; i++ {
		ind.idx[i] = uint8(i)
		if i < len(idx) && idx[i] >= 0 && idx[i] < d.lanes {
			ind.idx[i] = uint8(idx[i])
		}
	}
	return ind
}

// TableLookupLanes permutes v: lane i of the result is v[ind[i]].
func TableLookupLanes[T Lanes](v Vec[T], ind Indices[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := 0; i < v.n; i++ {
		r.data[i] = v.data[ind.idx[i]]
	}
	return r
}
