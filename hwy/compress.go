package hwy

import "math/bits"

// This file provides compress and mask operations for vectors.
// Compress packs elements where the mask is true to the front; it is the
// core of the vectorized partition, which splits one register into its
// "<= pivot" and "> pivot" lanes per step.

// Compress packs elements where mask is true to the front.
// Returns compressed vector and count of valid elements.
// For example: v=[1,2,3,4], mask=[T,F,T,F] -> result=[1,3,0,0], count=2
func Compress[T Lanes](v Vec[T], mask Mask[T]) (Vec[T], int) {
	r := Vec[T]{n: v.n}
	count := 0
	for i := 0; i < v.n; i++ {
		if mask.bits&(1<<uint(i)) != 0 {
			r.data[count] = v.data[i]
			count++
		}
	}
	return r, count
}

// CompressStore writes the active lanes of v contiguously to the front of
// dst and returns how many there were. Positions of dst past the count are
// left untouched, like a native compress-store (vpcompressd with a memory
// operand).
func CompressStore[T Lanes](v Vec[T], mask Mask[T], dst []T) int {
	count := 0
	for i := 0; i < v.n; i++ {
		if mask.bits&(1<<uint(i)) != 0 {
			if count < len(dst) {
				dst[count] = v.data[i]
			}
			count++
		}
	}
	return count
}

// CountTrue counts true lanes in mask.
// This is a function wrapper around Mask.CountTrue() for consistency.
func CountTrue[T Lanes](mask Mask[T]) int {
	return mask.CountTrue()
}

// AllTrue returns true if all lanes are true.
// This is a function wrapper around Mask.AllTrue() for consistency.
func AllTrue[T Lanes](mask Mask[T]) bool {
	return mask.AllTrue()
}

// AllFalse returns true if all lanes are false.
func AllFalse[T Lanes](mask Mask[T]) bool {
	return mask.bits == 0
}

// FindFirstTrue returns index of first true lane, or -1 if none.
func FindFirstTrue[T Lanes](mask Mask[T]) int {
	if mask.bits == 0 {
		return -1
	}
	return bits.TrailingZeros32(mask.bits)
}

// FirstN creates a mask with the first n lanes set to true, using the
// current register width.
func FirstN[T Lanes](n int) Mask[T] {
	return Scalable[T]().FirstN(n)
}

// MaskFromBits creates a mask from a bitmask integer, using the current
// register width. Bit i of bits corresponds to lane i.
func MaskFromBits[T Lanes](bits uint64) Mask[T] {
	return Scalable[T]().MaskFromBits(bits)
}

// BitsFromMask converts mask to bitmask integer.
// Lane i corresponds to bit i of the result.
func BitsFromMask[T Lanes](mask Mask[T]) uint64 {
	return uint64(mask.bits)
}

// MaskAnd performs bitwise AND on two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	return Mask[T]{bits: a.bits & b.bits, n: a.n}
}

// MaskOr performs bitwise OR on two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	return Mask[T]{bits: a.bits | b.bits, n: a.n}
}

// MaskNot inverts all lanes in a mask.
func MaskNot[T Lanes](mask Mask[T]) Mask[T] {
	return Mask[T]{bits: ^mask.bits & laneBits(mask.n), n: mask.n}
}

// MaskAndNot performs (~a) & b on masks.
func MaskAndNot[T Lanes](a, b Mask[T]) Mask[T] {
	return Mask[T]{bits: ^a.bits & b.bits, n: b.n}
}

func popCount32(x uint32) int {
	return bits.OnesCount32(x)
}
