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

// Package hwy provides the portable vector register model used by the
// vectorized sorting kernels.
//
// A Vec holds the lanes of one hardware register. The number of lanes W is
// the register width in bytes divided by the element size, and is detected
// at startup (AVX-512, AVX2, SSE2/NEON) or chosen explicitly through a Desc.
// Vec and Mask are plain values backed by fixed-size arrays, so kernels built
// from them never allocate.
//
// Basic usage:
//
//	import "github.com/ajroetker/vsort/hwy"
//
//	d := hwy.Scalable[float32]()
//	a := d.Load(data)
//	b := hwy.Reverse(a)
//	hwy.Store(hwy.Min(a, b), out)
package hwy

import "golang.org/x/exp/constraints"

// MaxLanesLimit is the largest lane count of any supported register:
// 512 bits of 32-bit elements.
const MaxLanesLimit = 16

// Floats is a constraint for floating-point element types.
type Floats interface {
	constraints.Float
}

// SignedInts is a constraint for the signed integer element types.
type SignedInts interface {
	~int32 | ~int64
}

// UnsignedInts is a constraint for the unsigned integer element types.
type UnsignedInts interface {
	~uint32 | ~uint64
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
// Only 32- and 64-bit elements are supported, so a register never holds
// more than MaxLanesLimit lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector register holding NumLanes elements.
//
// Vec instances should not be created directly; use Load, Set, or Zero
// (or the equivalent Desc methods) instead.
type Vec[T Lanes] struct {
	data [MaxLanesLimit]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Data returns a copy of the vector lanes.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Store writes the vector's lanes to dst, truncated to len(dst).
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	copy(dst, v.data[:v.n])
}

// Mask represents the result of a lane-wise comparison. Bit i is set when
// lane i is active.
//
// Mask instances should not be created directly; use comparison operations
// like LessEqual or GreaterThan, or FirstN.
type Mask[T Lanes] struct {
	bits uint32
	n    int
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	return m.bits == laneBits(m.n)
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	return m.bits != 0
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	return popCount32(m.bits)
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.bits&(1<<uint(i)) != 0
}

// laneBits returns a bitmask with the low n bits set.
func laneBits(n int) uint32 {
	if n >= 32 {
		return ^uint32(0)
	}
	return uint32(1)<<uint(n) - 1
}
