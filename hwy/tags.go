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

package hwy

import (
	"fmt"
	"unsafe"
)

// Register widths in bytes.
const (
	Width128 = 16
	Width256 = 32
	Width512 = 64
)

// Desc describes a register of element type T: it fixes the lane count used
// by every vector created through it. Operations on existing vectors take
// their lane count from the operands, so only constructors need a Desc.
//
// Usage:
//
//	d := hwy.Scalable[float64]()      // widest register available at runtime
//	d := hwy.WithWidth[int32](hwy.Width256)
//	v := d.Load(data)
type Desc[T Lanes] struct {
	lanes int
}

// Scalable returns the descriptor for the widest register detected at
// runtime.
func Scalable[T Lanes]() Desc[T] {
	return Desc[T]{lanes: MaxLanes[T]()}
}

// WithWidth returns the descriptor for a register of the given width in
// bytes. It panics unless width is Width128, Width256 or Width512.
func WithWidth[T Lanes](width int) Desc[T] {
	switch width {
	case Width128, Width256, Width512:
	default:
		panic(fmt.Sprintf("hwy: unsupported register width %d bytes", width))
	}
	return Desc[T]{lanes: width / sizeOf[T]()}
}

// DescOf returns the descriptor matching the lane count of v.
func DescOf[T Lanes](v Vec[T]) Desc[T] {
	return Desc[T]{lanes: v.n}
}

// Lanes returns the number of lanes W of the described register.
func (d Desc[T]) Lanes() int {
	return d.lanes
}

// Width returns the register width in bytes.
func (d Desc[T]) Width() int {
	return d.lanes * sizeOf[T]()
}

// Load creates a vector from the first Lanes() elements of src. Lanes past
// len(src) are zero.
func (d Desc[T]) Load(src []T) Vec[T] {
	v := Vec[T]{n: d.lanes}
	copy(v.data[:d.lanes], src)
	return v
}

// Set creates a vector with all lanes set to value.
func (d Desc[T]) Set(value T) Vec[T] {
	v := Vec[T]{n: d.lanes}
	for i := 0; i < d.lanes; i++ {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func (d Desc[T]) Zero() Vec[T] {
	return Vec[T]{n: d.lanes}
}

// FirstN creates a mask with the first n lanes active.
func (d Desc[T]) FirstN(n int) Mask[T] {
	n = max(0, min(n, d.lanes))
	return Mask[T]{bits: laneBits(n), n: d.lanes}
}

// MaskFromBits creates a mask from a bitmask integer. Bit i of bits
// corresponds to lane i; bits beyond Lanes() are ignored.
func (d Desc[T]) MaskFromBits(bits uint64) Mask[T] {
	return Mask[T]{bits: uint32(bits) & laneBits(d.lanes), n: d.lanes}
}

// LoadNOr loads the first n elements of src and fills the remaining lanes
// with fill.
func (d Desc[T]) LoadNOr(src []T, n int, fill T) Vec[T] {
	n = max(0, min(n, d.lanes, len(src)))
	v := Vec[T]{n: d.lanes}
	copy(v.data[:n], src[:n])
	for i := n; i < d.lanes; i++ {
		v.data[i] = fill
	}
	return v
}

func sizeOf[T Lanes]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy))
}
