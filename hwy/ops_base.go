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

// This file provides pure Go (scalar) implementations of the lane-wise
// operations used by the sorting networks. Each function mirrors one vector
// instruction (vpminsd, vcmpps, vblendvps, ...) and takes its lane count from
// its operands.

// Load creates a vector with the current register width from src.
func Load[T Lanes](src []T) Vec[T] {
	return Scalable[T]().Load(src)
}

// Store writes a vector's lanes to dst, truncated to len(dst).
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.data[:v.n])
}

// Set creates a vector with the current register width and all lanes set
// to value.
func Set[T Lanes](value T) Vec[T] {
	return Scalable[T]().Set(value)
}

// Zero creates a vector with the current register width and all lanes zero.
func Zero[T Lanes]() Vec[T] {
	return Scalable[T]().Zero()
}

// Min returns element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		r.data[i] = min(a.data[i], b.data[i])
	}
	return r
}

// Max returns element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		r.data[i] = max(a.data[i], b.data[i])
	}
	return r
}

// ReduceMin returns the minimum value across all lanes.
func ReduceMin[T Lanes](v Vec[T]) T {
	m := v.data[0]
	for i := 1; i < v.n; i++ {
		m = min(m, v.data[i])
	}
	return m
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax[T Lanes](v Vec[T]) T {
	m := v.data[0]
	for i := 1; i < v.n; i++ {
		m = max(m, v.data[i])
	}
	return m
}

// compare builds a mask from a lane predicate.
func compare[T Lanes](a, b Vec[T], pred func(x, y T) bool) Mask[T] {
	m := Mask[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		if pred(a.data[i], b.data[i]) {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x != y })
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x <= y })
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x >= y })
}

// IfThenElse performs conditional selection: lane i is a[i] where the mask
// is active and b[i] otherwise.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: a.n}
	for i := 0; i < a.n; i++ {
		if mask.bits&(1<<uint(i)) != 0 {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// MaskLoad loads src[i] for active lanes; inactive lanes are zero. Lanes
// past len(src) are never read.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	v := Vec[T]{n: mask.n}
	for i := 0; i < mask.n && i < len(src); i++ {
		if mask.bits&(1<<uint(i)) != 0 {
			v.data[i] = src[i]
		}
	}
	return v
}

// MaskStore stores the active lanes of v to the same positions in dst.
// Inactive positions of dst are left untouched.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	for i := 0; i < v.n && i < len(dst); i++ {
		if mask.bits&(1<<uint(i)) != 0 {
			dst[i] = v.data[i]
		}
	}
}
