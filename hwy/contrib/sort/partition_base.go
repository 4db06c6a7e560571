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
	"fmt"

	"github.com/ajroetker/vsort/hwy"
)

// BasePartition rearranges data[left:right+1] around pivot and returns the
// boundary b, left <= b <= right+1, such that every element of
// data[left:b] is <= pivot and every element of data[b:right+1] is > pivot.
// Elements outside the range are never read or written. An empty range
// (right < left) returns left.
//
// The partition works in registers of d.Lanes() elements. The first and the
// last register of the range are held aside before the loop so that each
// side starts with one register of free space. Every step then reads one
// register from the side that has less free space left and compress-stores
// its "<= pivot" lanes at the left write cursor and its "> pivot" lanes just
// below the right write cursor. Because free space on the two sides always
// sums to two registers before a read, reading from the tighter side leaves
// at least one register free on both, so no unread element is overwritten.
//
// Ranges shorter than two registers use a scalar two-pointer partition with
// the same contract.
func BasePartition[T hwy.Lanes](d hwy.Desc[T], data []T, left, right int, pivot T) int {
	if right < left {
		return left
	}
	if left < 0 || right >= len(data) {
		panic(fmt.Sprintf("sort: partition range [%d, %d] out of bounds for length %d", left, right, len(data)))
	}

	lanes := d.Lanes()
	n := right - left + 1
	if n < 2*lanes {
		return left + scalarPartition2Way(data[left:right+1], pivot)
	}

	pivotVec := d.Set(pivot)

	// Overhang registers; their slots become the initial free space.
	vLeft := d.Load(data[left:])
	vRight := d.Load(data[right+1-lanes:])

	writeL := left
	readL := left + lanes
	readR := right + 1 - lanes
	writeR := right + 1

	for readR-readL >= lanes {
		var v hwy.Vec[T]
		if readL-writeL <= writeR-readR {
			v = d.Load(data[readL:])
			readL += lanes
		} else {
			readR -= lanes
			v = d.Load(data[readR:])
		}
		writeL, writeR = storeLeftRight(v, d.FirstN(lanes), pivotVec, data, writeL, writeR)
	}

	// After the remainder is read, [writeL, writeR) is one free gap.
	if rem := readR - readL; rem > 0 {
		valid := d.FirstN(rem)
		v := hwy.MaskLoad(valid, data[readL:readR])
		writeL, writeR = storeLeftRight(v, valid, pivotVec, data, writeL, writeR)
	}

	all := d.FirstN(lanes)
	writeL, writeR = storeLeftRight(vLeft, all, pivotVec, data, writeL, writeR)
	writeL, _ = storeLeftRight(vRight, all, pivotVec, data, writeL, writeR)
	return writeL
}

// storeLeftRight splits the valid lanes of v: lanes <= pivot are stored at
// writeL and lanes > pivot end just before writeR. It returns the advanced
// cursors.
func storeLeftRight[T hwy.Lanes](v hwy.Vec[T], valid hwy.Mask[T], pivotVec hwy.Vec[T], data []T, writeL, writeR int) (int, int) {
	le := hwy.MaskAnd(hwy.LessEqual(v, pivotVec), valid)
	gt := hwy.MaskAndNot(le, valid)

	numLeft := hwy.CompressStore(v, le, data[writeL:writeR])
	numRight := hwy.CountTrue(gt)
	writeR -= numRight
	hwy.CompressStore(v, gt, data[writeR:])
	return writeL + numLeft, writeR
}

// scalarPartition2Way performs scalar 2-way partitioning.
// Returns index where data[0:idx] <= pivot and data[idx:n] > pivot.
func scalarPartition2Way[T hwy.Lanes](data []T, pivot T) int {
	left := 0
	right := len(data)

	for left < right {
		if data[left] <= pivot {
			left++
		} else {
			right--
			data[left], data[right] = data[right], data[left]
		}
	}

	return left
}
