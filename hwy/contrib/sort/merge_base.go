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

// MaxBlocks is the largest number of registers the block merge network
// handles in one call.
const MaxBlocks = 16

// MergeBlocks merges K individually sorted registers (1 <= K <= MaxBlocks)
// into one sorted run: afterwards regs[0] holds the W smallest elements in
// ascending order, regs[1] the next W, and so on.
//
// The network halves recursively: both halves are merged into runs, the
// two runs are collapsed by comparing mirrored registers (i, K-1-i) with the
// lanes of one operand reversed, and register half-cleaners plus the
// in-register finish pass restore order. A K that is not a power of two is
// padded with registers of the maximum value, which sort behind every real
// element and are dropped on return.
func MergeBlocks[T hwy.Lanes](regs []hwy.Vec[T]) {
	k := checkBlocks(regs)
	if k == 1 {
		return
	}
	var buf [MaxBlocks]hwy.Vec[T]
	copy(buf[:k], regs)
	p := padBlocks(&buf, k)
	mergeRuns(buf[:p])
	copy(regs, buf[:k])
}

// SortBlocks sorts K registers of arbitrary content (1 <= K <= MaxBlocks)
// into one sorted run: every register is sorted with SortLane, then the
// block merge network joins them.
func SortBlocks[T hwy.Lanes](regs []hwy.Vec[T]) {
	k := checkBlocks(regs)
	var buf [MaxBlocks]hwy.Vec[T]
	copy(buf[:k], regs)
	sortBlocksPadded(&buf, k)
	copy(regs, buf[:k])
}

func checkBlocks[T hwy.Lanes](regs []hwy.Vec[T]) int {
	k := len(regs)
	if k < 1 || k > MaxBlocks {
		panic(fmt.Sprintf("sort: block merge network supports 1..%d registers, got %d", MaxBlocks, k))
	}
	return k
}

// sortBlocksPadded sorts the first k registers of buf as one run, using the
// rest of buf as sentinel padding.
func sortBlocksPadded[T hwy.Lanes](buf *[MaxBlocks]hwy.Vec[T], k int) {
	for i := range k {
		buf[i] = SortLane(buf[i])
	}
	if k > 1 {
		mergeRuns(buf[:padBlocks(buf, k)])
	}
}

// padBlocks fills buf[k:p] with sentinel registers, where p is the next
// power of two >= k, and returns p.
func padBlocks[T hwy.Lanes](buf *[MaxBlocks]hwy.Vec[T], k int) int {
	p := 1
	for p < k {
		p *= 2
	}
	if p > k {
		sentinel := hwy.DescOf(buf[0]).Set(hwy.MaxValue[T]())
		for i := k; i < p; i++ {
			buf[i] = sentinel
		}
	}
	return p
}

// mergeRuns sorts a power-of-two number of registers, each already sorted,
// into one run by recursive halving.
func mergeRuns[T hwy.Lanes](regs []hwy.Vec[T]) {
	k := len(regs)
	if k == 1 {
		return
	}
	h := k / 2
	mergeRuns(regs[:h])
	mergeRuns(regs[h:])
	collapse(regs)
	cleanBlocks(regs[:h])
	cleanBlocks(regs[h:])
}

// collapse is the bitonic flip at register granularity: element g of the
// run is compared with element len-1-g. Afterwards each half is bitonic and
// no element of the lower half exceeds any element of the upper half.
func collapse[T hwy.Lanes](regs []hwy.Vec[T]) {
	k := len(regs)
	for i := 0; i < k/2; i++ {
		j := k - 1 - i
		mirrored := hwy.Reverse(regs[j])
		regs[i], regs[j] = hwy.Min(regs[i], mirrored), hwy.Reverse(hwy.Max(regs[i], mirrored))
	}
}

// cleanBlocks sorts a bitonic run of a power-of-two number of registers:
// register half-cleaners down to distance one, then the finish pass.
func cleanBlocks[T hwy.Lanes](regs []hwy.Vec[T]) {
	k := len(regs)
	for dist := k / 2; dist >= 1; dist /= 2 {
		for base := 0; base < k; base += 2 * dist {
			for i := base; i < base+dist; i++ {
				regs[i], regs[i+dist] = hwy.Min(regs[i], regs[i+dist]), hwy.Max(regs[i], regs[i+dist])
			}
		}
	}
	for i := range regs {
		regs[i] = finishLane(regs[i])
	}
}
