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

// BaseSortRun sorts up to MaxBlocks*W elements in place with the block
// merge network, where W = d.Lanes(). The length need not be a multiple of
// W: the last register is loaded partially and padded with the maximum
// value of T, and only its valid lanes are stored back.
//
// It returns ErrInvalidSize, leaving data untouched, when len(data) exceeds
// MaxBlocks*W.
func BaseSortRun[T hwy.Lanes](d hwy.Desc[T], data []T) error {
	n := len(data)
	lanes := d.Lanes()
	if n > MaxBlocks*lanes {
		return fmt.Errorf("%w: block sort holds at most %d elements of width %d, got %d",
			ErrInvalidSize, MaxBlocks*lanes, lanes, n)
	}
	if n <= 1 {
		return nil
	}

	var regs [MaxBlocks]hwy.Vec[T]
	full := n / lanes
	rem := n - full*lanes
	for i := range full {
		regs[i] = d.Load(data[i*lanes:])
	}
	numRegs := full
	if rem > 0 {
		regs[full] = d.LoadNOr(data[full*lanes:], rem, hwy.MaxValue[T]())
		numRegs++
	}

	sortBlocksPadded(&regs, numRegs)

	for i := range full {
		hwy.Store(regs[i], data[i*lanes:(i+1)*lanes])
	}
	if rem > 0 {
		hwy.StoreN(regs[full], data[full*lanes:], rem)
	}
	return nil
}
