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

// BitonicSort sorts data, whose length must be a power of two, with a
// bitonic network over memory. Lengths of 0 and 1 are accepted; any other
// length that is not a power of two returns ErrInvalidSize and leaves data
// untouched.
//
// Chunks of MaxBlocks registers are sorted with the block sort, then runs
// are merged pairwise: a flip stage compares mirrored registers of the two
// runs, half-cleaners over memory bring every chunk into one bitonic
// sequence, and each chunk is finished in registers by the block merge
// network's cleaning pass.
func (s *Sorter[T]) BitonicSort(data []T) error {
	n := len(data)
	if n&(n-1) != 0 {
		return fmt.Errorf("%w: bitonic sort needs a power-of-two length, got %d", ErrInvalidSize, n)
	}
	if n <= 1 {
		return nil
	}

	d := s.d
	lanes := d.Lanes()
	chunk := MaxBlocks * lanes
	if n <= chunk {
		return BaseSortRun(d, data)
	}

	// n and chunk are both powers of two, so n is a multiple of chunk.
	for base := 0; base < n; base += chunk {
		s.sortRun(data[base : base+chunk])
	}

	for size := 2 * chunk; size <= n; size *= 2 {
		flipMem(d, data, size)
		for dist := size / 4; dist >= chunk; dist /= 2 {
			cleanMem(d, data, dist)
		}
		for base := 0; base < n; base += chunk {
			cleanChunk(d, data[base:base+chunk])
		}
	}
	return nil
}

// flipMem compares element g of every block of size elements with element
// size-1-g, register by register.
func flipMem[T hwy.Lanes](d hwy.Desc[T], data []T, size int) {
	lanes := d.Lanes()
	for base := 0; base < len(data); base += size {
		for i := 0; i < size/2; i += lanes {
			lo := base + i
			hi := base + size - lanes - i
			a := d.Load(data[lo:])
			b := hwy.Reverse(d.Load(data[hi:]))
			hwy.Store(hwy.Min(a, b), data[lo:lo+lanes])
			hwy.Store(hwy.Reverse(hwy.Max(a, b)), data[hi:hi+lanes])
		}
	}
}

// cleanMem is one half-cleaner over memory: element i of every block of
// 2*dist elements is compare-exchanged with element i+dist.
func cleanMem[T hwy.Lanes](d hwy.Desc[T], data []T, dist int) {
	lanes := d.Lanes()
	for base := 0; base < len(data); base += 2 * dist {
		for i := base; i < base+dist; i += lanes {
			a := d.Load(data[i:])
			b := d.Load(data[i+dist:])
			hwy.Store(hwy.Min(a, b), data[i:i+lanes])
			hwy.Store(hwy.Max(a, b), data[i+dist:i+dist+lanes])
		}
	}
}

// cleanChunk sorts a bitonic chunk of exactly MaxBlocks registers.
func cleanChunk[T hwy.Lanes](d hwy.Desc[T], data []T) {
	lanes := d.Lanes()
	var regs [MaxBlocks]hwy.Vec[T]
	for i := range regs {
		regs[i] = d.Load(data[i*lanes:])
	}
	cleanBlocks(regs[:])
	for i := range regs {
		hwy.Store(regs[i], data[i*lanes:(i+1)*lanes])
	}
}
