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
	"math/bits"

	"github.com/ajroetker/vsort/hwy"
)

// stage is one compare-exchange step of an in-register network: every lane
// i is compared with lane i^xor, and lanes whose bit is set in hiLanes keep
// the maximum of the pair while the others keep the minimum.
type stage struct {
	xor     int
	hiLanes uint64
}

// laneNetwork holds the stage tables for one lane count W.
type laneNetwork struct {
	// sort is the full bitonic sorting network: log2W*(log2W+1)/2 stages.
	sort []stage
	// finish sorts a register whose lanes already form a bitonic sequence:
	// half-cleaners at distances W/2, W/4, ..., 1.
	finish []stage
}

// networks is indexed by log2(W) for W = 1, 2, 4, 8, 16.
var networks [5]laneNetwork

func init() {
	for lg := range networks {
		networks[lg] = buildLaneNetwork(1 << lg)
	}
}

// buildLaneNetwork generates the bitonic network in its "flip" form, where
// every stage sorts ascending: merging two sorted blocks of k/2 lanes first
// compares mirrored lanes (i, i^(k-1)), then applies half-cleaners.
func buildLaneNetwork(lanes int) laneNetwork {
	var net laneNetwork
	for k := 2; k <= lanes; k *= 2 {
		net.sort = append(net.sort, stage{xor: k - 1, hiLanes: lanesWithBit(lanes, k/2)})
		for j := k / 4; j >= 1; j /= 2 {
			net.sort = append(net.sort, stage{xor: j, hiLanes: lanesWithBit(lanes, j)})
		}
	}
	for j := lanes / 2; j >= 1; j /= 2 {
		net.finish = append(net.finish, stage{xor: j, hiLanes: lanesWithBit(lanes, j)})
	}
	return net
}

// lanesWithBit returns the set of lanes whose index has bit b set.
func lanesWithBit(lanes, b int) uint64 {
	var m uint64
	for i := 0; i < lanes; i++ {
		if i&b != 0 {
			m |= 1 << uint(i)
		}
	}
	return m
}

func networkFor(lanes int) *laneNetwork {
	if lanes <= 0 || lanes > hwy.MaxLanesLimit || lanes&(lanes-1) != 0 {
		panic(fmt.Sprintf("sort: unsupported lane count %d", lanes))
	}
	return &networks[bits.TrailingZeros(uint(lanes))]
}

// applyStages runs a stage sequence over v.
func applyStages[T hwy.Lanes](v hwy.Vec[T], stages []stage) hwy.Vec[T] {
	d := hwy.DescOf(v)
	for _, s := range stages {
		p := hwy.PermuteXor(v, s.xor)
		v = hwy.IfThenElse(d.MaskFromBits(s.hiLanes), hwy.Max(v, p), hwy.Min(v, p))
	}
	return v
}

// SortLane sorts the lanes of one register in ascending order using the
// data-oblivious bitonic network: every stage runs regardless of the input,
// so the latency is constant and the output shape is the one the block
// merge network expects.
//
// For example, with 8 float64 lanes (512-bit registers):
//
//	SortLane([8 7 6 5 4 3 2 1]) == [1 2 3 4 5 6 7 8]
func SortLane[T hwy.Lanes](v hwy.Vec[T]) hwy.Vec[T] {
	return applyStages(v, networkFor(v.NumLanes()).sort)
}

// finishLane sorts a register whose lanes form a bitonic sequence.
func finishLane[T hwy.Lanes](v hwy.Vec[T]) hwy.Vec[T] {
	return applyStages(v, networkFor(v.NumLanes()).finish)
}

// SortLaneAdaptive sorts the lanes of one register with odd-even
// transposition, stopping as soon as a round exchanges nothing. Its running
// time depends on the input; nearly sorted registers finish in one round.
func SortLaneAdaptive[T hwy.Lanes](v hwy.Vec[T]) hwy.Vec[T] {
	lanes := v.NumLanes()
	if lanes < 2 {
		return v
	}
	d := hwy.DescOf(v)
	even := oddEvenPhase(d, 0)
	odd := oddEvenPhase(d, 1)

	for range lanes {
		var swapped bool
		v, swapped = exchangePhase(v, even)
		if lanes > 2 {
			var oddSwapped bool
			v, oddSwapped = exchangePhase(v, odd)
			swapped = swapped || oddSwapped
		}
		if !swapped {
			break
		}
	}
	return v
}

// phase is one odd-even transposition step: lanes (i, i+1) for i of the
// given parity. Lanes outside any pair map to themselves.
type phase[T hwy.Lanes] struct {
	perm  hwy.Indices[T]
	lower hwy.Mask[T]
	upper hwy.Mask[T]
}

func oddEvenPhase[T hwy.Lanes](d hwy.Desc[T], parity int) phase[T] {
	lanes := d.Lanes()
	idx := make([]int, lanes)
	var lower, upper uint64
	for i := range idx {
		idx[i] = i
	}
	for i := parity; i+1 < lanes; i += 2 {
		idx[i], idx[i+1] = i+1, i
		lower |= 1 << uint(i)
		upper |= 1 << uint(i+1)
	}
	return phase[T]{
		perm:  hwy.SetTableIndices(d, idx),
		lower: d.MaskFromBits(lower),
		upper: d.MaskFromBits(upper),
	}
}

// exchangePhase compare-exchanges the pairs of ph and reports whether any
// pair was out of order.
func exchangePhase[T hwy.Lanes](v hwy.Vec[T], ph phase[T]) (hwy.Vec[T], bool) {
	p := hwy.TableLookupLanes(v, ph.perm)
	outOfOrder := hwy.MaskAnd(hwy.GreaterThan(v, p), ph.lower)
	if hwy.AllFalse(outOfOrder) {
		return v, false
	}
	return hwy.IfThenElse(ph.upper, hwy.Max(v, p), hwy.Min(v, p)), true
}

// SortLaneSlice sorts data[:d.Lanes()] in place with SortLane.
// len(data) must be at least d.Lanes().
func SortLaneSlice[T hwy.Lanes](d hwy.Desc[T], data []T) {
	lanes := d.Lanes()
	_ = data[lanes-1]
	hwy.Store(SortLane(d.Load(data)), data[:lanes])
}

// BaseIsSorted checks if a slice is sorted in ascending order, comparing a
// register of elements against its neighbours per step.
func BaseIsSorted[T hwy.Lanes](d hwy.Desc[T], data []T) bool {
	n := len(data)
	if n <= 1 {
		return true
	}

	lanes := d.Lanes()
	i := 0

	// Process full vectors: compare adjacent pairs
	for ; i+lanes < n; i += lanes {
		v1 := d.Load(data[i:])
		v2 := d.Load(data[i+1:])

		// Check if any element in v1 is greater than corresponding element in v2
		if hwy.FindFirstTrue(hwy.GreaterThan(v1, v2)) >= 0 {
			return false
		}
	}

	// Handle tail
	for ; i < n-1; i++ {
		if data[i] > data[i+1] {
			return false
		}
	}

	return true
}
