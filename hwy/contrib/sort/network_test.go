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
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/vsort/hwy"
)

// widths are the register widths in bytes every layer is tested with.
var widths = []int{hwy.Width128, hwy.Width256, hwy.Width512}

func TestSortLaneScenario(t *testing.T) {
	d := hwy.WithWidth[float64](hwy.Width512)
	got := SortLane(d.Load([]float64{8, 7, 6, 5, 4, 3, 2, 1})).Data()
	want := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortLane mismatch (-want +got):\n%s", diff)
	}
}

// TestSortLaneZeroOne checks every 0/1 input. By the 0-1 principle a
// comparator network that sorts all of them sorts every input.
func TestSortLaneZeroOne(t *testing.T) {
	for _, width := range widths {
		d := hwy.WithWidth[int32](width)
		lanes := d.Lanes()
		t.Run(fmt.Sprintf("W=%d", lanes), func(t *testing.T) {
			in := make([]int32, lanes)
			for pattern := 0; pattern < 1<<lanes; pattern++ {
				for i := range in {
					in[i] = int32(pattern >> i & 1)
				}
				want := slices.Clone(in)
				slices.Sort(want)

				if got := SortLane(d.Load(in)).Data(); !slices.Equal(got, want) {
					t.Fatalf("SortLane(%v) = %v, want %v", in, got, want)
				}
				if got := SortLaneAdaptive(d.Load(in)).Data(); !slices.Equal(got, want) {
					t.Fatalf("SortLaneAdaptive(%v) = %v, want %v", in, got, want)
				}
			}
		})
	}
}

func TestSortLaneRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, width := range widths {
		t.Run(fmt.Sprintf("float64/%dB", width), func(t *testing.T) {
			testSortLaneRandom(t, hwy.WithWidth[float64](width), func() float64 { return rng.NormFloat64() })
		})
		t.Run(fmt.Sprintf("uint32/%dB", width), func(t *testing.T) {
			testSortLaneRandom(t, hwy.WithWidth[uint32](width), rng.Uint32)
		})
		t.Run(fmt.Sprintf("int64/%dB", width), func(t *testing.T) {
			testSortLaneRandom(t, hwy.WithWidth[int64](width), func() int64 { return rng.Int63n(20) - 10 })
		})
	}
}

func testSortLaneRandom[T hwy.Lanes](t *testing.T, d hwy.Desc[T], gen func() T) {
	t.Helper()
	in := make([]T, d.Lanes())
	for range 200 {
		for i := range in {
			in[i] = gen()
		}
		want := slices.Clone(in)
		slices.Sort(want)

		if got := SortLane(d.Load(in)).Data(); !slices.Equal(got, want) {
			t.Fatalf("SortLane(%v) = %v, want %v", in, got, want)
		}
		if got := SortLaneAdaptive(d.Load(in)).Data(); !slices.Equal(got, want) {
			t.Fatalf("SortLaneAdaptive(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestSortLaneNetworkSize(t *testing.T) {
	for lg, want := range []int{0, 1, 3, 6, 10} {
		net := networkFor(1 << lg)
		if len(net.sort) != want {
			t.Errorf("W=%d: %d sort stages, want %d", 1<<lg, len(net.sort), want)
		}
		if len(net.finish) != lg {
			t.Errorf("W=%d: %d finish stages, want %d", 1<<lg, len(net.finish), lg)
		}
	}
}

func TestSortLaneSlice(t *testing.T) {
	d := hwy.WithWidth[int32](hwy.Width256)
	data := []int32{9, 3, 7, 1, 8, 2, 6, 4, 100, -1}
	SortLaneSlice(d, data)
	want := []int32{1, 2, 3, 4, 6, 7, 8, 9, 100, -1}
	if !slices.Equal(data, want) {
		t.Errorf("SortLaneSlice = %v, want %v", data, want)
	}
}

func TestBaseIsSorted(t *testing.T) {
	tests := []struct {
		name string
		data []float32
		want bool
	}{
		{"empty", []float32{}, true},
		{"single", []float32{1}, true},
		{"sorted", []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, true},
		{"equal", []float32{3, 3, 3, 3, 3, 3, 3, 3, 3}, true},
		{"unsorted_head", []float32{2, 1, 3, 4, 5, 6, 7, 8, 9}, false},
		{"unsorted_tail", []float32{1, 2, 3, 4, 5, 6, 7, 8, 10, 9}, false},
	}

	for _, width := range widths {
		d := hwy.WithWidth[float32](width)
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s/%dB", tt.name, width), func(t *testing.T) {
				if got := BaseIsSorted(d, tt.data); got != tt.want {
					t.Errorf("BaseIsSorted(%v) = %v, want %v", tt.data, got, tt.want)
				}
			})
		}
	}
}
