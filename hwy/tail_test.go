package hwy

import (
	"math"
	"slices"
	"testing"
)

func TestTailMask(t *testing.T) {
	mask := TailMask[float32](3)

	if !mask.GetBit(0) || !mask.GetBit(1) || !mask.GetBit(2) {
		t.Error("TailMask: first 3 bits should be true")
	}

	for i := 3; i < mask.NumLanes(); i++ {
		if mask.GetBit(i) {
			t.Errorf("TailMask: bit %d should be false", i)
		}
	}
}

func TestLoadNOrStoreN(t *testing.T) {
	d := WithWidth[float64](Width512)
	src := []float64{3, 1, 2}
	inf := math.Inf(1)

	v := d.LoadNOr(src, len(src), MaxValue[float64]())
	if got, want := v.Data(), []float64{3, 1, 2, inf, inf, inf, inf, inf}; !slices.Equal(got, want) {
		t.Errorf("LoadNOr = %v, want %v", got, want)
	}

	// n larger than src is clamped to len(src).
	v = d.LoadNOr(src, 6, -1)
	if got, want := v.Data(), []float64{3, 1, 2, -1, -1, -1, -1, -1}; !slices.Equal(got, want) {
		t.Errorf("LoadNOr clamped = %v, want %v", got, want)
	}

	dst := []float64{9, 9, 9, 9}
	StoreN(d.Set(5), dst, 2)
	if want := []float64{5, 5, 9, 9}; !slices.Equal(dst, want) {
		t.Errorf("StoreN = %v, want %v", dst, want)
	}

	// n beyond dst never writes past it.
	StoreN(d.Set(7), dst, 100)
	if want := []float64{7, 7, 7, 7}; !slices.Equal(dst, want) {
		t.Errorf("StoreN clamped = %v, want %v", dst, want)
	}
}

func TestLoadNOrScalable(t *testing.T) {
	v := LoadNOr([]int32{4}, 1, 100)
	if v.NumLanes() != MaxLanes[int32]() {
		t.Fatalf("LoadNOr lanes = %d, want %d", v.NumLanes(), MaxLanes[int32]())
	}
	if GetLane(v, 0) != 4 || GetLane(v, v.NumLanes()-1) != 100 {
		t.Errorf("LoadNOr = %v", v.Data())
	}
}
