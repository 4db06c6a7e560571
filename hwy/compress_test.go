package hwy

import (
	"slices"
	"testing"
)

func TestCompress(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	tests := []struct {
		name     string
		bits     uint64
		wantData []float32
	}{
		{"all true", 0xFF, []float32{1, 2, 3, 4, 5, 6, 7, 8}},
		{"all false", 0x00, []float32{}},
		{"alternating true first", 0b0101_0101, []float32{1, 3, 5, 7}},
		{"alternating false first", 0b1010_1010, []float32{2, 4, 6, 8}},
		{"first half true", 0x0F, []float32{1, 2, 3, 4}},
		{"last half true", 0xF0, []float32{5, 6, 7, 8}},
		{"single true", 0b0000_1000, []float32{4}},
	}

	d := WithWidth[float32](Width256)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, count := Compress(d.Load(data), d.MaskFromBits(tt.bits))
			if count != len(tt.wantData) {
				t.Fatalf("count = %d, want %d", count, len(tt.wantData))
			}
			if got := v.Data()[:count]; !slices.Equal(got, tt.wantData) {
				t.Errorf("Compress = %v, want %v", got, tt.wantData)
			}
		})
	}
}

func TestCompressStore(t *testing.T) {
	d := WithWidth[int64](Width512)
	v := d.Load([]int64{1, 2, 3, 4, 5, 6, 7, 8})
	mask := d.MaskFromBits(0b0100_1101)

	// Positions past the count keep their old contents.
	dst := []int64{-1, -1, -1, -1, -1, -1, -1, -1}
	count := CompressStore(v, mask, dst)
	if count != 4 {
		t.Errorf("CompressStore count: got %d, want 4", count)
	}
	if want := []int64{1, 3, 4, 7, -1, -1, -1, -1}; !slices.Equal(dst, want) {
		t.Errorf("CompressStore dst = %v, want %v", dst, want)
	}

	// A destination shorter than the count is filled, not overrun.
	short := make([]int64, 2)
	if got := CompressStore(v, mask, short); got != 4 {
		t.Errorf("CompressStore count with short dst: got %d, want 4", got)
	}
	if !slices.Equal(short, []int64{1, 3}) {
		t.Errorf("CompressStore short dst = %v", short)
	}
}

func TestCountTrueFindFirst(t *testing.T) {
	d := WithWidth[uint32](Width512)
	tests := []struct {
		bits      uint64
		wantCount int
		wantFirst int
	}{
		{0, 0, -1},
		{1, 1, 0},
		{0x8000, 1, 15},
		{0xFFFF, 16, 0},
		{0b1011_0000, 3, 4},
	}
	for _, tt := range tests {
		m := d.MaskFromBits(tt.bits)
		if got := CountTrue(m); got != tt.wantCount {
			t.Errorf("CountTrue(%#x) = %d, want %d", tt.bits, got, tt.wantCount)
		}
		if got := FindFirstTrue(m); got != tt.wantFirst {
			t.Errorf("FindFirstTrue(%#x) = %d, want %d", tt.bits, got, tt.wantFirst)
		}
	}
}

func TestFirstN(t *testing.T) {
	d := WithWidth[float64](Width512)
	tests := []struct {
		n    int
		want uint64
	}{
		{-3, 0},
		{0, 0},
		{1, 0b1},
		{5, 0b1_1111},
		{8, 0xFF},
		{100, 0xFF},
	}
	for _, tt := range tests {
		if got := BitsFromMask(d.FirstN(tt.n)); got != tt.want {
			t.Errorf("FirstN(%d) = %#b, want %#b", tt.n, got, tt.want)
		}
	}
}

func TestMaskFromBitsIgnoresHighBits(t *testing.T) {
	d := WithWidth[int32](Width128)
	m := d.MaskFromBits(0xFFFF_FFF5)
	if got := BitsFromMask(m); got != 0b0101 {
		t.Errorf("MaskFromBits on 4 lanes = %#b, want 0b101", got)
	}
	if !m.GetBit(0) || m.GetBit(1) || m.GetBit(4) || m.GetBit(-1) {
		t.Errorf("GetBit mismatch for %#b", BitsFromMask(m))
	}
}

func TestMaskLogic(t *testing.T) {
	d := WithWidth[float32](Width256)
	a := d.MaskFromBits(0b1100_1010)
	b := d.MaskFromBits(0b1010_0110)

	tests := []struct {
		name string
		got  Mask[float32]
		want uint64
	}{
		{"And", MaskAnd(a, b), 0b1000_0010},
		{"Or", MaskOr(a, b), 0b1110_1110},
		{"Not", MaskNot(a), 0b0011_0101},
		{"AndNot", MaskAndNot(a, b), 0b0010_0100},
	}
	for _, tt := range tests {
		if got := BitsFromMask(tt.got); got != tt.want {
			t.Errorf("Mask%s = %08b, want %08b", tt.name, got, tt.want)
		}
	}
}
