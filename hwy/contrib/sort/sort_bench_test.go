package sort

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/ajroetker/vsort/hwy"
)

// Generate random data for benchmarks
func generateFloat32(n int) []float32 {
	data := make([]float32, n)
	for i := range data {
		data[i] = rand.Float32() * 1000
	}
	return data
}

func generateFloat64(n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = rand.Float64() * 1000
	}
	return data
}

func generateInt32(n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = rand.Int31n(10000) - 5000
	}
	return data
}

func generateInt64(n int) []int64 {
	data := make([]int64, n)
	for i := range data {
		data[i] = rand.Int63n(10000) - 5000
	}
	return data
}

var benchSizes = []int{100, 1000, 10000, 100000}

func BenchmarkSort_Float32(b *testing.B) {
	benchmarkStrategies(b, generateFloat32)
}

func BenchmarkSort_Float64(b *testing.B) {
	benchmarkStrategies(b, generateFloat64)
}

func BenchmarkSort_Int32(b *testing.B) {
	benchmarkStrategies(b, generateInt32)
}

func BenchmarkSort_Int64(b *testing.B) {
	benchmarkStrategies(b, generateInt64)
}

func benchmarkStrategies[T hwy.Lanes](b *testing.B, gen func(int) []T) {
	strategies := []struct {
		name string
		sort func([]T)
	}{
		{"vsort", Sort[T]},
		{"parallel", SortParallel[T]},
		{"stdlib", slices.Sort[[]T]},
	}
	for _, n := range benchSizes {
		ref := gen(n)
		data := make([]T, n)
		for _, st := range strategies {
			b.Run(fmt.Sprintf("%s/%d", st.name, n), func(b *testing.B) {
				b.SetBytes(int64(n) * int64(hwy.Scalable[T]().Width()/hwy.Scalable[T]().Lanes()))
				for i := 0; i < b.N; i++ {
					copy(data, ref)
					st.sort(data)
				}
			})
		}
	}
}

func BenchmarkSortRun(b *testing.B) {
	for _, width := range widths {
		d := hwy.WithWidth[float32](width)
		for _, regs := range []int{1, 4, 15, MaxBlocks} {
			n := regs * d.Lanes()
			ref := generateFloat32(n)
			data := make([]float32, n)
			b.Run(fmt.Sprintf("%dB/%d", width, n), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					copy(data, ref)
					_ = BaseSortRun(d, data)
				}
			})
		}
	}
}

func BenchmarkPartition(b *testing.B) {
	for _, width := range widths {
		d := hwy.WithWidth[int32](width)
		ref := generateInt32(100000)
		data := make([]int32, len(ref))
		b.Run(fmt.Sprintf("%dB", width), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				copy(data, ref)
				BasePartition(d, data, 0, len(data)-1, 0)
			}
		})
	}
}

func BenchmarkBitonicSort(b *testing.B) {
	ref := generateFloat64(1 << 16)
	data := make([]float64, len(ref))
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		_ = BitonicSort(data)
	}
}

func BenchmarkIsSorted(b *testing.B) {
	data := generateFloat32(100000)
	Sort(data)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		IsSorted(data)
	}
}
