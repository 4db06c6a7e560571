package hwy

import "math"

// MaxValue returns the largest value representable by T: +Inf for floats,
// the all-ones pattern for unsigned integers and the maximum two's complement
// value for signed integers. It is the sentinel used to pad partial
// registers, so no finite or infinite element can sort above it.
//
// The result is derived from the kind and size of T, so named types such as
// `type Celsius float64` are supported.
func MaxValue[T Lanes]() T {
	var zero T
	switch {
	case isFloat[T]():
		inf := math.Inf(1)
		return T(inf)
	case zero-1 > zero:
		// Unsigned: wrap-around makes zero-1 the maximum.
		return zero - 1
	case sizeOf[T]() == 4:
		var m int64 = math.MaxInt32
		return T(m)
	default:
		var m int64 = math.MaxInt64
		return T(m)
	}
}

// MinValue returns the smallest value representable by T: -Inf for floats,
// zero for unsigned integers and the minimum two's complement value for
// signed integers.
func MinValue[T Lanes]() T {
	var zero T
	switch {
	case isFloat[T]():
		inf := math.Inf(-1)
		return T(inf)
	case zero-1 > zero:
		return zero
	case sizeOf[T]() == 4:
		var m int64 = math.MinInt32
		return T(m)
	default:
		var m int64 = math.MinInt64
		return T(m)
	}
}

// isFloat reports whether T is a floating-point type. Converting one half
// keeps the fraction for floats and truncates it to zero for integers.
func isFloat[T Lanes]() bool {
	half := 0.5
	return T(half) != 0
}
