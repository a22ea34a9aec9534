package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// FullScale returns the positive full-scale magnitude of a signed integer
// sample with the given bit depth, 2^(bitDepth-1): 32768 for 16-bit,
// 8388608 for 24-bit. Depths below 2 report 1 so conversions never divide
// by zero.
func FullScale(bitDepth int) float64 {
	if bitDepth < 2 {
		return 1
	}

	return math.Ldexp(1, bitDepth-1)
}
