package emath

import "math"

// Some float32 functions that only operate on basic types. The heavy
// lifting is done in float64 and rounded back, so results are the
// same on every platform.

func Abs32(f float32) float32 {
	return math.Float32frombits(math.Float32bits(f) &^ (1 << 31))
}

// Pow32 is x^a, with 0^a == 0 for any a (math.Pow would give +Inf for a<0).
func Pow32(x, a float32) float32 {
	if x == 0 {
		return 0
	}
	return float32(math.Pow(float64(x), float64(a)))
}

func Tanh32(f float32) float32 {
	return float32(math.Tanh(float64(f)))
}

func Min32(a, b float32) float32 {
	if a < b { return a }
	return b
}

// IsFinite32 is false for NaN and both infinities.
func IsFinite32(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// ClampToByte truncates f towards zero and clamps into [0,255].
func ClampToByte(f float32) uint8 {
	switch {
	case !(f > 0):  return 0 // includes NaN
	case f >= 255:  return 255
	default:        return uint8(f)
	}
}
