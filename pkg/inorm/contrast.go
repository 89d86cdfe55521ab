package inorm

import(
	"math"

	"github.com/abworrall/inorm/pkg/emath"
)

const(
	Alpha = float32(0.1)  // exponent of the power means
	Trim  = float32(10.0) // outlier cap, and the bound of the final squash
)

// ContrastNormalize rescales src into dst (same size) so that the
// power-mean of |v|^Alpha is one, does it again with every value capped
// at Trim so a few bright outliers can't dominate, and then squashes
// the result into (-Trim, +Trim) with Trim*tanh(v/Trim).
func ContrastNormalize(src emath.FloatMatrix, dst *emath.FloatMatrix) {
	if !src.SameSize(*dst) {
		panic(ErrSizeMismatch)
	}
	in := src.Values()
	out := dst.Values()

	s1 := powerMeanScale(in, func(v float32) float32 { return emath.Abs32(v) })
	for i, v := range in {
		out[i] = v * s1
	}

	s2 := powerMeanScale(out, func(v float32) float32 { return emath.Min32(Trim, emath.Abs32(v)) })
	for i := range out {
		out[i] *= s2
	}

	trimInv := 1 / Trim
	for i, v := range out {
		out[i] = squash(Trim * emath.Tanh32(v*trimInv))
	}
}

// tanh rounds to exactly ±1 in float32 for big enough inputs; keep the
// result strictly inside the open interval.
var maxSquashed = math.Nextafter32(Trim, 0)

func squash(v float32) float32 {
	switch {
	case v > maxSquashed:  return maxSquashed
	case v < -maxSquashed: return -maxSquashed
	}
	return v
}

// powerMeanScale returns mean(f(v)^Alpha)^(-1/Alpha). The sum is kept
// in float64, since a float32 total stops growing once it passes 2^24,
// which a large photo reaches. If the mean is zero (an all-zero matrix)
// or the scale would not be finite, the scale is 1, and the pass leaves
// the values alone.
func powerMeanScale(vals []float32, f func(float32) float32) float32 {
	sum := 0.0
	for _, v := range vals {
		sum += float64(emath.Pow32(f(v), Alpha))
	}
	mean := float32(sum / float64(len(vals)))

	if mean == 0 {
		return 1
	}
	scale := 1 / emath.Pow32(mean, 1/Alpha)
	if !emath.IsFinite32(scale) || scale == 0 {
		return 1
	}
	return scale
}
