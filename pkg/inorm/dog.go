package inorm

import "github.com/abworrall/inorm/pkg/emath"

// DifferenceOfGaussians band-pass filters fm in place: it blurs two
// copies, with KernelA and KernelB, and stores their difference. Slow
// illumination gradients survive both blurs and cancel out; fine noise
// is removed by both.
func DifferenceOfGaussians(fm *emath.FloatMatrix) {
	fma := fm.NewFromThis()
	fmb := fm.NewFromThis()

	SeparableConvolve(*fm, KernelA, &fma)
	SeparableConvolve(*fm, KernelB, &fmb)

	fm.Sub(fma, fmb)
}
