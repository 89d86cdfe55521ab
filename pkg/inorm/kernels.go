package inorm

import "math"

// A Kernel is an odd-length, symmetric 1D convolution kernel.
type Kernel []float32

func (k Kernel)Radius() int { return len(k) / 2 }

func (k Kernel)Sum() float32 {
	s := float32(0)
	for _, v := range k {
		s += v
	}
	return s
}

var(
	// KernelA is a Gaussian with sigma = 1.0
	KernelA = Kernel{
		0.00443, 0.05401, 0.24204,
		0.39905,
		0.24204, 0.05401, 0.00443,
	}

	// KernelB is a Gaussian with sigma = 2.0
	KernelB = Kernel{
		0.00222, 0.00877, 0.02702, 0.06482, 0.12111, 0.17621,
		0.19968,
		0.17621, 0.12111, 0.06482, 0.02702, 0.00877, 0.00222,
	}
)

// GaussianKernel samples exp(-x²/2σ²) every `step` out to 3σ either
// side of zero, and normalizes the samples to sum to one. KernelA and
// KernelB are this, for σ=1 and σ=2, rounded to five places.
func GaussianKernel(sigma, step float64) Kernel {
	gaussian := func(x float64) float64 { return math.Exp(-0.5 * (x*x) / (sigma*sigma)) }

	half := []float64{gaussian(0)}
	for i:=1; float64(i)*step <= sigma*3; i++ {
		half = append(half, gaussian(float64(i)*step))
	}

	n := len(half)
	vals := make([]float64, 2*n - 1)
	sum := 0.0
	for i, v := range half {
		vals[n-1-i] = v
		vals[n-1+i] = v
	}
	for _, v := range vals {
		sum += v
	}

	k := make(Kernel, len(vals))
	for i, v := range vals {
		k[i] = float32(v / sum)
	}
	return k
}
