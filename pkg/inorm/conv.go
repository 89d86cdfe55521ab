package inorm

import "github.com/abworrall/inorm/pkg/emath"

// SeparableConvolve approximates a 2D convolution of src with k by
// convolving each row with k, then each column of that with k. The
// result goes into dst, which must be the same size as src.
//
// Taps that fall outside the matrix read the nearest edge cell instead,
// which matches convolving a copy padded by emath.BorderReplicate.
//
// If k is longer than a row, the row pass leaves its input unchanged;
// the same goes for the column pass and the height.
func SeparableConvolve(src emath.FloatMatrix, k Kernel, dst *emath.FloatMatrix) {
	if !src.SameSize(*dst) {
		panic(ErrSizeMismatch)
	}
	tmp := src.NewFromThis()
	convolveRows(src, k, &tmp)
	convolveCols(tmp, k, dst)
}

// tap is one kernel tap. Forcing the product to float32 stops the
// compiler fusing it into the add on platforms with FMA, so every
// code path rounds identically.
func tap(sum, kv, v float32) float32 {
	return sum + float32(kv*v)
}

func clamp(i, n int) int {
	if i < 0 { return 0 }
	if i >= n { return n-1 }
	return i
}

func convolveRows(src emath.FloatMatrix, k Kernel, dst *emath.FloatMatrix) {
	w, h := src.Dx(), src.Dy()
	if len(k) > w {
		copy(dst.Values(), src.Values())
		return
	}
	border := k.Radius()

	for y:=0; y<h; y++ {
		in := src.Row(y)
		out := dst.Row(y)

		// Edges clamp, the middle doesn't need to
		for x:=0; x<w; x++ {
			sum := float32(0)
			d := x - border
			if x < border || x >= w-border {
				for i, kv := range k {
					sum = tap(sum, kv, in[clamp(d+i, w)])
				}
			} else {
				for i, kv := range k {
					sum = tap(sum, kv, in[d+i])
				}
			}
			out[x] = sum
		}
	}
}

func convolveCols(src emath.FloatMatrix, k Kernel, dst *emath.FloatMatrix) {
	w, h := src.Dx(), src.Dy()
	if len(k) > h {
		copy(dst.Values(), src.Values())
		return
	}
	border := k.Radius()

	for y:=0; y<h; y++ {
		out := dst.Row(y)
		d := y - border
		for x:=0; x<w; x++ {
			sum := float32(0)
			for i, kv := range k {
				sum = tap(sum, kv, src.Get(x, clamp(d+i, h)))
			}
			out[x] = sum
		}
	}
}
