package inorm

import(
	"github.com/abworrall/inorm/pkg/emath"
)

// FlatValue is what every pixel becomes when the matrix being rescaled
// has no range to stretch.
const FlatValue = 128

// RescaleToImage linearly maps [min,max] of fm onto [0,255], truncating
// to 8 bits, and writes the pixels into dst (honoring its stride).
func RescaleToImage(fm emath.FloatMatrix, dst *Image) {
	mustMatch(*dst, fm)

	min, max := fm.Min(), fm.Max()
	scale := 255 / (max - min)

	if max == min || !emath.IsFinite32(scale) {
		for y:=0; y<dst.H; y++ {
			row := dst.Row(y)
			for x := range row {
				row[x] = FlatValue
			}
		}
		return
	}

	for y:=0; y<dst.H; y++ {
		in := fm.Row(y)
		out := dst.Row(y)
		for x, v := range in {
			out[x] = emath.ClampToByte((v - min) * scale)
		}
	}
}
