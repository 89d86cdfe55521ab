package inorm

import(
	"math"

	"github.com/abworrall/inorm/pkg/emath"
)

const Gamma = 0.2

// GammaTable maps each 8-bit intensity i to 255*(i/255)^Gamma, rounded
// to five decimal places. It is filled in once, at init, and never
// written again.
var GammaTable [256]float32

func init() {
	for i := range GammaTable {
		v := math.Pow(float64(i)/255.0, Gamma) * 255.0
		GammaTable[i] = float32(math.Round(v*1e5) / 1e5)
	}
}

// GammaCorrect fills dst, which must be the same size as src, with the
// gamma-corrected values of the pixels of src.
func GammaCorrect(src Image, dst *emath.FloatMatrix) {
	mustMatch(src, *dst)
	for y:=0; y<src.H; y++ {
		srow := src.Row(y)
		drow := dst.Row(y)
		for x, v := range srow {
			drow[x] = GammaTable[v]
		}
	}
}
