package inorm

import(
	"fmt"

	"github.com/codahale/hdrhistogram"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/abworrall/inorm/pkg/emath"
)

// A MatrixSummary describes the spread of values in a FloatMatrix.
type MatrixSummary struct {
	Min, Max     float64
	Mean, StdDev float64
}

func (ms MatrixSummary)String() string {
	return fmt.Sprintf("range [%.4f, %.4f], mean %.4f, stddev %.4f", ms.Min, ms.Max, ms.Mean, ms.StdDev)
}

func MatrixStats(fm emath.FloatMatrix) MatrixSummary {
	vals := make([]float64, fm.Len())
	for i, v := range fm.Values() {
		vals[i] = float64(v)
	}
	ms := MatrixSummary{Min: floats.Min(vals), Max: floats.Max(vals)}
	ms.Mean, ms.StdDev = stat.MeanStdDev(vals, nil)
	return ms
}

// An ImageSummary describes the intensity histogram of an Image.
type ImageSummary struct {
	P1, P50, P99 int64
	Mean         float64
}

func (is ImageSummary)String() string {
	return fmt.Sprintf("p1 %d, p50 %d, p99 %d, mean %.2f", is.P1, is.P50, is.P99, is.Mean)
}

func ImageHistogram(img Image) (ImageSummary, error) {
	h := hdrhistogram.New(1, 255, 3)
	for y:=0; y<img.H; y++ {
		for _, v := range img.Row(y) {
			if err := h.RecordValue(int64(v)); err != nil {
				return ImageSummary{}, fmt.Errorf("histogram of %s: %w", img, err)
			}
		}
	}
	return ImageSummary{
		P1:   h.ValueAtQuantile(1),
		P50:  h.ValueAtQuantile(50),
		P99:  h.ValueAtQuantile(99),
		Mean: h.Mean(),
	}, nil
}
