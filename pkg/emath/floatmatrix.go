package emath

import(
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// A FloatMatrix is a dense grid of float32s, row-major, with no padding
// at the end of each row (the stride is the width).
type FloatMatrix struct {
	stride int
	values []float32
}

func NewFloatMatrix(w, h int) FloatMatrix {
	if w < 1 || h < 1 {
		panic(fmt.Sprintf("emath: bad FloatMatrix dimensions %dx%d", w, h))
	}
	return FloatMatrix{
		stride: w,
		values: make([]float32, w*h),
	}
}

func (fm *FloatMatrix)NewFromThis() FloatMatrix  { return NewFloatMatrix(fm.Dx(), fm.Dy()) }
func (fm *FloatMatrix)Set(x, y int, v float32)  { fm.values[fm.stride*y + x] = v }
func (fm *FloatMatrix)Get(x, y int) float32     { return fm.values[fm.stride*y + x] }
func (fm *FloatMatrix)Dx() int                  { return fm.stride }
func (fm *FloatMatrix)Dy() int                  { return len(fm.values) / fm.stride }
func (fm *FloatMatrix)Len() int                 { return len(fm.values) }

// Row returns the slice backing row y; writes go straight into the matrix.
func (fm *FloatMatrix)Row(y int) []float32      { return fm.values[y*fm.stride : (y+1)*fm.stride] }

// Values exposes the whole backing array, for passes that don't care about geometry.
func (fm *FloatMatrix)Values() []float32        { return fm.values }

func (fm *FloatMatrix)SameSize(o FloatMatrix) bool {
	return fm.Dx() == o.Dx() && fm.Dy() == o.Dy()
}

func (fm *FloatMatrix)Copy() FloatMatrix {
	fm2 := FloatMatrix{stride: fm.stride, values:make([]float32, len(fm.values))}
	copy(fm2.values, fm.values)
	return fm2
}

func (fm *FloatMatrix)Fill(v float32) {
	for i := range fm.values {
		fm.values[i] = v
	}
}

func (fm *FloatMatrix)Min() float32 {
	m := fm.values[0]
	for _, v := range fm.values[1:] {
		if v < m { m = v }
	}
	return m
}

func (fm *FloatMatrix)Max() float32 {
	m := fm.values[0]
	for _, v := range fm.values[1:] {
		if v > m { m = v }
	}
	return m
}

// Sub sets fm to a-b, elementwise. fm may be a or b.
func (fm *FloatMatrix)Sub(a, b FloatMatrix) {
	if !a.SameSize(b) || !fm.SameSize(a) {
		panic(fmt.Sprintf("emath: Sub size mismatch %s, %s -> %s", a.size(), b.size(), fm.size()))
	}
	for i := range fm.values {
		fm.values[i] = a.values[i] - b.values[i]
	}
}

func (fm *FloatMatrix)size() string { return fmt.Sprintf("%dx%d", fm.Dx(), fm.Dy()) }

func (fm *FloatMatrix)Stats() string {
	return fmt.Sprintf("fm[%dx%d, vals{%f,%f}]", fm.Dx(), fm.Dy(), fm.Min(), fm.Max())
}

// ToImg saves a grayscale PNG, mapping the range of values in the matrix
// onto black..white, with the title drawn on top. Handy for eyeballing
// intermediate stages.
func (fm *FloatMatrix)ToImg(title, filename string) error {
	min, max := float64(fm.Min()), float64(fm.Max())
	span := max - min
	if span == 0 || math.IsInf(span, 0) || math.IsNaN(span) {
		span = 1
	}

	img := image.NewGray(image.Rectangle{Max:image.Point{fm.Dx(), fm.Dy()}})
	for y:=0; y<fm.Dy(); y++ {
		for x:=0; x<fm.Dx(); x++ {
			gray := (float64(fm.Get(x,y)) - min) / span
			img.SetGray(x, y, color.Gray{uint8(gray * 255.0)})
		}
	}

	dc := gg.NewContextForImage(img)
	dc.SetRGB(1,0,0)
	dc.DrawString(title, 4, 14)
	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("ToImg '%s': %w", filename, err)
	}
	return nil
}
