// Package inorm normalizes the illumination of 8-bit grayscale images:
// gamma correction, a difference-of-Gaussians band-pass filter, robust
// contrast normalization and a final stretch back to 8 bits. Shadows and
// uneven lighting are flattened while edges and texture are kept, which
// is what a face or object recognizer wants to see.
//
// Everything works on one complete in-memory image at a time. The only
// shared state is the gamma table and the two kernels, which are never
// written after init, so separate images can be normalized concurrently.
package inorm

import(
	"fmt"

	"github.com/abworrall/inorm/pkg/emath"
)

// A Stage names one of the float-valued steps of the pipeline.
type Stage string

const(
	StageGamma    Stage = "gamma"
	StageDoG      Stage = "dog"
	StageContrast Stage = "contrast"
)

var Stages = []Stage{StageGamma, StageDoG, StageContrast}

// An Observer gets a look at the matrix produced by each stage. It must
// not hang on to fm, or modify it.
type Observer func(stage Stage, fm emath.FloatMatrix)

// A Pipeline runs the normalization. The zero value is ready to use.
type Pipeline struct {
	Observer Observer
}

// Normalize returns a new image, the same size as src, with its
// illumination normalized. It panics if src is malformed.
func Normalize(src Image) Image {
	return Pipeline{}.Normalize(src)
}

// NormalizeInto is Normalize, writing into a caller-supplied dst of the
// same width and height; its stride may differ from src's.
func NormalizeInto(src Image, dst *Image) {
	Pipeline{}.NormalizeInto(src, dst)
}

func (p Pipeline)Normalize(src Image) Image {
	mustValidate(src)
	dst := NewImage(src.W, src.H)
	p.NormalizeInto(src, &dst)
	return dst
}

func (p Pipeline)NormalizeInto(src Image, dst *Image) {
	mustValidate(src)
	mustValidate(*dst)
	if src.W != dst.W || src.H != dst.H {
		panic(fmt.Errorf("normalize %s into %s: %w", src, *dst, ErrSizeMismatch))
	}

	fm := emath.NewFloatMatrix(src.W, src.H)
	GammaCorrect(src, &fm)
	p.observe(StageGamma, fm)

	DifferenceOfGaussians(&fm)
	p.observe(StageDoG, fm)

	tfm := fm.NewFromThis()
	ContrastNormalize(fm, &tfm)
	p.observe(StageContrast, tfm)

	RescaleToImage(tfm, dst)
}

func (p Pipeline)observe(stage Stage, fm emath.FloatMatrix) {
	if p.Observer != nil {
		p.Observer(stage, fm)
	}
}

func mustValidate(img Image) {
	if err := img.Validate(); err != nil {
		panic(err)
	}
}

func mustMatch(img Image, fm emath.FloatMatrix) {
	if img.W != fm.Dx() || img.H != fm.Dy() {
		panic(fmt.Errorf("%s vs %s: %w", img, fm.Stats(), ErrSizeMismatch))
	}
}
