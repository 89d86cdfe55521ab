package ecolor

import(
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/hdrcolor"
	"golang.org/x/image/draw"
)

// A GrayModel picks how a color pixel becomes a single 8-bit intensity.
type GrayModel string

const(
	// Luma is the usual Rec.601 weighted sum, same as image/color.GrayModel
	Luma      GrayModel = "luma"

	// Lightness is CIE L*, which spaces grays the way people see them
	Lightness GrayModel = "lightness"
)

var GrayModels = []GrayModel{Luma, Lightness}

func ParseGrayModel(s string) (GrayModel, error) {
	switch GrayModel(s) {
	case Luma, "":  return Luma, nil
	case Lightness: return Lightness, nil
	}
	return "", fmt.Errorf("no GrayModel named '%s', wanted one of %v", s, GrayModels)
}

// ToGray converts img into a fresh *image.Gray whose bounds start at
// the origin. HDR images are handed off to HDRToGray.
func ToGray(img image.Image, model GrayModel) *image.Gray {
	if h, ok := img.(hdr.Image); ok {
		return HDRToGray(h)
	}

	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))

	switch model {
	case Lightness:
		for y:=0; y<b.Dy(); y++ {
			for x:=0; x<b.Dx(); x++ {
				out.SetGray(x, y, lightnessOf(img.At(b.Min.X + x, b.Min.Y + y)))
			}
		}
	default:
		draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	}

	return out
}

func lightnessOf(c color.Color) color.Gray {
	// MakeColor is only unhappy about fully transparent pixels
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return color.Gray{0}
	}
	l, _, _ := cf.Lab()
	return color.Gray{uint8(math.Round(clamp01(l) * 255.0))}
}

// HDRToGray takes the XYZ luminance of each pixel, and scales it so
// the brightest pixel is 255.
func HDRToGray(img hdr.Image) *image.Gray {
	b := img.Bounds()
	lums := make([]float64, b.Dx()*b.Dy())
	maxLum := 0.0

	for y:=0; y<b.Dy(); y++ {
		for x:=0; x<b.Dx(); x++ {
			xyz := hdrcolor.XYZModel.Convert(img.HDRAt(b.Min.X + x, b.Min.Y + y))
			_, lum, _, _ := xyz.(hdrcolor.Color).HDRXYZA()
			if lum < 0 || math.IsNaN(lum) { lum = 0 }
			if lum > maxLum { maxLum = lum }
			lums[y*b.Dx() + x] = lum
		}
	}

	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	if maxLum == 0 || math.IsInf(maxLum, 0) {
		return out
	}
	for i, lum := range lums {
		out.Pix[(i / b.Dx())*out.Stride + i % b.Dx()] = uint8(math.Round(lum / maxLum * 255.0))
	}
	return out
}

func clamp01(f float64) float64 {
	if f < 0 { return 0 }
	if f > 1 { return 1 }
	return f
}
