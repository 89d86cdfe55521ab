package inorm

import(
	"errors"
	"fmt"
	"image"
)

var(
	ErrBadDimensions = errors.New("inorm: bad image dimensions")
	ErrSizeMismatch  = errors.New("inorm: source and destination sizes differ")
)

// An Image is an 8-bit single channel raster. Rows are Stride bytes
// apart, which may be more than W; the bytes past W in each row are
// never read or written.
type Image struct {
	W, H   int
	Stride int
	Pix    []byte
}

// rowAlign rounds w up to a multiple of 4.
func rowAlign(w int) int { return (w + 3) &^ 3 }

func NewImage(w, h int) Image {
	if w < 1 || h < 1 {
		panic(fmt.Errorf("NewImage(%d, %d): %w", w, h, ErrBadDimensions))
	}
	stride := rowAlign(w)
	return Image{W: w, H: h, Stride: stride, Pix: make([]byte, stride*h)}
}

func (img Image)Offset(x, y int) int   { return y*img.Stride + x }
func (img Image)At(x, y int) uint8     { return img.Pix[img.Offset(x, y)] }
func (img *Image)Set(x, y int, v uint8) { img.Pix[img.Offset(x, y)] = v }
func (img Image)Row(y int) []byte      { return img.Pix[y*img.Stride : y*img.Stride+img.W] }

func (img Image)String() string {
	return fmt.Sprintf("Image[%dx%d, stride %d]", img.W, img.H, img.Stride)
}

// Validate checks the structural invariants: positive size, a stride
// at least as wide as a row, and enough bytes for the last row.
func (img Image)Validate() error {
	switch {
	case img.W < 1 || img.H < 1:
		return fmt.Errorf("%s: %w", img, ErrBadDimensions)
	case img.Stride < img.W:
		return fmt.Errorf("%s: stride less than width: %w", img, ErrBadDimensions)
	case len(img.Pix) < (img.H-1)*img.Stride + img.W:
		return fmt.Errorf("%s: only %d bytes of pixel data: %w", img, len(img.Pix), ErrBadDimensions)
	}
	return nil
}

// FromGray wraps the pixels of g, without copying them.
func FromGray(g *image.Gray) Image {
	b := g.Bounds()
	return Image{
		W:      b.Dx(),
		H:      b.Dy(),
		Stride: g.Stride,
		Pix:    g.Pix[g.PixOffset(b.Min.X, b.Min.Y):],
	}
}

// Gray wraps the pixels of img as an *image.Gray, without copying them.
func (img Image)Gray() *image.Gray {
	return &image.Gray{
		Pix:    img.Pix,
		Stride: img.Stride,
		Rect:   image.Rect(0, 0, img.W, img.H),
	}
}
