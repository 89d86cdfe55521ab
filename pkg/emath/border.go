package emath

import(
	"fmt"
	"image"
)

// BorderReplicate copies the rect r out of src into a new matrix that is
// `border` cells bigger on every side, filling the extra cells by
// repeating the nearest edge value of r. Corners get the corner value.
//
// Convolving the result with a kernel of radius `border` and keeping
// only the interior is the same as convolving r with edge clamping.
func BorderReplicate(src FloatMatrix, r image.Rectangle, border int) FloatMatrix {
	bounds := image.Rect(0, 0, src.Dx(), src.Dy())
	if border < 0 || r.Empty() || !r.In(bounds) {
		panic(fmt.Sprintf("emath: BorderReplicate of %v (border %d) from %s", r, border, src.size()))
	}

	rw, rh := r.Dx(), r.Dy()
	dst := NewFloatMatrix(rw + 2*border, rh + 2*border)

	// Main body, with left and right edges replicated along each row
	for y:=0; y<rh; y++ {
		srow := src.Row(r.Min.Y + y)[r.Min.X : r.Max.X]
		drow := dst.Row(y + border)
		copy(drow[border:], srow)
		for x:=0; x<border; x++ {
			drow[x] = srow[0]
			drow[border + rw + x] = srow[rw-1]
		}
	}

	// Now whole rows top and bottom, corners included
	for y:=0; y<border; y++ {
		copy(dst.Row(y), dst.Row(border))
		copy(dst.Row(border + rh + y), dst.Row(border + rh - 1))
	}

	return dst
}
