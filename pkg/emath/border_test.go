package emath

import(
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBorderReplicate(t *testing.T) {
	src := NewFloatMatrix(4, 3)
	copy(src.Values(), []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	})

	// The 2x2 block {6,7,10,11}, padded by 2
	dst := BorderReplicate(src, image.Rect(1, 1, 3, 3), 2)
	require.Equal(t, 6, dst.Dx())
	require.Equal(t, 6, dst.Dy())
	require.Equal(t, []float32{
		6, 6, 6, 7, 7, 7,
		6, 6, 6, 7, 7, 7,
		6, 6, 6, 7, 7, 7,
		10, 10, 10, 11, 11, 11,
		10, 10, 10, 11, 11, 11,
		10, 10, 10, 11, 11, 11,
	}, dst.Values())
}

func TestBorderReplicateWholeMatrix(t *testing.T) {
	src := NewFloatMatrix(3, 2)
	copy(src.Values(), []float32{
		1, 2, 3,
		4, 5, 6,
	})

	// Wider border than the matrix is tall
	dst := BorderReplicate(src, image.Rect(0, 0, 3, 2), 3)
	require.Equal(t, 9, dst.Dx())
	require.Equal(t, 8, dst.Dy())
	for y:=0; y<8; y++ {
		for x:=0; x<9; x++ {
			sx := clampTo(x-3, 3)
			sy := clampTo(y-3, 2)
			require.Equal(t, src.Get(sx, sy), dst.Get(x, y), "(%d,%d)", x, y)
		}
	}

	same := BorderReplicate(src, image.Rect(0, 0, 3, 2), 0)
	require.Equal(t, src.Values(), same.Values())
}

func clampTo(i, n int) int {
	if i < 0 { return 0 }
	if i >= n { return n-1 }
	return i
}

func TestBorderReplicateBadArgs(t *testing.T) {
	src := NewFloatMatrix(4, 4)
	require.Panics(t, func() { BorderReplicate(src, image.Rect(2, 2, 5, 4), 1) })
	require.Panics(t, func() { BorderReplicate(src, image.Rect(0, 0, 4, 4), -1) })
	require.Panics(t, func() { BorderReplicate(src, image.Rect(1, 1, 1, 3), 1) })
}
