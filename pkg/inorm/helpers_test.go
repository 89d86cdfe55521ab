package inorm

import(
	"bufio"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abworrall/inorm/pkg/emath"
)

// splitImage is dark on the left half and bright on the right.
func splitImage(w, h int) Image {
	img := NewImage(w, h)
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			v := uint8(40)
			if x >= w/2 { v = 200 }
			img.Set(x, y, v)
		}
	}
	return img
}

func randomImage(w, h int, seed int64) Image {
	r := rand.New(rand.NewSource(seed))
	img := NewImage(w, h)
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			img.Set(x, y, uint8(r.Intn(256)))
		}
	}
	return img
}

func uniformMatrix(w, h int, c float32) emath.FloatMatrix {
	fm := emath.NewFloatMatrix(w, h)
	fm.Fill(c)
	return fm
}

func randomMatrix(w, h int, seed int64, scale float64) emath.FloatMatrix {
	r := rand.New(rand.NewSource(seed))
	fm := emath.NewFloatMatrix(w, h)
	for i := range fm.Values() {
		fm.Values()[i] = float32((r.Float64()*2 - 1) * scale)
	}
	return fm
}

func loadGolden(t *testing.T, filename string) Image {
	t.Helper()
	f, err := os.Open(filename)
	require.NoError(t, err)
	defer f.Close()

	var rows [][]uint8
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]uint8, len(fields))
		for i, s := range fields {
			v, err := strconv.Atoi(s)
			require.NoError(t, err)
			row[i] = uint8(v)
		}
		rows = append(rows, row)
	}
	require.NoError(t, sc.Err())
	require.NotEmpty(t, rows)

	img := NewImage(len(rows[0]), len(rows))
	for y, row := range rows {
		require.Len(t, row, img.W)
		copy(img.Row(y), row)
	}
	return img
}
