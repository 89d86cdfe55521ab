package ibatch

import(
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/tiff"

	"github.com/abworrall/inorm/pkg/inorm"
)

// writeTestImages drops a PNG and a TIFF with a shadowed gradient into dir.
func writeTestImages(t *testing.T, dir string) []string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 24))
	for y:=0; y<24; y++ {
		for x:=0; x<32; x++ {
			v := uint8(x*6 + y)
			if x > 20 { v /= 3 }
			img.Set(x, y, color.RGBA{v, v/2, v, 255})
		}
	}

	pngFile := filepath.Join(dir, "face.png")
	require.NoError(t, WritePNG(img, pngFile))

	tifFile := filepath.Join(dir, "sub", "portrait.tif")
	require.NoError(t, os.MkdirAll(filepath.Dir(tifFile), 0755))
	f, err := os.Create(tifFile)
	require.NoError(t, err)
	require.NoError(t, tiff.Encode(f, img, nil))
	require.NoError(t, f.Close())

	return []string{pngFile, tifFile}
}

func TestLoadFilesAndDirs(t *testing.T) {
	dir := t.TempDir()
	files := writeTestImages(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "cfg.yaml"), []byte("graymodel: lightness\nworkers: 2\n"), 0644))

	b := NewBatch()
	require.NoError(t, b.LoadFilesAndDirs(dir))

	require.ElementsMatch(t, []Job{{Filename: files[0]}, {Filename: files[1]}}, b.Jobs)
	require.Equal(t, "lightness", b.Config.GrayModel)
	require.Equal(t, 2, b.Config.Workers)
}

func TestLoadFilesAndDirsMissing(t *testing.T) {
	b := NewBatch()
	require.Error(t, b.LoadFilesAndDirs(filepath.Join(t.TempDir(), "nope.png")))
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	for _, f := range writeTestImages(t, dir) {
		img, err := DecodeFile(f, "luma")
		require.NoError(t, err, f)
		require.NoError(t, img.Validate())
		require.Equal(t, 32, img.W)
		require.Equal(t, 24, img.H)
	}

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not a png"), 0644))
	_, err := DecodeFile(bad, "luma")
	require.Error(t, err)
}

func TestOutputFilename(t *testing.T) {
	b := NewBatch()
	j := Job{Filename: "/data/in/face.01.jpg"}
	require.Equal(t, "/data/in/face.01-inorm.png", b.OutputFilename(j, ""))

	b.Config.OutputDir = "/out"
	require.Equal(t, "/out/face.01-inorm-dog.png", b.OutputFilename(j, "-dog"))
}

func TestRun(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	files := writeTestImages(t, in)

	b := NewBatch()
	require.NoError(t, b.LoadFilesAndDirs(in))
	b.Config.OutputDir = out
	b.Config.DumpStages = true
	b.Config.Stats = true
	require.NoError(t, b.Run(context.Background()))

	for _, name := range []string{"face-inorm.png", "face-inorm-gamma.png", "face-inorm-dog.png", "face-inorm-contrast.png"} {
		_, err := os.Stat(filepath.Join(out, name))
		require.NoError(t, err, name)
	}

	// The written result is what the pipeline gives
	src, err := DecodeFile(files[0], "luma")
	require.NoError(t, err)
	want := inorm.Normalize(src)
	got, err := DecodeFile(filepath.Join(out, "face-inorm.png"), "luma")
	require.NoError(t, err)
	for y:=0; y<want.H; y++ {
		require.Equal(t, want.Row(y), got.Row(y), "row %d", y)
	}
}

func TestRunCollectsFailures(t *testing.T) {
	dir := t.TempDir()
	writeTestImages(t, dir)
	bad := filepath.Join(dir, "broken.jpg")
	require.NoError(t, os.WriteFile(bad, []byte{0xff, 0xd8, 0x00}, 0644))

	b := NewBatch()
	require.NoError(t, b.LoadFilesAndDirs(dir))
	err := b.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken.jpg")

	// The good ones still got done
	_, err = os.Stat(filepath.Join(dir, "face-inorm.png"))
	require.NoError(t, err)
}

func TestRunCancelled(t *testing.T) {
	dir := t.TempDir()
	writeTestImages(t, dir)

	b := NewBatch()
	require.NoError(t, b.LoadFilesAndDirs(dir))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, b.Run(ctx), context.Canceled)

	_, err := os.Stat(filepath.Join(dir, "face-inorm.png"))
	require.True(t, os.IsNotExist(err))
}
