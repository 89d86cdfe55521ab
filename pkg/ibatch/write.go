package ibatch

import(
	"fmt"
	"image"
	"image/png"
	"os"
)

// WritePNG encodes img into filename. A failure to close the file (say,
// the disk filled up on the final flush) is an error too.
func WritePNG(img image.Image, filename string) error {
	writer, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("open+w '%s': %w", filename, err)
	}

	if err := png.Encode(writer, img); err != nil {
		writer.Close()
		return fmt.Errorf("png encode '%s': %w", filename, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close '%s': %w", filename, err)
	}
	return nil
}
