package ibatch

import(
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/abworrall/inorm/pkg/ecolor"
	"github.com/abworrall/inorm/pkg/inorm"
)

var(
	ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".hdr"}
)

func isImageFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// LoadFilesAndDirs walks the args, recursing into directories, queueing
// up every image file as a Job. A .yaml file replaces the config.
func (b *Batch)LoadFilesAndDirs(args ...string) error {
	for _, arg := range args {
		item, err := os.Stat(arg)

		switch {

		case err != nil:
			return fmt.Errorf("load %s: %w", arg, err)

		case item.IsDir():
			// Is a dir, recurse into contents
			contents, err := os.ReadDir(arg)
			if err != nil {
				return fmt.Errorf("readdir %s: %w", arg, err)
			}
			for _, content := range contents {
				if err := b.LoadFilesAndDirs(filepath.Join(arg, content.Name())); err != nil {
					return fmt.Errorf("load %s: %w", arg, err)
				}
			}

		default: // is a file
			if err := b.loadFile(arg); err != nil {
				return fmt.Errorf("loadfile %s: %w", arg, err)
			}
		}
	}

	return nil
}

func (b *Batch)loadFile(filename string) error {
	switch {
	case strings.ToLower(filepath.Ext(filename)) == ".yaml":
		cfg, err := loadConfig(filename)
		if err != nil {
			return fmt.Errorf("Loading %s as config YAML failed: %w", filename, err)
		}
		b.Config = cfg
		log.Printf("Loaded base configuration from %s\n", filename)

	case isImageFile(filename):
		b.Add(Job{Filename: filename})
	}

	return nil
}

// DecodeFile loads an image file, and converts it to 8-bit gray.
func DecodeFile(filename string, model ecolor.GrayModel) (inorm.Image, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return inorm.Image{}, fmt.Errorf("open+r img '%s': %w", filename, err)
	}
	defer reader.Close()

	var img image.Image
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tif", ".tiff":
		img, err = tiff.Decode(reader)
	case ".hdr":
		img, err = rgbe.Decode(reader)
	default:
		img, _, err = image.Decode(reader)
	}
	if err != nil {
		return inorm.Image{}, fmt.Errorf("decoding '%s': %w", filename, err)
	}

	if img.Bounds().Empty() {
		return inorm.Image{}, fmt.Errorf("decoding '%s': %w", filename, inorm.ErrBadDimensions)
	}

	return inorm.FromGray(ecolor.ToGray(img, model)), nil
}

// DescribeCamera digs out a one-line summary of the camera metadata in
// a JPEG or TIFF file. Returns "" if there isn't any.
func DescribeCamera(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".tif", ".tiff":
	default:
		return ""
	}

	reader, err := os.Open(filename)
	if err != nil {
		return ""
	}
	defer reader.Close()

	ex, err := exif.Decode(reader)
	if err != nil {
		return "" // plenty of files have no EXIF block
	}

	str := ""
	for _, name := range []exif.FieldName{exif.Model, exif.ExposureTime, exif.FNumber, exif.ISOSpeedRatings} {
		if tag, err := ex.Get(name); err == nil {
			str += fmt.Sprintf("%s=%s ", name, strings.Trim(tag.String(), `"`))
		}
	}
	if dt, err := ex.DateTime(); err == nil {
		str += fmt.Sprintf("DateTime=%s", dt.Format("2006-01-02T15:04:05"))
	}
	return strings.TrimSpace(str)
}
