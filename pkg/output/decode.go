package output

import (
	"bufio"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// Decode reads an image in format f. Dispatch is explicit because TGA has no
// magic number and would otherwise claim every stream in image.Decode.
func Decode(r io.Reader, f Format) (image.Image, error) {
	var (
		img image.Image
		err error
	)
	switch f {
	case FormatPNG:
		img, err = png.Decode(r)
	case FormatJPEG:
		img, err = jpeg.Decode(r)
	case FormatWebP:
		img, err = webp.Decode(r)
	case FormatTGA:
		img, err = tga.Decode(r)
	case FormatBMP:
		img, err = bmp.Decode(r)
	case FormatTIFF:
		img, err = tiff.Decode(r)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%v decode: %w", f, err)
	}
	return img, nil
}

// Load reads an image file written by Save.
func Load(path string) (image.Image, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()
	return Decode(bufio.NewReader(file), f)
}
