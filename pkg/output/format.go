// Package output writes rendered images to disk in the format implied by the
// file extension.
package output

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for an output extension with no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format is an image file format.
type Format int

const (
	FormatPNG Format = iota
	FormatJPEG
	FormatWebP
	FormatTGA
	FormatBMP
	FormatTIFF
)

var formatNames = map[Format]string{
	FormatPNG:  "png",
	FormatJPEG: "jpeg",
	FormatWebP: "webp",
	FormatTGA:  "tga",
	FormatBMP:  "bmp",
	FormatTIFF: "tiff",
}

var extensions = map[string]Format{
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".webp": FormatWebP,
	".tga":  FormatTGA,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath picks the format from the file extension, ignoring case.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	if ext == "" {
		return 0, fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}
