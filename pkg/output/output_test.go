package output

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"out.png", FormatPNG, false},
		{"dir/out.JPG", FormatJPEG, false},
		{"out.jpeg", FormatJPEG, false},
		{"out.webp", FormatWebP, false},
		{"out.tga", FormatTGA, false},
		{"out.bmp", FormatBMP, false},
		{"out.tif", FormatTIFF, false},
		{"out.tiff", FormatTIFF, false},
		{"out.gif", 0, true},
		{"out", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got, err := FormatFromPath(tc.path)
			if tc.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("error = %v, want ErrUnsupportedFormat", err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Errorf("FormatFromPath() = %v, %v, want %v", got, err, tc.want)
			}
		})
	}
}

// depthImage mimics render output: grey opaque pixels on transparent black.
func depthImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 6, 4))
	for y := 1; y < 3; y++ {
		for x := 1; x < 5; x++ {
			img.SetRGBA(x, y, color.RGBA{200, 200, 200, 255})
		}
	}
	return img
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	src := depthImage()

	// JPEG is lossy, so only lossless formats compare pixels.
	tests := []struct {
		name     string
		lossless bool
	}{
		{"out.png", true},
		{"out.jpg", false},
		{"out.tga", true},
		{"out.bmp", true},
		{"out.tiff", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, "nested", tc.name)
			if err := Save(path, src); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			img, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 4 {
				t.Fatalf("bounds = %v, want 6x4", img.Bounds())
			}
			if !tc.lossless {
				return
			}
			r, g, b, a := img.At(2, 1).RGBA()
			if r>>8 != 200 || g>>8 != 200 || b>>8 != 200 || a>>8 != 255 {
				t.Errorf("pixel (2, 1) = %d,%d,%d,%d, want 200,200,200,255", r>>8, g>>8, b>>8, a>>8)
			}
		})
	}
}

func TestSaveWebP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.webp")
	if err := Save(path, depthImage()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 12 || string(data[:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		t.Errorf("not a webp file: % x", data[:min(len(data), 12)])
	}
}

func TestSaveUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	if err := Save(path, depthImage()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Save() error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("unsupported format should not create a file")
	}
}

func TestEncodeTGAHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, depthImage(), FormatTGA); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()
	if len(data) != 18+6*4*4 {
		t.Fatalf("tga size = %d", len(data))
	}
	if data[2] != 2 || data[12] != 6 || data[14] != 4 || data[16] != 32 || data[17] != 0x28 {
		t.Errorf("unexpected header % x", data[:18])
	}
	// Row 1, column 1 in BGRA order.
	px := data[18+(1*6+1)*4:]
	if px[0] != 200 || px[3] != 255 {
		t.Errorf("pixel = % x, want c8 c8 c8 ff", px[:4])
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, depthImage(), Format(42)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode() error = %v, want ErrUnsupportedFormat", err)
	}
}
