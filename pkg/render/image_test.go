package render

import (
	"image/color"
	"testing"
)

func TestDepthToChannel(t *testing.T) {
	tests := []struct {
		depth float64
		want  uint8
	}{
		{-1, 255},
		{-2, 255},
		{0, 127},
		{0.5, 63},
		{1, 0},
		{3, 0},
		{FarDepth, 0},
	}
	for _, tc := range tests {
		if got := DepthToChannel(tc.depth); got != tc.want {
			t.Errorf("DepthToChannel(%v) = %d, want %d", tc.depth, got, tc.want)
		}
	}
}

func TestImage(t *testing.T) {
	db := NewDepthBuffer(2, 2)
	db.Update(0, 0, -1) // bottom-left in window space
	db.Update(1, 1, 1)

	bg := color.RGBA{R: 10, G: 20, B: 30, A: 255}

	t.Run("flipped", func(t *testing.T) {
		img := db.Image(ImageOptions{Background: bg, FlipY: true})
		if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 255, 255, 255}) {
			t.Errorf("bottom-left = %v, want white", got)
		}
		if got := img.RGBAAt(1, 0); got != (color.RGBA{}) {
			t.Errorf("top-right = %v, want zero", got)
		}
		if got := img.RGBAAt(0, 0); got != bg {
			t.Errorf("uncovered pixel = %v, want background %v", got, bg)
		}
	})

	t.Run("unflipped", func(t *testing.T) {
		img := db.Image(ImageOptions{})
		if got := img.RGBAAt(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
			t.Errorf("row 0 col 0 = %v, want white", got)
		}
		if got := img.RGBAAt(1, 0); got != (color.RGBA{}) {
			t.Errorf("uncovered pixel = %v, want transparent", got)
		}
	})

	if !DefaultImageOptions().FlipY {
		t.Error("default options should flip rows")
	}
}
