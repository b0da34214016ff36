package render

import (
	"image"
	"image/color"
	"math"
)

// ImageOptions controls depth-to-image conversion.
type ImageOptions struct {
	// Background is used for cells no triangle reached.
	Background color.RGBA
	// FlipY puts window +y at the top of the image. Without it, row 0 of
	// the depth buffer (window bottom) becomes image row 0.
	FlipY bool
}

// DefaultImageOptions returns transparent background with window +y up.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{FlipY: true}
}

// DepthToChannel maps a depth to an 8-bit intensity: -1 (nearest) is 255,
// +1 (farthest) is 0. Depths above 1 are treated as 1.
func DepthToChannel(depth float64) uint8 {
	d := math.Min(depth, 1)
	v := (-d + 1) / 2 * 255
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Image converts the buffer to a grey RGBA image. Covered cells get the
// same intensity in all four channels.
func (db *DepthBuffer) Image(opts ImageOptions) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, db.Width, db.Height))
	for y := range db.Height {
		row := y
		if opts.FlipY {
			row = db.Height - 1 - y
		}
		for x := range db.Width {
			i := img.PixOffset(x, row)
			d := db.Depth[y*db.Width+x]
			if d == FarDepth {
				bg := opts.Background
				img.Pix[i+0] = bg.R
				img.Pix[i+1] = bg.G
				img.Pix[i+2] = bg.B
				img.Pix[i+3] = bg.A
				continue
			}
			v := DepthToChannel(d)
			img.Pix[i+0] = v
			img.Pix[i+1] = v
			img.Pix[i+2] = v
			img.Pix[i+3] = v
		}
	}
	return img
}
