package render

import (
	"image"
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
	"golang.org/x/image/draw"
)

// Preview is a rendered image resized to fit a terminal. Each terminal cell
// shows two vertically stacked pixels using the upper half block.
type Preview struct {
	img *image.RGBA
}

// NewPreview scales src to fit cols x rows terminal cells, keeping its
// aspect ratio. Images that already fit are not enlarged.
func NewPreview(src image.Image, cols, rows int) *Preview {
	b := src.Bounds()
	w, h := fitSize(b.Dx(), b.Dy(), cols, rows*2)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	}
	return &Preview{img: dst}
}

// fitSize shrinks w x h to fit inside maxW x maxH without changing the
// aspect ratio. The result is at least 1x1 for non-empty input.
func fitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	if w <= maxW && h <= maxH {
		return w, h
	}
	sx := float64(maxW) / float64(w)
	sy := float64(maxH) / float64(h)
	s := min(sx, sy)
	return max(1, int(float64(w)*s)), max(1, int(float64(h)*s))
}

// Bounds returns the pixel size of the scaled image.
func (p *Preview) Bounds() image.Rectangle {
	return p.img.Bounds()
}

// cellColors returns the top and bottom pixel shown by terminal cell
// (col, row), counted from the preview origin.
func (p *Preview) cellColors(col, row int) (top, bottom color.RGBA) {
	top = p.pixel(col, row*2)
	bottom = p.pixel(col, row*2+1)
	return top, bottom
}

func (p *Preview) pixel(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}).In(p.img.Bounds()) {
		return color.RGBA{}
	}
	return p.img.RGBAAt(x, y)
}

// Draw paints the preview into area, starting at its top-left corner.
func (p *Preview) Draw(scr uv.Screen, area uv.Rectangle) {
	// We use ▀ (upper half block) with fg=top color and bg=bottom color
	width := p.img.Bounds().Dx()
	for row := area.Min.Y; row < area.Max.Y; row++ {
		for col := area.Min.X; col < area.Max.X && col-area.Min.X < width; col++ {
			top, bottom := p.cellColors(col-area.Min.X, row-area.Min.Y)
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(top),
					Bg: rgbaToColor(bottom),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}
