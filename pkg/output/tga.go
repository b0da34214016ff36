package output

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"io"
)

const (
	tgaTrueColor = 2    // uncompressed true-colour image
	tgaTopLeft   = 0x20 // descriptor bit: rows stored top to bottom
	tgaMaxSide   = 0xffff
)

// encodeTGA writes an uncompressed 32-bit TGA with straight alpha.
func encodeTGA(w io.Writer, img image.Image) error {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width > tgaMaxSide || height > tgaMaxSide {
		return fmt.Errorf("image %dx%d too large for tga", width, height)
	}

	var header [18]byte
	header[2] = tgaTrueColor
	binary.LittleEndian.PutUint16(header[12:], uint16(width))
	binary.LittleEndian.PutUint16(header[14:], uint16(height))
	header[16] = 32
	header[17] = tgaTopLeft | 8 // 8 alpha bits
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	row := make([]byte, width*4)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			i := (x - b.Min.X) * 4
			row[i+0] = c.B
			row[i+1] = c.G
			row[i+2] = c.R
			row[i+3] = c.A
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
