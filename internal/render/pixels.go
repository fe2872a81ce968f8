package render

import (
	"image"
	"image/color"

	"eca/internal/core"
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Pixels renders g at one pixel per cell. Rows at or beyond reveal are left
// in the off colour; reveal <= 0 draws every row.
func Pixels(g core.Grid, reveal int, on, off color.Color) *image.RGBA {
	size := g.Size()
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	cells := g.Cells()
	if reveal > 0 && reveal < size.H {
		clear(cells[reveal*size.W:])
	}
	fillBinaryRGBA(img.Pix, cells, on, off)
	return img
}
