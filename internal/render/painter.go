//go:build ebiten

package render

import (
	"image"

	"eca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps an ebiten image in sync with a drawn grid.
type GridPainter struct {
	w, h   int
	img    *ebiten.Image
	canvas *image.RGBA
}

// NewGridPainter allocates a painter for a w x h pixel canvas.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		w:      w,
		h:      h,
		img:    ebiten.NewImage(w, h),
		canvas: image.NewRGBA(image.Rect(0, 0, w, h)),
	}
}

// Paint redraws g into the painter image using the canvas layout.
func (gp *GridPainter) Paint(g core.Grid, opts Options) {
	opts.Width, opts.Height = gp.w, gp.h
	_ = Draw(gp.canvas, g, opts)
	gp.img.WritePixels(gp.canvas.Pix)
}

// Blit draws the painter image onto dst at (x, y).
func (gp *GridPainter) Blit(dst *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
