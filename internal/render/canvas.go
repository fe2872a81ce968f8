package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"eca/internal/core"
)

// ErrNoSurface is returned when Draw is given no destination image.
var ErrNoSurface = errors.New("render: no drawing surface")

// Options controls how a grid is drawn on a canvas.
type Options struct {
	Width, Height int
	// Reveal limits drawing to the first Reveal rows; 0 draws all rows.
	Reveal int

	On         color.Color
	Off        color.Color
	Stroke     color.Color
	Background color.Color
}

// DefaultOptions returns a square canvas of the given side with black live
// cells on white.
func DefaultOptions(side int) Options {
	return Options{
		Width:      side,
		Height:     side,
		On:         color.Black,
		Off:        color.White,
		Stroke:     color.Black,
		Background: color.White,
	}
}

func (o Options) withDefaults(dst draw.Image) Options {
	def := DefaultOptions(0)
	if o.Width <= 0 || o.Height <= 0 {
		b := dst.Bounds()
		o.Width, o.Height = b.Dx(), b.Dy()
	}
	if o.On == nil {
		o.On = def.On
	}
	if o.Off == nil {
		o.Off = def.Off
	}
	if o.Stroke == nil {
		o.Stroke = def.Stroke
	}
	if o.Background == nil {
		o.Background = def.Background
	}
	return o
}

// Draw paints g onto dst. The layout is computed from the canvas size in opts
// (or dst's bounds) and the full grid dimensions, so a partially revealed grid
// keeps its final geometry.
func Draw(dst draw.Image, g core.Grid, opts Options) error {
	if dst == nil {
		return ErrNoSurface
	}
	opts = opts.withDefaults(dst)
	origin := dst.Bounds().Min
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	size := g.Size()
	layout := NewLayout(opts.Width, opts.Height, size.H, size.W)
	rows := size.H
	if opts.Reveal > 0 && opts.Reveal < rows {
		rows = opts.Reveal
	}

	on := image.NewUniform(opts.On)
	off := image.NewUniform(opts.Off)
	for y := 0; y < rows; y++ {
		for x, c := range g[y] {
			r := layout.CellRect(y, x).Add(origin)
			src := off
			if c != 0 {
				src = on
			}
			draw.Draw(dst, r, src, image.Point{}, draw.Src)
			if layout.Outline {
				strokeRect(dst, r, opts.Stroke)
			}
		}
	}
	return nil
}

// Render allocates an RGBA canvas of opts.Width x opts.Height and draws g.
func Render(g core.Grid, opts Options) *image.RGBA {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1, 1
	}
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	_ = Draw(img, g, opts)
	return img
}

func strokeRect(dst draw.Image, r image.Rectangle, c color.Color) {
	if r.Dx() < 3 || r.Dy() < 3 {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		dst.Set(x, r.Min.Y, c)
		dst.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst.Set(r.Min.X, y, c)
		dst.Set(r.Max.X-1, y, c)
	}
}
