package render

import (
	"image"
	"math"
)

// OutlineThreshold is the exclusive dimension bound below which cells get an
// outline. Denser grids are drawn without one.
const OutlineThreshold = 100

// Layout maps grid coordinates onto a canvas. Cells are square with side
// min(canvas)/max(rows, cols) and the grid is centred.
type Layout struct {
	CanvasW, CanvasH int
	Rows, Cols       int
	Cell             float64
	OffsetX, OffsetY float64
	Outline          bool
}

// NewLayout computes the geometry for a rows x cols grid on a w x h canvas.
func NewLayout(w, h, rows, cols int) Layout {
	l := Layout{CanvasW: w, CanvasH: h, Rows: rows, Cols: cols}
	span := max(rows, cols)
	if w <= 0 || h <= 0 || span <= 0 {
		return l
	}
	l.Cell = float64(min(w, h)) / float64(span)
	l.OffsetX = (float64(w) - l.Cell*float64(cols)) / 2
	l.OffsetY = (float64(h) - l.Cell*float64(rows)) / 2
	l.Outline = rows < OutlineThreshold && cols < OutlineThreshold
	return l
}

// CellRect returns the pixel rectangle covered by (row, col). Every cell
// covers at least one pixel, so sub-pixel cells overlap their neighbours.
func (l Layout) CellRect(row, col int) image.Rectangle {
	x0 := int(math.Round(l.OffsetX + float64(col)*l.Cell))
	y0 := int(math.Round(l.OffsetY + float64(row)*l.Cell))
	x1 := int(math.Round(l.OffsetX + float64(col+1)*l.Cell))
	y1 := int(math.Round(l.OffsetY + float64(row+1)*l.Cell))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return image.Rect(x0, y0, x1, y1)
}

// Bounds returns the rectangle covered by the whole grid.
func (l Layout) Bounds() image.Rectangle {
	if l.Rows == 0 || l.Cols == 0 {
		return image.Rectangle{}
	}
	return l.CellRect(0, 0).Union(l.CellRect(l.Rows-1, l.Cols-1))
}
