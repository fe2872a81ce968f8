package core

import "strings"

// Generation is one row of cells.
type Generation []Cell

// String renders the generation as a string of '0' and '1'.
func (g Generation) String() string {
	var b strings.Builder
	b.Grow(len(g))
	for _, c := range g {
		if c != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Clone returns an independent copy of g.
func (g Generation) Clone() Generation {
	return append(Generation(nil), g...)
}

// Grid is an ordered sequence of generations, generation zero first.
type Grid []Generation

// Rows returns the number of generations.
func (g Grid) Rows() int { return len(g) }

// Width returns the widest generation length.
func (g Grid) Width() int {
	w := 0
	for _, row := range g {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Size reports the grid dimensions.
func (g Grid) Size() Size { return Size{W: g.Width(), H: g.Rows()} }

// At returns the cell at (row, col), or 0 outside the grid.
func (g Grid) At(row, col int) Cell {
	if row < 0 || row >= len(g) {
		return 0
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return 0
	}
	return r[col]
}

// Cells flattens the grid into a row-major buffer of Width()*Rows() cells.
// Short rows are padded with zeros.
func (g Grid) Cells() []Cell {
	w := g.Width()
	out := make([]Cell, w*len(g))
	for y, row := range g {
		copy(out[y*w:], row)
	}
	return out
}

// Density returns the fraction of live cells in the given row.
func (g Grid) Density(row int) float64 {
	if row < 0 || row >= len(g) || len(g[row]) == 0 {
		return 0
	}
	live := 0
	for _, c := range g[row] {
		if c != 0 {
			live++
		}
	}
	return float64(live) / float64(len(g[row]))
}

// String renders the grid one generation per line.
func (g Grid) String() string {
	var b strings.Builder
	for i, row := range g {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(row.String())
	}
	return b.String()
}
