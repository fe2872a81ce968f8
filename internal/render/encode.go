package render

import (
	"bufio"
	"fmt"
	"image/png"
	"io"

	"eca/internal/core"
)

// WritePNG renders g with opts and encodes it as PNG.
func WritePNG(w io.Writer, g core.Grid, opts Options) error {
	if err := png.Encode(w, Render(g, opts)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WriteText writes one line per generation using on for live and off for
// dead cells.
func WriteText(w io.Writer, g core.Grid, on, off rune) error {
	bw := bufio.NewWriter(w)
	for _, row := range g {
		for _, c := range row {
			r := off
			if c != 0 {
				r = on
			}
			if _, err := bw.WriteRune(r); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
