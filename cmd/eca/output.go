package main

import (
	"encoding/json"
	"fmt"
	"image/png"
	"io"

	"eca/internal/config"
	"eca/internal/core"
	"eca/internal/render"
)

// gridDocument is the JSON shape of a computed grid.
type gridDocument struct {
	Rule        int      `json:"rule"`
	Boundary    string   `json:"boundary"`
	SeedMode    string   `json:"seed_mode,omitempty"`
	Generations int      `json:"generations"`
	Width       int      `json:"width"`
	Rows        []string `json:"rows"`
}

func newGridDocument(rule int, boundary core.BoundaryMode, seed string, g core.Grid) gridDocument {
	doc := gridDocument{
		Rule:        rule,
		Boundary:    boundary.String(),
		SeedMode:    seed,
		Generations: g.Rows(),
		Width:       g.Width(),
		Rows:        make([]string, 0, g.Rows()),
	}
	for _, row := range g {
		doc.Rows = append(doc.Rows, row.String())
	}
	return doc
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeGrid renders g in the requested format.
func writeGrid(w io.Writer, format string, doc gridDocument, g core.Grid, rc config.RenderConfig, pixel bool) error {
	switch format {
	case "text":
		live, dead := []rune(rc.Live), []rune(rc.Dead)
		if len(live) != 1 || len(dead) != 1 {
			return fmt.Errorf("live and dead must be single characters")
		}
		return render.WriteText(w, g, live[0], dead[0])
	case "png":
		if pixel {
			opts := render.DefaultOptions(0)
			if err := png.Encode(w, render.Pixels(g, 0, opts.On, opts.Off)); err != nil {
				return fmt.Errorf("encode png: %w", err)
			}
			return nil
		}
		return render.WritePNG(w, g, render.DefaultOptions(rc.Canvas))
	case "json":
		return writeJSON(w, doc)
	default:
		return fmt.Errorf("unknown format %q (valid: text, png, json)", format)
	}
}
