package ui

import "fmt"

// Status is the viewer state shown on the HUD.
type Status struct {
	Rule       int
	Boundary   string
	SeedMode   string
	RandomSeed int64
	Revealed   int
	Rows       int
	Width      int
	Paused     bool
	Err        string
}

// Title returns the panel header.
func (s Status) Title() string {
	return fmt.Sprintf("Rule %d", s.Rule)
}

// Lines returns the panel body, one entry per line.
func (s Status) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	} else if s.Rows > 0 && s.Revealed >= s.Rows {
		state = "done"
	}
	lines := []string{
		"boundary: " + s.Boundary,
		"seed:     " + s.SeedMode,
		fmt.Sprintf("size:     %d x %d", s.Width, s.Rows),
		fmt.Sprintf("rows:     %d/%d", s.Revealed, s.Rows),
		"state:    " + state,
	}
	if s.SeedMode == "random" {
		lines = append(lines, fmt.Sprintf("rng:      %d", s.RandomSeed))
	}
	return lines
}
