package core

import (
	"fmt"
	"strings"
)

// Cell is a single binary cell state, 0 or 1.
type Cell = uint8

// Size describes the dimensions of a grid: W cells per generation, H generations.
type Size struct {
	W int
	H int
}

// BoundaryMode selects the virtual neighbour supplied at the edges of a row.
type BoundaryMode int

const (
	// Mirror treats an edge cell as its own missing neighbour.
	Mirror BoundaryMode = iota
	// Toric wraps the row so the first and last cells are adjacent.
	Toric
)

func (m BoundaryMode) String() string {
	switch m {
	case Mirror:
		return "mirror"
	case Toric:
		return "toric"
	default:
		return fmt.Sprintf("BoundaryMode(%d)", int(m))
	}
}

// Valid reports whether m is a known boundary mode.
func (m BoundaryMode) Valid() bool { return m == Mirror || m == Toric }

// ParseBoundaryMode maps "toric"/"mirror" (case-insensitive) to a BoundaryMode.
func ParseBoundaryMode(s string) (BoundaryMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mirror":
		return Mirror, nil
	case "toric", "torus", "wrap":
		return Toric, nil
	default:
		return Mirror, fmt.Errorf("unknown boundary mode %q (valid: toric, mirror)", s)
	}
}

// SeedMode selects how generation zero is produced.
type SeedMode int

const (
	// SingleSeed sets only the first cell.
	SingleSeed SeedMode = iota
	// Random draws every cell from a random source.
	Random
)

func (m SeedMode) String() string {
	switch m {
	case SingleSeed:
		return "single"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("SeedMode(%d)", int(m))
	}
}

// Valid reports whether m is a known seed mode.
func (m SeedMode) Valid() bool { return m == SingleSeed || m == Random }

// ParseSeedMode maps "single"/"random" (case-insensitive) to a SeedMode.
func ParseSeedMode(s string) (SeedMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "single-seed", "first":
		return SingleSeed, nil
	case "random", "rand":
		return Random, nil
	default:
		return SingleSeed, fmt.Errorf("unknown seed mode %q (valid: single, random)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m BoundaryMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *BoundaryMode) UnmarshalText(b []byte) error {
	v, err := ParseBoundaryMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m SeedMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *SeedMode) UnmarshalText(b []byte) error {
	v, err := ParseSeedMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
