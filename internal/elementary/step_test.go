package elementary

import (
	"errors"
	"slices"
	"testing"

	"eca/internal/core"
)

func mustTable(t *testing.T, code int) RuleTable {
	t.Helper()
	table, err := NewRuleTable(code)
	if err != nil {
		t.Fatalf("rule %d: %v", code, err)
	}
	return table
}

func TestNeighborhoodToricWraps(t *testing.T) {
	gen := core.Generation{1, 0, 0, 0, 1}
	l, c, r := Neighborhood(gen, 0, core.Toric)
	if l != gen[4] || c != 1 || r != 0 {
		t.Fatalf("index 0: got (%d,%d,%d), expected left to equal index 4", l, c, r)
	}
	l, c, r = Neighborhood(gen, 4, core.Toric)
	if r != gen[0] || c != 1 || l != 0 {
		t.Fatalf("index 4: got (%d,%d,%d), expected right to equal index 0", l, c, r)
	}
}

func TestNeighborhoodMirrorReflects(t *testing.T) {
	gen := core.Generation{1, 0, 0, 0, 0}
	if l, _, _ := Neighborhood(gen, 0, core.Mirror); l != 1 {
		t.Fatalf("mirror left edge should see itself, got %d", l)
	}
	if l, _, _ := Neighborhood(gen, 0, core.Toric); l != 0 {
		t.Fatalf("toric left edge should see last cell, got %d", l)
	}
	gen = core.Generation{0, 0, 0, 0, 1}
	if _, _, r := Neighborhood(gen, 4, core.Mirror); r != 1 {
		t.Fatalf("mirror right edge should see itself, got %d", r)
	}
	if _, _, r := Neighborhood(gen, 4, core.Toric); r != 0 {
		t.Fatalf("toric right edge should see first cell, got %d", r)
	}
}

func TestStep(t *testing.T) {
	tests := []struct {
		name     string
		rule     int
		boundary core.BoundaryMode
		in       core.Generation
		want     core.Generation
	}{
		{"rule 110 mirror single seed", 110, core.Mirror, core.Generation{1, 0, 0, 0, 0, 0, 0}, core.Generation{1, 0, 0, 0, 0, 0, 0}},
		{"rule 110 mirror 101", 110, core.Mirror, core.Generation{1, 0, 1}, core.Generation{1, 1, 1}},
		{"rule 110 toric 001", 110, core.Toric, core.Generation{0, 0, 1}, core.Generation{0, 1, 1}},
		{"rule 30 toric", 30, core.Toric, core.Generation{1, 0, 0, 0, 0}, core.Generation{1, 1, 0, 0, 1}},
		{"rule 30 mirror", 30, core.Mirror, core.Generation{1, 0, 0, 0, 0}, core.Generation{0, 1, 0, 0, 0}},
		{"rule 90 toric", 90, core.Toric, core.Generation{0, 0, 1, 0, 0}, core.Generation{0, 1, 0, 1, 0}},
		{"rule 0 clears", 0, core.Toric, core.Generation{1, 1, 0, 1}, core.Generation{0, 0, 0, 0}},
		{"rule 255 fills", 255, core.Mirror, core.Generation{0, 0, 0}, core.Generation{1, 1, 1}},
		{"single cell collapses", 255, core.Toric, core.Generation{1}, core.Generation{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in.Clone()
			got, err := Step(in, tt.boundary, mustTable(t, tt.rule))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Fatalf("Step(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if !slices.Equal(in, tt.in) {
				t.Fatalf("Step mutated its input: %v", in)
			}
		})
	}
}

func TestStepRejectsEmptyAndNonBinary(t *testing.T) {
	table := mustTable(t, 110)
	if _, err := Step(nil, core.Mirror, table); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("expected ErrInvalidDimension, got %v", err)
	}
	if _, err := Step(core.Generation{0, 3, 0}, core.Mirror, table); !errors.Is(err, ErrInvalidNeighborhood) {
		t.Fatalf("expected ErrInvalidNeighborhood, got %v", err)
	}
}
