package elementary

import (
	"errors"
	"slices"
	"testing"

	"eca/internal/core"
	"eca/pkg/rng"
)

func TestSeedSingle(t *testing.T) {
	gen, err := Seed(5, core.SingleSeed, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (core.Generation{1, 0, 0, 0, 0}); !slices.Equal(gen, want) {
		t.Fatalf("expected %v, got %v", want, gen)
	}
}

func TestSeedRandomUsesSource(t *testing.T) {
	gen, err := Seed(6, core.Random, rng.NewSequence(0, 1, 1, 0, 1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (core.Generation{0, 1, 1, 0, 1, 0}); !slices.Equal(gen, want) {
		t.Fatalf("expected %v, got %v", want, gen)
	}

	a, _ := Seed(128, core.Random, rng.New(5))
	b, _ := Seed(128, core.Random, rng.New(5))
	if !slices.Equal(a, b) {
		t.Fatal("random seeding with the same source seed must be reproducible")
	}
}

func TestSeedErrors(t *testing.T) {
	if _, err := Seed(0, core.SingleSeed, nil); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("expected ErrInvalidDimension, got %v", err)
	}
	if _, err := Seed(4, core.Random, nil); !errors.Is(err, ErrInvalidSeed) {
		t.Fatalf("expected ErrInvalidSeed, got %v", err)
	}
	if _, err := Seed(4, core.SeedMode(7), nil); !errors.Is(err, ErrInvalidSeed) {
		t.Fatalf("expected ErrInvalidSeed, got %v", err)
	}
}
