package rng

import (
	"slices"
	"testing"
)

func TestRNGDeterministic(t *testing.T) {
	a := make([]uint8, 64)
	b := make([]uint8, 64)
	FillBinary(New(42), a)
	FillBinary(New(42), b)
	if !slices.Equal(a, b) {
		t.Fatal("same seed should produce the same bits")
	}
	for i, v := range a {
		if v > 1 {
			t.Fatalf("bit %d = %d, expected 0 or 1", i, v)
		}
	}

	c := make([]uint8, 64)
	FillBinary(New(43), c)
	if slices.Equal(a, c) {
		t.Fatal("different seeds should produce different bits")
	}
}

func TestSequenceWraps(t *testing.T) {
	s := NewSequence(1, 0, 7)
	got := make([]uint8, 5)
	FillBinary(s, got)
	want := []uint8{1, 0, 1, 1, 0}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestEmptySequence(t *testing.T) {
	if got := NewSequence().Bit(); got != 0 {
		t.Fatalf("expected 0 from empty sequence, got %d", got)
	}
}
