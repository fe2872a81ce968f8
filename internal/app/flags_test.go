package app

import (
	"flag"
	"io"
	"testing"

	"eca/internal/core"
	"eca/internal/elementary"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("eca-view", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-rule", "30", "-gens", "50", "-size", "21", "-seed-mode", "random", "-boundary", "toric", "-seed", "9", "-tps", "5"})
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	got, err := cfg.EngineConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := elementary.Config{Rule: 30, Generations: 50, Width: 21, Seed: core.Random, Boundary: core.Toric}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if cfg.RandomSeed != 9 || cfg.TPS != 5 {
		t.Fatalf("unexpected seed/tps: %d/%d", cfg.RandomSeed, cfg.TPS)
	}
}

func TestConfigDefaultsMatchEngine(t *testing.T) {
	got, err := NewConfig().EngineConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != elementary.DefaultConfig() {
		t.Fatalf("expected engine defaults, got %+v", got)
	}
}

func TestConfigRejectsUnknownModes(t *testing.T) {
	cfg := NewConfig()
	cfg.Boundary = "sphere"
	if _, err := cfg.EngineConfig(); err == nil {
		t.Fatal("expected boundary error")
	}
	cfg = NewConfig()
	cfg.SeedMode = "noise"
	if _, err := cfg.EngineConfig(); err == nil {
		t.Fatal("expected seed mode error")
	}
}
