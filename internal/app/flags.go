package app

import (
	"flag"
	"fmt"

	"eca/internal/core"
	"eca/internal/elementary"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Rule       int
	Gens       int
	Size       int
	SeedMode   string
	Boundary   string
	RandomSeed int64
	Canvas     int
	TPS        int
	ConfigPath string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := elementary.DefaultConfig()
	return &Config{
		Rule:       def.Rule,
		Gens:       def.Generations,
		Size:       def.Width,
		SeedMode:   def.Seed.String(),
		Boundary:   def.Boundary.String(),
		RandomSeed: 42,
		Canvas:     720,
		TPS:        30,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rule, "rule", c.Rule, "Wolfram rule code (0-255)")
	fs.IntVar(&c.Gens, "gens", c.Gens, "number of generations (rows)")
	fs.IntVar(&c.Size, "size", c.Size, "cells per generation (columns)")
	fs.StringVar(&c.SeedMode, "seed-mode", c.SeedMode, "initial row: single or random")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "edge behaviour: toric or mirror")
	fs.Int64Var(&c.RandomSeed, "seed", c.RandomSeed, "seed for the random initial row")
	fs.IntVar(&c.Canvas, "canvas", c.Canvas, "canvas side in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "rows revealed per second")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "path to a YAML config file")
}

// EngineConfig converts the flag values into a run configuration.
func (c *Config) EngineConfig() (elementary.Config, error) {
	seed, err := core.ParseSeedMode(c.SeedMode)
	if err != nil {
		return elementary.Config{}, fmt.Errorf("seed-mode: %w", err)
	}
	boundary, err := core.ParseBoundaryMode(c.Boundary)
	if err != nil {
		return elementary.Config{}, fmt.Errorf("boundary: %w", err)
	}
	return elementary.Config{
		Rule:        c.Rule,
		Generations: c.Gens,
		Width:       c.Size,
		Seed:        seed,
		Boundary:    boundary,
	}, nil
}
