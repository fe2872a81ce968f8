package elementary

import (
	"strconv"

	"eca/internal/core"
)

// Config holds the parameters of a single automaton run.
type Config struct {
	Rule        int               `yaml:"rule" json:"rule"`
	Generations int               `yaml:"generations" json:"generations"`
	Width       int               `yaml:"width" json:"width"`
	Seed        core.SeedMode     `yaml:"seed_mode" json:"seed_mode"`
	Boundary    core.BoundaryMode `yaml:"boundary" json:"boundary"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Rule:        110,
		Generations: 64,
		Width:       64,
		Seed:        core.SingleSeed,
		Boundary:    core.Mirror,
	}
}

// FromMap populates a Config from a string map. Unparseable entries keep their
// default; range checks are left to Validate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["gens"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Generations = parsed
		}
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := core.ParseSeedMode(v); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["boundary"]; ok {
		if parsed, err := core.ParseBoundaryMode(v); err == nil {
			c.Boundary = parsed
		}
	}
	return c
}

// Validate checks the configuration against limits without allocating.
func (c Config) Validate(limits Limits) error {
	limits = limits.withDefaults()
	if c.Rule < 0 || c.Rule > 255 {
		return errorf(ErrInvalidRule, "rule %d outside [0,255]", c.Rule)
	}
	if c.Generations < 1 {
		return errorf(ErrInvalidDimension, "generations %d < 1", c.Generations)
	}
	if c.Generations > limits.MaxGenerations {
		return errorf(ErrInvalidDimension, "generations %d exceeds limit %d", c.Generations, limits.MaxGenerations)
	}
	if c.Width < 1 {
		return errorf(ErrInvalidDimension, "generation size %d < 1", c.Width)
	}
	if c.Width > limits.MaxGenSize {
		return errorf(ErrInvalidDimension, "generation size %d exceeds limit %d", c.Width, limits.MaxGenSize)
	}
	if !c.Seed.Valid() {
		return errorf(ErrInvalidSeed, "unknown seed mode %v", c.Seed)
	}
	if !c.Boundary.Valid() {
		return errorf(ErrInvalidBoundary, "unknown boundary mode %v", c.Boundary)
	}
	return nil
}
