// Package config loads eca settings from YAML files and environment variables.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"eca/internal/core"
	"eca/internal/elementary"
	"gopkg.in/yaml.v3"
)

// Config contains all eca configuration settings.
type Config struct {
	// Engine holds the default automaton run.
	Engine EngineConfig `yaml:"engine"`

	// Render controls output canvases.
	Render RenderConfig `yaml:"render"`

	// Sweep configures the all-rules survey.
	Sweep SweepConfig `yaml:"sweep"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig extends a run configuration with its random seed and limits.
type EngineConfig struct {
	elementary.Config `yaml:",inline"`

	// RandomSeed seeds the bit source used in random seed mode.
	RandomSeed int64 `yaml:"random_seed"`

	// Limits caps generations and generation size.
	Limits elementary.Limits `yaml:"limits"`
}

// RenderConfig controls how grids are written.
type RenderConfig struct {
	// Format is the default output format: "text", "png" or "json".
	Format string `yaml:"format"`

	// Canvas is the side length in pixels of PNG output.
	Canvas int `yaml:"canvas"`

	// Live and Dead are the runes used by text output.
	Live string `yaml:"live"`
	Dead string `yaml:"dead"`
}

// SweepConfig configures `eca sweep`.
type SweepConfig struct {
	Workers     int `yaml:"workers"`
	Generations int `yaml:"generations"`
	Width       int `yaml:"width"`
}

// LoggingConfig configures log verbosity.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug" or "trace".
	Level string `yaml:"level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			Config:     elementary.DefaultConfig(),
			RandomSeed: 42,
			Limits: elementary.Limits{
				MaxGenerations: elementary.DefaultMaxDimension,
				MaxGenSize:     elementary.DefaultMaxDimension,
			},
		},
		Render: RenderConfig{
			Format: "text",
			Canvas: 800,
			Live:   "█",
			Dead:   " ",
		},
		Sweep: SweepConfig{
			Workers:     runtime.NumCPU(),
			Generations: 256,
			Width:       128,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns ~/.eca/config.yaml, or "" when the home directory is
// unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".eca", "config.yaml")
}

// Load loads configuration from path (or DefaultPath when empty) and applies
// environment overrides. Order: defaults -> file -> environment.
// A missing default file is not an error; a missing explicit path is.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		_, statErr := os.Stat(path)
		if statErr == nil || explicit {
			fileCfg, err := LoadFromFile(path)
			if err != nil {
				return nil, fmt.Errorf("loading config file: %w", err)
			}
			cfg = fileCfg
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Write encodes cfg as YAML.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.Engine.Validate(c.Engine.Limits); err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	validFormats := map[string]bool{"text": true, "png": true, "json": true}
	if !validFormats[c.Render.Format] {
		return fmt.Errorf("invalid render format: %s (valid: text, png, json)", c.Render.Format)
	}
	if c.Render.Canvas < 1 {
		return fmt.Errorf("canvas must be positive, got %d", c.Render.Canvas)
	}
	if len([]rune(c.Render.Live)) != 1 || len([]rune(c.Render.Dead)) != 1 {
		return fmt.Errorf("live and dead must be single characters, got %q and %q", c.Render.Live, c.Render.Dead)
	}

	if c.Sweep.Workers < 1 {
		return fmt.Errorf("sweep workers must be positive, got %d", c.Sweep.Workers)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true, "warn": true, "error": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, warn, error)", c.Logging.Level)
	}
	return nil
}

// applyEnvOverrides applies ECA_* environment variables.
func applyEnvOverrides(cfg *Config) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"ECA_RULE", &cfg.Engine.Rule},
		{"ECA_GENERATIONS", &cfg.Engine.Generations},
		{"ECA_WIDTH", &cfg.Engine.Width},
		{"ECA_CANVAS", &cfg.Render.Canvas},
		{"ECA_SWEEP_WORKERS", &cfg.Sweep.Workers},
	}
	for _, e := range ints {
		if v := os.Getenv(e.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", e.key, err)
			}
			*e.dst = n
		}
	}

	if v := os.Getenv("ECA_MAX_DIMENSION"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ECA_MAX_DIMENSION: %w", err)
		}
		cfg.Engine.Limits.MaxGenerations = n
		cfg.Engine.Limits.MaxGenSize = n
	}
	if v := os.Getenv("ECA_RANDOM_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("ECA_RANDOM_SEED: %w", err)
		}
		cfg.Engine.RandomSeed = n
	}
	if v := os.Getenv("ECA_SEED_MODE"); v != "" {
		mode, err := core.ParseSeedMode(v)
		if err != nil {
			return fmt.Errorf("ECA_SEED_MODE: %w", err)
		}
		cfg.Engine.Seed = mode
	}
	if v := os.Getenv("ECA_BOUNDARY"); v != "" {
		mode, err := core.ParseBoundaryMode(v)
		if err != nil {
			return fmt.Errorf("ECA_BOUNDARY: %w", err)
		}
		cfg.Engine.Boundary = mode
	}
	if v := os.Getenv("ECA_FORMAT"); v != "" {
		cfg.Render.Format = v
	}
	if v := os.Getenv("ECA_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	return nil
}
