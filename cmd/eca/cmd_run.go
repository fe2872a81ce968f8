package main

import (
	"fmt"

	"eca/internal/config"
	"eca/internal/core"
	"eca/internal/elementary"
	"eca/internal/logging"
	"eca/pkg/rng"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evolve an automaton from a seeded first row",
		Long: `Build a grid of generations for a rule.

Generation zero is either a single live cell at the left edge or a
random row drawn from --seed. Each later generation is computed from the
previous one under the chosen boundary mode.

Examples:
  eca run --rule 30 --gens 32 --size 63 --boundary toric
  eca run --rule 110 --seed-mode random --seed 7 --format png --out rule110.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, logger, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			if err := applyRunFlags(cmd, settings); err != nil {
				return err
			}
			if err := settings.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			ec := settings.Engine
			engine := elementary.NewEngine(ec.Limits)
			logger.Debug("running automaton",
				"rule", ec.Rule, "generations", ec.Generations, "width", ec.Width,
				"seed_mode", ec.Seed, "boundary", ec.Boundary, "random_seed", ec.RandomSeed)

			grid, err := engine.Run(ec.Config, rng.New(ec.RandomSeed))
			if err != nil {
				return fmt.Errorf("run: %w", err)
			}
			for i, row := range grid {
				logger.Log(cmd.Context(), logging.LevelTrace, "generation", "index", i, "cells", row.String())
			}

			w, closeOut, err := openOutput(cmd)
			if err != nil {
				return err
			}
			pixel, _ := cmd.Flags().GetBool("pixel")
			doc := newGridDocument(ec.Rule, ec.Boundary, ec.Seed.String(), grid)
			if err := writeGrid(w, settings.Render.Format, doc, grid, settings.Render, pixel); err != nil {
				closeOut()
				return err
			}
			return closeOut()
		},
	}

	cmd.Flags().Int("rule", 0, "Wolfram rule code (0-255)")
	cmd.Flags().Int("gens", 0, "Number of generations (rows)")
	cmd.Flags().Int("size", 0, "Cells per generation (columns)")
	cmd.Flags().String("seed-mode", "", "Initial row: single or random")
	cmd.Flags().String("boundary", "", "Edge behaviour: toric or mirror")
	cmd.Flags().Int64("seed", 0, "Seed for the random initial row")
	cmd.Flags().Int("max-dimension", 0, "Reject generations or sizes above this value")
	addOutputFlags(cmd)
	return cmd
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "", "Output format: text, png, json")
	cmd.Flags().String("out", "", "Write output to a file instead of stdout")
	cmd.Flags().Int("canvas", 0, "PNG canvas side in pixels")
	cmd.Flags().Bool("pixel", false, "PNG at one pixel per cell instead of a fixed canvas")
}

// applyRunFlags overlays explicitly set flags on top of file and environment
// configuration.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("rule") {
		cfg.Engine.Rule, _ = flags.GetInt("rule")
	}
	if flags.Changed("gens") {
		cfg.Engine.Generations, _ = flags.GetInt("gens")
	}
	if flags.Changed("size") {
		cfg.Engine.Width, _ = flags.GetInt("size")
	}
	if flags.Changed("seed-mode") {
		v, _ := flags.GetString("seed-mode")
		mode, err := core.ParseSeedMode(v)
		if err != nil {
			return err
		}
		cfg.Engine.Seed = mode
	}
	if flags.Changed("seed") {
		cfg.Engine.RandomSeed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("max-dimension") {
		n, _ := flags.GetInt("max-dimension")
		cfg.Engine.Limits.MaxGenerations = n
		cfg.Engine.Limits.MaxGenSize = n
	}
	if err := applyBoundaryFlag(cmd, cfg); err != nil {
		return err
	}
	applyOutputFlags(cmd, cfg)
	return nil
}

func applyBoundaryFlag(cmd *cobra.Command, cfg *config.Config) error {
	if !cmd.Flags().Changed("boundary") {
		return nil
	}
	v, _ := cmd.Flags().GetString("boundary")
	mode, err := core.ParseBoundaryMode(v)
	if err != nil {
		return err
	}
	cfg.Engine.Boundary = mode
	return nil
}

func applyOutputFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Render.Format, _ = flags.GetString("format")
	}
	if jsonOut, _ := flags.GetBool("json"); jsonOut {
		cfg.Render.Format = "json"
	}
	if flags.Changed("canvas") {
		cfg.Render.Canvas, _ = flags.GetInt("canvas")
	}
}
