package main

import (
	"fmt"
	"time"

	"eca/internal/core"
	"eca/internal/elementary"
	"eca/internal/sweep"
	"github.com/spf13/cobra"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate every rule and rank the results",
		Long: `Run all 256 rules with the same starting row and report, for each,
the final live-cell density and the cycle length the last rows settled
into (period 1 is a fixed point, 0 means no cycle was detected).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, logger, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			sc := settings.Sweep
			if flags.Changed("gens") {
				sc.Generations, _ = flags.GetInt("gens")
			}
			if flags.Changed("size") {
				sc.Width, _ = flags.GetInt("size")
			}
			if flags.Changed("workers") {
				sc.Workers, _ = flags.GetInt("workers")
			}
			if flags.Changed("seed-mode") {
				v, _ := flags.GetString("seed-mode")
				if settings.Engine.Seed, err = core.ParseSeedMode(v); err != nil {
					return err
				}
			}
			if flags.Changed("seed") {
				settings.Engine.RandomSeed, _ = flags.GetInt64("seed")
			}
			if err := applyBoundaryFlag(cmd, settings); err != nil {
				return err
			}
			sortKey, _ := flags.GetString("sort")
			top, _ := flags.GetInt("top")

			opts := sweep.Options{
				Generations: sc.Generations,
				Width:       sc.Width,
				Seed:        settings.Engine.Seed,
				Boundary:    settings.Engine.Boundary,
				RandomSeed:  settings.Engine.RandomSeed,
				Workers:     sc.Workers,
				Logger:      logger,
			}
			engine := elementary.NewEngine(settings.Engine.Limits)

			logger.Info("sweeping rules", "rules", 256, "workers", opts.Workers,
				"generations", opts.Generations, "width", opts.Width, "boundary", opts.Boundary)
			start := time.Now()
			results, err := sweep.Run(cmd.Context(), engine, opts)
			if err != nil {
				return fmt.Errorf("sweep: %w", err)
			}
			ranked, err := sweep.Rank(results, sortKey)
			if err != nil {
				return err
			}
			logger.Info("sweep finished", "elapsed", time.Since(start).Round(time.Millisecond))

			out := cmd.OutOrStdout()
			if jsonOut, _ := flags.GetBool("json"); jsonOut {
				return writeJSON(out, ranked)
			}
			if top <= 0 || top > len(ranked) {
				top = len(ranked)
			}
			fmt.Fprintf(out, "Top %d rules by %s:\n", top, sortKey)
			for i := 0; i < top; i++ {
				fmt.Fprintf(out, "%3d) %s\n", i+1, ranked[i])
			}
			return nil
		},
	}

	cmd.Flags().Int("gens", 0, "Generations per rule")
	cmd.Flags().Int("size", 0, "Cells per generation")
	cmd.Flags().Int("workers", 0, "Parallel rule evaluations")
	cmd.Flags().String("seed-mode", "", "Initial row: single or random")
	cmd.Flags().String("boundary", "", "Edge behaviour: toric or mirror")
	cmd.Flags().Int64("seed", 0, "Seed for the random initial row")
	cmd.Flags().String("sort", "rule", "Sort key: rule, density, period")
	cmd.Flags().Int("top", 0, "Only print the first N results")
	return cmd
}
