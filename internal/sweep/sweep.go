// Package sweep evaluates many rules concurrently and summarises how each one
// evolves.
package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sort"

	"eca/internal/core"
	"eca/internal/elementary"
	"eca/internal/logging"
	"eca/pkg/rng"

	"golang.org/x/sync/errgroup"
)

// MaxPeriod is the longest cycle looked for at the end of a run.
const MaxPeriod = 64

// Options configures a sweep.
type Options struct {
	Rules       []int // nil means every rule 0..255
	Generations int
	Width       int
	Seed        core.SeedMode
	Boundary    core.BoundaryMode
	RandomSeed  int64
	Workers     int

	Logger *slog.Logger
}

// Result summarises one rule.
type Result struct {
	Rule         int     `json:"rule"`
	FinalDensity float64 `json:"final_density"`
	MeanDensity  float64 `json:"mean_density"`
	// Period is the cycle length of the final rows, 1 for a fixed point and
	// 0 when no cycle up to MaxPeriod was found.
	Period int `json:"period"`
	// Extinct reports whether the last row has no live cells.
	Extinct bool `json:"extinct"`
}

func (r Result) String() string {
	return fmt.Sprintf("rule=%3d density=%.3f mean=%.3f period=%d extinct=%t",
		r.Rule, r.FinalDensity, r.MeanDensity, r.Period, r.Extinct)
}

// AllRules returns 0..255.
func AllRules() []int {
	rules := make([]int, 256)
	for i := range rules {
		rules[i] = i
	}
	return rules
}

// Run evaluates every rule in opts on a bounded pool of workers. Results are
// returned in the order of opts.Rules. Each rule draws its random row from a
// fresh source seeded with opts.RandomSeed, so results do not depend on
// scheduling.
func Run(ctx context.Context, engine *elementary.Engine, opts Options) ([]Result, error) {
	rules := opts.Rules
	if rules == nil {
		rules = AllRules()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	results := make([]Result, len(rules))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, rule := range rules {
		i, rule := i, rule
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg := elementary.Config{
				Rule:        rule,
				Generations: opts.Generations,
				Width:       opts.Width,
				Seed:        opts.Seed,
				Boundary:    opts.Boundary,
			}
			grid, err := engine.Run(cfg, rng.New(opts.RandomSeed))
			if err != nil {
				return fmt.Errorf("rule %d: %w", rule, err)
			}
			results[i] = Summarize(rule, grid)
			logger.Debug("rule evaluated", "rule", rule, "period", results[i].Period)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summarize computes the statistics for a finished grid.
func Summarize(rule int, grid core.Grid) Result {
	res := Result{Rule: rule}
	if grid.Rows() == 0 {
		return res
	}
	total := 0.0
	for i := range grid {
		total += grid.Density(i)
	}
	last := grid.Rows() - 1
	res.MeanDensity = total / float64(grid.Rows())
	res.FinalDensity = grid.Density(last)
	res.Extinct = res.FinalDensity == 0
	res.Period = period(grid)
	return res
}

func period(grid core.Grid) int {
	last := grid.Rows() - 1
	for p := 1; p <= MaxPeriod && p <= last; p++ {
		if slices.Equal(grid[last], grid[last-p]) {
			return p
		}
	}
	return 0
}

// Rank returns a copy of results ordered by key: "density" (descending final
// density), "period" (cycles first, shortest first) or "rule".
func Rank(results []Result, key string) ([]Result, error) {
	out := slices.Clone(results)
	switch key {
	case "density":
		sort.SliceStable(out, func(i, j int) bool { return out[i].FinalDensity > out[j].FinalDensity })
	case "period":
		sort.SliceStable(out, func(i, j int) bool {
			pi, pj := out[i].Period, out[j].Period
			if (pi == 0) != (pj == 0) {
				return pj == 0
			}
			return pi < pj
		})
	case "rule", "":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rule < out[j].Rule })
	default:
		return nil, fmt.Errorf("unknown sort key %q (valid: density, period, rule)", key)
	}
	return out, nil
}
