package elementary

import (
	"eca/internal/core"
	"eca/pkg/rng"
)

const (
	// DefaultMaxDimension bounds generations and cells per generation when no
	// explicit limit is configured.
	DefaultMaxDimension = 4096

	// DefaultBitsBoundary is the boundary used by the single-step bit path.
	DefaultBitsBoundary = core.Mirror
)

// Limits caps the grid dimensions an Engine will allocate.
type Limits struct {
	MaxGenerations int `yaml:"max_generations" json:"max_generations"`
	MaxGenSize     int `yaml:"max_gen_size" json:"max_gen_size"`
}

func (l Limits) withDefaults() Limits {
	if l.MaxGenerations <= 0 {
		l.MaxGenerations = DefaultMaxDimension
	}
	if l.MaxGenSize <= 0 {
		l.MaxGenSize = DefaultMaxDimension
	}
	return l
}

// Engine builds automaton grids. It holds no state besides its limits, so a
// single Engine may be shared between goroutines.
type Engine struct {
	limits Limits
}

// NewEngine returns an Engine enforcing limits. Zero fields use
// DefaultMaxDimension.
func NewEngine(limits Limits) *Engine {
	return &Engine{limits: limits.withDefaults()}
}

// Limits returns the effective limits.
func (e *Engine) Limits() Limits { return e.limits }

// Run seeds generation zero and steps it cfg.Generations-1 times. src is only
// consulted in Random seed mode. On error no grid is returned.
func (e *Engine) Run(cfg Config, src rng.BitSource) (core.Grid, error) {
	if err := cfg.Validate(e.limits); err != nil {
		return nil, err
	}
	if cfg.Seed == core.Random && src == nil {
		return nil, errorf(ErrInvalidSeed, "random seed mode needs a bit source")
	}
	table, err := NewRuleTable(cfg.Rule)
	if err != nil {
		return nil, err
	}
	first, err := Seed(cfg.Width, cfg.Seed, src)
	if err != nil {
		return nil, err
	}
	return e.evolve(first, cfg.Generations, cfg.Boundary, table)
}

// RunFromBits steps an externally supplied row exactly once and returns the
// two-row grid {bits, next}. The input slice is copied, not retained.
func (e *Engine) RunFromBits(bits core.Generation, code int, boundary core.BoundaryMode) (core.Grid, error) {
	if len(bits) < 1 {
		return nil, errorf(ErrInvalidDimension, "empty bit string")
	}
	if len(bits) > e.limits.MaxGenSize {
		return nil, errorf(ErrInvalidDimension, "generation size %d exceeds limit %d", len(bits), e.limits.MaxGenSize)
	}
	for i, b := range bits {
		if b > 1 {
			return nil, errorf(ErrInvalidBits, "cell %d has state %d", i, b)
		}
	}
	if !boundary.Valid() {
		return nil, errorf(ErrInvalidBoundary, "unknown boundary mode %v", boundary)
	}
	table, err := NewRuleTable(code)
	if err != nil {
		return nil, err
	}
	return e.evolve(bits.Clone(), 2, boundary, table)
}

func (e *Engine) evolve(first core.Generation, gens int, boundary core.BoundaryMode, table RuleTable) (core.Grid, error) {
	grid := make(core.Grid, 0, gens)
	grid = append(grid, first)
	for len(grid) < gens {
		next, err := Step(grid[len(grid)-1], boundary, table)
		if err != nil {
			return nil, err
		}
		grid = append(grid, next)
	}
	return grid, nil
}
