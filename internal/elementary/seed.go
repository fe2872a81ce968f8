package elementary

import (
	"eca/internal/core"
	"eca/pkg/rng"
)

// Seed produces generation zero. Random mode requires src; it is never
// replaced by a global generator.
func Seed(size int, mode core.SeedMode, src rng.BitSource) (core.Generation, error) {
	if size < 1 {
		return nil, errorf(ErrInvalidDimension, "generation size %d < 1", size)
	}
	gen := make(core.Generation, size)
	switch mode {
	case core.SingleSeed:
		gen[0] = 1
	case core.Random:
		if src == nil {
			return nil, errorf(ErrInvalidSeed, "random seed mode needs a bit source")
		}
		rng.FillBinary(src, gen)
	default:
		return nil, errorf(ErrInvalidSeed, "unknown seed mode %v", mode)
	}
	return gen, nil
}
