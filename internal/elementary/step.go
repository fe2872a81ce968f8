package elementary

import "eca/internal/core"

// Neighborhood returns the cells seen by index i of cur under the boundary
// mode. i must be in [0, len(cur)).
func Neighborhood(cur core.Generation, i int, boundary core.BoundaryMode) (left, center, right core.Cell) {
	n := len(cur)
	center = cur[i]
	switch {
	case i > 0:
		left = cur[i-1]
	case boundary == core.Toric:
		left = cur[n-1]
	default:
		left = cur[i]
	}
	switch {
	case i < n-1:
		right = cur[i+1]
	case boundary == core.Toric:
		right = cur[0]
	default:
		right = cur[i]
	}
	return left, center, right
}

// Step computes the generation following cur. cur is only read; the result is
// a new slice of the same length. A single-cell row collapses to {0}.
func Step(cur core.Generation, boundary core.BoundaryMode, table RuleTable) (core.Generation, error) {
	if len(cur) == 0 {
		return nil, errorf(ErrInvalidDimension, "empty generation")
	}
	if len(cur) == 1 {
		return core.Generation{0}, nil
	}
	next := make(core.Generation, len(cur))
	for i := range cur {
		l, c, r := Neighborhood(cur, i, boundary)
		bit, err := table.Apply(l, c, r)
		if err != nil {
			return nil, err
		}
		next[i] = bit
	}
	return next, nil
}
