package elementary

import (
	"strconv"
	"strings"

	"eca/internal/core"
)

// ParseBits converts a string of '0' and '1' into a generation. Surrounding
// whitespace and underscores used as digit separators are ignored.
func ParseBits(s string) (core.Generation, error) {
	s = strings.TrimSpace(s)
	gen := make(core.Generation, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			gen = append(gen, 0)
		case '1':
			gen = append(gen, 1)
		case '_':
		default:
			return nil, errorf(ErrInvalidBits, "unexpected %q at offset %d", r, i)
		}
	}
	if len(gen) == 0 {
		return nil, errorf(ErrInvalidBits, "no bits in %q", s)
	}
	return gen, nil
}

// BitsFromUint returns the binary expansion of n, most significant bit first,
// without leading zeros. Zero yields a single 0 cell.
func BitsFromUint(n uint64) core.Generation {
	gen, _ := ParseBits(strconv.FormatUint(n, 2))
	return gen
}

// ParseDecimal parses a non-negative decimal integer and returns its binary
// expansion.
func ParseDecimal(s string) (core.Generation, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil, errorf(ErrInvalidBits, "%q is not a non-negative integer", s)
	}
	return BitsFromUint(n), nil
}
