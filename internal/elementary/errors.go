package elementary

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRule         = errors.New("invalid rule")
	ErrInvalidDimension    = errors.New("invalid dimension")
	ErrInvalidNeighborhood = errors.New("invalid neighborhood")
	ErrInvalidSeed         = errors.New("invalid seed")
	ErrInvalidBits         = errors.New("invalid bits")
	ErrInvalidBoundary     = errors.New("invalid boundary")
)

// Error wraps a validation failure with the offending detail.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

func errorf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
