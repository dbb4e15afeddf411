package base116

import (
	"fmt"

	"github.com/pkg/errors"
)

// Decode error kinds. Every error produced while decoding is a *DecodeError wrapping one of these,
// so they can be matched with errors.Is.
var (
	ErrInvalidSymbol     = errors.New("invalid symbol")
	ErrInvalidLength     = errors.New("invalid digit group length")
	ErrOverflow          = errors.New("digit group overflows its block")
	ErrMissingWrapper    = errors.New("missing wrapper")
	ErrUnexpectedWrapper = errors.New("unexpected wrapper")
	ErrTrailingData      = errors.New("data after closing wrapper")
)

// DecodeError describes a single decoding failure.
type DecodeError struct {
	// Kind is one of the Err* kinds above
	Kind error
	// Unit is the offending input unit. It is only set for unit-level failures.
	Unit rune
	// Position is the zero-based index of the offending unit in the input. For digit group
	// failures it is the position of the first symbol of the group, for a missing wrapper at
	// the end of the input it is the length of the input.
	Position int
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case ErrInvalidSymbol, ErrUnexpectedWrapper, ErrTrailingData:
		return fmt.Sprintf("base116: %v %q (%U) at position %d", e.Kind, e.Unit, e.Unit, e.Position)
	case ErrInvalidLength, ErrOverflow:
		return fmt.Sprintf("base116: %v in group starting at position %d", e.Kind, e.Position)
	default:
		return fmt.Sprintf("base116: %v at position %d", e.Kind, e.Position)
	}
}

// Unwrap returns the kind of the error
func (e *DecodeError) Unwrap() error {
	return e.Kind
}
