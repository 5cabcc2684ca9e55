package crypto

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks a rejected policy. It is never returned by
// Generate itself; callers opt in through Validate.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrLengthTooShort   = fmt.Errorf("%w: password length below minimum", ErrInvalidArgument)
	ErrLengthTooLong    = fmt.Errorf("%w: password length above maximum", ErrInvalidArgument)
	ErrNoCharacterTypes = fmt.Errorf("%w: at least one character type must be selected", ErrInvalidArgument)
)

// Validate checks p against the inclusive length bounds [min, max].
func (p Policy) Validate(min, max int) error {
	if p.Length < min {
		return fmt.Errorf("%w (%d < %d)", ErrLengthTooShort, p.Length, min)
	}
	if p.Length > max {
		return fmt.Errorf("%w (%d > %d)", ErrLengthTooLong, p.Length, max)
	}
	if p.Classes() == 0 {
		return ErrNoCharacterTypes
	}
	return nil
}
