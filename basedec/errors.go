package basedec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBase is returned when the base is outside [MinBase, MaxBase].
	ErrInvalidBase = errors.New("basedec: base must be between 2 and 36")

	// ErrInvalidDigit is returned for an empty digit string or a character
	// that is not a digit of the requested base.
	ErrInvalidDigit = errors.New("basedec: invalid digit")

	// ErrOverflow is returned by DecodeFixed when the value does not fit in 256 bits.
	ErrOverflow = errors.New("basedec: value overflows 256 bits")

	// ErrNegative is returned by Encode for negative integers.
	ErrNegative = errors.New("basedec: negative values cannot be encoded")
)

// DigitError describes the offending character of a rejected digit string.
type DigitError struct {
	Digits string
	Base   int
	// Pos is the byte offset of Char in Digits, -1 for an empty string.
	Pos  int
	Char rune
}

func (e *DigitError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("%s: empty digit string", ErrInvalidDigit)
	}
	return fmt.Sprintf("%s: %q at position %d is not valid in base %d", ErrInvalidDigit, e.Char, e.Pos, e.Base)
}

func (e *DigitError) Unwrap() error {
	return ErrInvalidDigit
}
