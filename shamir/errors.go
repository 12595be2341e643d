package shamir

import (
	"errors"
	"fmt"

	"github.com/vitalvas/shamirkit/basedec"
)

var (
	// ErrInvalidThreshold is returned when the threshold k is less than 1.
	ErrInvalidThreshold = errors.New("shamir: threshold must be at least 1")

	// ErrThresholdMismatch is returned when the number of points does not satisfy the threshold.
	ErrThresholdMismatch = errors.New("shamir: number of points does not match threshold")

	// ErrDegenerateInput is returned when two points share an x-coordinate.
	ErrDegenerateInput = errors.New("shamir: duplicate x-coordinates make interpolation undefined")

	// ErrNonIntegralResult is returned when the interpolated constant term is not an integer.
	ErrNonIntegralResult = errors.New("shamir: interpolated secret is not an integer")

	// ErrInvalidCoordinate is returned when an x-coordinate is not a decimal integer.
	ErrInvalidCoordinate = errors.New("shamir: invalid x-coordinate")

	// ErrInvalidDigit is returned when a y-value contains a digit outside its base.
	ErrInvalidDigit = basedec.ErrInvalidDigit

	// ErrInvalidBase is returned when a y-value base is outside [2, 36].
	ErrInvalidBase = basedec.ErrInvalidBase
)

// RecordError ties a decoding failure to the record that caused it.
type RecordError struct {
	Index int
	X     string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("shamir: record %d (x=%q): %v", e.Index, e.X, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
