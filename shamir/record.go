package shamir

import (
	"fmt"
	"math/big"

	"github.com/vitalvas/shamirkit/basedec"
)

// Record is an undecoded share as it arrives from upstream: a decimal
// x-coordinate, a decimal base and a digit string in that base.
type Record struct {
	X     string
	Base  string
	Value string
}

// Decode converts the record into a Point.
func (r Record) Decode() (Point, error) {
	x, ok := new(big.Int).SetString(r.X, 10)
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, r.X)
	}

	base, err := basedec.ParseBase(r.Base)
	if err != nil {
		return Point{}, err
	}

	y, err := basedec.Decode(r.Value, base)
	if err != nil {
		return Point{}, err
	}

	return Point{X: x, Y: y}, nil
}

// DecodeRecords decodes every record, stopping at the first failure.
func DecodeRecords(records []Record) ([]Point, error) {
	points := make([]Point, len(records))

	for i, record := range records {
		point, err := record.Decode()
		if err != nil {
			return nil, &RecordError{Index: i, X: record.X, Err: err}
		}
		points[i] = point
	}

	return points, nil
}
