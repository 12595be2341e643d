package shamir

import (
	"fmt"
)

// Verify checks that all points lie on the polynomial defined by the first k of
// them and returns the points that do not. An empty result means any k of the
// points reconstruct the same secret.
//
// A point beyond the first k that repeats an earlier x is reported when its y
// differs; a repeated x within the first k is ErrDegenerateInput.
//
// Verify only detects inconsistent data; it cannot tell which of the first k
// points is wrong when one of them is corrupted.
func Verify(k int, points []Point) ([]Point, error) {
	if k < 1 {
		return nil, ErrInvalidThreshold
	}

	if len(points) < k {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrThresholdMismatch, k, len(points))
	}

	for i, point := range points {
		if point.X == nil || point.Y == nil {
			return nil, fmt.Errorf("%w: point %d has a nil coordinate", ErrInvalidCoordinate, i)
		}
	}

	set, err := NewPointSet(k, points[:k])
	if err != nil {
		return nil, err
	}

	var mismatched []Point

	for _, point := range points[k:] {
		expected, err := EvaluateAt(set, point.X)
		if err != nil {
			return nil, err
		}

		if !expected.IsInt() || expected.Num().Cmp(point.Y) != 0 {
			mismatched = append(mismatched, point.Clone())
		}
	}

	return mismatched, nil
}
