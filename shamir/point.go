package shamir

import (
	"fmt"
	"math/big"
)

// Point is a single share: a sample (X, Y) of the secret polynomial.
type Point struct {
	X *big.Int
	Y *big.Int
}

// NewPoint copies x and y into a new Point.
func NewPoint(x, y *big.Int) Point {
	return Point{
		X: new(big.Int).Set(x),
		Y: new(big.Int).Set(y),
	}
}

// NewPointInt64 is a convenience constructor for small coordinates.
func NewPointInt64(x, y int64) Point {
	return Point{
		X: big.NewInt(x),
		Y: big.NewInt(y),
	}
}

// Clone creates a deep copy of the point.
func (p Point) Clone() Point {
	return NewPoint(p.X, p.Y)
}

// Equal checks if two points have the same coordinates.
func (p Point) Equal(other Point) bool {
	if p.X == nil || p.Y == nil || other.X == nil || other.Y == nil {
		return false
	}
	return p.X.Cmp(other.X) == 0 && p.Y.Cmp(other.Y) == 0
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// PointSet is an ordered set of exactly K points with distinct x-coordinates.
// It is immutable once built.
type PointSet struct {
	points []Point
}

// NewPointSet validates points against the threshold k and copies them.
func NewPointSet(k int, points []Point) (*PointSet, error) {
	if k < 1 {
		return nil, ErrInvalidThreshold
	}

	if len(points) != k {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrThresholdMismatch, k, len(points))
	}

	seen := make(map[string]bool, len(points))
	copied := make([]Point, len(points))

	for i, point := range points {
		if point.X == nil || point.Y == nil {
			return nil, fmt.Errorf("%w: point %d has a nil coordinate", ErrInvalidCoordinate, i)
		}

		key := point.X.String()
		if seen[key] {
			return nil, fmt.Errorf("%w: x=%s", ErrDegenerateInput, key)
		}
		seen[key] = true

		copied[i] = point.Clone()
	}

	return &PointSet{points: copied}, nil
}

// K returns the threshold, which is also the number of points.
func (s *PointSet) K() int {
	return len(s.points)
}

// Points returns a copy of the points in their original order.
func (s *PointSet) Points() []Point {
	points := make([]Point, len(s.points))
	for i, point := range s.points {
		points[i] = point.Clone()
	}
	return points
}
