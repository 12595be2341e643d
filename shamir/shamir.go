// Package shamir reconstructs the secret of a Shamir-style scheme over the
// integers: the constant term of the polynomial through a threshold set of
// points, computed by Lagrange interpolation at x = 0.
//
// All arithmetic is exact. Basis terms are accumulated as big.Rat values and
// only the final sum has to be an integer, so a share set that does not lie on
// an integer polynomial fails with ErrNonIntegralResult instead of yielding a
// truncated secret.
package shamir

import (
	"fmt"
	"math/big"
)

// InterpolateAtZero returns f(0) for the polynomial through the points of set.
func InterpolateAtZero(set *PointSet) (*big.Int, error) {
	value, err := EvaluateAt(set, new(big.Int))
	if err != nil {
		return nil, err
	}

	if !value.IsInt() {
		return nil, fmt.Errorf("%w: got %s", ErrNonIntegralResult, value.RatString())
	}

	return new(big.Int).Set(value.Num()), nil
}

// EvaluateAt returns the exact value at x of the polynomial through the points of set.
func EvaluateAt(set *PointSet, x *big.Int) (*big.Rat, error) {
	if set == nil || len(set.points) == 0 {
		return nil, ErrThresholdMismatch
	}

	return lagrangeEvaluate(set.points, x)
}

// Reconstruct decodes the first k records and interpolates their secret.
// Records beyond k are ignored.
func Reconstruct(k int, records []Record) (*big.Int, error) {
	if k < 1 {
		return nil, ErrInvalidThreshold
	}

	if len(records) < k {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrThresholdMismatch, k, len(records))
	}

	points, err := DecodeRecords(records[:k])
	if err != nil {
		return nil, err
	}

	return ReconstructPoints(k, points)
}

// ReconstructPoints interpolates the secret of the first k points.
// Points beyond k are ignored.
func ReconstructPoints(k int, points []Point) (*big.Int, error) {
	if k < 1 {
		return nil, ErrInvalidThreshold
	}

	if len(points) < k {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrThresholdMismatch, k, len(points))
	}

	set, err := NewPointSet(k, points[:k])
	if err != nil {
		return nil, err
	}

	return InterpolateAtZero(set)
}
