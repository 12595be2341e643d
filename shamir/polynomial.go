package shamir

import (
	"math/big"
)

// lagrangeEvaluate returns the value at x of the unique polynomial of degree
// len(points)-1 through points. Every basis term is kept as an exact fraction.
//
//	f(x) = Σ_i y_i · Π_{j≠i} (x - x_j) / (x_i - x_j)
func lagrangeEvaluate(points []Point, x *big.Int) (*big.Rat, error) {
	result := new(big.Rat)
	diff := new(big.Int)

	for i := range points {
		numerator := big.NewInt(1)
		denominator := big.NewInt(1)

		for j := range points {
			if i == j {
				continue
			}

			// numerator *= (x - x_j), which is -x_j at zero
			numerator.Mul(numerator, diff.Sub(x, points[j].X))

			// denominator *= (x_i - x_j)
			denominator.Mul(denominator, diff.Sub(points[i].X, points[j].X))
		}

		if denominator.Sign() == 0 {
			return nil, ErrDegenerateInput
		}

		// term = y_i * numerator / denominator, reduced by SetFrac
		numerator.Mul(numerator, points[i].Y)
		result.Add(result, new(big.Rat).SetFrac(numerator, denominator))
	}

	return result, nil
}
