package basedec

import (
	"math/big"
)

// Encode renders a non-negative integer as lower-case digits in the given base.
// It is the inverse of Decode.
func Encode(n *big.Int, base int) (string, error) {
	if err := checkBase(base); err != nil {
		return "", err
	}

	if n.Sign() < 0 {
		return "", ErrNegative
	}

	return n.Text(base), nil
}
