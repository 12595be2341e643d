package basedec

import (
	"github.com/holiman/uint256"
)

// DecodeFixed is the checked 256-bit variant of Decode. It returns ErrOverflow
// as soon as the accumulator would exceed 2^256-1 and never wraps.
func DecodeFixed(digits string, base int) (*uint256.Int, error) {
	if err := validate(digits, base); err != nil {
		return nil, err
	}

	radix := uint256.NewInt(uint64(base))
	digit := new(uint256.Int)
	result := new(uint256.Int)

	for i := 0; i < len(digits); i++ {
		value, _ := digitValue(digits[i], base)

		if _, overflow := result.MulOverflow(result, radix); overflow {
			return nil, ErrOverflow
		}
		if _, overflow := result.AddOverflow(result, digit.SetUint64(uint64(value))); overflow {
			return nil, ErrOverflow
		}
	}

	return result, nil
}
