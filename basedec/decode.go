// Package basedec converts digit strings written in bases 2 through 36 into
// exact integers.
//
// Digits are '0'-'9' followed by the letters 'a'-'z' (case-insensitive), the
// same alphabet as strconv and math/big. Unlike big.Int.SetString, no sign,
// prefix or underscore separators are accepted: every character must be a
// digit of the requested base.
package basedec

import (
	"errors"
	"math/big"
	"strconv"
	"unicode/utf8"
)

const (
	MinBase = 2
	MaxBase = 36
)

// Decode evaluates digits in the given base with Horner's rule and returns the
// exact, non-negative result.
func Decode(digits string, base int) (*big.Int, error) {
	// Most share values fit in 256 bits, avoid big.Int growth for those.
	fixed, err := DecodeFixed(digits, base)
	if err == nil {
		return fixed.ToBig(), nil
	}
	if !errors.Is(err, ErrOverflow) {
		return nil, err
	}

	return decodeBig(digits, base)
}

// decodeBig expects digits already checked by validate.
func decodeBig(digits string, base int) (*big.Int, error) {
	radix := big.NewInt(int64(base))
	digit := new(big.Int)
	result := new(big.Int)

	for i := 0; i < len(digits); i++ {
		value, _ := digitValue(digits[i], base)

		result.Mul(result, radix)
		result.Add(result, digit.SetUint64(uint64(value)))
	}

	return result, nil
}

// ParseBase parses a decimal base such as "16" and checks its range.
func ParseBase(s string) (int, error) {
	base, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Join(ErrInvalidBase, err)
	}

	if err := checkBase(base); err != nil {
		return 0, err
	}

	return base, nil
}

func checkBase(base int) error {
	if base < MinBase || base > MaxBase {
		return ErrInvalidBase
	}
	return nil
}

// validate checks the base and every character before any arithmetic runs.
func validate(digits string, base int) error {
	if err := checkBase(base); err != nil {
		return err
	}

	if len(digits) == 0 {
		return &DigitError{Digits: digits, Base: base, Pos: -1}
	}

	for i := 0; i < len(digits); i++ {
		if _, ok := digitValue(digits[i], base); !ok {
			char, _ := utf8.DecodeRuneInString(digits[i:])
			return &DigitError{Digits: digits, Base: base, Pos: i, Char: char}
		}
	}

	return nil
}

func digitValue(c byte, base int) (int, bool) {
	var value int

	switch {
	case c >= '0' && c <= '9':
		value = int(c - '0')
	case c >= 'a' && c <= 'z':
		value = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		value = int(c-'A') + 10
	default:
		return 0, false
	}

	if value >= base {
		return 0, false
	}

	return value, true
}
