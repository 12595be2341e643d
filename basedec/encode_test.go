package basedec

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		value    int64
		base     int
		expected string
	}{
		{7, 2, "111"},
		{39, 4, "213"},
		{0, 10, "0"},
		{1295, 36, "zz"},
		{255, 16, "ff"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result, err := Encode(big.NewInt(tt.value), tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	t.Run("negative", func(t *testing.T) {
		_, err := Encode(big.NewInt(-1), 10)
		assert.ErrorIs(t, err, ErrNegative)
	})

	t.Run("invalid base", func(t *testing.T) {
		_, err := Encode(big.NewInt(1), 1)
		assert.ErrorIs(t, err, ErrInvalidBase)
	})
}
