package basedec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFixed(t *testing.T) {
	t.Run("small value", func(t *testing.T) {
		result, err := DecodeFixed("213", 4)
		require.NoError(t, err)
		assert.Equal(t, uint64(39), result.Uint64())
	})

	t.Run("max value", func(t *testing.T) {
		result, err := DecodeFixed(strings.Repeat("f", 64), 16)
		require.NoError(t, err)

		expected, err := Decode(strings.Repeat("f", 64), 16)
		require.NoError(t, err)
		assert.Equal(t, 0, expected.Cmp(result.ToBig()))
	})

	t.Run("max value base 36", func(t *testing.T) {
		_, err := DecodeFixed("6dp5qcb22im238nr3wvp0ic7q99w035jmy2iw7i6n43d37jtof", 36)
		require.NoError(t, err)
	})

	t.Run("overflow on add", func(t *testing.T) {
		_, err := DecodeFixed("6dp5qcb22im238nr3wvp0ic7q99w035jmy2iw7i6n43d37jtog", 36)
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("overflow on multiply", func(t *testing.T) {
		_, err := DecodeFixed("1"+strings.Repeat("0", 64), 16)
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("invalid digit reported before overflow", func(t *testing.T) {
		_, err := DecodeFixed(strings.Repeat("f", 80)+"g", 16)
		assert.ErrorIs(t, err, ErrInvalidDigit)
	})

	t.Run("invalid base", func(t *testing.T) {
		_, err := DecodeFixed("1", 64)
		assert.ErrorIs(t, err, ErrInvalidBase)
	})
}
