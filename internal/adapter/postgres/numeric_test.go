package postgres

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 1000, math.MaxInt64, math.MaxUint64} {
		got, err := fromNumeric(toNumeric(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	assert.Equal(t, "18446744073709551615", toNumeric(math.MaxUint64).String())
}

func TestFromNumericRejectsOutOfRange(t *testing.T) {
	for _, s := range []string{"-1", "1.5", "18446744073709551616"} {
		_, err := fromNumeric(decimal.RequireFromString(s))
		assert.Error(t, err, s)
	}
}
