package units

import (
	"crowdfund/internal/core/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOctas(t *testing.T) {
	tests := map[string]domain.Octas{
		"0.1":        10_000_000,
		"1":          100_000_000,
		"0":          0,
		"2.5":        250_000_000,
		"0.00000001": 1,
		"1000":       100_000_000_000,
	}
	for in, want := range tests {
		got, err := ToOctas(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestToOctas_Rejects(t *testing.T) {
	for _, in := range []string{"", "abc", "-1", "0.000000001", "999999999999999999999"} {
		_, err := ToOctas(in)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest, in)
	}
}

func TestFormatCoins(t *testing.T) {
	assert.Equal(t, "0.1", FormatCoins(10_000_000))
	assert.Equal(t, "12", FormatCoins(1_200_000_000))
	assert.Equal(t, "0", FormatCoins(0))
}
