package common

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAtoiDefault(t *testing.T) {
	require.Equal(t, 5, AtoiDefault("5", 30))
	require.Equal(t, 30, AtoiDefault("", 30))
	require.Equal(t, 30, AtoiDefault("five", 30))
	require.Equal(t, -2, AtoiDefault("-2", 30))
}

func TestDecimalOrZero(t *testing.T) {
	require.True(t, DecimalOrZero("12.5").Equal(decimal.RequireFromString("12.5")))
	require.True(t, DecimalOrZero("  24 ").Equal(decimal.NewFromInt(24)))
	require.True(t, DecimalOrZero("").IsZero())
	require.True(t, DecimalOrZero("abc").IsZero())
	require.True(t, DecimalOrZero("12..5").IsZero())
}

func TestDecimalOrDefault(t *testing.T) {
	def := decimal.RequireFromString("2.5")
	require.True(t, DecimalOrDefault("6", def).Equal(decimal.NewFromInt(6)))
	require.True(t, DecimalOrDefault("", def).Equal(def))
	require.True(t, DecimalOrDefault("garbage", def).Equal(def))
}
