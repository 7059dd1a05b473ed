package common

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// AtoiDefault converts the provided string to an integer falling back to the default when parsing fails.
func AtoiDefault(value string, def int) int {
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

// DecimalOrZero parses a free-text numeric field. Missing or unparseable
// values coerce to zero rather than surfacing an error, which keeps
// interactive editing uninterrupted.
func DecimalOrZero(value string) decimal.Decimal {
	return DecimalOrDefault(value, decimal.Zero)
}

// DecimalOrDefault behaves like DecimalOrZero but falls back to the provided
// default instead of zero.
func DecimalOrDefault(value string, def decimal.Decimal) decimal.Decimal {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def
	}
	parsed, err := decimal.NewFromString(trimmed)
	if err != nil {
		return def
	}
	return parsed
}
