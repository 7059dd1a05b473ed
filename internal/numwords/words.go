// Package numwords renders monetary amounts as English words on the Indian
// numbering scale (crore, lakh, thousand, hundred).
package numwords

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

const (
	crore = 10_000_000
	lakh  = 100_000
)

// Rupees converts an amount into words, e.g. "One Lakh Five Rupees and Fifty
// Paise". The fractional part is rounded to the nearest whole paisa. A zero
// amount yields the literal word "Zero".
func Rupees(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "Negative " + Rupees(amount.Neg())
	}
	whole := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(whole)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if paise >= 100 {
		whole++
		paise -= 100
	}
	if whole == 0 && paise == 0 {
		return "Zero"
	}

	var b strings.Builder
	b.WriteString(Integer(whole))
	b.WriteString(" Rupees")
	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(Integer(paise))
		b.WriteString(" Paise")
	}
	return b.String()
}

// Integer converts a non-negative integer into Indian-scale words.
// Integer(0) == "Zero".
func Integer(n int64) string {
	if n == 0 {
		return "Zero"
	}
	return scale(n)
}

// scale peels off the highest applicable tier, recursing on the quotient for
// that tier's words, then continues with the remainder.
func scale(n int64) string {
	var parts []string
	if n >= crore {
		parts = append(parts, scale(n/crore), "Crore")
		n %= crore
	}
	if n >= lakh {
		parts = append(parts, scale(n/lakh), "Lakh")
		n %= lakh
	}
	if n >= 1000 {
		parts = append(parts, scale(n/1000), "Thousand")
		n %= 1000
	}
	if n >= 100 {
		parts = append(parts, ones[n/100], "Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, under100(n))
	}
	return strings.Join(parts, " ")
}

func under100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	word := tens[n/10]
	if n%10 > 0 {
		word += "-" + ones[n%10]
	}
	return word
}
