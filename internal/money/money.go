// Package money provides tolerant parsing of user-typed amounts and
// locale-style formatting for display. Parsing never fails: anything that
// does not contain a usable number comes back as zero.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses free-form numeric text. Thousands separators and any
// other character that is not a digit, a decimal point, or a leading minus
// sign are stripped before parsing. Malformed or empty input yields zero.
func ParseAmount(raw string) decimal.Decimal {
	var sb strings.Builder
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == '.':
			sb.WriteRune(r)
		case r == '-' && i == 0:
			sb.WriteRune(r)
		}
	}
	cleaned := sb.String()
	if cleaned == "" || cleaned == "-" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseAmountOr parses like ParseAmount but substitutes fallback when the
// parsed value is not positive. Used for inputs with a non-zero default,
// such as the overtime multiplier.
func ParseAmountOr(raw string, fallback decimal.Decimal) decimal.Decimal {
	d := ParseAmount(raw)
	if d.LessThanOrEqual(decimal.Zero) {
		return fallback
	}
	return d
}

// FormatCurrency renders an amount with a dollar sign, thousands
// separators, and exactly two decimal places. The sign precedes the
// dollar sign for negative amounts.
func FormatCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	return sign + "$" + groupThousands(amount.StringFixed(2))
}

// FormatPercent renders a fractional rate as a percentage with one
// decimal place.
func FormatPercent(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

// groupThousands inserts commas into the integer part of a fixed-point
// decimal string.
func groupThousands(s string) string {
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return intPart + fracPart
	}
	var sb strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		sb.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(intPart[i : i+3])
	}
	return sb.String() + fracPart
}
