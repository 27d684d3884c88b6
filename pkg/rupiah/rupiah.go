package rupiah

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders an amount in the Indonesian currency style:
// "Rp 1.500.000" for whole values, "Rp 72.193,44" when cents remain.
// Amounts are rounded to two decimal places here and nowhere else; all
// arithmetic upstream stays on exact decimals.
func Format(amount decimal.Decimal) string {
	rounded := amount.Round(2)

	neg := rounded.IsNegative()
	if neg {
		rounded = rounded.Neg()
	}

	whole := rounded.Truncate(0)
	frac := rounded.Sub(whole)

	s := "Rp " + group(whole.String())
	if !frac.IsZero() {
		cents := frac.Mul(decimal.NewFromInt(100)).Truncate(0).String()
		if len(cents) < 2 {
			cents = "0" + cents
		}
		s += "," + cents
	}
	if neg {
		s = "-" + s
	}
	return s
}

// group inserts '.' thousand separators into a plain digit string.
func group(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
