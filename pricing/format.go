package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a euro amount rounded to whole units, e.g. "1 880 €"
// in French and "€1,880" in English. Rounding happens here and nowhere else.
func FormatAmount(amount decimal.Decimal, lang string) string {
	whole := amount.Round(0)
	sign := ""
	if whole.IsNegative() {
		sign = "-"
		whole = whole.Neg()
	}

	if lang == "en" {
		return sign + "€" + groupDigits(whole.String(), ",")
	}
	return sign + groupDigits(whole.String(), " ") + " €"
}

// MinorUnits converts an amount to integer cents for the payment gateway.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Round(2).Shift(2).IntPart()
}

// FromMinorUnits is the inverse of MinorUnits.
func FromMinorUnits(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

func groupDigits(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
