package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a string amount into a decimal.Decimal. It tolerates
// currency symbols, thousands separators, and surrounding whitespace.
// Returns decimal.Zero when the string does not parse.
func ParseAmount(amountStr string) decimal.Decimal {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, "$", "")
	amount = strings.ReplaceAll(amount, "USD", "")
	amount = strings.ReplaceAll(amount, ",", "")
	amount = strings.ReplaceAll(amount, " ", "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}

// NormalizeAmount rounds an amount to exactly two decimal places, the
// invariant every returned monetary value must satisfy.
func NormalizeAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
