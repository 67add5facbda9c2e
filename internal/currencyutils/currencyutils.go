// Package currencyutils provides amount handling for SWIFT fields.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatSWIFTAmount rewrites a decimal amount in SWIFT comma notation.
//
// The transformation is lexical: the decimal point becomes a comma and
// ",00" is appended when there is no fractional part at all. No rounding or
// padding to the currency precision takes place, so "100.5" stays "100,5".
// An empty amount stays empty.
func FormatSWIFTAmount(amount string) string {
	if amount == "" {
		return ""
	}
	if strings.Contains(amount, ".") {
		return strings.Replace(amount, ".", ",", 1)
	}
	return amount + ",00"
}

// IsDecimal reports whether amount is a plain decimal number.
func IsDecimal(amount string) bool {
	if amount == "" {
		return false
	}
	_, err := decimal.NewFromString(amount)
	return err == nil
}

// ParseSWIFTAmount reads an amount in SWIFT comma notation back into a
// decimal value.
func ParseSWIFTAmount(amount string) (decimal.Decimal, error) {
	if amount == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(strings.Replace(amount, ",", ".", 1))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return d, nil
}
