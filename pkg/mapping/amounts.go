package mapping

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a decimal string like "120.50" into minor units
// (cents). Amounts with more than two decimal places are rejected rather
// than silently rounded.
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	minor := d.Shift(2)
	if !minor.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}

	return minor.IntPart(), nil
}

// FormatAmount renders minor units as a decimal string with two places.
func FormatAmount(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}
