// Package format renders currency amounts for display.
package format

import (
	"strings"

	"github.com/Rhymond/go-money"
)

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	return money.NewFromFloat(amount, money.USD).Display()
}

// NumericCurrency returns a currency string without a currency symbol but
// with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	return strings.Replace(Currency(amount), "$", "", 1)
}
