// Package format renders amounts for people to read.
package format

import (
	"math"

	"github.com/iwvelando/equity-calculator/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
// Amounts that round to zero cents print as "$0.00".
func Currency(amount float64) string {
	if math.IsNaN(amount) {
		return "NaN"
	}
	amount = mathutil.Round(amount)
	if amount < 0 {
		return "-$" + NumericCurrency(-amount)
	}
	return "$" + NumericCurrency(amount)
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	if math.IsNaN(amount) {
		return "NaN"
	}
	return printer.Sprintf("%.2f", amount)
}

// Percent renders a crash percentage, dropping a trailing ".00".
func Percent(pct float64) string {
	if pct == math.Trunc(pct) && !math.IsInf(pct, 0) {
		return printer.Sprintf("%.0f%%", pct)
	}
	return printer.Sprintf("%.2f%%", pct)
}
