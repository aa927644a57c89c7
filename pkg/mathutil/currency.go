// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/equity-calculator/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Amounts that round to zero come back as positive zero so they never print as "-0.00".
func Round(val float64) float64 {
	rounded := math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
	if rounded == 0 {
		return 0
	}
	return rounded
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// IsFinite reports whether a value is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// Truthy mirrors numeric truthiness: zero and NaN are false, everything else is true.
func Truthy(val float64) bool {
	return val != 0 && !math.IsNaN(val)
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}
