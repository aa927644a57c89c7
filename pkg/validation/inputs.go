package validation

import (
	"fmt"
	"math"

	"github.com/iwvelando/equity-calculator/pkg/mathutil"
)

// ValidateInputs returns warnings for calculator inputs that compute but are
// unlikely to be what the user meant. It never rejects anything.
func ValidateInputs(purchasePrice, deposit float64, crashPercentages []float64) []string {
	var warnings []string

	if math.IsNaN(purchasePrice) {
		warnings = append(warnings, "Purchase price is not a number")
	} else if purchasePrice < 0 {
		warnings = append(warnings, fmt.Sprintf("Purchase price is negative (%.2f)", purchasePrice))
	}

	if math.IsNaN(deposit) {
		warnings = append(warnings, "Deposit is not a number")
	} else if deposit < 0 {
		warnings = append(warnings, fmt.Sprintf("Deposit is negative (%.2f)", deposit))
	} else if deposit > purchasePrice && !mathutil.IsZero(deposit-purchasePrice) {
		warnings = append(warnings, fmt.Sprintf("Deposit exceeds purchase price (%.2f > %.2f)", deposit, purchasePrice))
	}

	for i, pct := range crashPercentages {
		switch {
		case math.IsNaN(pct):
			warnings = append(warnings, fmt.Sprintf("Crash %d percentage is not a number", i+1))
		case pct < 0:
			warnings = append(warnings, fmt.Sprintf("Crash %d percentage is negative (%.2f%%) and models a price rise", i+1, pct))
		case pct > 100:
			warnings = append(warnings, fmt.Sprintf("Crash %d percentage exceeds 100%% (%.2f%%)", i+1, pct))
		}
	}

	return warnings
}
