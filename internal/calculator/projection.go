package calculator

import (
	"fmt"

	"github.com/iwvelando/equity-calculator/pkg/constants"
	"github.com/iwvelando/equity-calculator/pkg/mathutil"
)

// EquitySnapshot holds the projected equity of every scenario for one month.
type EquitySnapshot struct {
	Month  int       `json:"month"`
	Equity []float64 `json:"equity"`
	// HasNegativeEquity is true when there is at least one scenario and the
	// purchase price differs from the deposit. It does not inspect Equity.
	HasNegativeEquity bool `json:"hasNegativeEquity"`
	// NegativeEquity is the deposit, plotted as a flat reference line.
	NegativeEquity float64 `json:"negativeEquity"`
}

// LossRow is one line of the total equity loss summary.
type LossRow struct {
	Label string `json:"label"`
	// TotalEquityLoss is P - P*pct/100, which is the value remaining after
	// the crash rather than the amount lost.
	TotalEquityLoss float64 `json:"totalEquityLoss"`
}

// Label returns the positional display label for the scenario at index.
func Label(index int) string {
	return fmt.Sprintf("%s %d", constants.ScenarioLabelPrefix, index+1)
}

// MonthlyEquity returns the equity after month months of a crash of pct
// percent spread linearly across the horizon.
func MonthlyEquity(purchasePrice, pct float64, month int) float64 {
	months := float64(constants.HorizonMonths)
	return purchasePrice - float64(month)*(purchasePrice*(pct/constants.PercentageMultiplier/months))
}

// TotalEquityLoss returns the end-of-horizon value of a crash of pct percent.
func TotalEquityLoss(purchasePrice, pct float64) float64 {
	return purchasePrice - mathutil.ApplyPercentage(purchasePrice, pct)
}

// Project computes the equity of every crash scenario for each month of the
// horizon. The result always has constants.HorizonMonths entries.
func Project(purchasePrice, deposit float64, percentages []float64) []EquitySnapshot {
	snapshots := make([]EquitySnapshot, constants.HorizonMonths)
	negative := len(percentages) > 0 && mathutil.Truthy(purchasePrice-deposit)

	for i := range snapshots {
		month := i + 1
		equity := make([]float64, len(percentages))
		for j, pct := range percentages {
			equity[j] = MonthlyEquity(purchasePrice, pct, month)
		}
		snapshots[i] = EquitySnapshot{
			Month:             month,
			Equity:            equity,
			HasNegativeEquity: negative,
			NegativeEquity:    deposit,
		}
	}

	return snapshots
}

// Summarize computes the total equity loss row for every crash scenario in
// list order.
func Summarize(purchasePrice float64, percentages []float64) []LossRow {
	rows := make([]LossRow, 0, len(percentages))
	for i, pct := range percentages {
		rows = append(rows, LossRow{
			Label:           Label(i),
			TotalEquityLoss: TotalEquityLoss(purchasePrice, pct),
		})
	}
	return rows
}
