// Package testutil provides common utility functions for testing.
package testutil

import (
	"math"

	"github.com/iwvelando/equity-calculator/internal/calculator"
	"github.com/iwvelando/equity-calculator/pkg/constants"
)

// FindLoss finds a loss row by label in the rows slice.
// Returns a pointer to the row if found, nil otherwise.
func FindLoss(rows []calculator.LossRow, label string) *calculator.LossRow {
	for i := range rows {
		if rows[i].Label == label {
			return &rows[i]
		}
	}
	return nil
}

// SnapshotAt returns the snapshot for a 1-based month, or nil when the month
// is not in the projection.
func SnapshotAt(snapshots []calculator.EquitySnapshot, month int) *calculator.EquitySnapshot {
	for i := range snapshots {
		if snapshots[i].Month == month {
			return &snapshots[i]
		}
	}
	return nil
}

// AlmostEqual reports whether two amounts agree within the currency tolerance.
func AlmostEqual(a, b float64) bool {
	return math.Abs(a-b) <= constants.CurrencyTolerance
}
