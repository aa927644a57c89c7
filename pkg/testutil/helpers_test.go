package testutil

import (
	"testing"

	"github.com/iwvelando/equity-calculator/internal/calculator"
)

func TestFindLoss(t *testing.T) {
	rows := calculator.Summarize(300000, []float64{10, 20, 50})

	tests := []struct {
		name         string
		label        string
		expectFound  bool
		expectedLoss float64
	}{
		{
			name:         "Find first crash",
			label:        "Crash 1",
			expectFound:  true,
			expectedLoss: 270000,
		},
		{
			name:         "Find last crash",
			label:        "Crash 3",
			expectFound:  true,
			expectedLoss: 150000,
		},
		{
			name:        "Search for non-existent label",
			label:       "Crash 4",
			expectFound: false,
		},
		{
			name:        "Search with empty label",
			label:       "",
			expectFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := FindLoss(rows, tt.label)

			if tt.expectFound {
				if row == nil {
					t.Fatalf("expected to find %q, got nil", tt.label)
				}
				if !AlmostEqual(row.TotalEquityLoss, tt.expectedLoss) {
					t.Errorf("expected loss %.2f, got %.2f", tt.expectedLoss, row.TotalEquityLoss)
				}
			} else if row != nil {
				t.Errorf("expected nil for %q, got %+v", tt.label, row)
			}
		})
	}
}

func TestFindLossReturnsPointerIntoSlice(t *testing.T) {
	rows := calculator.Summarize(1000, []float64{10})

	row := FindLoss(rows, "Crash 1")
	if row == nil {
		t.Fatal("expected to find Crash 1")
	}
	row.TotalEquityLoss = 1

	if rows[0].TotalEquityLoss != 1 {
		t.Error("expected pointer to reference the original slice element")
	}
}

func TestSnapshotAt(t *testing.T) {
	snapshots := calculator.Project(240000, 0, []float64{10})

	tests := []struct {
		name        string
		month       int
		expectFound bool
		expected    float64
	}{
		{"First month", 1, true, 239000},
		{"Midpoint", 12, true, 228000},
		{"Last month", 24, true, 216000},
		{"Month zero", 0, false, 0},
		{"Past the horizon", 25, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := SnapshotAt(snapshots, tt.month)
			if !tt.expectFound {
				if snapshot != nil {
					t.Errorf("expected nil for month %d, got %+v", tt.month, snapshot)
				}
				return
			}
			if snapshot == nil {
				t.Fatalf("expected snapshot for month %d", tt.month)
			}
			if !AlmostEqual(snapshot.Equity[0], tt.expected) {
				t.Errorf("expected equity %.2f, got %.2f", tt.expected, snapshot.Equity[0])
			}
		})
	}
}

func TestAlmostEqual(t *testing.T) {
	if !AlmostEqual(100, 100.005) {
		t.Error("expected half a cent to be within tolerance")
	}
	if AlmostEqual(100, 100.02) {
		t.Error("expected two cents to be outside tolerance")
	}
}
