package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/iwvelando/equity-calculator/pkg/constants"
	"go.uber.org/zap"
)

func newTestCalculator(t *testing.T, price, deposit float64, pcts ...float64) *Calculator {
	t.Helper()
	return FromInputs(zap.NewNop(), Inputs{
		PurchasePrice:    price,
		Deposit:          deposit,
		CrashPercentages: pcts,
	})
}

func TestNewCalculatorDefaults(t *testing.T) {
	c := New(nil)

	if c.PurchasePrice() != 0 || c.Deposit() != 0 {
		t.Fatalf("expected zero inputs, got price=%v deposit=%v", c.PurchasePrice(), c.Deposit())
	}
	if c.Len() != 0 {
		t.Fatalf("expected no scenarios, got %d", c.Len())
	}
	if c.Computed() {
		t.Fatal("expected projection to be uncomputed")
	}
	if got := c.Projection(); len(got) != 0 {
		t.Fatalf("expected empty projection, got %d snapshots", len(got))
	}
	if got := c.LossRows(); len(got) != 0 {
		t.Fatalf("expected no loss rows, got %d", len(got))
	}
}

func TestSettersPassValuesThrough(t *testing.T) {
	c := New(zap.NewNop())

	c.SetPurchasePrice(-5)
	c.SetDeposit(math.NaN())

	if c.PurchasePrice() != -5 {
		t.Errorf("expected purchase price -5, got %v", c.PurchasePrice())
	}
	if !math.IsNaN(c.Deposit()) {
		t.Errorf("expected NaN deposit, got %v", c.Deposit())
	}
}

func TestAddCrashPercentage(t *testing.T) {
	c := newTestCalculator(t, 300000, 60000, 10)

	scenario := c.AddCrashPercentage()

	if c.Len() != 2 {
		t.Fatalf("expected 2 scenarios, got %d", c.Len())
	}
	if scenario.Percentage != 0 {
		t.Errorf("expected new scenario at 0%%, got %v", scenario.Percentage)
	}
	if scenario.ID == "" {
		t.Error("expected new scenario to carry an id")
	}
	pcts := c.CrashPercentages()
	if pcts[0] != 10 || pcts[1] != 0 {
		t.Errorf("expected [10 0], got %v", pcts)
	}

	for _, snapshot := range c.Compute() {
		if snapshot.Equity[1] != 300000 {
			t.Fatalf("month %d: expected 0%% scenario equity 300000, got %v", snapshot.Month, snapshot.Equity[1])
		}
	}
}

func TestAddCrashPercentageAssignsDistinctIDs(t *testing.T) {
	c := New(nil)
	first := c.AddCrashPercentage()
	second := c.AddCrashPercentage()

	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, both were %s", first.ID)
	}
}

func TestUpdateCrashPercentage(t *testing.T) {
	c := newTestCalculator(t, 300000, 60000, 10, 20, 30)

	if err := c.UpdateCrashPercentage(1, 25); err != nil {
		t.Fatalf("UpdateCrashPercentage() error = %v", err)
	}

	got := c.CrashPercentages()
	want := []float64{10, 25, 30}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRemoveCrashPercentageShiftsLabels(t *testing.T) {
	c := newTestCalculator(t, 300000, 60000, 10, 20, 30)
	before := c.Scenarios()

	if err := c.RemoveCrashPercentage(0); err != nil {
		t.Fatalf("RemoveCrashPercentage() error = %v", err)
	}

	after := c.Scenarios()
	if len(after) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(after))
	}
	if after[0].ID != before[1].ID || after[0].Percentage != 20 {
		t.Errorf("expected former index 1 at index 0, got %+v", after[0])
	}

	rows := c.LossRows()
	if rows[0].Label != "Crash 1" || rows[0].TotalEquityLoss != TotalEquityLoss(300000, 20) {
		t.Errorf("expected Crash 1 to describe the 20%% scenario, got %+v", rows[0])
	}
	if rows[1].Label != "Crash 2" || rows[1].TotalEquityLoss != TotalEquityLoss(300000, 30) {
		t.Errorf("expected Crash 2 to describe the 30%% scenario, got %+v", rows[1])
	}
}

func TestRemoveCrashPercentageMiddleAndLast(t *testing.T) {
	c := newTestCalculator(t, 100, 0, 1, 2, 3, 4)

	if err := c.RemoveCrashPercentage(1); err != nil {
		t.Fatalf("RemoveCrashPercentage(1) error = %v", err)
	}
	if err := c.RemoveCrashPercentage(2); err != nil {
		t.Fatalf("RemoveCrashPercentage(2) error = %v", err)
	}

	got := c.CrashPercentages()
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("expected [1 3], got %v", got)
	}
}

func TestIndexOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"Negative index", -1},
		{"Index equal to length", 2},
		{"Index past length", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCalculator(t, 300000, 60000, 10, 20)

			if err := c.UpdateCrashPercentage(tt.index, 50); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("UpdateCrashPercentage(%d) error = %v, expected ErrIndexOutOfRange", tt.index, err)
			}
			if err := c.RemoveCrashPercentage(tt.index); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("RemoveCrashPercentage(%d) error = %v, expected ErrIndexOutOfRange", tt.index, err)
			}

			got := c.CrashPercentages()
			if len(got) != 2 || got[0] != 10 || got[1] != 20 {
				t.Errorf("expected state to be untouched, got %v", got)
			}
		})
	}
}

func TestIndexOutOfRangeOnEmptyList(t *testing.T) {
	c := New(nil)
	if err := c.RemoveCrashPercentage(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestComputeReplacesProjection(t *testing.T) {
	c := newTestCalculator(t, 300000, 60000, 10)

	first := c.Compute()
	if !c.Computed() {
		t.Fatal("expected projection to be computed")
	}
	if len(first) != constants.HorizonMonths {
		t.Fatalf("expected %d snapshots, got %d", constants.HorizonMonths, len(first))
	}

	c.AddCrashPercentage()
	if got := c.Projection(); len(got[0].Equity) != 1 {
		t.Fatalf("expected stored projection to wait for Compute, got %d series", len(got[0].Equity))
	}

	second := c.Compute()
	if len(second[0].Equity) != 2 {
		t.Fatalf("expected recomputed projection with 2 series, got %d", len(second[0].Equity))
	}
}

func TestLossRowsIgnoreComputeTrigger(t *testing.T) {
	c := newTestCalculator(t, 300000, 60000, 10, 20)

	rows := c.LossRows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows before compute, got %d", len(rows))
	}
	if c.Computed() {
		t.Fatal("LossRows must not trigger a projection")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := newTestCalculator(t, 300000, 60000, 10)
	c.Compute()

	pcts := c.CrashPercentages()
	pcts[0] = 99
	scenarios := c.Scenarios()
	scenarios[0].Percentage = 99
	projection := c.Projection()
	projection[0].Equity[0] = -1

	if c.CrashPercentages()[0] != 10 {
		t.Error("mutating CrashPercentages() result changed calculator state")
	}
	if c.Projection()[0].Equity[0] == -1 {
		t.Error("mutating Projection() result changed calculator state")
	}
}

func TestInputsRoundTrip(t *testing.T) {
	in := Inputs{PurchasePrice: 250000, Deposit: 50000, CrashPercentages: []float64{5, 15}}
	c := FromInputs(nil, in)

	got := c.Inputs()
	if got.PurchasePrice != in.PurchasePrice || got.Deposit != in.Deposit {
		t.Fatalf("expected %+v, got %+v", in, got)
	}
	if len(got.CrashPercentages) != 2 || got.CrashPercentages[1] != 15 {
		t.Fatalf("expected percentages %v, got %v", in.CrashPercentages, got.CrashPercentages)
	}
}
