// Package calculator holds the home equity calculator state and the pure
// functions that project equity under price-crash scenarios.
package calculator

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/iwvelando/equity-calculator/pkg/constants"
	"go.uber.org/zap"
)

// Scenario is one crash percentage in the scenario list. ID is assigned at
// creation and survives reordering; the display label is positional.
type Scenario struct {
	ID         string  `json:"id"`
	Percentage float64 `json:"percentage"`
}

// Inputs is a copy of the user-supplied values.
type Inputs struct {
	PurchasePrice    float64   `json:"purchasePrice" yaml:"purchasePrice"`
	Deposit          float64   `json:"deposit" yaml:"deposit"`
	CrashPercentages []float64 `json:"crashPercentages" yaml:"crashPercentages"`
}

// Calculator owns the inputs and the last computed projection. It is not safe
// for concurrent use.
type Calculator struct {
	logger        *zap.Logger
	purchasePrice float64
	deposit       float64
	scenarios     []Scenario
	projection    []EquitySnapshot
}

// New creates a calculator with zero inputs, no scenarios and no projection.
func New(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// FromInputs creates a calculator and applies the given inputs through the
// regular state operations.
func FromInputs(logger *zap.Logger, in Inputs) *Calculator {
	c := New(logger)
	c.SetPurchasePrice(in.PurchasePrice)
	c.SetDeposit(in.Deposit)
	for _, pct := range in.CrashPercentages {
		c.AddCrashPercentage()
		// The index was just appended, so it is always in range.
		_ = c.UpdateCrashPercentage(len(c.scenarios)-1, pct)
	}
	return c
}

// SetPurchasePrice replaces the purchase price.
func (c *Calculator) SetPurchasePrice(value float64) {
	c.purchasePrice = value
}

// SetDeposit replaces the deposit.
func (c *Calculator) SetDeposit(value float64) {
	c.deposit = value
}

// PurchasePrice returns the current purchase price.
func (c *Calculator) PurchasePrice() float64 {
	return c.purchasePrice
}

// Deposit returns the current deposit.
func (c *Calculator) Deposit() float64 {
	return c.deposit
}

// Len returns the number of crash scenarios.
func (c *Calculator) Len() int {
	return len(c.scenarios)
}

// UpdateCrashPercentage replaces the percentage at index.
func (c *Calculator) UpdateCrashPercentage(index int, value float64) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	c.scenarios[index].Percentage = value
	return nil
}

// AddCrashPercentage appends a scenario with the default percentage and
// returns it.
func (c *Calculator) AddCrashPercentage() Scenario {
	scenario := Scenario{
		ID:         uuid.NewString(),
		Percentage: constants.DefaultCrashPercentage,
	}
	c.scenarios = append(c.scenarios, scenario)
	c.logger.Debug("crash scenario added",
		zap.String("op", "calculator.AddCrashPercentage"),
		zap.String("id", scenario.ID),
		zap.Int("count", len(c.scenarios)),
	)
	return scenario
}

// RemoveCrashPercentage deletes the scenario at index. Later scenarios move
// down one position and take over the earlier labels.
func (c *Calculator) RemoveCrashPercentage(index int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	removed := c.scenarios[index]
	c.scenarios = append(c.scenarios[:index:index], c.scenarios[index+1:]...)
	c.logger.Debug("crash scenario removed",
		zap.String("op", "calculator.RemoveCrashPercentage"),
		zap.String("id", removed.ID),
		zap.Int("index", index),
		zap.Int("count", len(c.scenarios)),
	)
	return nil
}

// Scenarios returns a copy of the scenario list.
func (c *Calculator) Scenarios() []Scenario {
	out := make([]Scenario, len(c.scenarios))
	copy(out, c.scenarios)
	return out
}

// CrashPercentages returns a copy of the percentages in list order.
func (c *Calculator) CrashPercentages() []float64 {
	out := make([]float64, len(c.scenarios))
	for i, scenario := range c.scenarios {
		out[i] = scenario.Percentage
	}
	return out
}

// Inputs returns a copy of the current inputs.
func (c *Calculator) Inputs() Inputs {
	return Inputs{
		PurchasePrice:    c.purchasePrice,
		Deposit:          c.deposit,
		CrashPercentages: c.CrashPercentages(),
	}
}

// Compute runs the projection from the current inputs and replaces the stored
// projection with the result.
func (c *Calculator) Compute() []EquitySnapshot {
	c.projection = Project(c.purchasePrice, c.deposit, c.CrashPercentages())
	c.logger.Debug("equity projection computed",
		zap.String("op", "calculator.Compute"),
		zap.Float64("purchasePrice", c.purchasePrice),
		zap.Float64("deposit", c.deposit),
		zap.Int("scenarios", len(c.scenarios)),
		zap.Int("months", len(c.projection)),
	)
	return c.Projection()
}

// Computed reports whether Compute has been called.
func (c *Calculator) Computed() bool {
	return c.projection != nil
}

// Projection returns a copy of the last computed projection, or an empty
// slice before the first Compute.
func (c *Calculator) Projection() []EquitySnapshot {
	out := make([]EquitySnapshot, len(c.projection))
	for i, snapshot := range c.projection {
		equity := make([]float64, len(snapshot.Equity))
		copy(equity, snapshot.Equity)
		snapshot.Equity = equity
		out[i] = snapshot
	}
	return out
}

// LossRows summarizes the current inputs. It does not depend on Compute.
func (c *Calculator) LossRows() []LossRow {
	return Summarize(c.purchasePrice, c.CrashPercentages())
}

func (c *Calculator) checkIndex(index int) error {
	if index < 0 || index >= len(c.scenarios) {
		return fmt.Errorf("index %d with %d scenarios: %w", index, len(c.scenarios), ErrIndexOutOfRange)
	}
	return nil
}
