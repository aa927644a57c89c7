// Package tui is a terminal front end for the equity calculator.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/iwvelando/equity-calculator/internal/calculator"
	"github.com/iwvelando/equity-calculator/pkg/constants"
	"github.com/iwvelando/equity-calculator/pkg/format"
	"github.com/iwvelando/equity-calculator/pkg/palette"
	"go.uber.org/zap"
)

const (
	focusPurchasePrice = iota
	focusDeposit
	focusFirstScenario
)

// Model is the bubbletea model wrapping a calculator. Every edit is parsed
// before it reaches the calculator; text that does not parse is kept in the
// field and reported, and the calculator keeps its last good value.
type Model struct {
	logger *zap.Logger
	calc   *calculator.Calculator
	keys   KeyMap

	purchasePrice textinput.Model
	deposit       textinput.Model
	scenarios     []textinput.Model
	fieldErrors   map[string]string
	focus         int
	width         int

	titleStyle   lipgloss.Style
	labelStyle   lipgloss.Style
	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
	helpStyle    lipgloss.Style
}

// New builds a model around calc. Existing scenarios in calc get input fields.
func New(logger *zap.Logger, calc *calculator.Calculator) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if calc == nil {
		calc = calculator.New(logger)
	}

	m := &Model{
		logger:      logger,
		calc:        calc,
		keys:        DefaultKeyMap(),
		fieldErrors: make(map[string]string),

		titleStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6")).MarginBottom(1),
		labelStyle:   lipgloss.NewStyle().Bold(true).Width(18),
		errorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")),
		warningStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB500")),
		helpStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7280")).MarginTop(1),
	}

	m.purchasePrice = newNumberInput(formatInput(calc.PurchasePrice()))
	m.deposit = newNumberInput(formatInput(calc.Deposit()))
	for _, pct := range calc.CrashPercentages() {
		m.scenarios = append(m.scenarios, newNumberInput(formatInput(pct)))
	}
	m.purchasePrice.Focus()

	return m
}

func newNumberInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "0"
	ti.Width = 16
	ti.SetValue(value)
	return ti
}

func formatInput(v float64) string {
	return fmt.Sprintf("%g", v)
}

// Calculator returns the wrapped calculator.
func (m *Model) Calculator() *calculator.Calculator {
	return m.calc
}

// Focus returns the index of the focused field: 0 purchase price, 1 deposit,
// 2+ scenarios.
func (m *Model) Focus() int {
	return m.focus
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(msg, m.keys.Add):
			m.addScenario()
			return m, nil
		case key.Matches(msg, m.keys.Remove):
			m.removeFocusedScenario()
			return m, nil
		case key.Matches(msg, m.keys.Compute):
			m.calc.Compute()
			return m, nil
		}
	}

	field := m.focusedInput()
	before := field.Value()
	var cmd tea.Cmd
	*field, cmd = field.Update(msg)
	if field.Value() != before {
		m.applyFocused()
	}
	return m, cmd
}

func (m *Model) fieldCount() int {
	return focusFirstScenario + len(m.scenarios)
}

func (m *Model) focusedInput() *textinput.Model {
	switch m.focus {
	case focusPurchasePrice:
		return &m.purchasePrice
	case focusDeposit:
		return &m.deposit
	default:
		return &m.scenarios[m.focus-focusFirstScenario]
	}
}

func (m *Model) setFocus(focus int) {
	count := m.fieldCount()
	focus = ((focus % count) + count) % count

	m.focusedInput().Blur()
	m.focus = focus
	m.focusedInput().Focus()
}

func (m *Model) addScenario() {
	scenario := m.calc.AddCrashPercentage()
	m.scenarios = append(m.scenarios, newNumberInput(formatInput(scenario.Percentage)))
	m.setFocus(m.fieldCount() - 1)
}

func (m *Model) removeFocusedScenario() {
	index := m.focus - focusFirstScenario
	if index < 0 {
		return
	}
	removedKey := m.scenarioKey(index)
	if err := m.calc.RemoveCrashPercentage(index); err != nil {
		m.logger.Warn("failed to remove crash scenario",
			zap.String("op", "tui.removeFocusedScenario"),
			zap.Error(err),
		)
		return
	}

	m.scenarios = append(m.scenarios[:index:index], m.scenarios[index+1:]...)
	delete(m.fieldErrors, removedKey)

	focus := m.focus
	if focus >= m.fieldCount() {
		focus = m.fieldCount() - 1
	}
	m.focus = focus
	m.focusedInput().Focus()
}

// scenarioKey returns the error key for the scenario at index. Scenario IDs
// survive removals, so an error stays with the field it was reported for.
func (m *Model) scenarioKey(index int) string {
	return m.calc.Scenarios()[index].ID
}

func (m *Model) applyFocused() {
	var name string
	switch m.focus {
	case focusPurchasePrice:
		name = "purchasePrice"
	case focusDeposit:
		name = "deposit"
	default:
		name = m.scenarioKey(m.focus - focusFirstScenario)
	}

	value, err := calculator.ParseAmount(m.focusedInput().Value())
	if err != nil {
		m.fieldErrors[name] = err.Error()
		return
	}
	delete(m.fieldErrors, name)

	switch m.focus {
	case focusPurchasePrice:
		m.calc.SetPurchasePrice(value)
	case focusDeposit:
		m.calc.SetDeposit(value)
	default:
		if err := m.calc.UpdateCrashPercentage(m.focus-focusFirstScenario, value); err != nil {
			m.fieldErrors[name] = err.Error()
		}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.titleStyle.Render("House Equity Calculator"))
	b.WriteString("\n")
	b.WriteString(m.fieldRow("Purchase Price:", m.purchasePrice, "purchasePrice"))
	b.WriteString(m.fieldRow("Deposit:", m.deposit, "deposit"))

	b.WriteString("\nPrice Crash Percentages:\n")
	if len(m.scenarios) == 0 {
		b.WriteString(m.helpStyle.Render("  none, press ctrl+a to add one"))
		b.WriteString("\n")
	}
	for i, input := range m.scenarios {
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Color(i))).Render(calculator.Label(i))
		b.WriteString(m.fieldRow(label, input, m.scenarioKey(i)))
	}

	b.WriteString("\nTotal Equity Loss:\n")
	b.WriteString(m.lossTable())
	b.WriteString("\n")

	b.WriteString("\nMonthly Equity Reduction:\n")
	b.WriteString(m.projectionView())

	b.WriteString(m.helpView())
	return b.String()
}

func (m *Model) fieldRow(label string, input textinput.Model, name string) string {
	row := m.labelStyle.Render(label) + " " + input.View()
	if msg, ok := m.fieldErrors[name]; ok {
		row += " " + m.errorStyle.Render(msg)
	}
	return row + "\n"
}

func (m *Model) lossTable() string {
	rows := m.calc.LossRows()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Scenario", "Total Equity Loss")
	for _, row := range rows {
		t.Row(row.Label, format.Currency(row.TotalEquityLoss))
	}
	return t.String()
}

func (m *Model) projectionView() string {
	if !m.calc.Computed() {
		return m.helpStyle.Render("  press enter to calculate") + "\n"
	}

	snapshots := m.calc.Projection()
	count := 0
	if len(snapshots) > 0 {
		count = len(snapshots[0].Equity)
	}

	series := make([][]float64, count)
	for i := range series {
		series[i] = make([]float64, len(snapshots))
		for j, snapshot := range snapshots {
			series[i][j] = snapshot.Equity[i]
		}
	}
	min, max := bounds(series...)

	var b strings.Builder
	for i, values := range series {
		color := lipgloss.Color(palette.Color(i))
		line := lipgloss.NewStyle().Foreground(color).Render(sparkline(values, min, max))
		last := values[len(values)-1]
		b.WriteString(fmt.Sprintf("  %-8s %s %s\n", calculator.Label(i), line, format.Currency(last)))
	}

	if len(snapshots) > 0 && snapshots[0].HasNegativeEquity {
		b.WriteString(m.warningStyle.Render(fmt.Sprintf("  %s reference at %s over %d months",
			constants.NegativeEquityLabel, format.Currency(snapshots[0].NegativeEquity), constants.HorizonMonths)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) helpView() string {
	parts := make([]string, 0, len(m.keys.Help()))
	for _, binding := range m.keys.Help() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return m.helpStyle.Render(strings.Join(parts, " • "))
}
