// Package output provides utilities for formatting and displaying equity projections.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/iwvelando/equity-calculator/internal/calculator"
	"github.com/iwvelando/equity-calculator/pkg/constants"
	"github.com/iwvelando/equity-calculator/pkg/format"
	"github.com/iwvelando/equity-calculator/pkg/mathutil"
)

// Report bundles everything a calculator run produces.
type Report struct {
	Inputs    calculator.Inputs           `json:"inputs"`
	Snapshots []calculator.EquitySnapshot `json:"snapshots"`
	Losses    []calculator.LossRow        `json:"losses"`
	Warnings  []string                    `json:"warnings,omitempty"`
}

// PrettyFormat writes a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, report Report) {
	_, _ = fmt.Fprintf(w, "Purchase price: %s\n", format.Currency(report.Inputs.PurchasePrice))
	_, _ = fmt.Fprintf(w, "Deposit:        %s\n\n", format.Currency(report.Inputs.Deposit))

	_, _ = fmt.Fprintf(w, "--- Monthly equity ---\n")
	header := []string{"Month"}
	right := []bool{true}
	for i, pct := range report.Inputs.CrashPercentages {
		header = append(header, fmt.Sprintf("%s (%s)", calculator.Label(i), format.Percent(pct)))
		right = append(right, true)
	}
	header = append(header, constants.NegativeEquityLabel)
	right = append(right, false)

	rows := make([][]string, 0, len(report.Snapshots))
	for _, snapshot := range report.Snapshots {
		cells := []string{strconv.Itoa(snapshot.Month)}
		for _, equity := range snapshot.Equity {
			cells = append(cells, format.Currency(equity))
		}
		cells = append(cells, strconv.FormatBool(snapshot.HasNegativeEquity))
		rows = append(rows, cells)
	}
	writeTable(w, header, right, rows)

	_, _ = fmt.Fprintf(w, "\n--- Total equity loss ---\n")
	lossRows := make([][]string, 0, len(report.Losses))
	for _, row := range report.Losses {
		lossRows = append(lossRows, []string{row.Label, format.Currency(row.TotalEquityLoss)})
	}
	writeTable(w, []string{"Scenario", "Total Equity Loss"}, []bool{false, true}, lossRows)

	for _, warning := range report.Warnings {
		_, _ = fmt.Fprintf(w, "warning: %s\n", warning)
	}
}

// writeTable pads every column to its widest cell and separates columns with
// " | ". Columns flagged in right are right-aligned.
func writeTable(w io.Writer, header []string, right []bool, rows [][]string) {
	widths := make([]int, len(header))
	for i, cell := range header {
		widths[i] = utf8.RuneCountInString(cell)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(cell))
			}
		}
	}

	line := func(cells []string) {
		padded := make([]string, len(cells))
		for i, cell := range cells {
			gap := strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
			if right[i] {
				padded[i] = gap + cell
			} else {
				padded[i] = cell + gap
			}
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(strings.Join(padded, " | "), " "))
	}

	rule := make([]string, len(header))
	for i, width := range widths {
		rule[i] = strings.Repeat("_", width)
	}

	line(header)
	line(rule)
	for _, row := range rows {
		line(row)
	}
}

// CsvFormat writes the monthly projection in comma-separated value format.
func CsvFormat(w io.Writer, report Report) error {
	writer := csv.NewWriter(w)

	header := []string{"month"}
	for i := range report.Inputs.CrashPercentages {
		header = append(header, fmt.Sprintf("equity (%s)", calculator.Label(i)))
	}
	header = append(header, "hasNegativeEquity", "negativeEquity")
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, snapshot := range report.Snapshots {
		record := []string{strconv.Itoa(snapshot.Month)}
		for _, equity := range snapshot.Equity {
			record = append(record, csvAmount(equity))
		}
		record = append(record,
			strconv.FormatBool(snapshot.HasNegativeEquity),
			csvAmount(snapshot.NegativeEquity),
		)
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// csvAmount renders an amount rounded to cents.
func csvAmount(amount float64) string {
	return strconv.FormatFloat(mathutil.Round(amount), 'f', 2, 64)
}

// CsvString returns the CSV rendering of the report, or an empty string if it
// could not be written.
func CsvString(report Report) string {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, report); err != nil {
		return ""
	}
	return buf.String()
}

// JSONFormat writes the report as indented JSON.
func JSONFormat(w io.Writer, report Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
