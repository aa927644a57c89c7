// Package palette assigns stable chart colours to scenario positions.
package palette

import (
	"fmt"

	"github.com/iwvelando/equity-calculator/pkg/constants"
)

// NegativeEquityColor is used for the deposit reference series.
const NegativeEquityColor = "#FF0000"

// Colors is the ordered series palette. Index i of a chart always gets
// Colors[i % len(Colors)].
var Colors = []string{
	"#3B82F6",
	"#F59E0B",
	"#10B981",
	"#8B5CF6",
	"#EC4899",
	"#06B6D4",
	"#84CC16",
	"#F97316",
	"#6366F1",
	"#14B8A6",
}

// Color returns the palette colour for the series at index.
func Color(index int) string {
	if index < 0 {
		index = -index
	}
	return Colors[index%len(Colors)]
}

// Series describes one line of the equity chart.
type Series struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Color     string `json:"color"`
	Reference bool   `json:"reference,omitempty"`
}

// ForScenarios returns one series per scenario position followed by the
// negative equity reference series.
func ForScenarios(count int) []Series {
	series := make([]Series, 0, count+1)
	for i := 0; i < count; i++ {
		series = append(series, Series{
			Key:   fmt.Sprintf("equity[%d]", i),
			Label: fmt.Sprintf("%s %d", constants.ScenarioLabelPrefix, i+1),
			Color: Color(i),
		})
	}
	series = append(series, Series{
		Key:       "negativeEquity",
		Label:     constants.NegativeEquityLabel,
		Color:     NegativeEquityColor,
		Reference: true,
	})
	return series
}
