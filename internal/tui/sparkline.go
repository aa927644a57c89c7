package tui

import (
	"math"
	"strings"
)

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// sparkline renders values as block characters scaled to [min, max] so that
// several scenarios drawn with the same bounds stay comparable.
func sparkline(values []float64, min, max float64) string {
	if len(values) == 0 {
		return ""
	}

	var b strings.Builder
	for _, v := range values {
		if math.IsNaN(v) || math.IsNaN(min) || math.IsNaN(max) {
			b.WriteRune(' ')
			continue
		}
		if max == min {
			b.WriteRune(sparkChars[len(sparkChars)/2])
			continue
		}
		idx := int(math.Round((v - min) / (max - min) * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteRune(sparkChars[idx])
	}
	return b.String()
}

// bounds returns the smallest and largest non-NaN value across all series.
func bounds(series ...[]float64) (float64, float64) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, values := range series {
		for _, v := range values {
			if math.IsNaN(v) {
				continue
			}
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
	}
	if math.IsInf(min, 1) {
		return 0, 0
	}
	return min, max
}
