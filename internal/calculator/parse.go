package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/iwvelando/equity-calculator/pkg/mathutil"
	"github.com/spf13/cast"
)

var (
	// ErrNotANumber is returned when raw input cannot be read as a finite number.
	ErrNotANumber = errors.New("not a number")

	// ErrIndexOutOfRange is returned when a scenario index is outside the list.
	ErrIndexOutOfRange = errors.New("scenario index out of range")
)

// ParseAmount converts raw form text into a number. Blank input is read as
// zero; anything that is not a finite number is rejected.
func ParseAmount(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}

	value, err := cast.ToFloat64E(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", raw, ErrNotANumber)
	}
	if !mathutil.IsFinite(value) {
		return 0, fmt.Errorf("%q: %w", raw, ErrNotANumber)
	}
	return value, nil
}

// ParseValue converts a decoded JSON or YAML value into a number. Strings go
// through ParseAmount; a missing value is read as zero.
func ParseValue(value interface{}) (float64, error) {
	switch v := value.(type) {
	case string:
		return ParseAmount(v)
	case json.Number:
		return ParseAmount(v.String())
	}

	parsed, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", value, ErrNotANumber)
	}
	if !mathutil.IsFinite(parsed) {
		return 0, fmt.Errorf("%v: %w", value, ErrNotANumber)
	}
	return parsed, nil
}
