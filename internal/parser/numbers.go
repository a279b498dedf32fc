package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/Luisfch1/CONTROL/internal/sheet"
)

// ParseNumber extracts a finite numeric value from a cell. Text values are
// parsed tolerant of thousands-separator ambiguity: with both "." and ","
// present the dot is the thousands separator and the comma the decimal one;
// a lone comma is a decimal separator. Never panics, never errors: the
// second result is false for anything unparseable.
func ParseNumber(c sheet.Cell) (float64, bool) {
	switch c.Kind {
	case sheet.CellNumber:
		if math.IsNaN(c.Number) || math.IsInf(c.Number, 0) {
			return 0, false
		}
		return c.Number, true
	case sheet.CellText:
		return parseNumericText(c.Text)
	default:
		return 0, false
	}
}

func parseNumericText(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")
	switch {
	case hasDot && hasComma:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// fractionDigits counts the decimal digits of the shortest representation
// of v, used for the excess-precision warning.
func fractionDigits(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	idx := strings.IndexByte(s, '.')
	if idx < 0 {
		return 0
	}
	return len(s) - idx - 1
}
