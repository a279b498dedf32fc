package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/Luisfch1/CONTROL/internal/sheet"
)

// serialEpoch is the spreadsheet date-serial epoch (1900 system).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
}

// ParseDate extracts a calendar date from a cell. Recognizes date cells,
// ISO and DD/MM/YYYY / DD-MM-YYYY text, and numeric spreadsheet serials.
// Unrecognized values return false; callers skip the cell, never fail.
func ParseDate(c sheet.Cell) (time.Time, bool) {
	switch c.Kind {
	case sheet.CellDate:
		return dateOnly(c.Date), true
	case sheet.CellNumber:
		return serialToDate(c.Number)
	case sheet.CellText:
		return parseDateText(c.Text)
	default:
		return time.Time{}, false
	}
}

func parseDateText(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t.UTC()), true
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return serialToDate(serial)
	}
	return time.Time{}, false
}

// serialToDate converts a day count since the 1900-system epoch. Fractional
// day parts (times of day) are dropped.
func serialToDate(serial float64) (time.Time, bool) {
	days := int(serial)
	if days < 1 || days > 2958465 { // 9999-12-31
		return time.Time{}, false
	}
	return serialEpoch.AddDate(0, 0, days), true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
