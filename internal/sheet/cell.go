// Package sheet models decoded spreadsheet content. A row is a fixed-width
// ordered sequence of tagged-union cells (number, text, date or empty);
// downstream parsers switch on the kind instead of probing dynamic types.
package sheet

import (
	"strconv"
	"strings"
	"time"
)

// CellKind tags the value held by a Cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellDate
)

// Cell is one decoded spreadsheet cell.
type Cell struct {
	Kind   CellKind  `json:"kind"`
	Text   string    `json:"text,omitempty"`
	Number float64   `json:"number,omitempty"`
	Date   time.Time `json:"date,omitempty"`
}

// Row is one decoded spreadsheet row.
type Row []Cell

// Empty returns the empty cell.
func Empty() Cell { return Cell{Kind: CellEmpty} }

// Text returns a text cell. Blank strings decode to the empty cell.
func Text(s string) Cell {
	s = strings.TrimSpace(s)
	if s == "" {
		return Empty()
	}
	return Cell{Kind: CellText, Text: s}
}

// Number returns a numeric cell.
func Number(v float64) Cell { return Cell{Kind: CellNumber, Number: v} }

// Date returns a date cell.
func Date(t time.Time) Cell { return Cell{Kind: CellDate, Date: t} }

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool { return c.Kind == CellEmpty }

// String renders the cell as text, used for keyword and header matching.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellDate:
		return c.Date.Format("2006-01-02")
	default:
		return ""
	}
}

// Cell returns the i-th cell, or the empty cell when out of range.
func (r Row) Cell(i int) Cell {
	if i < 0 || i >= len(r) {
		return Empty()
	}
	return r[i]
}

// IsBlank reports whether every cell of the row is empty.
func (r Row) IsBlank() bool {
	for _, c := range r {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// NonEmptyCount counts the cells holding a value.
func (r Row) NonEmptyCount() int {
	n := 0
	for _, c := range r {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}
