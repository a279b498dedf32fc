package sheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Workbook wraps a loaded binary workbook. It is the only place the
// application touches excelize; everything downstream works on []Row.
type Workbook struct {
	file *excelize.File
}

// SheetInfo describes one sheet of a workbook.
type SheetInfo struct {
	Name     string `json:"name"`
	RowCount int    `json:"rowCount"`
}

// OpenWorkbook decodes a binary workbook from the reader.
func OpenWorkbook(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	return &Workbook{file: f}, nil
}

// Sheets lists the workbook's sheets with their row counts.
func (w *Workbook) Sheets() []SheetInfo {
	names := w.file.GetSheetList()
	result := make([]SheetInfo, 0, len(names))
	for _, name := range names {
		rows, err := w.file.GetRows(name)
		if err != nil {
			continue
		}
		result = append(result, SheetInfo{Name: name, RowCount: len(rows)})
	}
	return result
}

// Rows decodes one sheet into tagged-union rows.
func (w *Workbook) Rows(sheetName string) ([]Row, error) {
	raw, err := w.file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	rows := make([]Row, 0, len(raw))
	for _, r := range raw {
		row := make(Row, len(r))
		for i, value := range r {
			row[i] = decodeCell(value)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Close releases the underlying workbook.
func (w *Workbook) Close() error {
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}

var decodeDateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
}

// decodeCell tags one formatted cell value. Plain numerics become number
// cells; values matching a known date layout become date cells; everything
// else stays text. Values with separator ambiguity ("1.234,56") stay text
// for the tolerant numeric parser to resolve.
func decodeCell(value string) Cell {
	value = strings.TrimSpace(value)
	if value == "" {
		return Empty()
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return Number(f)
	}
	for _, layout := range decodeDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Date(t.UTC())
		}
	}
	return Text(value)
}
