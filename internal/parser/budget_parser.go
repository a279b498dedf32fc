package parser

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Luisfch1/CONTROL/internal/model"
	"github.com/Luisfch1/CONTROL/internal/sheet"
)

// maxHeaderScanRows bounds the header search: budgets carry letterheads and
// party blocks before the table, but never this many rows of them.
const maxHeaderScanRows = 80

// ColumnKey identifies a semantic budget column.
type ColumnKey string

const (
	ColCode        ColumnKey = "code"
	ColDescription ColumnKey = "description"
	ColUnit        ColumnKey = "unit"
	ColQuantity    ColumnKey = "quantity"
	ColUnitPrice   ColumnKey = "unitPrice"
	ColTotal       ColumnKey = "total"
)

// budgetColumnOrder fixes iteration order over the semantic columns.
var budgetColumnOrder = []ColumnKey{ColCode, ColDescription, ColUnit, ColQuantity, ColUnitPrice, ColTotal}

// ColumnSynonyms maps each semantic column to the lower-cased substrings
// that identify it in a header cell. Injectable for vocabulary extension.
type ColumnSynonyms map[ColumnKey][]string

// DefaultBudgetColumns returns the Spanish header vocabulary plus the usual
// abbreviations.
func DefaultBudgetColumns() ColumnSynonyms {
	return ColumnSynonyms{
		ColCode:        {"item", "ítem", "código", "codigo", "cod."},
		ColDescription: {"descripción", "descripcion", "actividad", "concepto", "detalle"},
		ColUnit:        {"unidad", "und", "u.m"},
		ColQuantity:    {"cantidad", "cant."},
		ColUnitPrice:   {"valor unitario", "vr unitario", "vr. unitario", "precio unitario", "v. unitario", "vlr unitario"},
		ColTotal:       {"valor total", "vr total", "vr. total", "precio total", "total"},
	}
}

// BudgetParser turns decoded spreadsheet rows into typed budget items.
type BudgetParser struct {
	Vocab    Vocabulary
	Columns  ColumnSynonyms
	Settings *model.Settings
}

// NewBudgetParser returns a parser with the default vocabulary and the
// given settings.
func NewBudgetParser(settings *model.Settings) *BudgetParser {
	if settings == nil {
		settings = model.DefaultSettings()
	}
	return &BudgetParser{
		Vocab:    DefaultVocabulary(),
		Columns:  DefaultBudgetColumns(),
		Settings: settings,
	}
}

// columnMap records the resolved column index per semantic column, -1 when
// the header has no matching cell.
type columnMap map[ColumnKey]int

// Parse builds the budget item list from decoded rows. Malformed content
// degrades to warnings, never errors: the returned items (possibly empty)
// are always usable.
func (p *BudgetParser) Parse(rows []sheet.Row) ([]model.BudgetItem, []string) {
	var warnings []string

	headerIdx := p.findHeaderRow(rows)
	if headerIdx < 0 {
		warnings = append(warnings, "no se encontró la fila de encabezado del presupuesto")
		return []model.BudgetItem{}, warnings
	}

	cols, missing := p.mapColumns(rows[headerIdx])
	for _, key := range missing {
		warnings = append(warnings, fmt.Sprintf("columna %q no encontrada en el encabezado", key))
	}

	items := make([]model.BudgetItem, 0, len(rows)-headerIdx-1)
	excessPrecision := 0
	for _, row := range rows[headerIdx+1:] {
		if row.IsBlank() {
			continue
		}
		item, ok := p.buildItem(row, cols)
		if !ok {
			continue
		}
		if item.Type == model.ItemLeaf && fractionDigits(item.Quantity) > p.Settings.QuantityPrecision {
			excessPrecision++
		}
		items = append(items, item)
	}

	if p.Settings.WarnExcessPrecision && excessPrecision > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"%d cantidades tienen más de %d decimales", excessPrecision, p.Settings.QuantityPrecision))
	}

	return items, warnings
}

// findHeaderRow scores the first rows and picks the best: 3 points per cell
// containing a known column keyword plus the non-empty cell count capped at
// 12. Returns -1 when nothing scores above zero.
func (p *BudgetParser) findHeaderRow(rows []sheet.Row) int {
	keywords := p.allKeywords()

	limit := len(rows)
	if limit > maxHeaderScanRows {
		limit = maxHeaderScanRows
	}

	bestIdx, bestScore := -1, 0
	for i := 0; i < limit; i++ {
		hits := 0
		for _, c := range rows[i] {
			text := strings.ToLower(strings.TrimSpace(c.String()))
			if text != "" && containsAny(text, keywords) {
				hits++
			}
		}
		nonEmpty := rows[i].NonEmptyCount()
		if nonEmpty > 12 {
			nonEmpty = 12
		}
		score := 3*hits + nonEmpty
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	return bestIdx
}

func (p *BudgetParser) allKeywords() []string {
	var kws []string
	for _, key := range budgetColumnOrder {
		kws = append(kws, p.Columns[key]...)
	}
	return kws
}

// mapColumns resolves each semantic column to the first header cell
// containing one of its synonyms. Total is optional (derivable as
// quantity*price); any other missing column is reported.
func (p *BudgetParser) mapColumns(header sheet.Row) (columnMap, []ColumnKey) {
	cols := make(columnMap, len(budgetColumnOrder))
	var missing []ColumnKey

	for _, key := range budgetColumnOrder {
		cols[key] = -1
		for i, c := range header {
			text := strings.ToLower(strings.TrimSpace(c.String()))
			if text != "" && containsAny(text, p.Columns[key]) {
				cols[key] = i
				break
			}
		}
		if cols[key] < 0 && key != ColTotal {
			missing = append(missing, key)
		}
	}
	return cols, missing
}

func (p *BudgetParser) buildItem(row sheet.Row, cols columnMap) (model.BudgetItem, bool) {
	raw := RawRow{
		Code:        cellText(row, cols[ColCode]),
		Description: cellText(row, cols[ColDescription]),
		Unit:        cellText(row, cols[ColUnit]),
		Quantity:    cellNumber(row, cols[ColQuantity]),
		UnitPrice:   cellNumber(row, cols[ColUnitPrice]),
		Total:       cellNumber(row, cols[ColTotal]),
	}

	itemType := Classify(raw, p.Vocab)
	if itemType == model.ItemOther {
		return model.BudgetItem{}, false
	}

	// Subtotal labels often land in the code column of merged-cell rows.
	// Move the text where it belongs; cosmetic only.
	if itemType == model.ItemSubtotal && raw.Description == "" && raw.Code != "" {
		raw.Description = raw.Code
		raw.Code = ""
	}

	norm := model.NormalizeCode(raw.Code)
	depth := 0
	parent := ""
	if isHierarchicalCode(norm) {
		depth = model.CodeDepth(norm)
		parent = model.ParentCode(norm)
	}

	qty := floatOrZero(raw.Quantity)
	price := floatOrZero(raw.UnitPrice)
	total := qty * price
	if raw.Total != nil {
		total = *raw.Total
	}

	return model.BudgetItem{
		ID:          uuid.New().String(),
		Code:        strings.TrimSpace(raw.Code),
		NormCode:    norm,
		Description: strings.TrimSpace(raw.Description),
		Unit:        strings.TrimSpace(raw.Unit),
		Quantity:    qty,
		UnitPrice:   price,
		Total:       total,
		ParentCode:  parent,
		Depth:       depth,
		Type:        itemType,
	}, true
}

func cellText(row sheet.Row, idx int) string {
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(row.Cell(idx).String())
}

func cellNumber(row sheet.Row, idx int) *float64 {
	if idx < 0 {
		return nil
	}
	v, ok := ParseNumber(row.Cell(idx))
	if !ok {
		return nil
	}
	return &v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
