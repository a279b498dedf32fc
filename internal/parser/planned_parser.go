package parser

import (
	"sort"
	"strings"
	"time"

	"github.com/Luisfch1/CONTROL/internal/model"
	"github.com/Luisfch1/CONTROL/internal/sheet"
)

// minWideDateColumns is the minimum number of date headers required to
// accept a sheet as a wide planned curve.
const minWideDateColumns = 3

// plannedDateSynonyms and plannedCostSynonyms identify the two columns of a
// long-shape planned curve.
var (
	plannedDateSynonyms = []string{"fecha", "date"}
	plannedCostSynonyms = []string{"costo", "cost", "valor"}
)

// ParsePlannedCurve builds the cumulative planned-cost curve from decoded
// rows. Two sheet shapes are recognized, in order:
//
//   - long: a header row with a date column and a cost column, one
//     (date, cost) pair per data row;
//   - wide: header cells are themselves dates, every data cell under a date
//     column is summed into that date.
//
// Raw costs are summed per unique date, dates sorted ascending, and the
// curve is the running cumulative sum. Unparseable cells are skipped.
func ParsePlannedCurve(rows []sheet.Row) ([]model.PlannedCurvePoint, []string) {
	var warnings []string

	if points, ok := parseLongPlanned(rows); ok {
		return accumulate(points), warnings
	}

	points, ok, warn := parseWidePlanned(rows)
	if !ok {
		if warn != "" {
			warnings = append(warnings, warn)
		}
		return []model.PlannedCurvePoint{}, warnings
	}
	return accumulate(points), warnings
}

type rawPoint struct {
	date time.Time
	cost float64
}

// parseLongPlanned recognizes the long shape: scan for a header row holding
// both a date and a cost column, then collect one pair per row.
func parseLongPlanned(rows []sheet.Row) ([]rawPoint, bool) {
	limit := len(rows)
	if limit > maxHeaderScanRows {
		limit = maxHeaderScanRows
	}

	for i := 0; i < limit; i++ {
		dateCol, costCol := -1, -1
		for j, c := range rows[i] {
			text := strings.ToLower(strings.TrimSpace(c.String()))
			if text == "" {
				continue
			}
			if dateCol < 0 && containsAny(text, plannedDateSynonyms) {
				dateCol = j
				continue
			}
			if costCol < 0 && containsAny(text, plannedCostSynonyms) {
				costCol = j
			}
		}
		if dateCol < 0 || costCol < 0 {
			continue
		}

		var points []rawPoint
		for _, row := range rows[i+1:] {
			date, okDate := ParseDate(row.Cell(dateCol))
			cost, okCost := ParseNumber(row.Cell(costCol))
			if !okDate || !okCost {
				continue
			}
			points = append(points, rawPoint{date: date, cost: cost})
		}
		return points, true
	}
	return nil, false
}

// parseWidePlanned recognizes the wide shape: the first non-blank row's
// cells are dates, every data cell under a date column is one cost.
func parseWidePlanned(rows []sheet.Row) ([]rawPoint, bool, string) {
	headerIdx := -1
	for i, row := range rows {
		if !row.IsBlank() {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, false, "no se encontraron columnas de fecha en la curva programada"
	}

	header := rows[headerIdx]
	dateByCol := make(map[int]time.Time)
	for j, c := range header {
		if date, ok := ParseDate(c); ok {
			dateByCol[j] = date
		}
	}
	if len(dateByCol) < minWideDateColumns {
		return nil, false, "no se encontraron columnas de fecha en la curva programada"
	}

	var points []rawPoint
	for _, row := range rows[headerIdx+1:] {
		for j, date := range dateByCol {
			cost, ok := ParseNumber(row.Cell(j))
			if !ok {
				continue
			}
			points = append(points, rawPoint{date: date, cost: cost})
		}
	}
	return points, true, ""
}

// accumulate sums costs per unique date and produces the running cumulative
// curve in ascending date order.
func accumulate(points []rawPoint) []model.PlannedCurvePoint {
	sums := make(map[time.Time]float64)
	for _, pt := range points {
		sums[pt.date] += pt.cost
	}

	dates := make([]time.Time, 0, len(sums))
	for d := range sums {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	curve := make([]model.PlannedCurvePoint, 0, len(dates))
	running := 0.0
	for _, d := range dates {
		running += sums[d]
		curve = append(curve, model.PlannedCurvePoint{Date: d, Cumulative: running})
	}
	return curve
}
