package valuation

import (
	"sort"
	"time"

	"github.com/Luisfch1/CONTROL/internal/model"
)

// CurvePoint is one point of the planned-vs-executed comparison. A nil
// value means the series has no sample at that date.
type CurvePoint struct {
	Date     time.Time `json:"date"`
	Planned  *float64  `json:"planned"`
	Executed *float64  `json:"executed"`
}

// ComparisonSeries merges the planned cumulative curve with the executed
// accumulated value at each report cutoff, sorted by date. When the
// suspension shift is enabled in settings, planned dates are pushed past
// contractual suspensions first.
func ComparisonSeries(p *model.Project, settings *model.Settings) []CurvePoint {
	byDate := make(map[time.Time]*CurvePoint)
	at := func(date time.Time) *CurvePoint {
		pt, ok := byDate[date]
		if !ok {
			pt = &CurvePoint{Date: date}
			byDate[date] = pt
		}
		return pt
	}

	for _, planned := range p.Planned.Curve {
		date := planned.Date
		if settings.ShiftPlannedBySuspensions {
			date = ShiftDate(date, p.Suspensions)
		}
		v := planned.Cumulative
		at(date).Planned = &v
	}

	for i := range p.Reports {
		report := &p.Reports[i]
		executed := ComputeExecutedValues(p, report, settings)
		v := executed.Accumulated
		at(report.Cutoff).Executed = &v
	}

	series := make([]CurvePoint, 0, len(byDate))
	for _, pt := range byDate {
		series = append(series, *pt)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series
}
