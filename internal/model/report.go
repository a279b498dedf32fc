package model

import "time"

// Report is a point-in-time progress cut-off. Quantities holds the
// cumulative executed quantity per item normalized code as of Cutoff.
// Values are absolute, not deltas, so deleting a report never cascades.
type Report struct {
	ID          string             `json:"id"`
	Cutoff      time.Time          `json:"cutoff"`
	Label       string             `json:"label"`
	PeriodStart time.Time          `json:"periodStart"`
	PeriodEnd   time.Time          `json:"periodEnd"`
	Notes       string             `json:"notes"`
	Quantities  map[string]float64 `json:"quantities"`
}

// SeedReportQuantities builds the initial quantity map for a new report at
// the given cutoff: a copy of the immediately preceding report's map, with
// zero for leaf items absent there. The map is independently editable
// afterwards and never recomputed.
func (p *Project) SeedReportQuantities(cutoff time.Time) map[string]float64 {
	prev := p.PreviousReport(cutoff)
	qty := make(map[string]float64)
	for _, item := range p.Budget.Items {
		if item.Type != ItemLeaf {
			continue
		}
		if prev != nil {
			qty[item.NormCode] = prev.Quantities[item.NormCode]
		} else {
			qty[item.NormCode] = 0
		}
	}
	return qty
}
