package model

import "time"

// Party identifies one of the contracting parties.
type Party struct {
	Name           string `json:"name"`
	TaxID          string `json:"taxId"`
	Representative string `json:"representative"`
}

// AIUPercentages is the Colombian-style composite markup: administration,
// contingency (imprevistos) and profit (utilidad).
type AIUPercentages struct {
	Administration float64 `json:"administration"`
	Contingency    float64 `json:"contingency"`
	Profit         float64 `json:"profit"`
}

// ContractTerms are the fixed terms of the construction contract. One
// currency per project; there is no multi-currency arithmetic.
type ContractTerms struct {
	StartDate      time.Time      `json:"startDate"`
	InitialEndDate time.Time      `json:"initialEndDate"`
	Currency       string         `json:"currency"`
	AIU            AIUPercentages `json:"aiu"`
	Notes          string         `json:"notes"`
}

// Suspension is a date interval during which contract execution is frozen.
// Both ends are inclusive.
type Suspension struct {
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
	Reason string    `json:"reason"`
}

// Days is the inclusive calendar length of the suspension.
func (s Suspension) Days() int {
	if s.To.Before(s.From) {
		return 0
	}
	return int(s.To.Sub(s.From).Hours()/24) + 1
}

// FinanceEventType distinguishes disbursement entries.
type FinanceEventType string

const (
	FinanceAdvance FinanceEventType = "ADVANCE"
	FinancePayment FinanceEventType = "PAYMENT"
)

// FinanceEvent is one absolute disbursement entry (not cumulative).
type FinanceEvent struct {
	ID     string           `json:"id"`
	Date   time.Time        `json:"date"`
	Type   FinanceEventType `json:"type"`
	Amount float64          `json:"amount"`
	Note   string           `json:"note"`
}

// Finance is the ordered disbursement history of a project.
type Finance struct {
	Events []FinanceEvent `json:"events"`
}

// PlannedCurvePoint is one point of the imported planned-cost curve:
// cumulative planned cost as of the date.
type PlannedCurvePoint struct {
	Date       time.Time `json:"date"`
	Cumulative float64   `json:"cumulative"`
}

// Planned holds the imported planned curve, replaced wholesale on re-import.
type Planned struct {
	Curve []PlannedCurvePoint `json:"curve"`
}

// Project is the root aggregate. All child entities are embedded values
// owned exclusively by the project.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Owner       Party         `json:"owner"`
	Contractor  Party         `json:"contractor"`
	Supervisor  Party         `json:"supervisor"`
	Terms       ContractTerms `json:"terms"`
	Suspensions []Suspension  `json:"suspensions"`
	Budget      Budget        `json:"budget"`
	Reports     []Report      `json:"reports"`
	Finance     Finance       `json:"finance"`
	Planned     Planned       `json:"planned"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// PreviousReport returns the report with the latest cutoff strictly before
// the given cutoff, or nil when none exists.
func (p *Project) PreviousReport(cutoff time.Time) *Report {
	var prev *Report
	for i := range p.Reports {
		r := &p.Reports[i]
		if !r.Cutoff.Before(cutoff) {
			continue
		}
		if prev == nil || r.Cutoff.After(prev.Cutoff) {
			prev = r
		}
	}
	return prev
}

// FindReport returns the report with the given id, or nil.
func (p *Project) FindReport(id string) *Report {
	for i := range p.Reports {
		if p.Reports[i].ID == id {
			return &p.Reports[i]
		}
	}
	return nil
}

// FindRevision returns the revision with the given id, or nil.
func (p *Project) FindRevision(id string) *Revision {
	for i := range p.Budget.Revisions {
		if p.Budget.Revisions[i].ID == id {
			return &p.Budget.Revisions[i]
		}
	}
	return nil
}
