package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Luisfch1/CONTROL/internal/model"
	"github.com/Luisfch1/CONTROL/internal/valuation"
)

// ReportValuation is the money view of one report.
type ReportValuation struct {
	ReportID    string    `json:"reportId"`
	Label       string    `json:"label"`
	Cutoff      time.Time `json:"cutoff"`
	Accumulated float64   `json:"accumulated"`
	Period      float64   `json:"period"`
	Percent     *float64  `json:"percent"` // nil when contract value is not positive
}

// ValuationResponse is the full valuation summary of a project.
type ValuationResponse struct {
	Contract       valuation.ContractValue `json:"contract"`
	Reports        []ReportValuation       `json:"reports"`
	FinancePercent *float64                `json:"financePercent"`
	Series         []valuation.CurvePoint  `json:"series"`
}

// GetValuation computes the contract value, per-report executed values and
// percentages, the financial disbursement percentage, and the
// planned-vs-executed comparison series.
// GET /api/projects/:id/valuation
func (h *Handler) GetValuation(c *gin.Context) {
	p, ok := h.loadProject(c)
	if !ok {
		return
	}
	settings, ok := h.loadSettings(c)
	if !ok {
		return
	}

	resp := ValuationResponse{
		Contract: valuation.ComputeContractValue(p, settings),
		Reports:  make([]ReportValuation, 0, len(p.Reports)),
		Series:   valuation.ComparisonSeries(p, settings),
	}

	for i := range p.Reports {
		report := &p.Reports[i]
		executed := valuation.ComputeExecutedValues(p, report, settings)
		rv := ReportValuation{
			ReportID:    report.ID,
			Label:       report.Label,
			Cutoff:      report.Cutoff,
			Accumulated: executed.Accumulated,
			Period:      executed.Period,
		}
		if pct, defined := valuation.ExecutedPercent(p, report, settings); defined {
			rv.Percent = &pct
		}
		resp.Reports = append(resp.Reports, rv)
	}

	if pct, defined := valuation.FinancePercent(p, time.Time{}, settings); defined {
		resp.FinancePercent = &pct
	}

	c.JSON(http.StatusOK, resp)
}

// EffectiveItem pairs a budget item with its effective values.
type EffectiveItem struct {
	Item      model.BudgetItem    `json:"item"`
	Effective valuation.Effective `json:"effective"`
}

// GetEffectiveItems returns every leaf item with its effective quantity,
// price and total. The optional "revisions" query bounds how many
// revisions apply, supporting per-revision what-if columns; by default the
// whole chain applies.
// GET /api/projects/:id/items/effective?revisions=N
func (h *Handler) GetEffectiveItems(c *gin.Context) {
	p, ok := h.loadProject(c)
	if !ok {
		return
	}

	revisions := p.Budget.Revisions
	if raw := c.Query("revisions"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > len(revisions) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "número de revisiones inválido"})
			return
		}
		revisions = revisions[:n]
	}

	items := make([]EffectiveItem, 0, len(p.Budget.Items))
	for _, item := range p.Budget.Items {
		if item.Type != model.ItemLeaf {
			continue
		}
		items = append(items, EffectiveItem{
			Item:      item,
			Effective: valuation.EffectiveValue(item, revisions),
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
