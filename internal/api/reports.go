package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Luisfch1/CONTROL/internal/model"
)

// CreateReportRequest carries the fields of a new progress report.
type CreateReportRequest struct {
	Cutoff      time.Time `json:"cutoff" binding:"required"`
	Label       string    `json:"label"`
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`
	Notes       string    `json:"notes"`
}

// CreateReport appends a progress report. The quantity map is seeded from
// the immediately preceding report by cutoff date and is independently
// editable afterwards.
// POST /api/projects/:id/reports
func (h *Handler) CreateReport(c *gin.Context) {
	p, ok := h.loadProject(c)
	if !ok {
		return
	}

	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "la fecha de corte es obligatoria"})
		return
	}

	report := model.Report{
		ID:          uuid.New().String(),
		Cutoff:      req.Cutoff,
		Label:       req.Label,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		Notes:       req.Notes,
		Quantities:  p.SeedReportQuantities(req.Cutoff),
	}
	p.Reports = append(p.Reports, report)
	p.UpdatedAt = time.Now().UTC()

	if !h.saveProject(c, p) {
		return
	}
	c.JSON(http.StatusCreated, report)
}

// UpdateReportRequest carries manual report edits. Nil fields are left
// unchanged; Quantities entries are merged by normalized code.
type UpdateReportRequest struct {
	Label      *string            `json:"label"`
	Notes      *string            `json:"notes"`
	Quantities map[string]float64 `json:"quantities"`
}

// UpdateReport applies manual edits to one report. Reports are never
// recomputed automatically: these edits are the only mutation after
// creation.
// PATCH /api/projects/:id/reports/:reportId
func (h *Handler) UpdateReport(c *gin.Context) {
	p, ok := h.loadProject(c)
	if !ok {
		return
	}

	report := p.FindReport(c.Param("reportId"))
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "acta no encontrada"})
		return
	}

	var req UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "solicitud inválida"})
		return
	}

	if req.Label != nil {
		report.Label = *req.Label
	}
	if req.Notes != nil {
		report.Notes = *req.Notes
	}
	if report.Quantities == nil {
		report.Quantities = make(map[string]float64)
	}
	for code, qty := range req.Quantities {
		report.Quantities[model.NormalizeCode(code)] = qty
	}
	p.UpdatedAt = time.Now().UTC()

	if !h.saveProject(c, p) {
		return
	}
	c.JSON(http.StatusOK, report)
}

// DeleteReport removes one report. Each report holds its own absolute
// cumulative map, so deleting one never cascades into the others.
// DELETE /api/projects/:id/reports/:reportId
func (h *Handler) DeleteReport(c *gin.Context) {
	p, ok := h.loadProject(c)
	if !ok {
		return
	}

	id := c.Param("reportId")
	for i := range p.Reports {
		if p.Reports[i].ID != id {
			continue
		}
		p.Reports = append(p.Reports[:i], p.Reports[i+1:]...)
		p.UpdatedAt = time.Now().UTC()
		if !h.saveProject(c, p) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "acta no encontrada"})
}
