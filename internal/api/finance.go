package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Luisfch1/CONTROL/internal/model"
)

// FinanceEventRequest carries one disbursement entry.
type FinanceEventRequest struct {
	Date   time.Time              `json:"date" binding:"required"`
	Type   model.FinanceEventType `json:"type" binding:"required"`
	Amount float64                `json:"amount" binding:"required"`
	Note   string                 `json:"note"`
}

// AddFinanceEvent appends an absolute disbursement entry (advance or
// payment, never cumulative).
// POST /api/projects/:id/finance/events
func (h *Handler) AddFinanceEvent(c *gin.Context) {
	p, ok := h.loadProject(c)
	if !ok {
		return
	}

	var req FinanceEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "movimiento inválido"})
		return
	}
	if req.Type != model.FinanceAdvance && req.Type != model.FinancePayment {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tipo de movimiento desconocido"})
		return
	}

	event := model.FinanceEvent{
		ID:     uuid.New().String(),
		Date:   req.Date,
		Type:   req.Type,
		Amount: req.Amount,
		Note:   req.Note,
	}
	p.Finance.Events = append(p.Finance.Events, event)
	p.UpdatedAt = time.Now().UTC()

	if !h.saveProject(c, p) {
		return
	}
	c.JSON(http.StatusCreated, event)
}

// RemoveFinanceEvent deletes one disbursement entry.
// DELETE /api/projects/:id/finance/events/:eventId
func (h *Handler) RemoveFinanceEvent(c *gin.Context) {
	p, ok := h.loadProject(c)
	if !ok {
		return
	}

	id := c.Param("eventId")
	events := p.Finance.Events
	for i := range events {
		if events[i].ID != id {
			continue
		}
		p.Finance.Events = append(events[:i], events[i+1:]...)
		p.UpdatedAt = time.Now().UTC()
		if !h.saveProject(c, p) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "movimiento no encontrado"})
}
