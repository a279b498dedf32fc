package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Luisfch1/CONTROL/internal/model"
)

// RevisionRequest carries the editable fields of a revision.
type RevisionRequest struct {
	Name          string         `json:"name"`
	EffectiveDate time.Time      `json:"effectiveDate"`
	Changes       []model.Change `json:"changes"`
	Hidden        bool           `json:"hidden"`
}

// validateChanges enforces at most one change per normalized code and that
// every change targets an existing leaf item.
func validateChanges(p *model.Project, changes []model.Change) error {
	seen := make(map[string]bool, len(changes))
	codes := make(map[string]bool)
	for _, item := range p.Budget.Items {
		if item.Type == model.ItemLeaf {
			codes[item.NormCode] = true
		}
	}

	for _, ch := range changes {
		norm := model.NormalizeCode(ch.Code)
		if seen[norm] {
			return fmt.Errorf("el ítem %s aparece más de una vez", ch.Code)
		}
		seen[norm] = true
		if len(codes) > 0 && !codes[norm] {
			return fmt.Errorf("el ítem %s no existe en el presupuesto", ch.Code)
		}
	}
	return nil
}

func normalizeChanges(changes []model.Change) []model.Change {
	out := make([]model.Change, len(changes))
	for i, ch := range changes {
		ch.Code = model.NormalizeCode(ch.Code)
		out[i] = ch
	}
	return out
}

// AddRevision appends a budget amendment. Revisions apply in insertion
// order and never mutate the imported base values.
// POST /api/projects/:id/revisions
func (h *Handler) AddRevision(c *gin.Context) {
	p, ok := h.loadProject(c)
	if !ok {
		return
	}

	var req RevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "revisión inválida"})
		return
	}
	if err := validateChanges(p, req.Changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rev := model.Revision{
		ID:            uuid.New().String(),
		Name:          req.Name,
		EffectiveDate: req.EffectiveDate,
		Changes:       normalizeChanges(req.Changes),
		Hidden:        req.Hidden,
	}
	p.Budget.Revisions = append(p.Budget.Revisions, rev)
	p.UpdatedAt = time.Now().UTC()

	if !h.saveProject(c, p) {
		return
	}
	c.JSON(http.StatusCreated, rev)
}

// UpdateRevision edits one revision in place, keeping its position in the
// chain.
// PATCH /api/projects/:id/revisions/:revisionId
func (h *Handler) UpdateRevision(c *gin.Context) {
	p, ok := h.loadProject(c)
	if !ok {
		return
	}

	rev := p.FindRevision(c.Param("revisionId"))
	if rev == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "revisión no encontrada"})
		return
	}

	var req RevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "revisión inválida"})
		return
	}
	if err := validateChanges(p, req.Changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rev.Name = req.Name
	rev.EffectiveDate = req.EffectiveDate
	rev.Changes = normalizeChanges(req.Changes)
	rev.Hidden = req.Hidden
	p.UpdatedAt = time.Now().UTC()

	if !h.saveProject(c, p) {
		return
	}
	c.JSON(http.StatusOK, rev)
}

// DeleteRevision removes one revision from the chain.
// DELETE /api/projects/:id/revisions/:revisionId
func (h *Handler) DeleteRevision(c *gin.Context) {
	p, ok := h.loadProject(c)
	if !ok {
		return
	}

	id := c.Param("revisionId")
	revisions := p.Budget.Revisions
	for i := range revisions {
		if revisions[i].ID != id {
			continue
		}
		p.Budget.Revisions = append(revisions[:i], revisions[i+1:]...)
		p.UpdatedAt = time.Now().UTC()
		if !h.saveProject(c, p) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "revisión no encontrada"})
}
