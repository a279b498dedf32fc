package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Luisfch1/CONTROL/internal/model"
)

// ProjectSummary is the list view of one project.
type ProjectSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Currency    string    `json:"currency"`
	ItemCount   int       `json:"itemCount"`
	ReportCount int       `json:"reportCount"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListProjects returns a summary of every stored project.
// GET /api/projects
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.store.ListProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summaries := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, ProjectSummary{
			ID:          p.ID,
			Name:        p.Name,
			Currency:    p.Terms.Currency,
			ItemCount:   len(p.Budget.Items),
			ReportCount: len(p.Reports),
			UpdatedAt:   p.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"projects": summaries})
}

// CreateProjectRequest carries the initial project fields.
type CreateProjectRequest struct {
	Name     string `json:"name" binding:"required"`
	Currency string `json:"currency"`
}

// CreateProject creates an empty project aggregate.
// POST /api/projects
func (h *Handler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "el nombre del proyecto es obligatorio"})
		return
	}
	if req.Currency == "" {
		req.Currency = "COP"
	}

	now := time.Now().UTC()
	p := &model.Project{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Terms:     model.ContractTerms{Currency: req.Currency},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if !h.saveProject(c, p) {
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GetProject returns the whole aggregate.
// GET /api/projects/:id
func (h *Handler) GetProject(c *gin.Context) {
	p, ok := h.loadProject(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProjectRequest carries the editable project fields. Nil fields are
// left unchanged.
type UpdateProjectRequest struct {
	Name       *string              `json:"name"`
	Owner      *model.Party         `json:"owner"`
	Contractor *model.Party         `json:"contractor"`
	Supervisor *model.Party         `json:"supervisor"`
	Terms      *model.ContractTerms `json:"terms"`
}

// UpdateProject edits identity, parties and contract terms.
// PATCH /api/projects/:id
func (h *Handler) UpdateProject(c *gin.Context) {
	p, ok := h.loadProject(c)
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "solicitud inválida"})
		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Owner != nil {
		p.Owner = *req.Owner
	}
	if req.Contractor != nil {
		p.Contractor = *req.Contractor
	}
	if req.Supervisor != nil {
		p.Supervisor = *req.Supervisor
	}
	if req.Terms != nil {
		p.Terms = *req.Terms
	}
	p.UpdatedAt = time.Now().UTC()

	if !h.saveProject(c, p) {
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProject removes the aggregate. Deleting a project never touches
// other projects.
// DELETE /api/projects/:id
func (h *Handler) DeleteProject(c *gin.Context) {
	if err := h.store.DeleteProject(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "proyecto no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// AddSuspension appends a suspension interval.
// POST /api/projects/:id/suspensions
func (h *Handler) AddSuspension(c *gin.Context) {
	p, ok := h.loadProject(c)
	if !ok {
		return
	}

	var s model.Suspension
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "suspensión inválida"})
		return
	}
	if s.To.Before(s.From) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "la fecha final es anterior a la inicial"})
		return
	}

	p.Suspensions = append(p.Suspensions, s)
	p.UpdatedAt = time.Now().UTC()
	if !h.saveProject(c, p) {
		return
	}
	c.JSON(http.StatusOK, p.Suspensions)
}

// RemoveSuspension removes one suspension by position.
// DELETE /api/projects/:id/suspensions/:index
func (h *Handler) RemoveSuspension(c *gin.Context) {
	p, ok := h.loadProject(c)
	if !ok {
		return
	}

	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 || idx >= len(p.Suspensions) {
		c.JSON(http.StatusNotFound, gin.H{"error": "suspensión no encontrada"})
		return
	}

	p.Suspensions = append(p.Suspensions[:idx], p.Suspensions[idx+1:]...)
	p.UpdatedAt = time.Now().UTC()
	if !h.saveProject(c, p) {
		return
	}
	c.JSON(http.StatusOK, p.Suspensions)
}
