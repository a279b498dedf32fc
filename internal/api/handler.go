// Package api exposes the project, import and valuation operations over
// HTTP. Handlers orchestrate store reads/writes around the pure core;
// nothing here computes on its own.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Luisfch1/CONTROL/internal/model"
	"github.com/Luisfch1/CONTROL/internal/store"
)

// Handler serves the API against one store.
type Handler struct {
	store *store.Store
}

// NewHandler creates the API handler.
func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

// RegisterRoutes registers every API route on the group.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)

	router.GET("/settings", h.GetSettings)
	router.PATCH("/settings", h.UpdateSettings)

	router.GET("/projects", h.ListProjects)
	router.POST("/projects", h.CreateProject)
	router.GET("/projects/:id", h.GetProject)
	router.PATCH("/projects/:id", h.UpdateProject)
	router.DELETE("/projects/:id", h.DeleteProject)

	router.POST("/projects/:id/suspensions", h.AddSuspension)
	router.DELETE("/projects/:id/suspensions/:index", h.RemoveSuspension)

	router.POST("/workbook/sheets", h.ListWorkbookSheets)
	router.POST("/projects/:id/budget/import", h.ImportBudget)
	router.POST("/projects/:id/planned/import", h.ImportPlanned)

	router.POST("/projects/:id/revisions", h.AddRevision)
	router.PATCH("/projects/:id/revisions/:revisionId", h.UpdateRevision)
	router.DELETE("/projects/:id/revisions/:revisionId", h.DeleteRevision)

	router.POST("/projects/:id/reports", h.CreateReport)
	router.PATCH("/projects/:id/reports/:reportId", h.UpdateReport)
	router.DELETE("/projects/:id/reports/:reportId", h.DeleteReport)

	router.POST("/projects/:id/finance/events", h.AddFinanceEvent)
	router.DELETE("/projects/:id/finance/events/:eventId", h.RemoveFinanceEvent)

	router.GET("/projects/:id/valuation", h.GetValuation)
	router.GET("/projects/:id/items/effective", h.GetEffectiveItems)

	router.GET("/backup/export", h.ExportBackup)
	router.POST("/backup/restore", h.RestoreBackup)
}

// loadProject fetches the project or writes the error response.
func (h *Handler) loadProject(c *gin.Context) (*model.Project, bool) {
	p, err := h.store.GetProject(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "proyecto no encontrado"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return p, true
}

// saveProject persists the project or writes the error response.
func (h *Handler) saveProject(c *gin.Context, p *model.Project) bool {
	if err := h.store.SaveProject(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// loadSettings fetches the settings or writes the error response.
func (h *Handler) loadSettings(c *gin.Context) (*model.Settings, bool) {
	settings, err := h.store.GetSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return settings, true
}
