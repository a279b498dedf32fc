package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStatus reports service health and basic counts.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	projects, err := h.store.ListProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"projects": len(projects),
	})
}
