package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExportBackup downloads the whole store as the interchange document.
// GET /api/backup/export
func (h *Handler) ExportBackup(c *gin.Context) {
	backup, err := h.store.ExportBackup()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="control-backup.json"`)
	c.JSON(http.StatusOK, backup)
}

// RestoreBackup applies an uploaded interchange document: settings merged
// over defaults, projects upserted wholesale.
// POST /api/backup/restore
func (h *Handler) RestoreBackup(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil || len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "copia de seguridad vacía"})
		return
	}

	if err := h.store.RestoreBackup(data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "copia de seguridad inválida"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restored": true})
}
