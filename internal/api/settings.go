package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Luisfch1/CONTROL/internal/model"
)

// GetSettings returns the stored settings.
// GET /api/settings
func (h *Handler) GetSettings(c *gin.Context) {
	settings, ok := h.loadSettings(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettingsRequest carries partial settings edits.
type UpdateSettingsRequest struct {
	MoneyPrecision            *int  `json:"moneyPrecision"`
	QuantityPrecision         *int  `json:"quantityPrecision"`
	WarnExcessPrecision       *bool `json:"warnExcessPrecision"`
	ShiftPlannedBySuspensions *bool `json:"shiftPlannedBySuspensions"`
}

// UpdateSettings applies partial settings edits.
// PATCH /api/settings
func (h *Handler) UpdateSettings(c *gin.Context) {
	settings, ok := h.loadSettings(c)
	if !ok {
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "solicitud inválida"})
		return
	}

	if req.MoneyPrecision != nil {
		if *req.MoneyPrecision != model.MoneyThousands && (*req.MoneyPrecision < 0 || *req.MoneyPrecision > 6) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "precisión de moneda inválida"})
			return
		}
		settings.MoneyPrecision = *req.MoneyPrecision
	}
	if req.QuantityPrecision != nil {
		if *req.QuantityPrecision < 0 || *req.QuantityPrecision > 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "precisión de cantidades inválida"})
			return
		}
		settings.QuantityPrecision = *req.QuantityPrecision
	}
	if req.WarnExcessPrecision != nil {
		settings.WarnExcessPrecision = *req.WarnExcessPrecision
	}
	if req.ShiftPlannedBySuspensions != nil {
		settings.ShiftPlannedBySuspensions = *req.ShiftPlannedBySuspensions
	}

	if err := h.store.SaveSettings(settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}
