package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/affiliate_ledger/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type taxSettingsHandler struct {
	taxSettingsService portssvc.TaxSettingsService
}

func registerTaxSettingsRoutes(rg *gin.RouterGroup, taxSettingsService portssvc.TaxSettingsService) {
	h := &taxSettingsHandler{taxSettingsService: taxSettingsService}

	rg.GET("/tax-settings", h.getTaxSettings)
	rg.PUT("/tax-settings", h.saveTaxSettings)
}

// getTaxSettings godoc
// @Summary Get tax settings
// @Description Returns 204 when tax is not configured for the workplace.
// @Tags tax-settings
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Success 200 {object} domain.TaxSettings
// @Success 204 "Not configured"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/tax-settings [get]
func (h *taxSettingsHandler) getTaxSettings(c *gin.Context) {
	logger, workplaceID, userID, ok := workplaceRequest(c)
	if !ok {
		return
	}

	settings, err := h.taxSettingsService.GetTaxSettings(c.Request.Context(), workplaceID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to get tax settings")
		return
	}
	if settings == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// saveTaxSettings godoc
// @Summary Save tax settings
// @Tags tax-settings
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   settings body domain.TaxSettings true "Tax settings"
// @Success 200 {object} domain.TaxSettings
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 422 {object} map[string]string "Incomplete configuration"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/tax-settings [put]
func (h *taxSettingsHandler) saveTaxSettings(c *gin.Context) {
	logger, workplaceID, userID, ok := workplaceRequest(c)
	if !ok {
		return
	}

	var req domain.TaxSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveTaxSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	saved, err := h.taxSettingsService.SaveTaxSettings(c.Request.Context(), workplaceID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to save tax settings")
		return
	}

	logger.Info("Tax settings saved", slog.String("method", string(saved.Method)))
	c.JSON(http.StatusOK, saved)
}
