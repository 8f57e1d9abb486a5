package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/affiliate_ledger/internal/core/ports/services"
	"github.com/SscSPs/affiliate_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// partnerHandler handles partners, their manual ledger entries and reconciled ledgers.
type partnerHandler struct {
	partnerService   portssvc.PartnerSvc
	reportingService portssvc.ReportingService
}

func newPartnerHandler(ps portssvc.PartnerSvc, rs portssvc.ReportingService) *partnerHandler {
	return &partnerHandler{
		partnerService:   ps,
		reportingService: rs,
	}
}

func registerPartnerRoutes(rg *gin.RouterGroup, partnerService portssvc.PartnerSvc, reportingService portssvc.ReportingService) {
	h := newPartnerHandler(partnerService, reportingService)

	partners := rg.Group("/partners")
	{
		partners.GET("/ledger", h.getPartnerLedgers)
		partners.POST("", h.createPartner)
		partners.DELETE("/:partner_id", h.deletePartner)
		partners.POST("/:partner_id/ledger-entries", h.addLedgerEntry)
	}
}

// getPartnerLedgers godoc
// @Summary Get reconciled partner ledgers
// @Description Returns every partner ledger with automatic and manual entries, newest first.
// @Tags partners
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Success 200 {object} dto.PartnerLedgersResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/partners/ledger [get]
func (h *partnerHandler) getPartnerLedgers(c *gin.Context) {
	logger, workplaceID, userID, ok := workplaceRequest(c)
	if !ok {
		return
	}

	ledgers, warnings, err := h.reportingService.PartnerLedgers(c.Request.Context(), workplaceID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to build partner ledgers")
		return
	}
	c.JSON(http.StatusOK, dto.PartnerLedgersResponse{Ledgers: ledgers, Warnings: warnings})
}

// createPartner godoc
// @Summary Create a partner
// @Tags partners
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   partner body dto.CreatePartnerRequest true "Partner details"
// @Success 201 {object} domain.Partner
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Conflict"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/partners [post]
func (h *partnerHandler) createPartner(c *gin.Context) {
	logger, workplaceID, userID, ok := workplaceRequest(c)
	if !ok {
		return
	}

	var req dto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePartner", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	partner, err := h.partnerService.CreatePartner(c.Request.Context(), workplaceID, req.ToPartner(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create partner")
		return
	}

	logger.Info("Partner created", slog.String("partner_id", partner.ID))
	c.JSON(http.StatusCreated, partner)
}

// deletePartner godoc
// @Summary Delete a partner
// @Description The owner partner can never be deleted.
// @Tags partners
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   partner_id path string true "Partner ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Conflict"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/partners/{partner_id} [delete]
func (h *partnerHandler) deletePartner(c *gin.Context) {
	logger, workplaceID, userID, ok := workplaceRequest(c)
	if !ok {
		return
	}
	partnerID := c.Param("partner_id")

	if err := h.partnerService.DeletePartner(c.Request.Context(), workplaceID, partnerID, userID); err != nil {
		respondError(c, logger, err, "Failed to delete partner")
		return
	}

	logger.Info("Partner deleted", slog.String("partner_id", partnerID))
	c.Status(http.StatusNoContent)
}

// addLedgerEntry godoc
// @Summary Add a manual partner ledger entry
// @Tags partners
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   partner_id path string true "Partner ID"
// @Param   entry body dto.CreateLedgerEntryRequest true "Ledger entry"
// @Success 201 {object} domain.PartnerLedgerEntry
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Conflict"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/partners/{partner_id}/ledger-entries [post]
func (h *partnerHandler) addLedgerEntry(c *gin.Context) {
	logger, workplaceID, userID, ok := workplaceRequest(c)
	if !ok {
		return
	}
	partnerID := c.Param("partner_id")

	var req dto.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddLedgerEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.partnerService.AddLedgerEntry(c.Request.Context(), workplaceID, req.ToEntry(partnerID), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to add ledger entry")
		return
	}

	logger.Info("Ledger entry added", slog.String("partner_id", partnerID), slog.String("entry_id", entry.ID))
	c.JSON(http.StatusCreated, entry)
}
