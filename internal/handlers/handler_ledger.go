package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/affiliate_ledger/internal/core/ports/services"
	"github.com/SscSPs/affiliate_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// maxRecordBytes bounds a single record document.
const maxRecordBytes = 1 << 20

// ledgerHandler handles generic record writes, ad accounts and the administrative wipe.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	records := rg.Group("/records")
	{
		records.POST("/:collection", h.saveRecord)
		records.DELETE("/:collection/:record_id", h.deleteRecord)
	}

	adAccounts := rg.Group("/ad-accounts")
	{
		adAccounts.POST("", h.addAdAccount)
		adAccounts.POST("/batch", h.addAdAccounts)
	}

	rg.DELETE("/admin/wipe", h.wipeWorkplace)
}

// saveRecord godoc
// @Summary Create or replace a record
// @Description Stores a record document in the path collection. Records dated in a closed period are read only.
// @Tags records
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   collection path string true "Collection" Enums(projects,assets,partners,ad_costs,commissions,expenses,exchanges,ad_fund_transfers,tax_payments,liabilities,liability_payments,receivables,receivable_payments,capital_inflows,withdrawals,partner_ledger_entries)
// @Param   record body object true "Record document"
// @Success 200 {object} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Conflict"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/records/{collection} [post]
func (h *ledgerHandler) saveRecord(c *gin.Context) {
	logger, workplaceID, userID, ok := workplaceRequest(c)
	if !ok {
		return
	}
	collection := domain.Collection(c.Param("collection"))
	if !collection.IsValid() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown collection " + string(collection)})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRecordBytes)
	payload, err := c.GetRawData()
	if err != nil {
		logger.Warn("Failed to read record body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	record, err := h.ledgerService.SaveRecord(c.Request.Context(), workplaceID, collection, payload, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to save record")
		return
	}

	logger.Info("Record saved", slog.String("collection", string(collection)), slog.String("record_id", record.RecordID))
	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}

// deleteRecord godoc
// @Summary Delete a record
// @Tags records
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   collection path string true "Collection"
// @Param   record_id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Conflict"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/records/{collection}/{record_id} [delete]
func (h *ledgerHandler) deleteRecord(c *gin.Context) {
	logger, workplaceID, userID, ok := workplaceRequest(c)
	if !ok {
		return
	}
	collection := domain.Collection(c.Param("collection"))
	recordID := c.Param("record_id")

	if err := h.ledgerService.DeleteRecord(c.Request.Context(), workplaceID, collection, recordID, userID); err != nil {
		respondError(c, logger, err, "Failed to delete record")
		return
	}
	c.Status(http.StatusNoContent)
}

// addAdAccount godoc
// @Summary Add an ad account
// @Tags ad-accounts
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   account body dto.AddAdAccountRequest true "Ad account"
// @Success 201 {object} domain.Asset
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Conflict"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/ad-accounts [post]
func (h *ledgerHandler) addAdAccount(c *gin.Context) {
	logger, workplaceID, userID, ok := workplaceRequest(c)
	if !ok {
		return
	}

	var req dto.AddAdAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddAdAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.ledgerService.AddAdAccount(c.Request.Context(), workplaceID, req.ToAsset(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to add ad account")
		return
	}
	c.JSON(http.StatusCreated, account)
}

// addAdAccounts godoc
// @Summary Add several ad accounts
// @Description All accounts are stored or none is.
// @Tags ad-accounts
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   accounts body dto.AddAdAccountsRequest true "Ad accounts"
// @Success 201 {object} map[string][]domain.Asset
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Conflict"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/ad-accounts/batch [post]
func (h *ledgerHandler) addAdAccounts(c *gin.Context) {
	logger, workplaceID, userID, ok := workplaceRequest(c)
	if !ok {
		return
	}

	var req dto.AddAdAccountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddAdAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	assets := make([]domain.Asset, len(req.Accounts))
	for i, a := range req.Accounts {
		assets[i] = a.ToAsset()
	}

	accounts, err := h.ledgerService.AddAdAccounts(c.Request.Context(), workplaceID, assets, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to add ad accounts")
		return
	}

	logger.Info("Ad accounts added", slog.Int("count", len(accounts)))
	c.JSON(http.StatusCreated, gin.H{"accounts": accounts})
}

// wipeWorkplace godoc
// @Summary Wipe a workplace
// @Description Deletes every record of the workplace, including closed periods and tax settings.
// @Tags admin
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/admin/wipe [delete]
func (h *ledgerHandler) wipeWorkplace(c *gin.Context) {
	logger, workplaceID, userID, ok := workplaceRequest(c)
	if !ok {
		return
	}

	if err := h.ledgerService.WipeWorkplace(c.Request.Context(), workplaceID, userID); err != nil {
		respondError(c, logger, err, "Failed to wipe workplace")
		return
	}

	logger.Warn("Workplace wiped")
	c.Status(http.StatusNoContent)
}
