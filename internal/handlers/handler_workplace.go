package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/affiliate_ledger/internal/core/ports/services"
	"github.com/SscSPs/affiliate_ledger/internal/dto"
	"github.com/SscSPs/affiliate_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workplaceHandler handles HTTP requests related to workplaces.
type workplaceHandler struct {
	workplaceService portssvc.WorkplaceSvcFacade
}

// newWorkplaceHandler creates a new workplaceHandler.
func newWorkplaceHandler(ws portssvc.WorkplaceSvcFacade) *workplaceHandler {
	return &workplaceHandler{
		workplaceService: ws,
	}
}

// registerWorkplaceRoutes registers routes related to workplaces and nests every
// workplace scoped group under /workplaces/:workplace_id.
func registerWorkplaceRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newWorkplaceHandler(services.Workplace)

	workplacesTopLevel := rg.Group("/workplaces")
	{
		workplacesTopLevel.POST("", h.createWorkplace)
		workplacesTopLevel.GET("", h.listUserWorkplaces)
	}

	workplaceSpecific := rg.Group("/workplaces/:workplace_id")
	{
		workplaceSpecific.GET("", h.getWorkplace)
		workplaceSpecific.POST("/trusts", h.trustWorkplace)

		registerPeriodRoutes(workplaceSpecific, services.Period, services.Reporting)
		registerPartnerRoutes(workplaceSpecific, services.Ledger, services.Reporting)
		registerLedgerRoutes(workplaceSpecific, services.Ledger)
		registerTaxSettingsRoutes(workplaceSpecific, services.TaxSettings)
	}
}

// createWorkplace godoc
// @Summary Create a new workplace
// @Description Creates a workplace, its owner partner and makes the caller its admin.
// @Tags workplaces
// @Accept  json
// @Produce  json
// @Param   workplace body dto.CreateWorkplaceRequest true "Workplace details"
// @Success 201 {object} dto.WorkplaceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /workplaces [post]
func (h *workplaceHandler) createWorkplace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWorkplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWorkplace", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create workplace", slog.String("workplace_name", req.Name))

	newWorkplace, err := h.workplaceService.CreateWorkplace(c.Request.Context(), req.Name, req.Description, req.OwnerName, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create workplace")
		return
	}

	logger.Info("Workplace created successfully", slog.String("workplace_id", newWorkplace.WorkplaceID))
	c.JSON(http.StatusCreated, dto.ToWorkplaceResponse(newWorkplace))
}

// listUserWorkplaces godoc
// @Summary List workplaces for the current user
// @Description Lists the workplaces the caller belongs to.
// @Tags workplaces
// @Produce  json
// @Param   includeDisabled query bool false "Include disabled workplaces"
// @Success 200 {object} dto.ListWorkplacesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /workplaces [get]
func (h *workplaceHandler) listUserWorkplaces(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	includeDisabled, err := strconv.ParseBool(c.DefaultQuery("includeDisabled", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "includeDisabled must be a boolean"})
		return
	}

	workplaces, err := h.workplaceService.ListUserWorkplaces(c.Request.Context(), userID, includeDisabled)
	if err != nil {
		respondError(c, logger, err, "Failed to list workplaces")
		return
	}

	logger.Info("Workplaces listed successfully", slog.Int("count", len(workplaces)))
	c.JSON(http.StatusOK, dto.ToListWorkplacesResponse(workplaces))
}

// getWorkplace godoc
// @Summary Get a workplace
// @Tags workplaces
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Success 200 {object} dto.WorkplaceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /workplaces/{workplace_id} [get]
func (h *workplaceHandler) getWorkplace(c *gin.Context) {
	logger, workplaceID, userID, ok := workplaceRequest(c)
	if !ok {
		return
	}

	workplace, err := h.workplaceService.FindWorkplaceByID(c.Request.Context(), workplaceID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to get workplace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkplaceResponse(workplace))
}

// trustWorkplace godoc
// @Summary Trust another workplace
// @Description Folds another workplace's shared records into this workplace's reports.
// @Tags workplaces
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   trust body dto.TrustWorkplaceRequest true "Trusted workplace"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Conflict"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/trusts [post]
func (h *workplaceHandler) trustWorkplace(c *gin.Context) {
	logger, workplaceID, userID, ok := workplaceRequest(c)
	if !ok {
		return
	}

	var req dto.TrustWorkplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TrustWorkplace", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.workplaceService.TrustWorkplace(c.Request.Context(), workplaceID, req.TrustedWorkplaceID, userID); err != nil {
		respondError(c, logger, err, "Failed to trust workplace")
		return
	}

	logger.Info("Workplace trusted", slog.String("trusted_workplace_id", req.TrustedWorkplaceID))
	c.Status(http.StatusNoContent)
}

// workplaceRequest extracts the path workplace and the caller, writing the error response itself
// when either is missing.
func workplaceRequest(c *gin.Context) (*slog.Logger, string, string, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")
	if workplaceID == "" {
		logger.Error("Workplace ID missing from path")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Workplace ID required in path"})
		return logger, "", "", false
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return logger, "", "", false
	}
	return logger.With(slog.String("workplace_id", workplaceID)), workplaceID, userID, true
}
