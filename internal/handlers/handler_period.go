package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/affiliate_ledger/internal/core/ports/services"
	"github.com/SscSPs/affiliate_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// periodHandler handles the period lifecycle and period financials.
type periodHandler struct {
	periodService    portssvc.PeriodService
	reportingService portssvc.ReportingService
}

func newPeriodHandler(ps portssvc.PeriodService, rs portssvc.ReportingService) *periodHandler {
	return &periodHandler{
		periodService:    ps,
		reportingService: rs,
	}
}

func registerPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodService, reportingService portssvc.ReportingService) {
	h := newPeriodHandler(periodService, reportingService)

	periods := rg.Group("/periods")
	{
		periods.GET("", h.getPeriodState)
		periods.POST("/open", h.openPeriod)
		periods.POST("/close", h.closePeriod)
		periods.GET("/:period/financials", h.getPeriodFinancials)
	}
}

// getPeriodState godoc
// @Summary Get the period state
// @Description Returns the active period and the closed period history.
// @Tags periods
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Success 200 {object} dto.PeriodStateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/periods [get]
func (h *periodHandler) getPeriodState(c *gin.Context) {
	logger, workplaceID, userID, ok := workplaceRequest(c)
	if !ok {
		return
	}

	state, err := h.periodService.GetPeriodState(c.Request.Context(), workplaceID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to get period state")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodStateResponse(state))
}

// openPeriod godoc
// @Summary Open a period
// @Description Makes a YYYY-MM period the active one. Fails while another period is open or when the period is already closed.
// @Tags periods
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   period body dto.OpenPeriodRequest true "Period to open"
// @Success 200 {object} dto.PeriodStateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Conflict"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/periods/open [post]
func (h *periodHandler) openPeriod(c *gin.Context) {
	logger, workplaceID, userID, ok := workplaceRequest(c)
	if !ok {
		return
	}

	var req dto.OpenPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for OpenPeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	state, err := h.periodService.OpenPeriod(c.Request.Context(), workplaceID, req.Period, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to open period")
		return
	}

	logger.Info("Period opened", slog.String("period", req.Period))
	c.JSON(http.StatusOK, dto.ToPeriodStateResponse(state))
}

// closePeriod godoc
// @Summary Close the active period
// @Description Snapshots the active period's financials and closes it. The full snapshot is returned.
// @Tags periods
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Success 200 {object} domain.ClosedPeriod
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Conflict"
// @Failure 422 {object} map[string]string "Incomplete configuration"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/periods/close [post]
func (h *periodHandler) closePeriod(c *gin.Context) {
	logger, workplaceID, userID, ok := workplaceRequest(c)
	if !ok {
		return
	}

	closed, err := h.periodService.ClosePeriod(c.Request.Context(), workplaceID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to close period")
		return
	}

	logger.Info("Period closed", slog.String("period", closed.Period))
	c.JSON(http.StatusOK, closed)
}

// getPeriodFinancials godoc
// @Summary Get period financials
// @Description Computes the financials of any period. Closed periods return their stored snapshot.
// @Tags periods
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   period path string true "Period (YYYY-MM)"
// @Success 200 {object} domain.PeriodFinancials
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 422 {object} map[string]string "Incomplete configuration"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/periods/{period}/financials [get]
func (h *periodHandler) getPeriodFinancials(c *gin.Context) {
	logger, workplaceID, userID, ok := workplaceRequest(c)
	if !ok {
		return
	}
	period := c.Param("period")

	financials, err := h.reportingService.PeriodFinancials(c.Request.Context(), workplaceID, period, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to compute period financials")
		return
	}

	logger.Info("Period financials served", slog.String("period", period), slog.Int("warnings", len(financials.Warnings)))
	c.JSON(http.StatusOK, financials)
}
