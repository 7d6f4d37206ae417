package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sabaipos/pos_backend/internal/apperrors"
	portssvc "github.com/sabaipos/pos_backend/internal/core/ports/services"
	"github.com/sabaipos/pos_backend/internal/dto"
	"github.com/sabaipos/pos_backend/internal/middleware"
)

// endOfDayHandler handles HTTP requests for the end-of-day pipeline.
type endOfDayHandler struct {
	endOfDayService portssvc.EndOfDaySvcFacade
}

func newEndOfDayHandler(es portssvc.EndOfDaySvcFacade) *endOfDayHandler {
	return &endOfDayHandler{
		endOfDayService: es,
	}
}

// registerEndOfDayRoutes registers the closing pipeline and summary routes.
func registerEndOfDayRoutes(rg *gin.RouterGroup, endOfDayService portssvc.EndOfDaySvcFacade) {
	h := newEndOfDayHandler(endOfDayService)

	rg.POST("/end-of-day", h.runEndOfDay)
	rg.GET("/summaries/:date", h.getSummary)
}

// runEndOfDay godoc
// @Summary Run the end-of-day pipeline
// @Description Aggregates the day's active transactions and expenses into the daily summary, archives ledger rows from before the current month, and resets the roster. Re-running for the same date replaces the summary rather than double-counting.
// @Tags end-of-day
// @Accept json
// @Produce json
// @Param run body dto.RunEndOfDayRequest true "Date to close (defaults to today)"
// @Success 200 {object} dto.EndOfDayResponse
// @Failure 400 {object} map[string]string "Malformed date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Pipeline failed"
// @Security BearerAuth
// @Router /end-of-day [post]
func (h *endOfDayHandler) runEndOfDay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RunEndOfDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RunEndOfDay", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	result, err := h.endOfDayService.Run(c.Request.Context(), req.Date)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid end-of-day date", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrFatal) {
			// Archival copy/delete mismatch. The ledger needs manual inspection
			// before the pipeline is retried.
			logger.Error("End-of-day halted on archival inconsistency", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Archival failed, ledger requires inspection"})
		} else {
			logger.Error("End-of-day pipeline failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run end-of-day"})
		}
		return
	}

	logger.Info("End-of-day complete",
		slog.String("date", result.Summary.Date),
		slog.Int("archived", result.ArchivedCount),
		slog.Int("roster_slots_reset", result.RosterSlotsReset))
	c.JSON(http.StatusOK, dto.ToEndOfDayResponse(*result))
}

// getSummary godoc
// @Summary Get a daily summary
// @Tags end-of-day
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.DailySummaryResponse
// @Failure 400 {object} map[string]string "Malformed date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No summary for date"
// @Failure 500 {object} map[string]string "Failed to retrieve summary"
// @Security BearerAuth
// @Router /summaries/{date} [get]
func (h *endOfDayHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	date := c.Param("date")
	if !dateParam.MatchString(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	summary, err := h.endOfDayService.GetSummary(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No summary for date"})
		} else {
			logger.Error("Failed to get summary", slog.String("date", date), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve summary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDailySummaryResponse(*summary))
}
