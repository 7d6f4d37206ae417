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

// rateHandler handles HTTP requests for the service catalog and expenses.
type rateHandler struct {
	rateService    portssvc.RateSvcFacade
	expenseService portssvc.ExpenseSvcFacade
}

func newRateHandler(rs portssvc.RateSvcFacade, es portssvc.ExpenseSvcFacade) *rateHandler {
	return &rateHandler{
		rateService:    rs,
		expenseService: es,
	}
}

// registerCatalogRoutes registers the rate catalog and expense routes.
func registerCatalogRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade, expenseService portssvc.ExpenseSvcFacade) {
	h := newRateHandler(rateService, expenseService)

	rates := rg.Group("/rates")
	{
		rates.POST("", h.createRate)
		rates.GET("", h.listRates)
		rates.DELETE("/:rateID", h.deactivateRate)
	}

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpensesByDate)
	}
}

// createRate godoc
// @Summary Add a catalog rate
// @Description Adds a service catalog entry. A new rate for the same service key supersedes older ones when pricing.
// @Tags rates
// @Accept json
// @Produce json
// @Param rate body dto.CreateRateRequest true "Rate details"
// @Success 201 {object} dto.RateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create rate"
// @Security BearerAuth
// @Router /rates [post]
func (h *rateHandler) createRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	rate, err := h.rateService.CreateRate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rate"})
		}
		return
	}

	logger.Info("Rate created", slog.String("rate_id", rate.RateID), slog.String("service_type", rate.ServiceType))
	c.JSON(http.StatusCreated, dto.ToRateResponse(*rate))
}

// listRates godoc
// @Summary List catalog rates
// @Tags rates
// @Produce json
// @Success 200 {array} dto.RateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Security BearerAuth
// @Router /rates [get]
func (h *rateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.ListRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRateResponses(rates))
}

// deactivateRate godoc
// @Summary Deactivate a catalog rate
// @Description Marks a rate inactive so new transactions no longer price from it. Historical rows are unaffected.
// @Tags rates
// @Produce json
// @Param rateID path string true "Rate ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Rate not found"
// @Failure 500 {object} map[string]string "Failed to deactivate rate"
// @Security BearerAuth
// @Router /rates/{rateID} [delete]
func (h *rateHandler) deactivateRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rateID := c.Param("rateID")

	if err := h.rateService.DeactivateRate(c.Request.Context(), rateID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Rate not found for deactivation", slog.String("rate_id", rateID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate not found"})
		} else {
			logger.Error("Failed to deactivate rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate rate"})
		}
		return
	}

	logger.Info("Rate deactivated", slog.String("rate_id", rateID))
	c.Status(http.StatusNoContent)
}

// createExpense godoc
// @Summary Record an expense
// @Description Records a dated expense consumed by the end-of-day summary. Date defaults to today.
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record expense"
// @Security BearerAuth
// @Router /expenses [post]
func (h *rateHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording expense", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record expense", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record expense"})
		}
		return
	}

	logger.Info("Expense recorded", slog.String("expense_id", expense.ExpenseID), slog.String("date", expense.Date))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(*expense))
}

// listExpensesByDate godoc
// @Summary List expenses for a date
// @Tags expenses
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Missing or malformed date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list expenses"
// @Security BearerAuth
// @Router /expenses [get]
func (h *rateHandler) listExpensesByDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	date := c.Query("date")
	if !dateParam.MatchString(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter must be YYYY-MM-DD"})
		return
	}

	expenses, err := h.expenseService.ListExpensesByDate(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to list expenses", slog.String("date", date), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expenses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponses(expenses))
}
