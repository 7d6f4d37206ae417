package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/sabaipos/pos_backend/internal/apperrors"
	portssvc "github.com/sabaipos/pos_backend/internal/core/ports/services"
	"github.com/sabaipos/pos_backend/internal/dto"
	"github.com/sabaipos/pos_backend/internal/middleware"
)

var (
	dateParam  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthParam = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// transactionHandler handles HTTP requests for the transaction ledger.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// registerTransactionRoutes registers routes related to the ledger.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listByDate)
		transactions.GET("/most-recent", h.mostRecentActive)
		transactions.POST("/correction", h.correctMostRecent)
		transactions.GET("/:transactionID", h.getTransaction)
	}

	archive := rg.Group("/archive")
	{
		archive.GET("/transactions", h.listArchivedByMonth)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Prices the entry from the service catalog and appends an active ledger row, then credits the staff member's fee total on the roster.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No catalog rate matches"
// @Failure 409 {object} map[string]string "Transaction id collision"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	logger = logger.With(slog.String("staff_name", req.StaffName), slog.String("service_type", req.ServiceType))

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No catalog rate for transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) || errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Transaction id collision persisted past retry", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": "Transaction id collision, try again"})
		} else {
			logger.Error("Failed to record transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		}
		return
	}

	logger.Info("Transaction recorded", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*txn))
}

// correctMostRecent godoc
// @Summary Correct the most recent transaction
// @Description Voids the most recent active ledger row and records a linked replacement in its place. Both rows are returned.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Corrected transaction details"
// @Success 200 {object} dto.CorrectionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No catalog rate matches"
// @Failure 409 {object} map[string]string "Nothing to correct"
// @Failure 500 {object} map[string]string "Failed to correct transaction"
// @Security BearerAuth
// @Router /transactions/correction [post]
func (h *transactionHandler) correctMostRecent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CorrectMostRecent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	voided, replacement, err := h.transactionService.CorrectMostRecent(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			logger.Warn("Correction refused", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No catalog rate for correction", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error correcting transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Concurrent correction conflict", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": "Another correction is in progress, try again"})
		} else {
			logger.Error("Failed to correct transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to correct transaction"})
		}
		return
	}

	logger.Info("Transaction corrected",
		slog.String("voided_id", voided.TransactionID),
		slog.String("replacement_id", replacement.TransactionID))
	c.JSON(http.StatusOK, dto.CorrectionResponse{
		Voided:      dto.ToTransactionResponse(*voided),
		Replacement: dto.ToTransactionResponse(*replacement),
	})
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	txn, err := h.transactionService.GetByTransactionID(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found", slog.String("transaction_id", transactionID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to get transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(*txn))
}

// listByDate godoc
// @Summary List transactions for a date
// @Description Returns every ledger row dated the given day, newest first. Voided and corrected rows are included.
// @Tags transactions
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Missing or malformed date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listByDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	date := c.Query("date")
	if !dateParam.MatchString(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter must be YYYY-MM-DD"})
		return
	}

	txns, err := h.transactionService.ListByDate(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("date", date), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// mostRecentActive godoc
// @Summary Get the most recent active transaction
// @Description Returns the ledger row a correction would target.
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No active transaction"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/most-recent [get]
func (h *transactionHandler) mostRecentActive(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txn, err := h.transactionService.MostRecentActive(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active transaction"})
		} else {
			logger.Error("Failed to get most recent active transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(*txn))
}

// listArchivedByMonth godoc
// @Summary List archived transactions for a month
// @Description Returns archive rows dated within the given month.
// @Tags transactions
// @Produce json
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {array} dto.ArchivedTransactionResponse
// @Failure 400 {object} map[string]string "Missing or malformed month"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list archive"
// @Security BearerAuth
// @Router /archive/transactions [get]
func (h *transactionHandler) listArchivedByMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	month := c.Query("month")
	if !monthParam.MatchString(month) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month query parameter must be YYYY-MM"})
		return
	}

	rows, err := h.transactionService.ListArchivedByMonth(c.Request.Context(), month)
	if err != nil {
		logger.Error("Failed to list archived transactions", slog.String("month", month), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list archive"})
		return
	}

	c.JSON(http.StatusOK, dto.ToArchivedTransactionResponses(rows))
}
