package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sabaipos/pos_backend/internal/apperrors"
	portssvc "github.com/sabaipos/pos_backend/internal/core/ports/services"
	"github.com/sabaipos/pos_backend/internal/dto"
	"github.com/sabaipos/pos_backend/internal/middleware"
)

// rosterHandler handles HTTP requests for the roster queue.
type rosterHandler struct {
	rosterService portssvc.RosterSvcFacade
	loc           *time.Location
}

func newRosterHandler(rs portssvc.RosterSvcFacade, loc *time.Location) *rosterHandler {
	return &rosterHandler{
		rosterService: rs,
		loc:           loc,
	}
}

// registerRosterRoutes registers routes related to the roster queue.
func registerRosterRoutes(rg *gin.RouterGroup, rosterService portssvc.RosterSvcFacade, loc *time.Location) {
	h := newRosterHandler(rosterService, loc)

	roster := rg.Group("/roster")
	{
		roster.GET("", h.getRoster)
		roster.PUT("/slots/:position", h.updateSlot)
		roster.POST("/sweep", h.sweepExpired)
		roster.POST("/serve-next", h.serveNext)
		roster.POST("/advance", h.advanceQueue)
		roster.POST("/busy-until", h.setBusyUntil)
		roster.POST("/seed", h.seedTemplate)
	}
}

// getRoster godoc
// @Summary Get the roster
// @Description Returns every roster slot in position order. Expired timed-busy entries are swept back to available before the read.
// @Tags roster
// @Produce json
// @Success 200 {array} dto.RosterEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve roster"
// @Security BearerAuth
// @Router /roster [get]
func (h *rosterHandler) getRoster(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.rosterService.GetRoster(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get roster from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve roster"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRosterEntryResponses(entries, h.loc))
}

// updateSlot godoc
// @Summary Update a roster slot
// @Description Changes the name and/or status of one slot. An empty staffName clears the slot.
// @Tags roster
// @Accept json
// @Produce json
// @Param position path int true "Slot position (1-based)"
// @Param slot body dto.UpdateRosterSlotRequest true "Fields to change"
// @Success 200 {object} dto.RosterEntryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Slot not found"
// @Failure 409 {object} map[string]string "Conflicting status change"
// @Failure 500 {object} map[string]string "Failed to update slot"
// @Security BearerAuth
// @Router /roster/slots/{position} [put]
func (h *rosterHandler) updateSlot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	position, err := strconv.Atoi(c.Param("position"))
	if err != nil || position < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slot position"})
		return
	}

	var req dto.UpdateRosterSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSlot", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	logger = logger.With(slog.Int("position", position))

	entry, err := h.rosterService.UpdateSlot(c.Request.Context(), position, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Slot not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Slot not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating slot", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Conflicting slot update", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update slot in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update slot"})
		}
		return
	}

	logger.Info("Roster slot updated", slog.String("status", string(entry.Status.Kind)))
	c.JSON(http.StatusOK, dto.ToRosterEntryResponse(*entry, h.loc))
}

// sweepExpired godoc
// @Summary Sweep expired timed-busy entries
// @Description Clears every timed-busy entry whose expiry has passed. Idempotent.
// @Tags roster
// @Produce json
// @Success 200 {object} dto.SweepResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to sweep roster"
// @Security BearerAuth
// @Router /roster/sweep [post]
func (h *rosterHandler) sweepExpired(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cleared, err := h.rosterService.SweepExpired(c.Request.Context())
	if err != nil {
		logger.Error("Failed to sweep roster", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sweep roster"})
		return
	}

	if cleared > 0 {
		logger.Info("Swept expired roster entries", slog.Int("cleared", cleared))
	}
	c.JSON(http.StatusOK, dto.SweepResponse{Cleared: cleared})
}

// serveNext godoc
// @Summary Assign the next customer
// @Description Assigns the walk-in customer to the slot marked next. That slot becomes busy; a previous plain-busy holder moves to break.
// @Tags roster
// @Produce json
// @Success 200 {object} dto.ServeNextResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "No masseuse available"
// @Failure 500 {object} map[string]string "Failed to serve next"
// @Security BearerAuth
// @Router /roster/serve-next [post]
func (h *rosterHandler) serveNext(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entry, err := h.rosterService.ServeNext(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			logger.Warn("Serve-next refused", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to serve next", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serve next"})
		}
		return
	}

	logger.Info("Customer assigned", slog.String("staff_name", entry.StaffName), slog.Int("position", entry.Position))
	c.JSON(http.StatusOK, dto.ServeNextResponse{Entry: dto.ToRosterEntryResponse(*entry, h.loc)})
}

// advanceQueue godoc
// @Summary Advance the next marker
// @Description Moves the next marker past the named staff member to the following eligible occupied slot, wrapping from the last position. An empty queue or a name mismatch is reported with advanced=false, not an error.
// @Tags roster
// @Accept json
// @Produce json
// @Param advance body dto.AdvanceQueueRequest true "Current next holder"
// @Success 200 {object} dto.AdvanceQueueResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to advance queue"
// @Security BearerAuth
// @Router /roster/advance [post]
func (h *rosterHandler) advanceQueue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AdvanceQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AdvanceQueue", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	outcome, err := h.rosterService.AdvanceQueue(c.Request.Context(), req.CurrentName)
	if err != nil {
		logger.Error("Failed to advance queue", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to advance queue"})
		return
	}

	resp := dto.AdvanceQueueResponse{
		Advanced: outcome.Advanced,
		Message:  outcome.Reason,
	}
	if outcome.NewNext != nil {
		entry := dto.ToRosterEntryResponse(*outcome.NewNext, h.loc)
		resp.NewNext = &entry
	}

	if outcome.Advanced {
		logger.Info("Queue advanced", slog.String("new_next", outcome.NewNext.StaffName))
	} else {
		logger.Info("Queue not advanced", slog.String("reason", outcome.Reason))
	}
	c.JSON(http.StatusOK, resp)
}

// setBusyUntil godoc
// @Summary Mark a staff member busy until a time
// @Description Marks the named staff member busy until a wall-clock time ("HH:MM" or "h:mm AM/PM") on today's shop-local date.
// @Tags roster
// @Accept json
// @Produce json
// @Param busyUntil body dto.SetBusyUntilRequest true "Staff name and expiry time"
// @Success 200 {object} dto.RosterEntryResponse
// @Failure 400 {object} map[string]string "Invalid time string"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Staff member not on roster"
// @Failure 500 {object} map[string]string "Failed to set busy-until"
// @Security BearerAuth
// @Router /roster/busy-until [post]
func (h *rosterHandler) setBusyUntil(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetBusyUntilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetBusyUntil", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	logger = logger.With(slog.String("staff_name", req.StaffName))

	entry, err := h.rosterService.SetBusyUntil(c.Request.Context(), req.StaffName, req.Until)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid busy-until time", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Staff member not on roster")
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not on roster"})
		} else {
			logger.Error("Failed to set busy-until", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set busy-until"})
		}
		return
	}

	logger.Info("Busy-until set", slog.String("until", req.Until))
	c.JSON(http.StatusOK, dto.ToRosterEntryResponse(*entry, h.loc))
}

// seedTemplate godoc
// @Summary Seed the roster template
// @Description Ensures the fixed roster slots exist. Existing slots are left untouched.
// @Tags roster
// @Accept json
// @Produce json
// @Param seed body dto.SeedTemplateRequest true "Roster size (0 for the configured default)"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to seed roster"
// @Security BearerAuth
// @Router /roster/seed [post]
func (h *rosterHandler) seedTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SeedTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SeedTemplate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	if err := h.rosterService.SeedTemplate(c.Request.Context(), req.Size); err != nil {
		logger.Error("Failed to seed roster", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed roster"})
		return
	}

	logger.Info("Roster template seeded")
	c.Status(http.StatusNoContent)
}
