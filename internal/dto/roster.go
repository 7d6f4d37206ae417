package dto

import (
	"time"

	"github.com/sabaipos/pos_backend/internal/core/domain"
	"github.com/sabaipos/pos_backend/internal/utils/timeutil"
	"github.com/shopspring/decimal"
)

// RosterStatusRequest carries a requested status change. BusyUntil is a
// wall-clock time string ("HH:MM" or "h:mm AM/PM") and is required only for
// kind BUSY_UNTIL.
type RosterStatusRequest struct {
	Kind      string `json:"kind" binding:"required,oneof=AVAILABLE NEXT BUSY BUSY_UNTIL BREAK OFF"`
	BusyUntil string `json:"busyUntil,omitempty"`
}

// UpdateRosterSlotRequest mutates name and/or status of one slot. Nil fields
// are left unchanged; an explicit empty StaffName clears the slot.
type UpdateRosterSlotRequest struct {
	StaffName *string              `json:"staffName,omitempty"`
	Status    *RosterStatusRequest `json:"status,omitempty"`
}

// SetBusyUntilRequest marks the named staff member busy until a wall-clock time.
type SetBusyUntilRequest struct {
	StaffName string `json:"staffName" binding:"required"`
	Until     string `json:"until" binding:"required"`
}

// AdvanceQueueRequest moves the Next marker past the named staff member.
type AdvanceQueueRequest struct {
	CurrentName string `json:"currentName" binding:"required"`
}

// SeedTemplateRequest creates the fixed roster slots. Size zero means the
// configured default.
type SeedTemplateRequest struct {
	Size int `json:"size" binding:"omitempty,min=1,max=50"`
}

// RosterEntryResponse is the API shape of one roster slot.
type RosterEntryResponse struct {
	Position    int             `json:"position"`
	StaffName   string          `json:"staffName"`
	Status      string          `json:"status"`
	BusyUntil   string          `json:"busyUntil,omitempty"`
	TodayCount  int             `json:"todayCount"`
	FeeTotal    decimal.Decimal `json:"feeTotal"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// ToRosterEntryResponse converts a domain entry, rendering a timed busy expiry
// as shop-local "HH:MM".
func ToRosterEntryResponse(e domain.RosterEntry, loc *time.Location) RosterEntryResponse {
	resp := RosterEntryResponse{
		Position:    e.Position,
		StaffName:   e.StaffName,
		Status:      string(e.Status.Kind),
		TodayCount:  e.TodayCount,
		FeeTotal:    e.FeeTotal,
		LastUpdated: e.LastUpdated,
	}
	if e.Status.Kind == domain.StatusBusyUntil && e.Status.BusyUntil != nil {
		resp.BusyUntil = timeutil.FormatClock(*e.Status.BusyUntil, loc)
	}
	return resp
}

// ToRosterEntryResponses converts a full roster listing.
func ToRosterEntryResponses(entries []domain.RosterEntry, loc *time.Location) []RosterEntryResponse {
	out := make([]RosterEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = ToRosterEntryResponse(e, loc)
	}
	return out
}

// SweepResponse reports how many timed-out slots a sweep cleared.
type SweepResponse struct {
	Cleared int `json:"cleared"`
}

// ServeNextResponse names the staff member assigned to the walk-in customer.
type ServeNextResponse struct {
	Entry RosterEntryResponse `json:"entry"`
}

// AdvanceQueueResponse reports the outcome of an advancement attempt. An empty
// queue or a manual-override mismatch is a legitimate non-error outcome with
// Advanced false.
type AdvanceQueueResponse struct {
	Advanced bool                 `json:"advanced"`
	NewNext  *RosterEntryResponse `json:"newNext,omitempty"`
	Message  string               `json:"message,omitempty"`
}
