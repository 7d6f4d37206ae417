package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RosterStatusKind enumerates the availability states of a roster slot.
type RosterStatusKind string

const (
	StatusAvailable RosterStatusKind = "AVAILABLE"
	StatusNext      RosterStatusKind = "NEXT"
	StatusBusy      RosterStatusKind = "BUSY"
	StatusBusyUntil RosterStatusKind = "BUSY_UNTIL"
	StatusBreak     RosterStatusKind = "BREAK"
	StatusOff       RosterStatusKind = "OFF"
)

// RosterStatus is a tagged variant: BusyUntil is set only when Kind is
// StatusBusyUntil and carries the absolute expiry instant. Storing an instant
// rather than a bare time-of-day keeps expiry well defined across midnight.
type RosterStatus struct {
	Kind      RosterStatusKind `json:"kind"`
	BusyUntil *time.Time       `json:"busyUntil,omitempty"`
}

// Available returns the default status of an occupied slot.
func Available() RosterStatus {
	return RosterStatus{Kind: StatusAvailable}
}

// Next marks the slot that receives the next customer.
func Next() RosterStatus {
	return RosterStatus{Kind: StatusNext}
}

// Busy marks the slot currently serving a customer with no known end time.
func Busy() RosterStatus {
	return RosterStatus{Kind: StatusBusy}
}

// BusyUntil marks the slot busy until the given instant, after which the
// sweeper resets it to Available.
func BusyUntil(until time.Time) RosterStatus {
	return RosterStatus{Kind: StatusBusyUntil, BusyUntil: &until}
}

// OnBreak marks the slot as resting between customers.
func OnBreak() RosterStatus {
	return RosterStatus{Kind: StatusBreak}
}

// Off marks the slot as not working today. Off slots are skipped by queue
// advancement and left untouched by the end-of-day reset.
func Off() RosterStatus {
	return RosterStatus{Kind: StatusOff}
}

// Expired reports whether a timed busy status has elapsed as of now.
// Non-timed statuses never expire.
func (s RosterStatus) Expired(now time.Time) bool {
	if s.Kind != StatusBusyUntil || s.BusyUntil == nil {
		return false
	}
	return !now.Before(*s.BusyUntil)
}

// QueueEligible reports whether a slot in this status may be marked Next.
// Off staff are not queued; Busy and BusyUntil slots are mid-service.
func (s RosterStatus) QueueEligible() bool {
	switch s.Kind {
	case StatusAvailable, StatusBreak:
		return true
	default:
		return false
	}
}

// RosterEntry is a fixed, position-numbered seat in the daily staff queue.
// Position is the stable identity of the slot, not of the person sitting in
// it; an empty StaffName means the slot is unoccupied.
type RosterEntry struct {
	Position    int             `json:"position"`
	StaffName   string          `json:"staffName"`
	Status      RosterStatus    `json:"status"`
	TodayCount  int             `json:"todayCount"`
	FeeTotal    decimal.Decimal `json:"feeTotal"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// Occupied reports whether a staff member is assigned to the slot.
func (e RosterEntry) Occupied() bool {
	return e.StaffName != ""
}

// AdvanceOutcome reports a queue advancement attempt. Advanced false with a
// Reason is a legitimate outcome (manual override mismatch, empty queue), not
// an error.
type AdvanceOutcome struct {
	Advanced bool
	NewNext  *RosterEntry
	Reason   string
}
