package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RosterStatusKind mirrors the domain status kinds as stored in the
// roster_entries.status_kind column.
type RosterStatusKind string

const (
	StatusAvailable RosterStatusKind = "AVAILABLE"
	StatusNext      RosterStatusKind = "NEXT"
	StatusBusy      RosterStatusKind = "BUSY"
	StatusBusyUntil RosterStatusKind = "BUSY_UNTIL"
	StatusBreak     RosterStatusKind = "BREAK"
	StatusOff       RosterStatusKind = "OFF"
)

// RosterEntry is the persistence shape of a roster slot. The status variant is
// stored as a kind column plus a nullable busy_until timestamp; TodayCount is
// derived at read time from the ledger and never stored.
type RosterEntry struct {
	Position    int              `json:"position"`
	StaffName   string           `json:"staffName"`
	StatusKind  RosterStatusKind `json:"statusKind"`
	BusyUntil   *time.Time       `json:"busyUntil,omitempty"`
	TodayCount  int              `json:"todayCount"`
	FeeTotal    decimal.Decimal  `json:"feeTotal"`
	LastUpdated time.Time        `json:"lastUpdated"`
}
