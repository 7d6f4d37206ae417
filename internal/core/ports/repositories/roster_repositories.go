package repositories

import (
	"context"
	"time"

	"github.com/sabaipos/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RosterReader defines read operations over the fixed roster slots.
type RosterReader interface {
	// ListEntries returns every slot in ascending position order. todayDate
	// (shop-local "2006-01-02") keys the derived per-staff count of today's
	// Active transactions.
	ListEntries(ctx context.Context, todayDate string) ([]domain.RosterEntry, error)

	// FindEntryByPosition retrieves a single slot.
	FindEntryByPosition(ctx context.Context, position int) (*domain.RosterEntry, error)

	// FindEntryByName retrieves the slot occupied by the named staff member.
	FindEntryByName(ctx context.Context, staffName string) (*domain.RosterEntry, error)
}

// RosterWriter defines write operations over the roster slots.
type RosterWriter interface {
	// UpdateEntry persists name and status of one slot, stamping last_updated.
	UpdateEntry(ctx context.Context, entry domain.RosterEntry) error

	// ApplyStatusChanges persists the status of multiple slots within a single
	// database transaction, so sweep and advancement write-sets land atomically.
	ApplyStatusChanges(ctx context.Context, entries []domain.RosterEntry) error

	// IncrementFeeTotal adds fee to the named staff member's cumulative fee
	// total. Unknown names are a no-op, not an error: walk-in staff may take
	// transactions without holding a roster slot.
	IncrementFeeTotal(ctx context.Context, staffName string, fee decimal.Decimal, now time.Time) error

	// ResetStatuses returns every slot whose status is not Off to Available and
	// reports how many slots changed.
	ResetStatuses(ctx context.Context, now time.Time) (int, error)

	// SeedTemplate ensures slots 1..size exist, creating missing ones empty and
	// Available. Existing slots are left untouched.
	SeedTemplate(ctx context.Context, size int, now time.Time) error
}

// RosterRepositoryFacade combines all roster repository interfaces.
type RosterRepositoryFacade interface {
	RosterReader
	RosterWriter
}
