package services

import (
	"context"

	"github.com/sabaipos/pos_backend/internal/core/domain"
	"github.com/sabaipos/pos_backend/internal/dto"
)

// RosterSvcFacade is the roster queue state machine: slot reads (always swept
// first), slot updates, timed-busy expiry and the next-customer assignment
// algorithms. Implementations serialize all mutations behind a single writer.
type RosterSvcFacade interface {
	// GetRoster sweeps expired timed-busy entries, then returns every slot in
	// position order.
	GetRoster(ctx context.Context) ([]domain.RosterEntry, error)

	// UpdateSlot mutates name and/or status of one slot.
	UpdateSlot(ctx context.Context, position int, req dto.UpdateRosterSlotRequest) (*domain.RosterEntry, error)

	// SweepExpired clears timed-out BusyUntil entries, returning how many were
	// reset. Idempotent: a sweep with nothing expired returns 0.
	SweepExpired(ctx context.Context) (int, error)

	// ServeNext assigns the walk-in customer to the slot marked Next: the slot
	// becomes Busy and any previous plain-Busy holder moves to Break.
	// apperrors.ErrInvalidState when no slot is marked Next.
	ServeNext(ctx context.Context) (*domain.RosterEntry, error)

	// AdvanceQueue moves the Next marker past currentName to the following
	// eligible occupied slot, wrapping around from the last position.
	AdvanceQueue(ctx context.Context, currentName string) (*domain.AdvanceOutcome, error)

	// SetBusyUntil marks the named staff member busy until a wall-clock time
	// string ("HH:MM" or "h:mm AM/PM"), resolved to an absolute instant on
	// today's shop-local date.
	SetBusyUntil(ctx context.Context, staffName, until string) (*domain.RosterEntry, error)

	// ResetForNewDay returns every non-Off slot to Available; used by the
	// end-of-day pipeline.
	ResetForNewDay(ctx context.Context) (int, error)

	// SeedTemplate ensures the fixed roster slots exist. Size zero means the
	// configured default.
	SeedTemplate(ctx context.Context, size int) error
}
