package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/sabaipos/pos_backend/internal/apperrors"
	"github.com/sabaipos/pos_backend/internal/core/domain"
	portsrepo "github.com/sabaipos/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/sabaipos/pos_backend/internal/core/ports/services"
	"github.com/sabaipos/pos_backend/internal/dto"
	"github.com/sabaipos/pos_backend/internal/middleware"
	"github.com/sabaipos/pos_backend/internal/utils/timeutil"
)

// rosterService implements the roster queue state machine. A single mutex
// serializes every read-modify-write sequence (sweep-then-advance,
// serve-next) so two concurrent assignments cannot interleave.
type rosterService struct {
	repo portsrepo.RosterRepositoryFacade
	size int
	loc  *time.Location
	now  func() time.Time

	mu sync.Mutex
}

// RosterOption customizes a rosterService.
type RosterOption func(*rosterService)

// WithRosterClock overrides the wall clock, primarily for tests.
func WithRosterClock(now func() time.Time) RosterOption {
	return func(s *rosterService) {
		s.now = now
	}
}

// NewRosterService creates the roster service. size is the fixed number of
// slots; loc is the shop's timezone, used for all wall-clock work.
func NewRosterService(repo portsrepo.RosterRepositoryFacade, size int, loc *time.Location, opts ...RosterOption) portssvc.RosterSvcFacade {
	s := &rosterService{
		repo: repo,
		size: size,
		loc:  loc,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.RosterSvcFacade = (*rosterService)(nil)

func (s *rosterService) todayDate() string {
	return s.now().In(s.loc).Format("2006-01-02")
}

// sweepLocked clears expired timed-busy entries and returns the post-sweep
// roster. Caller must hold s.mu.
func (s *rosterService) sweepLocked(ctx context.Context) (int, []domain.RosterEntry, error) {
	entries, err := s.repo.ListEntries(ctx, s.todayDate())
	if err != nil {
		return 0, nil, fmt.Errorf("failed to list roster entries: %w", err)
	}

	now := s.now()
	var expired []domain.RosterEntry
	for i := range entries {
		if !entries[i].Occupied() {
			continue
		}
		if entries[i].Status.Expired(now) {
			entries[i].Status = domain.Available()
			entries[i].LastUpdated = now
			expired = append(expired, entries[i])
		}
	}

	if len(expired) == 0 {
		return 0, entries, nil
	}
	if err := s.repo.ApplyStatusChanges(ctx, expired); err != nil {
		return 0, nil, fmt.Errorf("failed to clear expired busy entries: %w", err)
	}
	return len(expired), entries, nil
}

// GetRoster sweeps first, so readers never observe a stale timed-busy entry.
func (s *rosterService) GetRoster(ctx context.Context) ([]domain.RosterEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, entries, err := s.sweepLocked(ctx)
	return entries, err
}

func (s *rosterService) SweepExpired(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := middleware.GetLoggerFromCtx(ctx)
	count, _, err := s.sweepLocked(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Info("Cleared expired busy entries", slog.Int("count", count))
	}
	return count, nil
}

// ServeNext assigns the walk-in customer: the slot marked Next becomes Busy,
// and any previous plain-Busy holder moves to Break. Only a slot explicitly
// marked Next is eligible; the roster never holds two plain-Busy slots after
// this returns.
func (s *rosterService) ServeNext(ctx context.Context) (*domain.RosterEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := middleware.GetLoggerFromCtx(ctx)

	_, entries, err := s.sweepLocked(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var chosen *domain.RosterEntry
	changes := make([]domain.RosterEntry, 0, 2)

	for i := range entries {
		if !entries[i].Occupied() {
			continue
		}
		if chosen == nil && entries[i].Status.Kind == domain.StatusNext {
			entries[i].Status = domain.Busy()
			entries[i].LastUpdated = now
			chosen = &entries[i]
			changes = append(changes, entries[i])
			continue
		}
		if entries[i].Status.Kind == domain.StatusBusy {
			entries[i].Status = domain.OnBreak()
			entries[i].LastUpdated = now
			changes = append(changes, entries[i])
		}
	}

	if chosen == nil {
		return nil, fmt.Errorf("%w: no masseuse available", apperrors.ErrInvalidState)
	}

	if err := s.repo.ApplyStatusChanges(ctx, changes); err != nil {
		return nil, fmt.Errorf("failed to persist serve-next assignment: %w", err)
	}

	logger.Info("Assigned next customer", slog.String("staff_name", chosen.StaffName), slog.Int("position", chosen.Position))
	return chosen, nil
}

// AdvanceQueue moves the Next marker past currentName. A name mismatch is a
// manual override and a no-op; an empty queue is a legitimate outcome, not an
// error. Eligibility: occupied slots in Available or Break status. The slot
// being advanced past is never re-selected in the same call.
func (s *rosterService) AdvanceQueue(ctx context.Context, currentName string) (*domain.AdvanceOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := middleware.GetLoggerFromCtx(ctx)

	_, entries, err := s.sweepLocked(ctx)
	if err != nil {
		return nil, err
	}

	currentIdx := -1
	for i := range entries {
		if entries[i].Status.Kind == domain.StatusNext {
			currentIdx = i
			break
		}
	}
	if currentIdx == -1 {
		return &domain.AdvanceOutcome{Advanced: false, Reason: "no slot is marked next"}, nil
	}
	if entries[currentIdx].StaffName != currentName {
		logger.Info("Advance skipped, next marker holds a different name",
			slog.String("requested", currentName), slog.String("current", entries[currentIdx].StaffName))
		return &domain.AdvanceOutcome{Advanced: false, Reason: "next marker belongs to another staff member"}, nil
	}

	now := s.now()
	entries[currentIdx].Status = domain.Available()
	entries[currentIdx].LastUpdated = now

	// Forward from the cleared slot, then wrap from position 1, skipping the
	// cleared slot itself.
	n := len(entries)
	nextIdx := -1
	for step := 1; step < n; step++ {
		i := (currentIdx + step) % n
		if entries[i].Occupied() && entries[i].Status.QueueEligible() {
			nextIdx = i
			break
		}
	}

	changes := []domain.RosterEntry{entries[currentIdx]}
	outcome := &domain.AdvanceOutcome{Advanced: false, Reason: "nothing to advance to"}
	if nextIdx != -1 {
		entries[nextIdx].Status = domain.Next()
		entries[nextIdx].LastUpdated = now
		changes = append(changes, entries[nextIdx])
		next := entries[nextIdx]
		outcome = &domain.AdvanceOutcome{Advanced: true, NewNext: &next}
	}

	if err := s.repo.ApplyStatusChanges(ctx, changes); err != nil {
		return nil, fmt.Errorf("failed to persist queue advancement: %w", err)
	}

	if outcome.Advanced {
		logger.Info("Queue advanced", slog.String("new_next", outcome.NewNext.StaffName), slog.Int("position", outcome.NewNext.Position))
	}
	return outcome, nil
}

// SetBusyUntil resolves a wall-clock time string to an absolute instant and
// marks the named staff member busy until then. The time is anchored to
// today's shop-local date; if the resolved instant is not in the future (the
// shop is open past midnight and reception entered "00:30" at 23:50), it
// rolls forward one day so the hold is not swept on the next read.
func (s *rosterService) SetBusyUntil(ctx context.Context, staffName, until string) (*domain.RosterEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized, err := timeutil.Normalize(until)
	if err != nil {
		return nil, err
	}
	now := s.now()
	instant, err := timeutil.ResolveOnDay(normalized, now, s.loc)
	if err != nil {
		return nil, err
	}
	if !instant.After(now) {
		instant = instant.AddDate(0, 0, 1)
	}

	entry, err := s.repo.FindEntryByName(ctx, staffName)
	if err != nil {
		return nil, fmt.Errorf("failed to find roster entry for %q: %w", staffName, err)
	}

	entry.Status = domain.BusyUntil(instant)
	entry.LastUpdated = now
	if err := s.repo.UpdateEntry(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to set busy-until for %q: %w", staffName, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Marked staff busy until",
		slog.String("staff_name", staffName), slog.String("until", normalized))
	return entry, nil
}

// UpdateSlot mutates name and/or status of one slot. When the new status is
// Next or plain Busy, any other holder of that status is cleared in the same
// write-set, keeping the single-Next and single-Busy invariants structural.
func (s *rosterService) UpdateSlot(ctx context.Context, position int, req dto.UpdateRosterSlotRequest) (*domain.RosterEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.repo.FindEntryByPosition(ctx, position)
	if err != nil {
		return nil, fmt.Errorf("failed to find roster slot %d: %w", position, err)
	}

	now := s.now()
	if req.StaffName != nil {
		entry.StaffName = strings.TrimSpace(*req.StaffName)
		if entry.StaffName == "" {
			// Clearing the slot also clears its status.
			entry.Status = domain.Available()
		}
	}

	if req.Status != nil {
		status, err := s.parseStatusRequest(*req.Status, now)
		if err != nil {
			return nil, err
		}
		if !entry.Occupied() && status.Kind != domain.StatusAvailable {
			return nil, fmt.Errorf("%w: cannot set status on an unoccupied slot", apperrors.ErrValidation)
		}
		entry.Status = status

		if status.Kind == domain.StatusNext || status.Kind == domain.StatusBusy {
			if err := s.clearOtherHolders(ctx, position, status.Kind, now); err != nil {
				return nil, err
			}
		}
	}

	entry.LastUpdated = now
	if err := s.repo.UpdateEntry(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to update roster slot %d: %w", position, err)
	}
	return entry, nil
}

func (s *rosterService) parseStatusRequest(req dto.RosterStatusRequest, now time.Time) (domain.RosterStatus, error) {
	kind := domain.RosterStatusKind(req.Kind)
	if kind != domain.StatusBusyUntil {
		return domain.RosterStatus{Kind: kind}, nil
	}
	normalized, err := timeutil.Normalize(req.BusyUntil)
	if err != nil {
		return domain.RosterStatus{}, err
	}
	instant, err := timeutil.ResolveOnDay(normalized, now, s.loc)
	if err != nil {
		return domain.RosterStatus{}, err
	}
	return domain.BusyUntil(instant), nil
}

// clearOtherHolders demotes any other slot currently holding kind back to
// Available, so at most one slot is Next and at most one is plain Busy.
func (s *rosterService) clearOtherHolders(ctx context.Context, keepPosition int, kind domain.RosterStatusKind, now time.Time) error {
	entries, err := s.repo.ListEntries(ctx, s.todayDate())
	if err != nil {
		return fmt.Errorf("failed to list roster entries: %w", err)
	}
	var changes []domain.RosterEntry
	for i := range entries {
		if entries[i].Position == keepPosition {
			continue
		}
		if entries[i].Status.Kind == kind {
			entries[i].Status = domain.Available()
			entries[i].LastUpdated = now
			changes = append(changes, entries[i])
		}
	}
	if len(changes) == 0 {
		return nil
	}
	if err := s.repo.ApplyStatusChanges(ctx, changes); err != nil {
		return fmt.Errorf("failed to clear previous %s holders: %w", kind, err)
	}
	return nil
}

func (s *rosterService) ResetForNewDay(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, err := s.repo.ResetStatuses(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to reset roster statuses: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Roster reset for new day", slog.Int("slots_reset", count))
	return count, nil
}

func (s *rosterService) SeedTemplate(ctx context.Context, size int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if size <= 0 {
		size = s.size
	}
	if err := s.repo.SeedTemplate(ctx, size, s.now()); err != nil {
		return fmt.Errorf("failed to seed roster template: %w", err)
	}
	return nil
}
