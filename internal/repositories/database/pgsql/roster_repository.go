package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sabaipos/pos_backend/internal/apperrors"
	"github.com/sabaipos/pos_backend/internal/core/domain"
	portsrepo "github.com/sabaipos/pos_backend/internal/core/ports/repositories"
	"github.com/sabaipos/pos_backend/internal/models"
	"github.com/sabaipos/pos_backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxRosterRepository struct {
	BaseRepository
}

// newPgxRosterRepository creates a new repository for roster slot data.
func newPgxRosterRepository(pool DBPool) portsrepo.RosterRepositoryFacade {
	return &PgxRosterRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RosterRepositoryFacade = (*PgxRosterRepository)(nil)

const rosterListQuery = `
	SELECT r.position, r.staff_name, r.status_kind, r.busy_until,
	       COALESCE(t.txn_count, 0), r.fee_total, r.last_updated
	FROM roster_entries r
	LEFT JOIN (
		SELECT staff_name, COUNT(*) AS txn_count
		FROM transactions
		WHERE date = $1 AND status = 'ACTIVE'
		GROUP BY staff_name
	) t ON t.staff_name = r.staff_name AND r.staff_name <> ''
	ORDER BY r.position;
`

// ListEntries returns every slot in position order. The per-staff count of
// today's Active transactions is derived from the ledger at read time.
func (r *PgxRosterRepository) ListEntries(ctx context.Context, todayDate string) ([]domain.RosterEntry, error) {
	rows, err := r.Pool.Query(ctx, rosterListQuery, todayDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.RosterEntry
	for rows.Next() {
		var m models.RosterEntry
		if err := rows.Scan(&m.Position, &m.StaffName, &m.StatusKind, &m.BusyUntil, &m.TodayCount, &m.FeeTotal, &m.LastUpdated); err != nil {
			return nil, fmt.Errorf("failed to scan roster entry: %w", err)
		}
		entries = append(entries, mapping.ToDomainRosterEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading roster entries: %w", err)
	}
	return entries, nil
}

const rosterFindQuery = `
	SELECT position, staff_name, status_kind, busy_until, 0, fee_total, last_updated
	FROM roster_entries
	WHERE %s = $1;
`

func (r *PgxRosterRepository) findEntry(ctx context.Context, column string, value any) (*domain.RosterEntry, error) {
	var m models.RosterEntry
	err := r.Pool.QueryRow(ctx, fmt.Sprintf(rosterFindQuery, column), value).Scan(
		&m.Position, &m.StaffName, &m.StatusKind, &m.BusyUntil, &m.TodayCount, &m.FeeTotal, &m.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find roster entry: %w", err)
	}
	entry := mapping.ToDomainRosterEntry(m)
	return &entry, nil
}

// FindEntryByPosition retrieves one slot. TodayCount is not populated here;
// callers that need it use ListEntries.
func (r *PgxRosterRepository) FindEntryByPosition(ctx context.Context, position int) (*domain.RosterEntry, error) {
	return r.findEntry(ctx, "position", position)
}

// FindEntryByName retrieves the slot occupied by the named staff member.
func (r *PgxRosterRepository) FindEntryByName(ctx context.Context, staffName string) (*domain.RosterEntry, error) {
	if staffName == "" {
		return nil, apperrors.ErrNotFound
	}
	return r.findEntry(ctx, "staff_name", staffName)
}

// UpdateEntry persists name and status of one slot.
func (r *PgxRosterRepository) UpdateEntry(ctx context.Context, entry domain.RosterEntry) error {
	m := mapping.ToModelRosterEntry(entry)
	query := `
		UPDATE roster_entries
		SET staff_name = $2, status_kind = $3, busy_until = $4, last_updated = $5
		WHERE position = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.Position, m.StaffName, m.StatusKind, m.BusyUntil, m.LastUpdated)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return fmt.Errorf("%w: status already held by another slot", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to update roster entry %d: %w", entry.Position, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ApplyStatusChanges persists the status of multiple slots within one
// database transaction so a sweep or advancement write-set lands atomically.
func (r *PgxRosterRepository) ApplyStatusChanges(ctx context.Context, entries []domain.RosterEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE roster_entries
		SET status_kind = $2, busy_until = $3, last_updated = $4
		WHERE position = $1;
	`
	batch := &pgx.Batch{}
	for _, entry := range entries {
		m := mapping.ToModelRosterEntry(entry)
		batch.Queue(query, m.Position, m.StatusKind, m.BusyUntil, m.LastUpdated)
	}

	br := tx.SendBatch(ctx, batch)
	for range entries {
		if _, err := br.Exec(); err != nil {
			br.Close()
			if _, ok := uniqueViolation(err); ok {
				return fmt.Errorf("%w: status already held by another slot", apperrors.ErrConflict)
			}
			return apperrors.NewAppError(500, "failed to apply roster status changes", err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close roster status batch", err)
	}

	return r.Commit(ctx, tx)
}

// IncrementFeeTotal adds fee to the named staff member's cumulative total.
// An unknown name affects zero rows and is not an error.
func (r *PgxRosterRepository) IncrementFeeTotal(ctx context.Context, staffName string, fee decimal.Decimal, now time.Time) error {
	query := `
		UPDATE roster_entries
		SET fee_total = fee_total + $2, last_updated = $3
		WHERE staff_name = $1;
	`
	if _, err := r.Pool.Exec(ctx, query, staffName, fee, now); err != nil {
		return fmt.Errorf("failed to increment fee total for %q: %w", staffName, err)
	}
	return nil
}

// ResetStatuses returns every non-Off slot to Available.
func (r *PgxRosterRepository) ResetStatuses(ctx context.Context, now time.Time) (int, error) {
	query := `
		UPDATE roster_entries
		SET status_kind = 'AVAILABLE', busy_until = NULL, last_updated = $1
		WHERE status_kind NOT IN ('OFF', 'AVAILABLE');
	`
	tag, err := r.Pool.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to reset roster statuses: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// SeedTemplate ensures slots 1..size exist, leaving existing slots untouched.
func (r *PgxRosterRepository) SeedTemplate(ctx context.Context, size int, now time.Time) error {
	query := `
		INSERT INTO roster_entries (position, staff_name, status_kind, fee_total, last_updated)
		SELECT s, '', 'AVAILABLE', 0, $2 FROM generate_series(1, $1) AS s
		ON CONFLICT (position) DO NOTHING;
	`
	if _, err := r.Pool.Exec(ctx, query, size, now); err != nil {
		return fmt.Errorf("failed to seed roster template: %w", err)
	}
	return nil
}
