package pgsql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/sabaipos/pos_backend/internal/apperrors"
	"github.com/sabaipos/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRosterMock(t *testing.T) (pgxmock.PgxPoolIface, *PgxRosterRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, &PgxRosterRepository{BaseRepository: BaseRepository{Pool: mock}}
}

func TestRosterRepository_ListEntries(t *testing.T) {
	mock, repo := newRosterMock(t)

	now := time.Now()
	busyUntil := now.Add(30 * time.Minute)
	rows := pgxmock.NewRows([]string{"position", "staff_name", "status_kind", "busy_until", "txn_count", "fee_total", "last_updated"}).
		AddRow(1, "Anong", "BUSY_UNTIL", &busyUntil, 3, decimal.NewFromInt(360), now).
		AddRow(2, "", "AVAILABLE", nil, 0, decimal.Zero, now)

	mock.ExpectQuery("FROM roster_entries r").
		WithArgs("2026-03-14").
		WillReturnRows(rows)

	entries, err := repo.ListEntries(context.Background(), "2026-03-14")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, domain.StatusBusyUntil, entries[0].Status.Kind)
	require.NotNil(t, entries[0].Status.BusyUntil)
	assert.True(t, entries[0].Status.BusyUntil.Equal(busyUntil))
	assert.Equal(t, 3, entries[0].TodayCount)

	assert.False(t, entries[1].Occupied())
	assert.Nil(t, entries[1].Status.BusyUntil)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRosterRepository_FindEntryByName_NotFound(t *testing.T) {
	mock, repo := newRosterMock(t)

	mock.ExpectQuery("FROM roster_entries").
		WithArgs("Nobody").
		WillReturnError(errors.New("no rows in result set"))

	// Empty names never hit the database.
	_, err := repo.FindEntryByName(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRosterRepository_UpdateEntry_UnknownPosition(t *testing.T) {
	mock, repo := newRosterMock(t)

	mock.ExpectExec("UPDATE roster_entries").
		WithArgs(99, "Anong", "BUSY", nil, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateEntry(context.Background(), domain.RosterEntry{
		Position:  99,
		StaffName: "Anong",
		Status:    domain.Busy(),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRosterRepository_UpdateEntry_StatusCollision(t *testing.T) {
	mock, repo := newRosterMock(t)

	mock.ExpectExec("UPDATE roster_entries").
		WithArgs(2, "Boonsri", "NEXT", nil, pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "roster_entries_single_next"})

	err := repo.UpdateEntry(context.Background(), domain.RosterEntry{
		Position:  2,
		StaffName: "Boonsri",
		Status:    domain.Next(),
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestRosterRepository_ApplyStatusChanges(t *testing.T) {
	mock, repo := newRosterMock(t)

	now := time.Now()
	changes := []domain.RosterEntry{
		{Position: 1, StaffName: "Anong", Status: domain.Available(), LastUpdated: now},
		{Position: 3, StaffName: "Chailai", Status: domain.Next(), LastUpdated: now},
	}

	mock.ExpectBegin()
	batch := mock.ExpectBatch()
	batch.ExpectExec("UPDATE roster_entries").
		WithArgs(1, "AVAILABLE", nil, now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	batch.ExpectExec("UPDATE roster_entries").
		WithArgs(3, "NEXT", nil, now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	err := repo.ApplyStatusChanges(context.Background(), changes)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRosterRepository_ApplyStatusChanges_EmptyIsNoOp(t *testing.T) {
	mock, repo := newRosterMock(t)

	err := repo.ApplyStatusChanges(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRosterRepository_ResetStatuses(t *testing.T) {
	mock, repo := newRosterMock(t)

	now := time.Now()
	mock.ExpectExec("UPDATE roster_entries").
		WithArgs(now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 5))

	count, err := repo.ResetStatuses(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestRosterRepository_SeedTemplate(t *testing.T) {
	mock, repo := newRosterMock(t)

	now := time.Now()
	mock.ExpectExec("INSERT INTO roster_entries").
		WithArgs(10, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 10))

	err := repo.SeedTemplate(context.Background(), 10, now)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRosterRepository_IncrementFeeTotal_UnknownNameNoOp(t *testing.T) {
	mock, repo := newRosterMock(t)

	now := time.Now()
	mock.ExpectExec("UPDATE roster_entries").
		WithArgs("Ghost", decimal.NewFromInt(120), now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.IncrementFeeTotal(context.Background(), "Ghost", decimal.NewFromInt(120), now)
	require.NoError(t, err)
}
