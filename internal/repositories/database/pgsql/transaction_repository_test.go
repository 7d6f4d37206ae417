package pgsql

import (
	"context"
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

func newTxnMock(t *testing.T) (pgxmock.PgxPoolIface, *PgxTransactionRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: mock}}
}

var txnRowColumns = []string{
	"id", "transaction_id", "timestamp", "date", "staff_name", "service_type", "location",
	"duration_minutes", "payment_amount", "payment_method", "staff_fee", "start_time", "end_time",
	"customer_contact", "status", "corrected_from_id",
}

func sampleTxn(id, txnID string, status domain.TxnStatus) domain.Transaction {
	return domain.Transaction{
		ID:              id,
		TransactionID:   txnID,
		Timestamp:       time.Date(2026, 3, 14, 6, 45, 30, 0, time.UTC),
		Date:            "2026-03-14",
		StaffName:       "Anong",
		ServiceType:     "Thai Massage",
		Location:        "In-Shop",
		DurationMinutes: 60,
		PaymentAmount:   decimal.NewFromInt(350),
		PaymentMethod:   "Cash",
		StaffFee:        decimal.NewFromInt(120),
		Status:          status,
	}
}

func addTxnRow(rows *pgxmock.Rows, txn domain.Transaction) *pgxmock.Rows {
	return rows.AddRow(
		txn.ID, txn.TransactionID, txn.Timestamp, txn.Date, txn.StaffName, txn.ServiceType, txn.Location,
		txn.DurationMinutes, txn.PaymentAmount, txn.PaymentMethod, txn.StaffFee, txn.StartTime, txn.EndTime,
		nil, string(txn.Status), nil,
	)
}

func TestTransactionRepository_SaveTransaction_Duplicate(t *testing.T) {
	mock, repo := newTxnMock(t)

	mock.ExpectExec("INSERT INTO transactions").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "transactions_transaction_id_key"})

	err := repo.SaveTransaction(context.Background(), sampleTxn("id-1", "20260314134530.120", domain.TxnActive))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestTransactionRepository_FindMostRecentActive_NoRows(t *testing.T) {
	mock, repo := newTxnMock(t)

	mock.ExpectQuery("FROM transactions WHERE status = 'ACTIVE'").
		WillReturnRows(pgxmock.NewRows(txnRowColumns))

	_, err := repo.FindMostRecentActive(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTransactionRepository_AggregateForDate(t *testing.T) {
	mock, repo := newTxnMock(t)

	rows := pgxmock.NewRows([]string{"count", "revenue", "fees"}).
		AddRow(12, decimal.NewFromInt(4200), decimal.NewFromInt(1440))
	mock.ExpectQuery("FROM transactions").
		WithArgs("2026-03-14").
		WillReturnRows(rows)

	agg, err := repo.AggregateForDate(context.Background(), "2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, 12, agg.Count)
	assert.True(t, agg.Revenue.Equal(decimal.NewFromInt(4200)))
	assert.True(t, agg.Fees.Equal(decimal.NewFromInt(1440)))
}

func TestTransactionRepository_CorrectMostRecentActive(t *testing.T) {
	mock, repo := newTxnMock(t)

	original := sampleTxn("id-orig", "20260314120000.000", domain.TxnActive)
	replacement := sampleTxn("id-repl", "20260314134530.120", domain.TxnCorrected)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WillReturnRows(addTxnRow(pgxmock.NewRows(txnRowColumns), original))
	mock.ExpectExec("SET status = 'VOID'").
		WithArgs(original.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO transactions").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	voided, created, err := repo.CorrectMostRecentActive(context.Background(), replacement)
	require.NoError(t, err)

	assert.Equal(t, domain.TxnVoid, voided.Status)
	assert.Equal(t, original.TransactionID, voided.TransactionID)
	assert.Equal(t, domain.TxnCorrected, created.Status)
	// The replacement carries the voided original's id.
	assert.Equal(t, original.TransactionID, created.CorrectedFromID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_CorrectMostRecentActive_NothingActive(t *testing.T) {
	mock, repo := newTxnMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WillReturnRows(pgxmock.NewRows(txnRowColumns))
	mock.ExpectRollback()

	_, _, err := repo.CorrectMostRecentActive(context.Background(), sampleTxn("id-repl", "20260314134530.120", domain.TxnCorrected))
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_CorrectMostRecentActive_AlreadyCorrected(t *testing.T) {
	mock, repo := newTxnMock(t)

	original := sampleTxn("id-orig", "20260314120000.000", domain.TxnActive)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WillReturnRows(addTxnRow(pgxmock.NewRows(txnRowColumns), original))
	mock.ExpectExec("SET status = 'VOID'").
		WithArgs(original.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO transactions").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "transactions_corrected_from_id_key"})
	mock.ExpectRollback()

	_, _, err := repo.CorrectMostRecentActive(context.Background(), sampleTxn("id-repl", "20260314134530.120", domain.TxnCorrected))
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_ArchiveBefore(t *testing.T) {
	mock, repo := newTxnMock(t)

	archivedAt := time.Now()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO archived_transactions").
		WithArgs("2026-03-01", archivedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 7))
	mock.ExpectExec("DELETE FROM transactions").
		WithArgs("2026-03-01").
		WillReturnResult(pgxmock.NewResult("DELETE", 7))
	mock.ExpectCommit()
	mock.ExpectRollback()

	moved, err := repo.ArchiveBefore(context.Background(), "2026-03-01", archivedAt)
	require.NoError(t, err)
	assert.Equal(t, 7, moved)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_ArchiveBefore_CountMismatchIsFatal(t *testing.T) {
	mock, repo := newTxnMock(t)

	archivedAt := time.Now()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO archived_transactions").
		WithArgs("2026-03-01", archivedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 7))
	mock.ExpectExec("DELETE FROM transactions").
		WithArgs("2026-03-01").
		WillReturnResult(pgxmock.NewResult("DELETE", 6))
	mock.ExpectRollback()

	_, err := repo.ArchiveBefore(context.Background(), "2026-03-01", archivedAt)
	assert.ErrorIs(t, err, apperrors.ErrFatal)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_ListArchivedByMonth(t *testing.T) {
	mock, repo := newTxnMock(t)

	archivedAt := time.Now()
	txn := sampleTxn("id-old", "20260212110000.000", domain.TxnActive)
	cols := append(append([]string{}, txnRowColumns...), "original_id", "archived_at")
	rows := pgxmock.NewRows(cols).AddRow(
		txn.ID, txn.TransactionID, txn.Timestamp, "2026-02-12", txn.StaffName, txn.ServiceType, txn.Location,
		txn.DurationMinutes, txn.PaymentAmount, txn.PaymentMethod, txn.StaffFee, txn.StartTime, txn.EndTime,
		nil, string(txn.Status), nil, "id-old", archivedAt,
	)

	mock.ExpectQuery("FROM archived_transactions").
		WithArgs("2026-02").
		WillReturnRows(rows)

	archived, err := repo.ListArchivedByMonth(context.Background(), "2026-02")
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, "2026-02-12", archived[0].Date)
	assert.Equal(t, "id-old", archived[0].OriginalID)
}
