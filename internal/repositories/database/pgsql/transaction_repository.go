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
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger data.
func newPgxTransactionRepository(pool DBPool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const txnColumns = `id, transaction_id, timestamp, date, staff_name, service_type, location,
	duration_minutes, payment_amount, payment_method, staff_fee, start_time, end_time,
	customer_contact, status, corrected_from_id`

func scanTxn(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.ID, &m.TransactionID, &m.Timestamp, &m.Date, &m.StaffName, &m.ServiceType, &m.Location,
		&m.DurationMinutes, &m.PaymentAmount, &m.PaymentMethod, &m.StaffFee, &m.StartTime, &m.EndTime,
		&m.CustomerContact, &m.Status, &m.CorrectedFromID,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

const txnInsertQuery = `
	INSERT INTO transactions (` + txnColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
`

func txnInsertArgs(m models.Transaction) []any {
	return []any{
		m.ID, m.TransactionID, m.Timestamp, m.Date, m.StaffName, m.ServiceType, m.Location,
		m.DurationMinutes, m.PaymentAmount, m.PaymentMethod, m.StaffFee, m.StartTime, m.EndTime,
		m.CustomerContact, m.Status, m.CorrectedFromID,
	}
}

// SaveTransaction appends a ledger row. A transaction_id collision surfaces
// as ErrDuplicate, never a silent overwrite.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	if _, err := r.Pool.Exec(ctx, txnInsertQuery, txnInsertArgs(m)...); err != nil {
		if _, ok := uniqueViolation(err); ok {
			return fmt.Errorf("%w: transaction id %s", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindByTransactionID retrieves a ledger row by its externally visible id.
func (r *PgxTransactionRepository) FindByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + txnColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTxn(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	d := mapping.ToDomainTransaction(*m)
	return &d, nil
}

// ListByDate returns all rows dated date, newest first.
func (r *PgxTransactionRepository) ListByDate(ctx context.Context, date string) ([]domain.Transaction, error) {
	query := `SELECT ` + txnColumns + ` FROM transactions WHERE date = $1 ORDER BY timestamp DESC;`
	rows, err := r.Pool.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for %s: %w", date, err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		m, err := scanTxn(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading transactions: %w", err)
	}
	return txns, nil
}

const mostRecentActiveQuery = `SELECT ` + txnColumns + `
	FROM transactions WHERE status = 'ACTIVE' ORDER BY timestamp DESC LIMIT 1`

// FindMostRecentActive returns the latest Active row, the correction target.
func (r *PgxTransactionRepository) FindMostRecentActive(ctx context.Context) (*domain.Transaction, error) {
	m, err := scanTxn(r.Pool.QueryRow(ctx, mostRecentActiveQuery+";"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find most recent active transaction: %w", err)
	}
	d := mapping.ToDomainTransaction(*m)
	return &d, nil
}

// AggregateForDate rolls up the date's Active rows.
func (r *PgxTransactionRepository) AggregateForDate(ctx context.Context, date string) (domain.LedgerAggregate, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(payment_amount), 0), COALESCE(SUM(staff_fee), 0)
		FROM transactions
		WHERE date = $1 AND status = 'ACTIVE';
	`
	var agg domain.LedgerAggregate
	err := r.Pool.QueryRow(ctx, query, date).Scan(&agg.Count, &agg.Revenue, &agg.Fees)
	if err != nil {
		return domain.LedgerAggregate{}, fmt.Errorf("failed to aggregate transactions for %s: %w", date, err)
	}
	return agg, nil
}

// CorrectMostRecentActive locks the most recent Active row, voids it and
// inserts the linked replacement within one database transaction, so the
// two-step protocol is never observable half-done.
func (r *PgxTransactionRepository) CorrectMostRecentActive(ctx context.Context, replacement domain.Transaction) (*domain.Transaction, *domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx)

	original, err := scanTxn(tx.QueryRow(ctx, mostRecentActiveQuery+" FOR UPDATE;"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.ErrInvalidState
		}
		return nil, nil, fmt.Errorf("failed to lock most recent active transaction: %w", err)
	}

	voidQuery := `UPDATE transactions SET status = 'VOID' WHERE id = $1 AND status = 'ACTIVE';`
	tag, err := tx.Exec(ctx, voidQuery, original.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to void transaction %s: %w", original.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		// Lost the row between lock and update; report as a conflict so the
		// caller retries the whole sequence.
		return nil, nil, fmt.Errorf("%w: active transaction changed underneath correction", apperrors.ErrConflict)
	}

	replacement.Status = domain.TxnCorrected
	replacement.CorrectedFromID = original.TransactionID
	m := mapping.ToModelTransaction(replacement)
	if _, err := tx.Exec(ctx, txnInsertQuery, txnInsertArgs(m)...); err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if constraint == "transactions_corrected_from_id_key" {
				return nil, nil, fmt.Errorf("%w: original %s already corrected", apperrors.ErrConflict, original.TransactionID)
			}
			return nil, nil, fmt.Errorf("%w: transaction id %s", apperrors.ErrDuplicate, m.TransactionID)
		}
		return nil, nil, fmt.Errorf("failed to insert replacement transaction: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}

	voided := mapping.ToDomainTransaction(*original)
	voided.Status = domain.TxnVoid
	return &voided, &replacement, nil
}

// ArchiveBefore copies every row dated strictly before cutoffDate into the
// archive table and deletes the originals, both inside one database
// transaction. A copy/delete count mismatch rolls back and surfaces as
// ErrFatal: the run must halt for manual reconciliation rather than leave
// rows in neither or both stores.
func (r *PgxTransactionRepository) ArchiveBefore(ctx context.Context, cutoffDate string, archivedAt time.Time) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	copyQuery := `
		INSERT INTO archived_transactions (` + txnColumns + `, original_id, archived_at)
		SELECT ` + txnColumns + `, id, $2 FROM transactions WHERE date < $1;
	`
	copyTag, err := tx.Exec(ctx, copyQuery, cutoffDate, archivedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to copy rows to archive: %w", err)
	}

	deleteTag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE date < $1;`, cutoffDate)
	if err != nil {
		return 0, fmt.Errorf("%w: archive copy succeeded but delete failed: %v", apperrors.ErrFatal, err)
	}

	if copyTag.RowsAffected() != deleteTag.RowsAffected() {
		return 0, fmt.Errorf("%w: archived %d rows but deleted %d", apperrors.ErrFatal, copyTag.RowsAffected(), deleteTag.RowsAffected())
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, fmt.Errorf("%w: archive/delete pair failed to commit: %v", apperrors.ErrFatal, err)
	}
	return int(copyTag.RowsAffected()), nil
}

// ListArchivedByMonth returns archive rows whose date falls in the "2006-01"
// month.
func (r *PgxTransactionRepository) ListArchivedByMonth(ctx context.Context, month string) ([]domain.ArchivedTransaction, error) {
	query := `SELECT ` + txnColumns + `, original_id, archived_at
		FROM archived_transactions WHERE date LIKE $1 || '-%' ORDER BY timestamp DESC;`
	rows, err := r.Pool.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query archived transactions for %s: %w", month, err)
	}
	defer rows.Close()

	var archived []domain.ArchivedTransaction
	for rows.Next() {
		var m models.ArchivedTransaction
		err := rows.Scan(
			&m.ID, &m.TransactionID, &m.Timestamp, &m.Date, &m.StaffName, &m.ServiceType, &m.Location,
			&m.DurationMinutes, &m.PaymentAmount, &m.PaymentMethod, &m.StaffFee, &m.StartTime, &m.EndTime,
			&m.CustomerContact, &m.Status, &m.CorrectedFromID, &m.OriginalID, &m.ArchivedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan archived transaction: %w", err)
		}
		archived = append(archived, mapping.ToDomainArchivedTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading archived transactions: %w", err)
	}
	return archived, nil
}
