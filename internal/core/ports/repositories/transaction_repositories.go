package repositories

import (
	"context"
	"time"

	"github.com/sabaipos/pos_backend/internal/core/domain"
)

// TransactionReader defines read operations over the live ledger.
type TransactionReader interface {
	// FindByTransactionID retrieves a ledger row by its externally visible id.
	FindByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListByDate returns all rows (any status) dated date, newest first.
	ListByDate(ctx context.Context, date string) ([]domain.Transaction, error)

	// FindMostRecentActive returns the latest row in Active status, the target
	// of the correction protocol. Returns apperrors.ErrNotFound when the live
	// ledger has no Active rows.
	FindMostRecentActive(ctx context.Context) (*domain.Transaction, error)

	// AggregateForDate rolls up count, revenue and fee sums over the date's
	// Active rows.
	AggregateForDate(ctx context.Context, date string) (domain.LedgerAggregate, error)
}

// TransactionWriter defines write operations over the live ledger.
type TransactionWriter interface {
	// SaveTransaction appends a row. A transaction_id collision surfaces as
	// apperrors.ErrDuplicate, never a silent overwrite.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// CorrectMostRecentActive locks the most recent Active row, flips it to
	// Void and inserts the replacement carrying the Corrected link, all within
	// one database transaction. It returns the voided original and the created
	// replacement. apperrors.ErrInvalidState when no Active row exists.
	CorrectMostRecentActive(ctx context.Context, replacement domain.Transaction) (voided *domain.Transaction, created *domain.Transaction, err error)

	// ArchiveBefore copies every row dated strictly before cutoffDate into the
	// archive table (stamped archivedAt) and deletes the originals, both inside
	// one database transaction. A copy/delete count mismatch surfaces as
	// apperrors.ErrFatal. Returns the number of rows moved.
	ArchiveBefore(ctx context.Context, cutoffDate string, archivedAt time.Time) (int, error)
}

// ArchiveReader defines read operations over archived ledger rows.
type ArchiveReader interface {
	// ListArchivedByMonth returns archive rows whose date falls in the given
	// "2006-01" month.
	ListArchivedByMonth(ctx context.Context, month string) ([]domain.ArchivedTransaction, error)
}

// TransactionRepositoryFacade combines all ledger repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	ArchiveReader
}
