package services

import (
	"context"

	"github.com/sabaipos/pos_backend/internal/core/domain"
	"github.com/sabaipos/pos_backend/internal/dto"
)

// TransactionSvcFacade is the ledger state machine and correction protocol.
type TransactionSvcFacade interface {
	// CreateTransaction prices the entry from the service catalog and appends
	// an Active ledger row, then credits the staff member's roster fee total.
	// apperrors.ErrNotFound when no active catalog entry matches.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// CorrectMostRecent voids the most recent Active transaction and records a
	// linked replacement. apperrors.ErrInvalidState when nothing is active.
	CorrectMostRecent(ctx context.Context, req dto.CreateTransactionRequest) (voided *domain.Transaction, replacement *domain.Transaction, err error)

	// GetByTransactionID retrieves one ledger row.
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListByDate returns all ledger rows dated date, newest first.
	ListByDate(ctx context.Context, date string) ([]domain.Transaction, error)

	// MostRecentActive returns the row the correction protocol would target.
	MostRecentActive(ctx context.Context) (*domain.Transaction, error)

	// ListArchivedByMonth returns archive rows for a "2006-01" month.
	ListArchivedByMonth(ctx context.Context, month string) ([]domain.ArchivedTransaction, error)
}
