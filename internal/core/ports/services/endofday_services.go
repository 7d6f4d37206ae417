package services

import (
	"context"

	"github.com/sabaipos/pos_backend/internal/core/domain"
)

// EndOfDaySvcFacade runs the daily aggregation and archival pipeline.
type EndOfDaySvcFacade interface {
	// Run aggregates asOfDate's Active transactions and expenses into the
	// daily summary (upsert), archives ledger rows dated before the first day
	// of the current month, and resets the roster. A partial archive surfaces
	// as apperrors.ErrFatal and halts the run before the roster reset.
	Run(ctx context.Context, asOfDate string) (*domain.EndOfDayResult, error)

	// GetSummary returns the stored summary for a date.
	GetSummary(ctx context.Context, date string) (*domain.DailySummary, error)
}
