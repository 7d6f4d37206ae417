package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sabaipos/pos_backend/internal/apperrors"
	"github.com/sabaipos/pos_backend/internal/core/domain"
	portsrepo "github.com/sabaipos/pos_backend/internal/core/ports/repositories"
	"github.com/sabaipos/pos_backend/internal/models"
	"github.com/sabaipos/pos_backend/internal/utils/mapping"
)

type PgxSummaryRepository struct {
	BaseRepository
}

// newPgxSummaryRepository creates a new repository for daily summary data.
func newPgxSummaryRepository(pool DBPool) portsrepo.SummaryRepositoryFacade {
	return &PgxSummaryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SummaryRepositoryFacade = (*PgxSummaryRepository)(nil)

// UpsertSummary replaces the row for its date so same-date re-runs never
// double-count.
func (r *PgxSummaryRepository) UpsertSummary(ctx context.Context, summary domain.DailySummary) error {
	m := mapping.ToModelDailySummary(summary)
	query := `
		INSERT INTO daily_summaries (date, transaction_count, total_revenue, total_fees, total_expenses, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (date) DO UPDATE SET
			transaction_count = EXCLUDED.transaction_count,
			total_revenue = EXCLUDED.total_revenue,
			total_fees = EXCLUDED.total_fees,
			total_expenses = EXCLUDED.total_expenses,
			generated_at = EXCLUDED.generated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.Date, m.TransactionCount, m.TotalRevenue, m.TotalFees, m.TotalExpenses, m.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert daily summary for %s: %w", m.Date, err)
	}
	return nil
}

func (r *PgxSummaryRepository) FindSummaryByDate(ctx context.Context, date string) (*domain.DailySummary, error) {
	query := `
		SELECT date, transaction_count, total_revenue, total_fees, total_expenses, generated_at
		FROM daily_summaries WHERE date = $1;
	`
	var m models.DailySummary
	err := r.Pool.QueryRow(ctx, query, date).Scan(
		&m.Date, &m.TransactionCount, &m.TotalRevenue, &m.TotalFees, &m.TotalExpenses, &m.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find daily summary for %s: %w", date, err)
	}
	summary := mapping.ToDomainDailySummary(m)
	return &summary, nil
}
