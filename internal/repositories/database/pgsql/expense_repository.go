package pgsql

import (
	"context"
	"fmt"

	"github.com/sabaipos/pos_backend/internal/apperrors"
	"github.com/sabaipos/pos_backend/internal/core/domain"
	portsrepo "github.com/sabaipos/pos_backend/internal/core/ports/repositories"
	"github.com/sabaipos/pos_backend/internal/models"
	"github.com/sabaipos/pos_backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool DBPool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (expense_id, date, description, amount, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, m.ExpenseID, m.Date, m.Description, m.Amount, m.CreatedAt)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) ListExpensesByDate(ctx context.Context, date string) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, date, description, amount, created_at
		FROM expenses WHERE date = $1 ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for %s: %w", date, err)
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var m models.Expense
		if err := rows.Scan(&m.ExpenseID, &m.Date, &m.Description, &m.Amount, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, mapping.ToDomainExpense(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading expenses: %w", err)
	}
	return expenses, nil
}

// SumExpensesForDate totals the date's expenses; zero when there are none.
func (r *PgxExpenseRepository) SumExpensesForDate(ctx context.Context, date string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE date = $1;`, date).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses for %s: %w", date, err)
	}
	return sum, nil
}
