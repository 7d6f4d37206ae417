package repositories

import (
	"context"

	"github.com/sabaipos/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateRepositoryFacade provides access to the service catalog.
type RateRepositoryFacade interface {
	// LookupActiveRate resolves the price and fee for a service booking.
	// apperrors.ErrNotFound when no active catalog entry matches the key.
	LookupActiveRate(ctx context.Context, serviceType string, durationMinutes int, location string) (*domain.ServiceRate, error)

	SaveRate(ctx context.Context, rate domain.ServiceRate) error
	ListRates(ctx context.Context) ([]domain.ServiceRate, error)
	SetRateActive(ctx context.Context, rateID string, active bool) error
}

// ExpenseRepositoryFacade provides access to the expense ledger.
type ExpenseRepositoryFacade interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	ListExpensesByDate(ctx context.Context, date string) ([]domain.Expense, error)

	// SumExpensesForDate totals the date's expenses; zero when there are none.
	SumExpensesForDate(ctx context.Context, date string) (decimal.Decimal, error)
}

// SummaryRepositoryFacade provides access to the per-date summary table.
type SummaryRepositoryFacade interface {
	// UpsertSummary replaces the row for its date; re-runs never double-count.
	UpsertSummary(ctx context.Context, summary domain.DailySummary) error
	FindSummaryByDate(ctx context.Context, date string) (*domain.DailySummary, error)
}

// StaffUserRepositoryFacade provides access to staff login credentials.
type StaffUserRepositoryFacade interface {
	FindUserByUsername(ctx context.Context, username string) (*domain.StaffUser, error)
	SaveUser(ctx context.Context, user domain.StaffUser) error
}
