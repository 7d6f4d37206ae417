package services

import (
	"context"

	"github.com/sabaipos/pos_backend/internal/core/domain"
	"github.com/sabaipos/pos_backend/internal/dto"
)

// RateSvcFacade manages the service catalog the ledger prices from.
type RateSvcFacade interface {
	CreateRate(ctx context.Context, req dto.CreateRateRequest) (*domain.ServiceRate, error)
	ListRates(ctx context.Context) ([]domain.ServiceRate, error)
	DeactivateRate(ctx context.Context, rateID string) error
}

// ExpenseSvcFacade manages the expense ledger consumed by end-of-day.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)
	ListExpensesByDate(ctx context.Context, date string) ([]domain.Expense, error)
}

// AuthSvcFacade authenticates staff and issues bearer tokens.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
