package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sabaipos/pos_backend/internal/core/domain"
	portsrepo "github.com/sabaipos/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/sabaipos/pos_backend/internal/core/ports/services"
	"github.com/sabaipos/pos_backend/internal/dto"
)

// expenseService is the thin CRUD layer over the expense ledger.
type expenseService struct {
	repo portsrepo.ExpenseRepositoryFacade
	loc  *time.Location
	now  func() time.Time
}

// NewExpenseService creates the expense service.
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade, loc *time.Location) portssvc.ExpenseSvcFacade {
	return &expenseService{repo: repo, loc: loc, now: time.Now}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	now := s.now()
	date := req.Date
	if date == "" {
		date = now.In(s.loc).Format("2006-01-02")
	}
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Date:        date,
		Description: req.Description,
		Amount:      req.Amount,
		CreatedAt:   now.UTC(),
	}
	if err := s.repo.SaveExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}
	return &expense, nil
}

func (s *expenseService) ListExpensesByDate(ctx context.Context, date string) ([]domain.Expense, error) {
	if date == "" {
		date = s.now().In(s.loc).Format("2006-01-02")
	}
	expenses, err := s.repo.ListExpensesByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for %s: %w", date, err)
	}
	return expenses, nil
}
