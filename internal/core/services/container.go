package services

import (
	"time"

	portsrepo "github.com/sabaipos/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/sabaipos/pos_backend/internal/core/ports/services"
	"github.com/sabaipos/pos_backend/pkg/config"
)

// NewServiceContainer wires every service with its repositories. loc is the
// shop's timezone; all wall-clock work (dates, busy-until anchoring) uses it.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, loc *time.Location) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Roster first: end-of-day resets it and the ledger credits fees into it.
	container.Roster = NewRosterService(repos.RosterRepo, cfg.RosterSize, loc)

	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.RateRepo, repos.RosterRepo, loc)
	container.EndOfDay = NewEndOfDayService(repos.TransactionRepo, repos.ExpenseRepo, repos.SummaryRepo, container.Roster, loc)
	container.Rate = NewRateService(repos.RateRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo, loc)
	container.Auth = NewAuthService(cfg, repos.StaffUserRepo)

	return container
}
