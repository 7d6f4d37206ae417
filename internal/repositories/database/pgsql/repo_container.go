package pgsql

import (
	portsrepo "github.com/sabaipos/pos_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool DBPool) portsrepo.RepositoryProvider {
	rosterRepo := newPgxRosterRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	rateRepo := newPgxRateRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	summaryRepo := newPgxSummaryRepository(dbPool)
	staffUserRepo := newPgxStaffUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		RosterRepo:      rosterRepo,
		TransactionRepo: transactionRepo,
		RateRepo:        rateRepo,
		ExpenseRepo:     expenseRepo,
		SummaryRepo:     summaryRepo,
		StaffUserRepo:   staffUserRepo,
	}
}
