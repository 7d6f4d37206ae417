package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	RosterRepo      RosterRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	RateRepo        RateRepositoryFacade
	ExpenseRepo     ExpenseRepositoryFacade
	SummaryRepo     SummaryRepositoryFacade
	StaffUserRepo   StaffUserRepositoryFacade
}
