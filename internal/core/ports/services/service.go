package services

// ServiceContainer bundles every service facade for injection into the
// HTTP handlers.
type ServiceContainer struct {
	Roster      RosterSvcFacade
	Transaction TransactionSvcFacade
	EndOfDay    EndOfDaySvcFacade
	Rate        RateSvcFacade
	Expense     ExpenseSvcFacade
	Auth        AuthSvcFacade
}
