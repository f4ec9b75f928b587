package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	CurrencyRepo     CurrencyRepositoryFacade
	ExchangeRateRepo ExchangeRateRepositoryFacade
	AccountRepo      AccountRepositoryFacade
	CategoryRepo     CategoryRepositoryFacade
	LedgerRepo       LedgerRepositoryFacade
	ScheduledRepo    ScheduledRepositoryFacade
}
