package services

// ServiceContainer bundles all service facades for injection into handlers
// and the CLI.
type ServiceContainer struct {
	Currency CurrencySvcFacade
	Account  AccountSvcFacade
	Category CategorySvcFacade
	Ledger   LedgerSvcFacade
	Transfer TransferSvcFacade
	Forecast ForecastSvcFacade
}
