package services

import (
	portsrepo "github.com/moneypot/moneypot/internal/core/ports/repositories"
	portssvc "github.com/moneypot/moneypot/internal/core/ports/services"
	"github.com/moneypot/moneypot/internal/platform/config"
)

// NewServiceContainer wires every service with its repository and service
// dependencies. The currency service comes first because the account,
// transfer and forecast services all convert through it.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo, repos.ExchangeRateRepo)
	container.Account = NewAccountService(repos.AccountRepo, repos.LedgerRepo, container.Currency)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.AccountRepo, repos.CategoryRepo)
	container.Transfer = NewTransferService(repos.LedgerRepo, repos.AccountRepo, repos.CategoryRepo, container.Currency, cfg.StrictFunds)
	container.Forecast = NewForecastService(repos.ScheduledRepo, repos.AccountRepo, repos.LedgerRepo, container.Currency)

	return container
}
