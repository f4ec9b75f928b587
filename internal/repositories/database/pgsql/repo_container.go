package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/moneypot/moneypot/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository over one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     newPgxCurrencyRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		AccountRepo:      newPgxAccountRepository(dbPool),
		CategoryRepo:     newPgxCategoryRepository(dbPool),
		LedgerRepo:       newPgxLedgerRepository(dbPool),
		ScheduledRepo:    newPgxScheduledRepository(dbPool),
	}
}
