package pgsql

import (
	portsrepo "github.com/SscSPs/affiliate_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres repository on one pool. cache may be nil.
func NewRepositoryProvider(dbPool *pgxpool.Pool, cache portsrepo.ReportCache) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		WorkplaceRepo:   newPgxWorkplaceRepository(dbPool),
		LedgerRepo:      newPgxLedgerRecordRepository(dbPool),
		PeriodRepo:      newPgxPeriodRepository(dbPool),
		TaxSettingsRepo: newPgxTaxSettingsRepository(dbPool),
		Cache:           cache,
	}
}
