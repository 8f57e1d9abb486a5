package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	WorkplaceRepo   WorkplaceRepositoryWithTx
	LedgerRepo      LedgerRecordRepositoryWithTx
	PeriodRepo      PeriodRepositoryWithTx
	TaxSettingsRepo TaxSettingsRepository
	// Cache is optional; reports are computed on every request without it.
	Cache ReportCache
}
