package services

import (
	portsrepo "github.com/SscSPs/affiliate_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/affiliate_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Initialize workplace service first since other services depend on it
	container.Workplace = NewWorkplaceService(repos.WorkplaceRepo, repos.LedgerRepo)
	authorizer := container.Workplace.(portssvc.WorkplaceAuthorizerSvc)

	ledgerOpts := []LedgerServiceOption{WithLedgerWorkplaceAuthorizer(authorizer)}
	periodOpts := []PeriodServiceOption{WithPeriodWorkplaceAuthorizer(authorizer)}
	reportingOpts := []ReportingServiceOption{WithReportingWorkplaceAuthorizer(authorizer)}
	taxOpts := []TaxSettingsServiceOption{WithTaxSettingsWorkplaceAuthorizer(authorizer)}
	if repos.Cache != nil {
		ledgerOpts = append(ledgerOpts, WithLedgerCache(repos.Cache))
		periodOpts = append(periodOpts, WithPeriodCache(repos.Cache))
		reportingOpts = append(reportingOpts, WithReportingCache(repos.Cache))
		taxOpts = append(taxOpts, WithTaxSettingsCache(repos.Cache))
	}

	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.PeriodRepo, repos.TaxSettingsRepo, ledgerOpts...)
	container.Period = NewPeriodService(repos.PeriodRepo, repos.LedgerRepo, repos.WorkplaceRepo, repos.TaxSettingsRepo, periodOpts...)
	container.Reporting = NewReportingService(repos.LedgerRepo, repos.WorkplaceRepo, repos.PeriodRepo, repos.TaxSettingsRepo, reportingOpts...)
	container.TaxSettings = NewTaxSettingsService(repos.TaxSettingsRepo, taxOpts...)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.WorkplaceSvcFacade = (*workplaceService)(nil)
	_ portssvc.LedgerSvcFacade    = (*ledgerService)(nil)
	_ portssvc.PeriodService      = (*periodService)(nil)
)
