package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/affiliate_ledger/internal/apperrors"
	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/SscSPs/affiliate_ledger/internal/core/finance"
	portsrepo "github.com/SscSPs/affiliate_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/affiliate_ledger/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
)

// periodService implements the PeriodService interface
type periodService struct {
	BaseService
	periodRepo      portsrepo.PeriodRepositoryWithTx
	taxSettingsRepo portsrepo.TaxSettingsRepository
	ledgerTxReader  portsrepo.LedgerRecordTxReader
	loader          *snapshotLoader
	cache           portsrepo.ReportCache
}

// PeriodServiceOption is a functional option for configuring the period service
type PeriodServiceOption func(*periodService)

// WithPeriodWorkplaceAuthorizer sets the workplace authorizer for the period service.
func WithPeriodWorkplaceAuthorizer(authorizer portssvc.WorkplaceAuthorizerSvc) PeriodServiceOption {
	return func(s *periodService) {
		s.WorkplaceAuthorizer = authorizer
	}
}

// WithPeriodCache sets the report cache that is invalidated when a period closes.
func WithPeriodCache(cache portsrepo.ReportCache) PeriodServiceOption {
	return func(s *periodService) {
		s.cache = cache
	}
}

// WithPeriodClock overrides the clock stamped on closed periods.
func WithPeriodClock(now func() time.Time) PeriodServiceOption {
	return func(s *periodService) {
		s.Now = now
	}
}

// NewPeriodService creates a new period service with the provided dependencies
func NewPeriodService(
	periodRepo portsrepo.PeriodRepositoryWithTx,
	ledgerRepo portsrepo.LedgerRecordRepositoryFacade,
	trustRepo portsrepo.WorkplaceTrustManager,
	taxSettingsRepo portsrepo.TaxSettingsRepository,
	options ...PeriodServiceOption,
) portssvc.PeriodService {
	svc := &periodService{
		periodRepo:      periodRepo,
		taxSettingsRepo: taxSettingsRepo,
		ledgerTxReader:  ledgerRepo,
		loader:          newSnapshotLoader(ledgerRepo, trustRepo, periodRepo),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure periodService implements the PeriodService interface
var _ portssvc.PeriodService = (*periodService)(nil)

// GetPeriodState returns the active period and closed history of a workplace
func (s *periodService) GetPeriodState(ctx context.Context, workplaceID, userID string) (*domain.PeriodState, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	state, err := s.periodRepo.FindPeriodState(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load period state", slog.String("workplace_id", workplaceID))
		return nil, err
	}
	return state, nil
}

// OpenPeriod makes period the active period
func (s *periodService) OpenPeriod(ctx context.Context, workplaceID, period, userID string) (*domain.PeriodState, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	var opened domain.PeriodState
	err := s.WithTx(ctx, s.periodRepo, func(tx pgx.Tx) error {
		state, err := s.periodRepo.FindPeriodStateForUpdate(ctx, tx, workplaceID)
		if err != nil {
			return fmt.Errorf("lock period state: %w", err)
		}
		opened, err = finance.OpenPeriod(*state, period)
		if err != nil {
			return err
		}
		return s.periodRepo.SaveActivePeriodInTx(ctx, tx, workplaceID, period, userID, s.CurrentTime())
	})
	if err != nil {
		if !isClientError(err) {
			s.LogError(ctx, err, "Failed to open period",
				slog.String("workplace_id", workplaceID),
				slog.String("period", period))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Period opened",
		slog.String("workplace_id", workplaceID),
		slog.String("period", period),
		slog.String("user_id", userID))
	return &opened, nil
}

// ClosePeriod snapshots the financials of the active period and closes it.
// The period state stays locked while financials are computed so no record write can interleave.
// Records are read through the locking transaction: writers blocked on the lock hold pool
// connections, and a read on a fresh connection could wait on them.
func (s *periodService) ClosePeriod(ctx context.Context, workplaceID, userID string) (*domain.ClosedPeriod, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	settings, err := loadTaxSettings(ctx, s.taxSettingsRepo, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load tax settings", slog.String("workplace_id", workplaceID))
		return nil, err
	}

	sources, err := s.loader.sources(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve trusted workplaces", slog.String("workplace_id", workplaceID))
		return nil, err
	}

	var closed domain.ClosedPeriod
	err = s.WithTx(ctx, s.periodRepo, func(tx pgx.Tx) error {
		state, err := s.periodRepo.FindPeriodStateForUpdate(ctx, tx, workplaceID)
		if err != nil {
			return fmt.Errorf("lock period state: %w", err)
		}
		if state.ActivePeriod == "" {
			return apperrors.NewPreconditionError("no active period to close")
		}

		snapshot, err := s.loader.loadInTx(ctx, s.ledgerTxReader, tx, sources, state.Closed)
		if err != nil {
			return err
		}
		financials, err := finance.ComputePeriodFinancials(snapshot, state.ActivePeriod, settings)
		if err != nil {
			return err
		}

		if _, closed, err = finance.ClosePeriod(*state, financials, userID, s.CurrentTime()); err != nil {
			return err
		}
		closed.WorkplaceID = workplaceID
		if err := s.periodRepo.SaveClosedPeriodInTx(ctx, tx, closed); err != nil {
			return fmt.Errorf("save closed period: %w", err)
		}
		return s.periodRepo.SaveActivePeriodInTx(ctx, tx, workplaceID, "", userID, s.CurrentTime())
	})
	if err != nil {
		if !isClientError(err) && !errors.Is(err, apperrors.ErrConfiguration) {
			s.LogError(ctx, err, "Failed to close period", slog.String("workplace_id", workplaceID))
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Bump(ctx, workplaceID); err != nil {
			s.LogError(ctx, err, "Failed to bump report cache", slog.String("workplace_id", workplaceID))
		}
	}
	s.LogInfo(ctx, "Period closed",
		slog.String("workplace_id", workplaceID),
		slog.String("period", closed.Period),
		slog.Int("warnings", len(closed.Financials.Warnings)),
		slog.String("user_id", userID))
	return &closed, nil
}

// loadTaxSettings returns nil settings when a workplace has not configured tax.
func loadTaxSettings(ctx context.Context, repo portsrepo.TaxSettingsRepository, workplaceID string) (*domain.TaxSettings, error) {
	if repo == nil {
		return nil, nil
	}
	settings, err := repo.FindTaxSettings(ctx, workplaceID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}
