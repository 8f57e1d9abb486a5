package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/affiliate_ledger/internal/apperrors"
	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/SscSPs/affiliate_ledger/internal/core/finance"
	portsrepo "github.com/SscSPs/affiliate_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/affiliate_ledger/internal/core/ports/services"
)

type taxSettingsService struct {
	BaseService
	repo  portsrepo.TaxSettingsRepository
	cache portsrepo.ReportCache
}

// TaxSettingsServiceOption is a functional option for configuring the tax settings service
type TaxSettingsServiceOption func(*taxSettingsService)

// WithTaxSettingsWorkplaceAuthorizer sets the workplace authorizer for the tax settings service.
func WithTaxSettingsWorkplaceAuthorizer(authorizer portssvc.WorkplaceAuthorizerSvc) TaxSettingsServiceOption {
	return func(s *taxSettingsService) {
		s.WorkplaceAuthorizer = authorizer
	}
}

// WithTaxSettingsCache sets the report cache invalidated when settings change.
func WithTaxSettingsCache(cache portsrepo.ReportCache) TaxSettingsServiceOption {
	return func(s *taxSettingsService) {
		s.cache = cache
	}
}

// NewTaxSettingsService creates a new tax settings service
func NewTaxSettingsService(repo portsrepo.TaxSettingsRepository, options ...TaxSettingsServiceOption) portssvc.TaxSettingsService {
	svc := &taxSettingsService{repo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TaxSettingsService = (*taxSettingsService)(nil)

func (s *taxSettingsService) GetTaxSettings(ctx context.Context, workplaceID, userID string) (*domain.TaxSettings, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	settings, err := loadTaxSettings(ctx, s.repo, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load tax settings", slog.String("workplace_id", workplaceID))
		return nil, err
	}
	return settings, nil
}

func (s *taxSettingsService) SaveTaxSettings(ctx context.Context, workplaceID string, settings domain.TaxSettings, userID string) (*domain.TaxSettings, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if err := validate.Struct(settings); err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	if err := finance.ValidateTaxSettings(&settings); err != nil {
		return nil, err
	}

	if err := s.repo.SaveTaxSettings(ctx, workplaceID, settings, userID, s.CurrentTime()); err != nil {
		s.LogError(ctx, err, "Failed to save tax settings", slog.String("workplace_id", workplaceID))
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Bump(ctx, workplaceID); err != nil {
			s.LogError(ctx, err, "Failed to bump report cache", slog.String("workplace_id", workplaceID))
		}
	}

	s.LogInfo(ctx, "Tax settings saved",
		slog.String("workplace_id", workplaceID),
		slog.String("method", string(settings.Method)))
	return &settings, nil
}
