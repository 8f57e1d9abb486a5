package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/SscSPs/affiliate_ledger/internal/core/finance"
	portsrepo "github.com/SscSPs/affiliate_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/affiliate_ledger/internal/core/ports/services"
	"golang.org/x/sync/singleflight"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	periodRepo      portsrepo.PeriodReader
	taxSettingsRepo portsrepo.TaxSettingsRepository
	loader          *snapshotLoader
	cache           portsrepo.ReportCache
	group           singleflight.Group
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingWorkplaceAuthorizer sets the workplace authorizer for the reporting service.
func WithReportingWorkplaceAuthorizer(authorizer portssvc.WorkplaceAuthorizerSvc) ReportingServiceOption {
	return func(s *reportingService) {
		s.WorkplaceAuthorizer = authorizer
	}
}

// WithReportingCache sets the cache computed reports are stored in.
func WithReportingCache(cache portsrepo.ReportCache) ReportingServiceOption {
	return func(s *reportingService) {
		s.cache = cache
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(
	ledgerRepo portsrepo.LedgerRecordReader,
	trustRepo portsrepo.WorkplaceTrustManager,
	periodRepo portsrepo.PeriodReader,
	taxSettingsRepo portsrepo.TaxSettingsRepository,
	options ...ReportingServiceOption,
) portssvc.ReportingService {
	svc := &reportingService{
		periodRepo:      periodRepo,
		taxSettingsRepo: taxSettingsRepo,
		loader:          newSnapshotLoader(ledgerRepo, trustRepo, periodRepo),
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

type partnerLedgerReport struct {
	Ledgers  []domain.PartnerLedger `json:"ledgers"`
	Warnings []domain.Warning       `json:"warnings"`
}

// PeriodFinancials returns the stored snapshot of a closed period or computes an open one
func (s *reportingService) PeriodFinancials(ctx context.Context, workplaceID, period, userID string) (*domain.PeriodFinancials, error) {
	// ReadOnly is sufficient for viewing reports
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		s.logFailure(ctx, err, "User not authorized to view period financials",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return nil, err
	}
	if _, err := finance.ParsePeriod(period); err != nil {
		return nil, err
	}

	state, err := s.periodRepo.FindPeriodState(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load period state", slog.String("workplace_id", workplaceID))
		return nil, err
	}
	if closed, ok := state.FindClosed(period); ok {
		s.LogDebug(ctx, "Serving closed period snapshot",
			slog.String("workplace_id", workplaceID),
			slog.String("period", period))
		financials := closed.Financials
		return &financials, nil
	}

	sources, err := s.loader.sources(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve snapshot sources", slog.String("workplace_id", workplaceID))
		return nil, err
	}

	var financials domain.PeriodFinancials
	err = s.cached(ctx, sources, &financials, func(ctx context.Context) (any, error) {
		snapshot, err := s.loader.load(ctx, sources)
		if err != nil {
			return nil, err
		}
		settings, err := loadTaxSettings(ctx, s.taxSettingsRepo, workplaceID)
		if err != nil {
			return nil, fmt.Errorf("load tax settings: %w", err)
		}
		return finance.ComputePeriodFinancials(snapshot, period, settings)
	}, "financials", period)
	if err != nil {
		s.logFailure(ctx, err, "Failed to compute period financials",
			slog.String("workplace_id", workplaceID),
			slog.String("period", period))
		return nil, err
	}

	s.LogInfo(ctx, "Period financials generated successfully",
		slog.String("workplace_id", workplaceID),
		slog.String("period", period),
		slog.Int("warnings", len(financials.Warnings)))
	return &financials, nil
}

// PartnerLedgers reconciles every partner's ledger including automatic entries
func (s *reportingService) PartnerLedgers(ctx context.Context, workplaceID, userID string) ([]domain.PartnerLedger, []domain.Warning, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleReadOnly); err != nil {
		s.logFailure(ctx, err, "User not authorized to view partner ledgers",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return nil, nil, err
	}

	sources, err := s.loader.sources(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve snapshot sources", slog.String("workplace_id", workplaceID))
		return nil, nil, err
	}

	var report partnerLedgerReport
	err = s.cached(ctx, sources, &report, func(ctx context.Context) (any, error) {
		snapshot, err := s.loader.load(ctx, sources)
		if err != nil {
			return nil, err
		}
		ledgers, warnings := finance.ReconcilePartners(snapshot)
		return partnerLedgerReport{Ledgers: ledgers, Warnings: warnings}, nil
	}, "partners")
	if err != nil {
		s.logFailure(ctx, err, "Failed to reconcile partner ledgers", slog.String("workplace_id", workplaceID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Partner ledgers generated successfully",
		slog.String("workplace_id", workplaceID),
		slog.Int("partners", len(report.Ledgers)))
	return report.Ledgers, report.Warnings, nil
}

// logFailure logs client errors at info level and everything else as an error.
func (s *reportingService) logFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	if !isClientError(err) {
		s.LogError(ctx, err, msg, keyvals...)
		return
	}
	s.LogInfo(ctx, msg, append([]any{slog.String("error", err.Error())}, keyvals...)...)
}

// cached runs compute at most once per key across concurrent callers and stores its result in the cache.
func (s *reportingService) cached(ctx context.Context, sources []string, dest any, compute func(context.Context) (any, error), parts ...string) error {
	key, err := s.buildKey(ctx, sources, parts...)
	if err != nil {
		return err
	}
	val, err, _ := singleflightDo(ctx, &s.group, key, func(ctx context.Context) (any, error) {
		if s.cache == nil {
			v, err := compute(ctx)
			if err != nil {
				return nil, err
			}
			return json.Marshal(v)
		}
		var raw json.RawMessage
		if err := s.cache.FetchJSON(ctx, key, &raw, compute); err != nil {
			return nil, err
		}
		return []byte(raw), nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(val.([]byte), dest)
}

// buildKey includes the cache version of every source workplace, so a write to a trusted
// workplace invalidates this workplace's reports too.
func (s *reportingService) buildKey(ctx context.Context, sources []string, parts ...string) (string, error) {
	versions := make([]string, 0, len(sources))
	for _, id := range sources {
		v := int64(0)
		if s.cache != nil {
			var err error
			if v, err = s.cache.Version(ctx, id); err != nil {
				return "", fmt.Errorf("cache version: %w", err)
			}
		}
		versions = append(versions, id+"@"+strconv.FormatInt(v, 10))
	}
	key := append([]string{"ledger"}, parts...)
	key = append(key, versions...)
	return strings.Join(key, ":"), nil
}

func singleflightDo(ctx context.Context, group *singleflight.Group, key string, fn func(context.Context) (any, error)) (any, error, bool) {
	resultChan := group.DoChan(key, func() (any, error) {
		return fn(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err(), false
	case res := <-resultChan:
		return res.Val, res.Err, res.Shared
	}
}
