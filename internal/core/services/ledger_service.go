package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/affiliate_ledger/internal/apperrors"
	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/SscSPs/affiliate_ledger/internal/core/finance"
	portsrepo "github.com/SscSPs/affiliate_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/affiliate_ledger/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	ledgerRepo      portsrepo.LedgerRecordRepositoryWithTx
	periodRepo      portsrepo.PeriodTransactionSupport
	taxSettingsRepo portsrepo.TaxSettingsRepository
	cache           portsrepo.ReportCache
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerWorkplaceAuthorizer sets the workplace authorizer for the ledger service.
func WithLedgerWorkplaceAuthorizer(authorizer portssvc.WorkplaceAuthorizerSvc) LedgerServiceOption {
	return func(s *ledgerService) {
		s.WorkplaceAuthorizer = authorizer
	}
}

// WithLedgerCache sets the report cache that is invalidated after every write.
func WithLedgerCache(cache portsrepo.ReportCache) LedgerServiceOption {
	return func(s *ledgerService) {
		s.cache = cache
	}
}

// WithLedgerClock overrides the clock used for audit timestamps.
func WithLedgerClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.Now = now
	}
}

// NewLedgerService creates a new ledger service with the provided dependencies
func NewLedgerService(
	ledgerRepo portsrepo.LedgerRecordRepositoryWithTx,
	periodRepo portsrepo.PeriodTransactionSupport,
	taxSettingsRepo portsrepo.TaxSettingsRepository,
	options ...LedgerServiceOption,
) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		ledgerRepo:      ledgerRepo,
		periodRepo:      periodRepo,
		taxSettingsRepo: taxSettingsRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// SaveRecord validates and stores a record, replacing any record with the same id
func (s *ledgerService) SaveRecord(ctx context.Context, workplaceID string, collection domain.Collection, payload []byte, userID string) (*domain.StoredRecord, error) {
	saved, err := s.saveRecords(ctx, workplaceID, collection, [][]byte{payload}, userID)
	if err != nil {
		return nil, err
	}
	return &saved[0], nil
}

// DeleteRecord removes a record unless its date falls within a closed period
func (s *ledgerService) DeleteRecord(ctx context.Context, workplaceID string, collection domain.Collection, recordID, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleMember); err != nil {
		return err
	}
	if !collection.IsValid() {
		return apperrors.NewValidationFailedError(fmt.Sprintf("unknown collection %q", collection))
	}

	existing, err := s.ledgerRepo.FindRecord(ctx, workplaceID, collection, recordID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find record for deletion",
				slog.String("workplace_id", workplaceID),
				slog.String("collection", string(collection)),
				slog.String("record_id", recordID))
		}
		return err
	}
	if isSelfPartner(*existing) {
		return apperrors.NewPreconditionError("the owner partner cannot be deleted")
	}

	err = s.WithTx(ctx, s.ledgerRepo, func(tx pgx.Tx) error {
		state, err := s.periodRepo.FindPeriodStateForUpdate(ctx, tx, workplaceID)
		if err != nil {
			return fmt.Errorf("lock period state: %w", err)
		}
		if collection.Dated() {
			if err := finance.EnsureWritable(*state, existing.RecordDate); err != nil {
				return err
			}
		}
		if collection == domain.CollectionAssets {
			if err := s.ensureAssetUnusedInClosedPeriods(ctx, tx, *state, workplaceID, recordID); err != nil {
				return err
			}
		}
		return s.ledgerRepo.DeleteRecordInTx(ctx, tx, workplaceID, collection, recordID)
	})
	if err != nil {
		if !isClientError(err) {
			s.LogError(ctx, err, "Failed to delete record",
				slog.String("workplace_id", workplaceID),
				slog.String("collection", string(collection)),
				slog.String("record_id", recordID))
		}
		return err
	}

	s.invalidate(ctx, workplaceID)
	s.LogInfo(ctx, "Record deleted",
		slog.String("workplace_id", workplaceID),
		slog.String("collection", string(collection)),
		slog.String("record_id", recordID),
		slog.String("user_id", userID))
	return nil
}

// ensureAssetUnusedInClosedPeriods refuses to remove an asset that a closed period's records move money through.
func (s *ledgerService) ensureAssetUnusedInClosedPeriods(ctx context.Context, tx pgx.Tx, state domain.PeriodState, workplaceID, assetID string) error {
	if len(state.Closed) == 0 {
		return nil
	}
	for _, collection := range domain.Collections {
		if !collection.Dated() {
			continue
		}
		records, err := s.ledgerRepo.ListRecordsInTx(ctx, tx, []string{workplaceID}, collection)
		if err != nil {
			return fmt.Errorf("list %s: %w", collection, err)
		}
		for _, r := range records {
			period := finance.PeriodOf(r.RecordDate)
			if period == "" || !state.IsClosed(period) || !referencesAsset(r.Payload, assetID) {
				continue
			}
			return fmt.Errorf("%w: asset %s is used by %s record %s in closed period %s",
				apperrors.ErrPeriodClosed, assetID, collection, r.RecordID, period)
		}
	}
	return nil
}

// AddAdAccount creates an asset of kind ad_account
func (s *ledgerService) AddAdAccount(ctx context.Context, workplaceID string, account domain.Asset, userID string) (*domain.Asset, error) {
	created, err := s.AddAdAccounts(ctx, workplaceID, []domain.Asset{account}, userID)
	if err != nil {
		return nil, err
	}
	return &created[0], nil
}

// AddAdAccounts creates several ad accounts in one transaction
func (s *ledgerService) AddAdAccounts(ctx context.Context, workplaceID string, accounts []domain.Asset, userID string) ([]domain.Asset, error) {
	if len(accounts) == 0 {
		return nil, apperrors.NewValidationFailedError("at least one ad account is required")
	}

	payloads := make([][]byte, 0, len(accounts))
	prepared := make([]domain.Asset, 0, len(accounts))
	for _, a := range accounts {
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		if a.Currency == "" {
			a.Currency = domain.USD
		}
		a.Kind = domain.AssetAdAccount
		a.WorkplaceID = workplaceID
		a.Balance = a.InitialBalance
		raw, err := json.Marshal(a)
		if err != nil {
			return nil, err
		}
		payloads = append(payloads, raw)
		prepared = append(prepared, a)
	}

	if _, err := s.saveRecords(ctx, workplaceID, domain.CollectionAssets, payloads, userID); err != nil {
		return nil, err
	}
	return prepared, nil
}

// CreatePartner adds a partner to the workplace
func (s *ledgerService) CreatePartner(ctx context.Context, workplaceID string, partner domain.Partner, userID string) (*domain.Partner, error) {
	if partner.ID == "" {
		partner.ID = uuid.NewString()
	}
	raw, err := json.Marshal(partner)
	if err != nil {
		return nil, err
	}
	if _, err := s.SaveRecord(ctx, workplaceID, domain.CollectionPartners, raw, userID); err != nil {
		return nil, err
	}
	return &partner, nil
}

// DeletePartner removes a partner; the owner partner is refused
func (s *ledgerService) DeletePartner(ctx context.Context, workplaceID, partnerID, userID string) error {
	return s.DeleteRecord(ctx, workplaceID, domain.CollectionPartners, partnerID, userID)
}

// AddLedgerEntry records a manual entry on a partner's ledger
func (s *ledgerService) AddLedgerEntry(ctx context.Context, workplaceID string, entry domain.PartnerLedgerEntry, userID string) (*domain.PartnerLedgerEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return nil, err
	}
	if _, err := s.SaveRecord(ctx, workplaceID, domain.CollectionPartnerLedger, raw, userID); err != nil {
		return nil, err
	}
	return &entry, nil
}

// WipeWorkplace deletes all records, periods and tax settings, keeping the owner partner
func (s *ledgerService) WipeWorkplace(ctx context.Context, workplaceID, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleAdmin); err != nil {
		return err
	}

	partners, err := s.ledgerRepo.ListRecords(ctx, []string{workplaceID}, domain.CollectionPartners)
	if err != nil {
		s.LogError(ctx, err, "Failed to list partners before wipe", slog.String("workplace_id", workplaceID))
		return err
	}

	now := s.CurrentTime()
	var self *domain.StoredRecord
	for i := range partners {
		if isSelfPartner(partners[i]) {
			self = &partners[i]
			break
		}
	}
	if self == nil {
		rec, err := selfPartnerRecord(workplaceID, "Owner", userID, now)
		if err != nil {
			return err
		}
		self = &rec
	}

	var removed int64
	err = s.WithTx(ctx, s.ledgerRepo, func(tx pgx.Tx) error {
		var err error
		if removed, err = s.ledgerRepo.DeleteWorkplaceRecordsInTx(ctx, tx, workplaceID); err != nil {
			return fmt.Errorf("delete records: %w", err)
		}
		if err := s.periodRepo.DeletePeriodsInTx(ctx, tx, workplaceID); err != nil {
			return fmt.Errorf("delete periods: %w", err)
		}
		if err := s.taxSettingsRepo.DeleteTaxSettingsInTx(ctx, tx, workplaceID); err != nil {
			return fmt.Errorf("delete tax settings: %w", err)
		}
		return s.ledgerRepo.SaveRecordsInTx(ctx, tx, []domain.StoredRecord{*self})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to wipe workplace", slog.String("workplace_id", workplaceID))
		return err
	}

	s.invalidate(ctx, workplaceID)
	s.LogInfo(ctx, "Workplace wiped",
		slog.String("workplace_id", workplaceID),
		slog.String("user_id", userID),
		slog.Int64("records_removed", removed))
	return nil
}

// saveRecords validates payloads and stores them atomically after the closed-period check.
func (s *ledgerService) saveRecords(ctx context.Context, workplaceID string, collection domain.Collection, payloads [][]byte, userID string) ([]domain.StoredRecord, error) {
	if err := s.AuthorizeUser(ctx, userID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	parsed := make([]parsedRecord, 0, len(payloads))
	for _, raw := range payloads {
		p, err := parseRecord(collection, raw)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, p)
	}

	now := s.CurrentTime()
	records := make([]domain.StoredRecord, 0, len(parsed))
	err := s.WithTx(ctx, s.ledgerRepo, func(tx pgx.Tx) error {
		state, err := s.periodRepo.FindPeriodStateForUpdate(ctx, tx, workplaceID)
		if err != nil {
			return fmt.Errorf("lock period state: %w", err)
		}
		for _, p := range parsed {
			record := domain.StoredRecord{
				WorkplaceID: workplaceID,
				Collection:  collection,
				RecordID:    p.id,
				RecordDate:  p.date,
				Payload:     p.payload,
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					CreatedBy:     userID,
					LastUpdatedAt: now,
					LastUpdatedBy: userID,
				},
			}

			existing, err := s.ledgerRepo.FindRecord(ctx, workplaceID, collection, p.id)
			switch {
			case errors.Is(err, apperrors.ErrNotFound):
			case err != nil:
				return fmt.Errorf("find existing record: %w", err)
			default:
				if isSelfPartner(*existing) {
					return apperrors.NewPreconditionError("the owner partner cannot be replaced")
				}
				if collection.Dated() {
					if err := finance.EnsureWritable(*state, existing.RecordDate); err != nil {
						return err
					}
				}
				record.CreatedAt = existing.CreatedAt
				record.CreatedBy = existing.CreatedBy
			}

			if collection.Dated() {
				if err := finance.EnsureWritable(*state, p.date); err != nil {
					return err
				}
			}
			records = append(records, record)
		}
		return s.ledgerRepo.SaveRecordsInTx(ctx, tx, records)
	})
	if err != nil {
		if !isClientError(err) {
			s.LogError(ctx, err, "Failed to save records",
				slog.String("workplace_id", workplaceID),
				slog.String("collection", string(collection)))
		}
		return nil, err
	}

	s.invalidate(ctx, workplaceID)
	s.LogInfo(ctx, "Records saved",
		slog.String("workplace_id", workplaceID),
		slog.String("collection", string(collection)),
		slog.Int("count", len(records)),
		slog.String("user_id", userID))
	return records, nil
}

// invalidate bumps the cache version of a workplace. Failures only cost a stale read until TTL.
func (s *ledgerService) invalidate(ctx context.Context, workplaceID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Bump(ctx, workplaceID); err != nil {
		s.LogError(ctx, err, "Failed to bump report cache", slog.String("workplace_id", workplaceID))
	}
}

func isSelfPartner(r domain.StoredRecord) bool {
	if r.Collection != domain.CollectionPartners {
		return false
	}
	var p domain.Partner
	if err := json.Unmarshal(r.Payload, &p); err != nil {
		return false
	}
	return p.IsSelf
}

// isClientError reports whether err is caused by the request rather than the system.
func isClientError(err error) bool {
	return errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrPeriodClosed) ||
		errors.Is(err, apperrors.ErrPrecondition) ||
		errors.Is(err, apperrors.ErrForbidden) ||
		errors.Is(err, apperrors.ErrNotFound)
}
