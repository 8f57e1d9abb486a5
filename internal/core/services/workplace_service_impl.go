package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/affiliate_ledger/internal/apperrors"
	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/affiliate_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/affiliate_ledger/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// workplaceService implements the WorkplaceSvcFacade interface
type workplaceService struct {
	BaseService
	workplaceRepo portsrepo.WorkplaceRepositoryWithTx
	ledgerRepo    portsrepo.LedgerRecordTransactionSupport
}

// WorkplaceServiceOption is a functional option for configuring the workplace service
type WorkplaceServiceOption func(*workplaceService)

// WithWorkplaceClock overrides the clock used for audit timestamps.
func WithWorkplaceClock(now func() time.Time) WorkplaceServiceOption {
	return func(s *workplaceService) {
		s.Now = now
	}
}

// NewWorkplaceService creates a new workplace service with the provided dependencies
func NewWorkplaceService(
	workplaceRepo portsrepo.WorkplaceRepositoryWithTx,
	ledgerRepo portsrepo.LedgerRecordTransactionSupport,
	options ...WorkplaceServiceOption,
) portssvc.WorkplaceSvcFacade {
	svc := &workplaceService{
		workplaceRepo: workplaceRepo,
		ledgerRepo:    ledgerRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure workplaceService implements the WorkplaceSvcFacade interface
var _ portssvc.WorkplaceSvcFacade = (*workplaceService)(nil)

// FindWorkplaceByID retrieves a workplace by its ID
func (s *workplaceService) FindWorkplaceByID(ctx context.Context, workplaceID, requestingUserID string) (*domain.Workplace, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	workplace, err := s.workplaceRepo.FindWorkplaceByID(ctx, workplaceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find workplace by ID",
				slog.String("workplace_id", workplaceID))
		}
		return nil, err
	}

	s.LogDebug(ctx, "Workplace retrieved successfully",
		slog.String("workplace_id", workplace.WorkplaceID))
	return workplace, nil
}

// ListUserWorkplaces retrieves all workplaces a user belongs to
func (s *workplaceService) ListUserWorkplaces(ctx context.Context, userID string, includeDisabled bool) ([]domain.Workplace, error) {
	workplaces, err := s.workplaceRepo.ListWorkplacesByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workplaces for user",
			slog.String("user_id", userID))
		return nil, err
	}

	result := make([]domain.Workplace, 0, len(workplaces))
	for _, w := range workplaces {
		if w.IsActive || includeDisabled {
			result = append(result, w)
		}
	}

	s.LogDebug(ctx, "Workplaces listed successfully",
		slog.Int("count", len(result)),
		slog.String("user_id", userID))
	return result, nil
}

// CreateWorkplace creates a new workplace together with its admin membership and owner partner
func (s *workplaceService) CreateWorkplace(ctx context.Context, name, description, ownerName, creatorUserID string) (*domain.Workplace, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationFailedError("workplace name is required")
	}

	now := s.CurrentTime()
	workplace := domain.Workplace{
		WorkplaceID: uuid.NewString(),
		Name:        name,
		Description: description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if ownerName == "" {
		ownerName = name
	}

	selfRecord, err := selfPartnerRecord(workplace.WorkplaceID, ownerName, creatorUserID, now)
	if err != nil {
		return nil, err
	}

	err = s.WithTx(ctx, s.workplaceRepo, func(tx pgx.Tx) error {
		if err := s.workplaceRepo.SaveWorkplaceInTx(ctx, tx, workplace); err != nil {
			return fmt.Errorf("save workplace: %w", err)
		}
		membership := domain.UserWorkplace{
			UserID:      creatorUserID,
			WorkplaceID: workplace.WorkplaceID,
			Role:        domain.RoleAdmin,
			JoinedAt:    now,
		}
		if err := s.workplaceRepo.AddUserToWorkplaceInTx(ctx, tx, membership); err != nil {
			return fmt.Errorf("add creator as admin: %w", err)
		}
		if err := s.ledgerRepo.SaveRecordsInTx(ctx, tx, []domain.StoredRecord{selfRecord}); err != nil {
			return fmt.Errorf("create owner partner: %w", err)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create workplace",
			slog.String("workplace_id", workplace.WorkplaceID),
			slog.String("creator_id", creatorUserID))
		return nil, err
	}

	s.LogInfo(ctx, "Workplace created successfully",
		slog.String("workplace_id", workplace.WorkplaceID),
		slog.String("creator_id", creatorUserID))
	return &workplace, nil
}

// TrustWorkplace lets workplaceID read the shared records of trustedWorkplaceID
func (s *workplaceService) TrustWorkplace(ctx context.Context, workplaceID, trustedWorkplaceID, requestingUserID string) error {
	if workplaceID == trustedWorkplaceID {
		return apperrors.NewValidationFailedError("a workplace cannot trust itself")
	}
	if err := s.AuthorizeUserAction(ctx, requestingUserID, workplaceID, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.AuthorizeUserAction(ctx, requestingUserID, trustedWorkplaceID, domain.RoleReadOnly); err != nil {
		return err
	}

	trust := domain.WorkplaceTrust{
		WorkplaceID:        workplaceID,
		TrustedWorkplaceID: trustedWorkplaceID,
		CreatedAt:          s.CurrentTime(),
	}
	if err := s.workplaceRepo.SaveWorkplaceTrust(ctx, trust); err != nil {
		s.LogError(ctx, err, "Failed to save workplace trust",
			slog.String("workplace_id", workplaceID),
			slog.String("trusted_workplace_id", trustedWorkplaceID))
		return err
	}

	s.LogInfo(ctx, "Workplace trust saved",
		slog.String("workplace_id", workplaceID),
		slog.String("trusted_workplace_id", trustedWorkplaceID))
	return nil
}

// AuthorizeUserAction checks if a user has required permissions for a workplace
func (s *workplaceService) AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error {
	membership, err := s.workplaceRepo.FindUserWorkplaceRole(ctx, userID, workplaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of workplace",
				slog.String("user_id", userID),
				slog.String("workplace_id", workplaceID))
			return apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to find user workplace role",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID))
		return err
	}

	if !membership.Role.Satisfies(requiredRole) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID),
			slog.String("user_role", string(membership.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}

	return nil
}

// selfPartnerRecord builds the stored document of a workplace owner's partner.
func selfPartnerRecord(workplaceID, name, userID string, now time.Time) (domain.StoredRecord, error) {
	partner := domain.Partner{ID: uuid.NewString(), Name: name, IsSelf: true}
	payload, err := json.Marshal(partner)
	if err != nil {
		return domain.StoredRecord{}, err
	}
	return domain.StoredRecord{
		WorkplaceID: workplaceID,
		Collection:  domain.CollectionPartners,
		RecordID:    partner.ID,
		Payload:     payload,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}, nil
}
