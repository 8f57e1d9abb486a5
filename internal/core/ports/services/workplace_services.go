package services

import (
	"context"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
)

// WorkplaceReaderSvc defines read operations for workplace data
type WorkplaceReaderSvc interface {
	// FindWorkplaceByID retrieves a specific workplace the requesting user belongs to.
	FindWorkplaceByID(ctx context.Context, workplaceID, requestingUserID string) (*domain.Workplace, error)

	// ListUserWorkplaces retrieves workplaces a user belongs to.
	// If includeDisabled is true, it includes inactive workplaces.
	ListUserWorkplaces(ctx context.Context, userID string, includeDisabled bool) ([]domain.Workplace, error)
}

// WorkplaceWriterSvc defines write operations for workplace data
type WorkplaceWriterSvc interface {
	// CreateWorkplace persists a new workplace, makes the creator its admin and creates
	// the owner's isSelf partner record.
	CreateWorkplace(ctx context.Context, name, description, ownerName, creatorUserID string) (*domain.Workplace, error)

	// TrustWorkplace folds the shared records of trustedWorkplaceID into workplaceID's snapshots.
	// The requesting user must be an admin of workplaceID and a member of trustedWorkplaceID.
	TrustWorkplace(ctx context.Context, workplaceID, trustedWorkplaceID, requestingUserID string) error
}

// WorkplaceAuthorizerSvc defines operations for workplace authorization
type WorkplaceAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user has required permissions for a workplace.
	AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error
}

// WorkplaceSvcFacade combines all workplace-related service interfaces
// This is a facade for clients that need access to all operations
type WorkplaceSvcFacade interface {
	WorkplaceReaderSvc
	WorkplaceWriterSvc
	WorkplaceAuthorizerSvc
}
