package repositories

import (
	"context"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// WorkplaceReader defines read operations for workplace data
type WorkplaceReader interface {
	// FindWorkplaceByID retrieves a specific workplace by its ID.
	FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error)

	// ListWorkplacesByUserID retrieves all workplaces a user belongs to.
	ListWorkplacesByUserID(ctx context.Context, userID string) ([]domain.Workplace, error)
}

// WorkplaceWriter defines write operations for workplace data
type WorkplaceWriter interface {
	// SaveWorkplaceInTx persists a new workplace.
	SaveWorkplaceInTx(ctx context.Context, tx pgx.Tx, workplace domain.Workplace) error
}

// WorkplaceMembershipManager defines operations for managing workplace memberships
type WorkplaceMembershipManager interface {
	// AddUserToWorkplaceInTx adds a user to a workplace with a specific role.
	AddUserToWorkplaceInTx(ctx context.Context, tx pgx.Tx, membership domain.UserWorkplace) error

	// FindUserWorkplaceRole retrieves the role of a user in a workplace.
	FindUserWorkplaceRole(ctx context.Context, userID, workplaceID string) (*domain.UserWorkplace, error)
}

// WorkplaceTrustManager defines operations for sharing records between workplaces
type WorkplaceTrustManager interface {
	// SaveWorkplaceTrust lets workplaceID read the shared records of trust.TrustedWorkplaceID.
	SaveWorkplaceTrust(ctx context.Context, trust domain.WorkplaceTrust) error

	// ListTrustedWorkplaceIDs retrieves the workplaces whose records workplaceID reads.
	ListTrustedWorkplaceIDs(ctx context.Context, workplaceID string) ([]string, error)
}

// WorkplaceRepositoryFacade combines all workplace-related repository interfaces
// This is a facade for clients that need access to all operations
type WorkplaceRepositoryFacade interface {
	WorkplaceReader
	WorkplaceWriter
	WorkplaceMembershipManager
	WorkplaceTrustManager
}

// WorkplaceRepositoryWithTx extends WorkplaceRepositoryFacade with transaction capabilities
type WorkplaceRepositoryWithTx interface {
	WorkplaceRepositoryFacade
	TransactionManager
}
