package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PeriodReader defines read operations for the period lifecycle of a workplace
type PeriodReader interface {
	// FindPeriodState retrieves the active period and the closed history of a workplace.
	// A workplace that never opened a period has an empty state.
	FindPeriodState(ctx context.Context, workplaceID string) (*domain.PeriodState, error)
}

// PeriodTransactionSupport defines lifecycle writes that run inside a caller-managed transaction
type PeriodTransactionSupport interface {
	// FindPeriodStateForUpdate reads the state and locks it until the transaction ends.
	FindPeriodStateForUpdate(ctx context.Context, tx pgx.Tx, workplaceID string) (*domain.PeriodState, error)

	// SaveActivePeriodInTx records the active period; an empty period means none is open.
	SaveActivePeriodInTx(ctx context.Context, tx pgx.Tx, workplaceID, period, userID string, now time.Time) error

	// SaveClosedPeriodInTx persists the immutable snapshot of a closed period.
	SaveClosedPeriodInTx(ctx context.Context, tx pgx.Tx, closed domain.ClosedPeriod) error

	// DeletePeriodsInTx removes the active period and closed history of a workplace.
	DeletePeriodsInTx(ctx context.Context, tx pgx.Tx, workplaceID string) error
}

// PeriodRepositoryFacade combines all period repository interfaces
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodTransactionSupport
}

// PeriodRepositoryWithTx extends PeriodRepositoryFacade with transaction capabilities
type PeriodRepositoryWithTx interface {
	PeriodRepositoryFacade
	TransactionManager
}
