package services

import (
	"context"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
)

// PeriodService defines the period lifecycle of a workplace
type PeriodService interface {
	// GetPeriodState returns the active period and the closed history.
	GetPeriodState(ctx context.Context, workplaceID, userID string) (*domain.PeriodState, error)

	// OpenPeriod makes period the active period. It fails with apperrors.ErrPrecondition when a
	// period is already open or period was closed before.
	OpenPeriod(ctx context.Context, workplaceID, period, userID string) (*domain.PeriodState, error)

	// ClosePeriod computes and stores the financials of the active period and closes it.
	// It fails with apperrors.ErrPrecondition when no period is open.
	ClosePeriod(ctx context.Context, workplaceID, userID string) (*domain.ClosedPeriod, error)
}
