package services

import (
	"context"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
)

// ReportingService defines operations for computing period financials and partner ledgers
type ReportingService interface {
	// PeriodFinancials returns the financials of a period. Closed periods return their stored
	// snapshot; any other period is computed from the current ledger.
	PeriodFinancials(ctx context.Context, workplaceID, period, userID string) (*domain.PeriodFinancials, error)

	// PartnerLedgers returns every partner's reconciled ledger, newest entries first.
	PartnerLedgers(ctx context.Context, workplaceID, userID string) ([]domain.PartnerLedger, []domain.Warning, error)
}
