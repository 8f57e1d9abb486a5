package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TaxSettingsRepository defines persistence for the per-workplace tax configuration
type TaxSettingsRepository interface {
	// FindTaxSettings retrieves the settings of a workplace, or apperrors.ErrNotFound when none were saved.
	FindTaxSettings(ctx context.Context, workplaceID string) (*domain.TaxSettings, error)

	// SaveTaxSettings replaces the settings of a workplace.
	SaveTaxSettings(ctx context.Context, workplaceID string, settings domain.TaxSettings, userID string, now time.Time) error

	// DeleteTaxSettingsInTx removes the settings of a workplace.
	DeleteTaxSettingsInTx(ctx context.Context, tx pgx.Tx, workplaceID string) error
}
