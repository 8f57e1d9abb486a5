package services

import (
	"context"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
)

// TaxSettingsService defines operations for the per-workplace tax configuration
type TaxSettingsService interface {
	// GetTaxSettings returns the saved settings, or nil when tax is not configured.
	GetTaxSettings(ctx context.Context, workplaceID, userID string) (*domain.TaxSettings, error)

	// SaveTaxSettings validates and replaces the settings.
	SaveTaxSettings(ctx context.Context, workplaceID string, settings domain.TaxSettings, userID string) (*domain.TaxSettings, error)
}
