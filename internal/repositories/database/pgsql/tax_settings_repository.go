package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/SscSPs/affiliate_ledger/internal/apperrors"
	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/affiliate_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTaxSettingsRepository struct {
	BaseRepository
}

func newPgxTaxSettingsRepository(pool *pgxpool.Pool) portsrepo.TaxSettingsRepository {
	return &PgxTaxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TaxSettingsRepository = (*PgxTaxSettingsRepository)(nil)

func (r *PgxTaxSettingsRepository) FindTaxSettings(ctx context.Context, workplaceID string) (*domain.TaxSettings, error) {
	var raw []byte
	err := r.Pool.QueryRow(ctx, `SELECT settings FROM tax_settings WHERE workplace_id = $1;`, workplaceID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("tax settings of workplace " + workplaceID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to load tax settings of "+workplaceID, err)
	}
	var settings domain.TaxSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, apperrors.NewAppError(500, "failed to decode tax settings of "+workplaceID, err)
	}
	return &settings, nil
}

func (r *PgxTaxSettingsRepository) SaveTaxSettings(ctx context.Context, workplaceID string, settings domain.TaxSettings, userID string, now time.Time) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode tax settings", err)
	}
	_, err = r.Pool.Exec(ctx, `
		INSERT INTO tax_settings (workplace_id, settings, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (workplace_id) DO UPDATE SET
			settings = EXCLUDED.settings,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`, workplaceID, raw, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save tax settings of "+workplaceID, err)
	}
	return nil
}

func (r *PgxTaxSettingsRepository) DeleteTaxSettingsInTx(ctx context.Context, tx pgx.Tx, workplaceID string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM tax_settings WHERE workplace_id = $1;`, workplaceID); err != nil {
		return apperrors.NewAppError(500, "failed to delete tax settings of "+workplaceID, err)
	}
	return nil
}
