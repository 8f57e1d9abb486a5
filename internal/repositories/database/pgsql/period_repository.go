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

// PgxPeriodRepository persists the active period of a workplace and its closed period snapshots.
type PgxPeriodRepository struct {
	BaseRepository
}

func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepositoryWithTx {
	return &PgxPeriodRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PeriodRepositoryWithTx = (*PgxPeriodRepository)(nil)

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *PgxPeriodRepository) FindPeriodState(ctx context.Context, workplaceID string) (*domain.PeriodState, error) {
	var active string
	err := r.Pool.QueryRow(ctx, `SELECT active_period FROM workplace_periods WHERE workplace_id = $1;`, workplaceID).Scan(&active)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewAppError(500, "failed to load active period of "+workplaceID, err)
	}
	return r.stateWithHistory(ctx, r.Pool, workplaceID, active)
}

func (r *PgxPeriodRepository) FindPeriodStateForUpdate(ctx context.Context, tx pgx.Tx, workplaceID string) (*domain.PeriodState, error) {
	// The row must exist before it can be locked.
	_, err := tx.Exec(ctx, `
		INSERT INTO workplace_periods (workplace_id, active_period, last_updated_at, last_updated_by)
		VALUES ($1, '', NOW(), '')
		ON CONFLICT (workplace_id) DO NOTHING;
	`, workplaceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to initialise period state of "+workplaceID, err)
	}

	var active string
	err = tx.QueryRow(ctx, `SELECT active_period FROM workplace_periods WHERE workplace_id = $1 FOR UPDATE;`, workplaceID).Scan(&active)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock period state of "+workplaceID, err)
	}
	return r.stateWithHistory(ctx, tx, workplaceID, active)
}

func (r *PgxPeriodRepository) stateWithHistory(ctx context.Context, q querier, workplaceID, active string) (*domain.PeriodState, error) {
	rows, err := q.Query(ctx, `
		SELECT workplace_id, period, financials, closed_at, closed_by
		FROM closed_periods
		WHERE workplace_id = $1
		ORDER BY period;
	`, workplaceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query closed periods of "+workplaceID, err)
	}
	closed, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ClosedPeriod, error) {
		var (
			c          domain.ClosedPeriod
			financials []byte
		)
		if err := row.Scan(&c.WorkplaceID, &c.Period, &financials, &c.ClosedAt, &c.ClosedBy); err != nil {
			return c, err
		}
		return c, json.Unmarshal(financials, &c.Financials)
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect closed periods of "+workplaceID, err)
	}
	return &domain.PeriodState{WorkplaceID: workplaceID, ActivePeriod: active, Closed: closed}, nil
}

func (r *PgxPeriodRepository) SaveActivePeriodInTx(ctx context.Context, tx pgx.Tx, workplaceID, period, userID string, now time.Time) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO workplace_periods (workplace_id, active_period, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (workplace_id) DO UPDATE SET
			active_period = EXCLUDED.active_period,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`, workplaceID, period, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save active period of "+workplaceID, err)
	}
	return nil
}

func (r *PgxPeriodRepository) SaveClosedPeriodInTx(ctx context.Context, tx pgx.Tx, closed domain.ClosedPeriod) error {
	financials, err := json.Marshal(closed.Financials)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode financials of "+closed.Period, err)
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO closed_periods (workplace_id, period, financials, closed_at, closed_by)
		VALUES ($1, $2, $3, $4, $5);
	`, closed.WorkplaceID, closed.Period, financials, closed.ClosedAt, closed.ClosedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("period " + closed.Period + " is already closed")
		}
		return apperrors.NewAppError(500, "failed to save closed period "+closed.Period, err)
	}
	return nil
}

func (r *PgxPeriodRepository) DeletePeriodsInTx(ctx context.Context, tx pgx.Tx, workplaceID string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM closed_periods WHERE workplace_id = $1;`, workplaceID); err != nil {
		return apperrors.NewAppError(500, "failed to delete closed periods of "+workplaceID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM workplace_periods WHERE workplace_id = $1;`, workplaceID); err != nil {
		return apperrors.NewAppError(500, "failed to delete period state of "+workplaceID, err)
	}
	return nil
}
