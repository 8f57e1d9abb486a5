package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/affiliate_ledger/internal/apperrors"
	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/affiliate_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWorkplaceRepository struct {
	BaseRepository
}

// newPgxWorkplaceRepository creates a new repository for workplace data.
func newPgxWorkplaceRepository(pool *pgxpool.Pool) portsrepo.WorkplaceRepositoryWithTx {
	return &PgxWorkplaceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxWorkplaceRepository implements portsrepo.WorkplaceRepositoryWithTx
var _ portsrepo.WorkplaceRepositoryWithTx = (*PgxWorkplaceRepository)(nil)

const workplaceSelectQuery = `
SELECT
	w.workplace_id, w.name, w.description, w.is_active,
	w.created_at, w.created_by, w.last_updated_at, w.last_updated_by
FROM workplaces w
`

func scanWorkplace(row pgx.CollectableRow) (domain.Workplace, error) {
	var w domain.Workplace
	err := row.Scan(
		&w.WorkplaceID, &w.Name, &w.Description, &w.IsActive,
		&w.CreatedAt, &w.CreatedBy, &w.LastUpdatedAt, &w.LastUpdatedBy,
	)
	return w, err
}

// getWorkplaces runs the select query with the given filter
func (r *PgxWorkplaceRepository) getWorkplaces(ctx context.Context, filterQuery string, args ...any) ([]domain.Workplace, error) {
	rows, err := r.Pool.Query(ctx, workplaceSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query workplaces", err)
	}
	workplaces, err := pgx.CollectRows(rows, scanWorkplace)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect workplace rows", err)
	}
	return workplaces, nil
}

func (r *PgxWorkplaceRepository) SaveWorkplaceInTx(ctx context.Context, tx pgx.Tx, workplace domain.Workplace) error {
	query := `
		INSERT INTO workplaces (
			workplace_id, name, description, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query,
		workplace.WorkplaceID,
		workplace.Name,
		workplace.Description,
		workplace.IsActive,
		workplace.CreatedAt,
		workplace.CreatedBy,
		workplace.LastUpdatedAt,
		workplace.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("workplace ID " + workplace.WorkplaceID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save workplace "+workplace.WorkplaceID, err)
	}
	return nil
}

func (r *PgxWorkplaceRepository) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	workplaces, err := r.getWorkplaces(ctx, `WHERE w.workplace_id = $1`, workplaceID)
	if err != nil {
		return nil, err
	}
	if len(workplaces) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &workplaces[0], nil
}

func (r *PgxWorkplaceRepository) ListWorkplacesByUserID(ctx context.Context, userID string) ([]domain.Workplace, error) {
	query := `JOIN user_workplaces uw ON w.workplace_id = uw.workplace_id WHERE uw.user_id = $1 ORDER BY w.name;`
	return r.getWorkplaces(ctx, query, userID)
}

func (r *PgxWorkplaceRepository) AddUserToWorkplaceInTx(ctx context.Context, tx pgx.Tx, membership domain.UserWorkplace) error {
	query := `
		INSERT INTO user_workplaces (user_id, workplace_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, workplace_id) DO UPDATE SET role = EXCLUDED.role;
	` // Upsert: Add user or update their role if they already exist
	_, err := tx.Exec(ctx, query,
		membership.UserID,
		membership.WorkplaceID,
		membership.Role,
		membership.JoinedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to add/update user "+membership.UserID+" in workplace "+membership.WorkplaceID, err)
	}
	return nil
}

func (r *PgxWorkplaceRepository) FindUserWorkplaceRole(ctx context.Context, userID, workplaceID string) (*domain.UserWorkplace, error) {
	query := `
		SELECT user_id, workplace_id, role, joined_at
		FROM user_workplaces
		WHERE user_id = $1 AND workplace_id = $2;
	`
	var uw domain.UserWorkplace
	err := r.Pool.QueryRow(ctx, query, userID, workplaceID).Scan(
		&uw.UserID,
		&uw.WorkplaceID,
		&uw.Role,
		&uw.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user is not a member of workplace " + workplaceID)
		}
		return nil, apperrors.NewAppError(500, "failed to find user "+userID+" workplace role in "+workplaceID, err)
	}
	return &uw, nil
}

func (r *PgxWorkplaceRepository) SaveWorkplaceTrust(ctx context.Context, trust domain.WorkplaceTrust) error {
	query := `
		INSERT INTO workplace_trusts (workplace_id, trusted_workplace_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (workplace_id, trusted_workplace_id) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, query, trust.WorkplaceID, trust.TrustedWorkplaceID, trust.CreatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save trust from "+trust.WorkplaceID+" to "+trust.TrustedWorkplaceID, err)
	}
	return nil
}

func (r *PgxWorkplaceRepository) ListTrustedWorkplaceIDs(ctx context.Context, workplaceID string) ([]string, error) {
	query := `
		SELECT trusted_workplace_id
		FROM workplace_trusts
		WHERE workplace_id = $1
		ORDER BY trusted_workplace_id;
	`
	rows, err := r.Pool.Query(ctx, query, workplaceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list trusted workplaces of "+workplaceID, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect trusted workplace rows", err)
	}
	return ids, nil
}
