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

// PgxLedgerRecordRepository stores ledger records as jsonb documents keyed by workplace, collection and id.
type PgxLedgerRecordRepository struct {
	BaseRepository
}

func newPgxLedgerRecordRepository(pool *pgxpool.Pool) portsrepo.LedgerRecordRepositoryWithTx {
	return &PgxLedgerRecordRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerRecordRepositoryWithTx = (*PgxLedgerRecordRepository)(nil)

const recordSelectQuery = `
SELECT
	workplace_id, collection, record_id, record_date, payload,
	created_at, created_by, last_updated_at, last_updated_by
FROM ledger_records
`

func scanRecord(row pgx.CollectableRow) (domain.StoredRecord, error) {
	var (
		r       domain.StoredRecord
		payload []byte
	)
	err := row.Scan(
		&r.WorkplaceID, &r.Collection, &r.RecordID, &r.RecordDate, &payload,
		&r.CreatedAt, &r.CreatedBy, &r.LastUpdatedAt, &r.LastUpdatedBy,
	)
	r.Payload = payload
	return r, err
}

func (r *PgxLedgerRecordRepository) ListRecords(ctx context.Context, workplaceIDs []string, collection domain.Collection) ([]domain.StoredRecord, error) {
	return listRecords(ctx, r.Pool, workplaceIDs, collection)
}

func (r *PgxLedgerRecordRepository) ListRecordsInTx(ctx context.Context, tx pgx.Tx, workplaceIDs []string, collection domain.Collection) ([]domain.StoredRecord, error) {
	return listRecords(ctx, tx, workplaceIDs, collection)
}

func listRecords(ctx context.Context, q querier, workplaceIDs []string, collection domain.Collection) ([]domain.StoredRecord, error) {
	query := recordSelectQuery + `
		WHERE workplace_id = ANY($1) AND collection = $2
		ORDER BY record_date, record_id, workplace_id;
	`
	rows, err := q.Query(ctx, query, workplaceIDs, string(collection))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query "+string(collection), err)
	}
	records, err := pgx.CollectRows(rows, scanRecord)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect "+string(collection)+" rows", err)
	}
	return records, nil
}

func (r *PgxLedgerRecordRepository) FindRecord(ctx context.Context, workplaceID string, collection domain.Collection, recordID string) (*domain.StoredRecord, error) {
	query := recordSelectQuery + `WHERE workplace_id = $1 AND collection = $2 AND record_id = $3;`
	rows, err := r.Pool.Query(ctx, query, workplaceID, string(collection), recordID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query record "+recordID, err)
	}
	record, err := pgx.CollectExactlyOneRow(rows, scanRecord)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(string(collection) + " record " + recordID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to scan record "+recordID, err)
	}
	return &record, nil
}

func (r *PgxLedgerRecordRepository) SaveRecordsInTx(ctx context.Context, tx pgx.Tx, records []domain.StoredRecord) error {
	query := `
		INSERT INTO ledger_records (
			workplace_id, collection, record_id, record_date, payload,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (workplace_id, collection, record_id) DO UPDATE SET
			record_date = EXCLUDED.record_date,
			payload = EXCLUDED.payload,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(query,
			rec.WorkplaceID, string(rec.Collection), rec.RecordID, rec.RecordDate, []byte(rec.Payload),
			rec.CreatedAt, rec.CreatedBy, rec.LastUpdatedAt, rec.LastUpdatedBy,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to save ledger records", err)
	}
	return nil
}

func (r *PgxLedgerRecordRepository) DeleteRecordInTx(ctx context.Context, tx pgx.Tx, workplaceID string, collection domain.Collection, recordID string) error {
	query := `DELETE FROM ledger_records WHERE workplace_id = $1 AND collection = $2 AND record_id = $3;`
	tag, err := tx.Exec(ctx, query, workplaceID, string(collection), recordID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete record "+recordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(string(collection) + " record " + recordID + " not found")
	}
	return nil
}

func (r *PgxLedgerRecordRepository) DeleteWorkplaceRecordsInTx(ctx context.Context, tx pgx.Tx, workplaceID string) (int64, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM ledger_records WHERE workplace_id = $1;`, workplaceID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to delete records of workplace "+workplaceID, err)
	}
	return tag.RowsAffected(), nil
}
