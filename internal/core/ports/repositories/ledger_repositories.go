package repositories

import (
	"context"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LedgerRecordReader defines read operations for ledger record documents
type LedgerRecordReader interface {
	// ListRecords retrieves every record of a collection owned by any of the given workplaces.
	ListRecords(ctx context.Context, workplaceIDs []string, collection domain.Collection) ([]domain.StoredRecord, error)

	// FindRecord retrieves a single record by its collection and id.
	FindRecord(ctx context.Context, workplaceID string, collection domain.Collection, recordID string) (*domain.StoredRecord, error)
}

// LedgerRecordTxReader reads ledger records through a caller-managed transaction
type LedgerRecordTxReader interface {
	// ListRecordsInTx is ListRecords run on tx.
	ListRecordsInTx(ctx context.Context, tx pgx.Tx, workplaceIDs []string, collection domain.Collection) ([]domain.StoredRecord, error)
}

// LedgerRecordTransactionSupport defines write operations that run inside a caller-managed transaction
type LedgerRecordTransactionSupport interface {
	// SaveRecordsInTx inserts or replaces the given records.
	SaveRecordsInTx(ctx context.Context, tx pgx.Tx, records []domain.StoredRecord) error

	// DeleteRecordInTx removes one record. It returns apperrors.ErrNotFound when nothing was deleted.
	DeleteRecordInTx(ctx context.Context, tx pgx.Tx, workplaceID string, collection domain.Collection, recordID string) error

	// DeleteWorkplaceRecordsInTx removes every record of a workplace and reports how many were removed.
	DeleteWorkplaceRecordsInTx(ctx context.Context, tx pgx.Tx, workplaceID string) (int64, error)
}

// LedgerRecordRepositoryFacade combines all ledger-record repository interfaces
type LedgerRecordRepositoryFacade interface {
	LedgerRecordReader
	LedgerRecordTxReader
	LedgerRecordTransactionSupport
}

// LedgerRecordRepositoryWithTx extends LedgerRecordRepositoryFacade with transaction capabilities
type LedgerRecordRepositoryWithTx interface {
	LedgerRecordRepositoryFacade
	TransactionManager
}
