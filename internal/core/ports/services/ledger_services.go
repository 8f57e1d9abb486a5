package services

import (
	"context"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
)

// LedgerRecordWriterSvc defines generic create/replace and delete of ledger records
type LedgerRecordWriterSvc interface {
	// SaveRecord validates payload as a record of collection and stores it. Records dated
	// within a closed period are rejected with apperrors.ErrPeriodClosed.
	SaveRecord(ctx context.Context, workplaceID string, collection domain.Collection, payload []byte, userID string) (*domain.StoredRecord, error)

	// DeleteRecord removes a record unless it is dated within a closed period.
	DeleteRecord(ctx context.Context, workplaceID string, collection domain.Collection, recordID, userID string) error
}

// AdAccountSvc defines operations for ad accounts, which are assets of kind ad_account
type AdAccountSvc interface {
	// AddAdAccount creates a single ad account.
	AddAdAccount(ctx context.Context, workplaceID string, account domain.Asset, userID string) (*domain.Asset, error)

	// AddAdAccounts creates several ad accounts atomically.
	AddAdAccounts(ctx context.Context, workplaceID string, accounts []domain.Asset, userID string) ([]domain.Asset, error)
}

// PartnerSvc defines operations for partners and their manual ledger entries
type PartnerSvc interface {
	// CreatePartner adds a partner. Only the workplace itself creates the isSelf partner.
	CreatePartner(ctx context.Context, workplaceID string, partner domain.Partner, userID string) (*domain.Partner, error)

	// DeletePartner removes a partner. The isSelf partner can never be deleted.
	DeletePartner(ctx context.Context, workplaceID, partnerID, userID string) error

	// AddLedgerEntry records a manual entry on a partner's ledger.
	AddLedgerEntry(ctx context.Context, workplaceID string, entry domain.PartnerLedgerEntry, userID string) (*domain.PartnerLedgerEntry, error)
}

// WorkplaceAdminSvc defines administrative operations that bypass the closed-period guard
type WorkplaceAdminSvc interface {
	// WipeWorkplace deletes every record, period and tax setting of a workplace, then recreates
	// the isSelf partner.
	WipeWorkplace(ctx context.Context, workplaceID, userID string) error
}

// LedgerSvcFacade combines all ledger write service interfaces
type LedgerSvcFacade interface {
	LedgerRecordWriterSvc
	AdAccountSvc
	PartnerSvc
	WorkplaceAdminSvc
}
