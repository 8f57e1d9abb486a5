package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordResponse is a stored ledger record.
type RecordResponse struct {
	WorkplaceID   string            `json:"workplaceID"`
	Collection    domain.Collection `json:"collection"`
	RecordID      string            `json:"recordID"`
	RecordDate    string            `json:"recordDate,omitempty"`
	Record        json.RawMessage   `json:"record"`
	CreatedAt     time.Time         `json:"createdAt"`
	CreatedBy     string            `json:"createdBy"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
	LastUpdatedBy string            `json:"lastUpdatedBy"`
}

// ToRecordResponse converts domain.StoredRecord to DTO.
func ToRecordResponse(r *domain.StoredRecord) RecordResponse {
	return RecordResponse{
		WorkplaceID:   r.WorkplaceID,
		Collection:    r.Collection,
		RecordID:      r.RecordID,
		RecordDate:    r.RecordDate,
		Record:        r.Payload,
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
		LastUpdatedAt: r.LastUpdatedAt,
		LastUpdatedBy: r.LastUpdatedBy,
	}
}

// AddAdAccountRequest defines data for opening an ad account. Currency defaults to USD.
type AddAdAccountRequest struct {
	ID             string          `json:"id"`
	Name           string          `json:"name" binding:"required,max=200"`
	Currency       domain.Currency `json:"currency" binding:"omitempty,oneof=USD VND"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

// ToAsset converts the request to an ad account asset.
func (r AddAdAccountRequest) ToAsset() domain.Asset {
	return domain.Asset{
		ID:             r.ID,
		Name:           r.Name,
		Kind:           domain.AssetAdAccount,
		Currency:       r.Currency,
		InitialBalance: r.InitialBalance,
	}
}

// AddAdAccountsRequest opens several ad accounts at once.
type AddAdAccountsRequest struct {
	Accounts []AddAdAccountRequest `json:"accounts" binding:"required,min=1,dive"`
}

// CreatePartnerRequest defines data for adding a partner.
type CreatePartnerRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name" binding:"required,max=200"`
	LoginEmail string `json:"loginEmail" binding:"omitempty,email"`
}

// ToPartner converts the request to a partner.
func (r CreatePartnerRequest) ToPartner() domain.Partner {
	return domain.Partner{ID: r.ID, Name: r.Name, LoginEmail: r.LoginEmail}
}

// CreateLedgerEntryRequest defines a manual entry on a partner's ledger.
type CreateLedgerEntryRequest struct {
	Date        string                 `json:"date" binding:"required,datetime=2006-01-02"`
	Type        domain.LedgerEntryType `json:"type" binding:"required,oneof=inflow outflow"`
	Amount      decimal.Decimal        `json:"amount"`
	Description string                 `json:"description" binding:"max=500"`
}

// ToEntry converts the request to a ledger entry of partnerID.
func (r CreateLedgerEntryRequest) ToEntry(partnerID string) domain.PartnerLedgerEntry {
	return domain.PartnerLedgerEntry{
		PartnerID:   partnerID,
		Date:        r.Date,
		Type:        r.Type,
		Amount:      r.Amount,
		Description: r.Description,
	}
}
