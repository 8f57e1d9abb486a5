package domain

import "github.com/shopspring/decimal"

// Partner shares in project outcomes. Exactly one partner per workplace has IsSelf set:
// the workplace owner, who can never be deleted.
type Partner struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name"`
	LoginEmail string `json:"loginEmail,omitempty" validate:"omitempty,email"`
	IsSelf     bool   `json:"isSelf"`
}

// LedgerEntryType is the direction of a partner ledger entry.
type LedgerEntryType string

const (
	LedgerInflow  LedgerEntryType = "inflow"
	LedgerOutflow LedgerEntryType = "outflow"
)

// AutoEntryPrefix namespaces ids of ledger entries synthesized from other records.
const AutoEntryPrefix = "auto-"

// PartnerLedgerEntry is a dated movement on a partner's running balance.
type PartnerLedgerEntry struct {
	ID          string          `json:"id" validate:"required"`
	PartnerID   string          `json:"partnerId" validate:"required"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Type        LedgerEntryType `json:"type" validate:"oneof=inflow outflow"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

func (r PartnerLedgerEntry) RecordID() string   { return r.ID }
func (r PartnerLedgerEntry) RecordDate() string { return r.Date }

// IsAutomatic reports whether the entry was synthesized rather than authored.
func (r PartnerLedgerEntry) IsAutomatic() bool {
	return len(r.ID) >= len(AutoEntryPrefix) && r.ID[:len(AutoEntryPrefix)] == AutoEntryPrefix
}
