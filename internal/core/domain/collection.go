package domain

import "encoding/json"

// Collection names one kind of ledger record. Records are stored as JSON documents per collection.
type Collection string

const (
	CollectionProjects           Collection = "projects"
	CollectionAssets             Collection = "assets"
	CollectionAdCosts            Collection = "ad_costs"
	CollectionCommissions        Collection = "commissions"
	CollectionExpenses           Collection = "expenses"
	CollectionExchanges          Collection = "exchanges"
	CollectionAdFundTransfers    Collection = "ad_fund_transfers"
	CollectionTaxPayments        Collection = "tax_payments"
	CollectionLiabilities        Collection = "liabilities"
	CollectionLiabilityPayments  Collection = "liability_payments"
	CollectionReceivables        Collection = "receivables"
	CollectionReceivablePayments Collection = "receivable_payments"
	CollectionCapitalInflows     Collection = "capital_inflows"
	CollectionWithdrawals        Collection = "withdrawals"
	CollectionPartners           Collection = "partners"
	CollectionPartnerLedger      Collection = "partner_ledger_entries"
)

// Collections lists every collection in snapshot order.
var Collections = []Collection{
	CollectionProjects,
	CollectionAssets,
	CollectionAdCosts,
	CollectionCommissions,
	CollectionExpenses,
	CollectionExchanges,
	CollectionAdFundTransfers,
	CollectionTaxPayments,
	CollectionLiabilities,
	CollectionLiabilityPayments,
	CollectionReceivables,
	CollectionReceivablePayments,
	CollectionCapitalInflows,
	CollectionWithdrawals,
	CollectionPartners,
	CollectionPartnerLedger,
}

// IsValid reports whether c is a known collection.
func (c Collection) IsValid() bool {
	for _, known := range Collections {
		if c == known {
			return true
		}
	}
	return false
}

// Shared reports whether records of c from trusted workplaces are folded into a snapshot.
// Partners and their ledgers always belong to a single workplace.
func (c Collection) Shared() bool {
	return c != CollectionPartners && c != CollectionPartnerLedger
}

// Dated reports whether records of c carry a date and are therefore frozen once their period closes.
func (c Collection) Dated() bool {
	switch c {
	case CollectionProjects, CollectionAssets, CollectionPartners:
		return false
	default:
		return true
	}
}

// StoredRecord is a ledger record as persisted: the JSON document plus the keys it is indexed by.
type StoredRecord struct {
	WorkplaceID string          `json:"workplaceID"`
	Collection  Collection      `json:"collection"`
	RecordID    string          `json:"recordID"`
	RecordDate  string          `json:"recordDate,omitempty"`
	Payload     json.RawMessage `json:"payload"`
	AuditFields
}
