package domain

// LedgerSnapshot is a read-only, deduplicated copy of every collection of a workplace,
// including records shared by trusted workplaces. The finance engine never mutates it.
type LedgerSnapshot struct {
	WorkplaceID          string                 `json:"workplaceId"`
	Projects             []Project              `json:"projects" validate:"dive"`
	Assets               []Asset                `json:"assets" validate:"dive"`
	AdCosts              []DailyAdCost          `json:"adCosts" validate:"dive"`
	Commissions          []Commission           `json:"commissions" validate:"dive"`
	Expenses             []MiscellaneousExpense `json:"expenses" validate:"dive"`
	Exchanges            []ExchangeLog          `json:"exchanges" validate:"dive"`
	AdFundTransfers      []AdFundTransfer       `json:"adFundTransfers" validate:"dive"`
	TaxPayments          []TaxPayment           `json:"taxPayments" validate:"dive"`
	Liabilities          []Liability            `json:"liabilities" validate:"dive"`
	LiabilityPayments    []LiabilityPayment     `json:"liabilityPayments" validate:"dive"`
	Receivables          []Receivable           `json:"receivables" validate:"dive"`
	ReceivablePayments   []ReceivablePayment    `json:"receivablePayments" validate:"dive"`
	CapitalInflows       []CapitalInflow        `json:"capitalInflows" validate:"dive"`
	Withdrawals          []Withdrawal           `json:"withdrawals" validate:"dive"`
	Partners             []Partner              `json:"partners" validate:"dive"`
	PartnerLedgerEntries []PartnerLedgerEntry   `json:"partnerLedgerEntries" validate:"dive"`
	ClosedPeriods        []ClosedPeriod         `json:"closedPeriods"`
}

// ProjectByID indexes projects by id.
func (s *LedgerSnapshot) ProjectByID() map[string]Project {
	out := make(map[string]Project, len(s.Projects))
	for _, p := range s.Projects {
		out[p.ID] = p
	}
	return out
}

// AssetByID indexes assets by id.
func (s *LedgerSnapshot) AssetByID() map[string]Asset {
	out := make(map[string]Asset, len(s.Assets))
	for _, a := range s.Assets {
		out[a.ID] = a
	}
	return out
}

// PartnerByID indexes partners by id.
func (s *LedgerSnapshot) PartnerByID() map[string]Partner {
	out := make(map[string]Partner, len(s.Partners))
	for _, p := range s.Partners {
		out[p.ID] = p
	}
	return out
}

// Self returns the workplace owner's partner record.
func (s *LedgerSnapshot) Self() (Partner, bool) {
	for _, p := range s.Partners {
		if p.IsSelf {
			return p, true
		}
	}
	return Partner{}, false
}
