package domain

import "github.com/shopspring/decimal"

// WarningCode classifies a recoverable data problem found while aggregating.
type WarningCode string

const (
	WarnMissingProject   WarningCode = "MISSING_PROJECT"
	WarnUnknownPartner   WarningCode = "UNKNOWN_PARTNER"
	WarnInvalidShares    WarningCode = "INVALID_SHARES"
	WarnMissingRate      WarningCode = "MISSING_RATE"
	WarnInvalidCurrency  WarningCode = "INVALID_CURRENCY"
	WarnMissingAsset     WarningCode = "MISSING_ASSET"
	WarnCurrencyMismatch WarningCode = "CURRENCY_MISMATCH"
	WarnMissingOwner     WarningCode = "MISSING_OWNER"
	WarnMissingDebt      WarningCode = "MISSING_DEBT"
	WarnUnreconciled     WarningCode = "UNRECONCILED"
	WarnInvalidEntry     WarningCode = "INVALID_ENTRY"
)

// Warning is reported to the caller instead of failing the computation.
type Warning struct {
	Code     WarningCode `json:"code"`
	RecordID string      `json:"recordId,omitempty"`
	Message  string      `json:"message"`
}

// PartnerPnl is one partner's apportioned result for a period (VND).
type PartnerPnl struct {
	PartnerID string          `json:"partnerId"`
	Name      string          `json:"name"`
	Revenue   decimal.Decimal `json:"revenue"`
	Cost      decimal.Decimal `json:"cost"`
	Profit    decimal.Decimal `json:"profit"`
	InputVAT  decimal.Decimal `json:"inputVat"`
}

// PnL is the period profit and loss in VND.
type PnL struct {
	Period             string          `json:"period"`
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	TotalCost          decimal.Decimal `json:"totalCost"`
	TotalProfit        decimal.Decimal `json:"totalProfit"`
	AdCost             decimal.Decimal `json:"adCost"`
	MiscCost           decimal.Decimal `json:"miscCost"`
	SoloRevenue        decimal.Decimal `json:"soloRevenue"`
	SoloCost           decimal.Decimal `json:"soloCost"`
	PartnershipRevenue decimal.Decimal `json:"partnershipRevenue"`
	PartnershipCost    decimal.Decimal `json:"partnershipCost"`
	InputVAT           decimal.Decimal `json:"inputVat"`
	MyRevenue          decimal.Decimal `json:"myRevenue"`
	MyCost             decimal.Decimal `json:"myCost"`
	MyProfit           decimal.Decimal `json:"myProfit"`
	MyInputVAT         decimal.Decimal `json:"myInputVat"`
	PartnerPnlDetails  []PartnerPnl    `json:"partnerPnlDetails"`
}

// TaxResult carries tax payable together with the intermediate bases for audit display.
type TaxResult struct {
	Method           TaxMethod       `json:"method"`
	RevenueBase      decimal.Decimal `json:"revenueBase"`
	SeparationAmount decimal.Decimal `json:"separationAmount"`
	TaxableRevenue   decimal.Decimal `json:"taxableRevenue"`
	OutputVAT        decimal.Decimal `json:"outputVat"`
	InputVAT         decimal.Decimal `json:"inputVat"`
	NetVAT           decimal.Decimal `json:"netVat"`
	ProfitBase       decimal.Decimal `json:"profitBase"`
	IncomeTax        decimal.Decimal `json:"incomeTax"`
	TaxPayable       decimal.Decimal `json:"taxPayable"`
}

// CashFlowLine is one labeled cash movement.
type CashFlowLine struct {
	RecordID string          `json:"recordId"`
	AssetID  string          `json:"assetId"`
	Date     string          `json:"date"`
	Label    string          `json:"label"`
	Amount   decimal.Decimal `json:"amount"`
}

// CashFlowBucket is one of operating, investing or financing activity.
type CashFlowBucket struct {
	Inflows      []CashFlowLine  `json:"inflows"`
	Outflows     []CashFlowLine  `json:"outflows"`
	TotalInflow  decimal.Decimal `json:"totalInflow"`
	TotalOutflow decimal.Decimal `json:"totalOutflow"`
	Net          decimal.Decimal `json:"net"`
}

// CashFlowStatement covers all assets of one currency.
type CashFlowStatement struct {
	Currency         Currency        `json:"currency"`
	Operating        CashFlowBucket  `json:"operating"`
	Investing        CashFlowBucket  `json:"investing"`
	Financing        CashFlowBucket  `json:"financing"`
	BeginningBalance decimal.Decimal `json:"beginningBalance"`
	NetChange        decimal.Decimal `json:"netChange"`
	EndBalance       decimal.Decimal `json:"endBalance"`
	// AssetsEndBalance is the sum of the closing balances of the currency's assets.
	AssetsEndBalance decimal.Decimal `json:"assetsEndBalance"`
	Reconciled       bool            `json:"reconciled"`
}

// PeriodAssetDetail is an asset's opening and closing balance for the period, in its own currency.
type PeriodAssetDetail struct {
	AssetID        string          `json:"assetId"`
	Name           string          `json:"name"`
	Kind           AssetKind       `json:"kind"`
	Currency       Currency        `json:"currency"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Inflow         decimal.Decimal `json:"inflow"`
	Outflow        decimal.Decimal `json:"outflow"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// DebtPosition is a liability or receivable as of the period end.
type DebtPosition struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Currency    Currency        `json:"currency"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Paid        decimal.Decimal `json:"paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Settled     bool            `json:"settled"`
}

// PeriodFinancials is everything computed for one period.
type PeriodFinancials struct {
	Period      string              `json:"period"`
	PnL         PnL                 `json:"pnl"`
	Tax         *TaxResult          `json:"tax,omitempty"`
	CashFlows   []CashFlowStatement `json:"cashFlows"`
	Assets      []PeriodAssetDetail `json:"assets"`
	Liabilities []DebtPosition      `json:"liabilities"`
	Receivables []DebtPosition      `json:"receivables"`
	Warnings    []Warning           `json:"warnings"`
}

// CashFlowFor returns the statement for currency c, if present.
func (f PeriodFinancials) CashFlowFor(c Currency) (CashFlowStatement, bool) {
	for _, s := range f.CashFlows {
		if s.Currency == c {
			return s, true
		}
	}
	return CashFlowStatement{}, false
}

// PartnerLedgerLine is an entry with the running balance after it was applied.
type PartnerLedgerLine struct {
	Entry          PartnerLedgerEntry `json:"entry"`
	Automatic      bool               `json:"automatic"`
	RunningBalance decimal.Decimal    `json:"runningBalance"`
}

// PartnerLedger is a partner's reconciled ledger. Lines are date-descending for display.
type PartnerLedger struct {
	PartnerID    string              `json:"partnerId"`
	Name         string              `json:"name"`
	IsSelf       bool                `json:"isSelf"`
	Lines        []PartnerLedgerLine `json:"lines"`
	TotalInflow  decimal.Decimal     `json:"totalInflow"`
	TotalOutflow decimal.Decimal     `json:"totalOutflow"`
	Balance      decimal.Decimal     `json:"balance"`
}
