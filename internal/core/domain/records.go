package domain

import "github.com/shopspring/decimal"

// Dated is implemented by every record that belongs to an accounting period through its date.
type Dated interface {
	RecordID() string
	RecordDate() string
}

// PartnerShare assigns a percentage of a project's or expense's outcome to a partner.
type PartnerShare struct {
	PartnerID       string          `json:"partnerId" validate:"required"`
	SharePercentage decimal.Decimal `json:"sharePercentage"`
}

// Project groups commissions and ad costs; partnered projects split their outcome by PartnerShares.
type Project struct {
	ID            string         `json:"id" validate:"required"`
	WorkplaceID   string         `json:"workplaceId"`
	Name          string         `json:"name"`
	Period        string         `json:"period"`
	IsPartnership bool           `json:"isPartnership"`
	PartnerShares []PartnerShare `json:"partnerShares,omitempty" validate:"dive"`
}

// AssetKind describes where cash is held.
type AssetKind string

const (
	AssetCash      AssetKind = "cash"
	AssetBank      AssetKind = "bank"
	AssetWallet    AssetKind = "wallet"
	AssetAdAccount AssetKind = "ad_account"
)

// Asset is a unit of cash storage. Balance is the running balance persisted by the store;
// InitialBalance is the balance the asset was opened with.
type Asset struct {
	ID             string          `json:"id" validate:"required"`
	WorkplaceID    string          `json:"workplaceId"`
	Name           string          `json:"name"`
	Kind           AssetKind       `json:"kind"`
	Currency       Currency        `json:"currency"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Balance        decimal.Decimal `json:"balance"`
}

// DailyAdCost is ad spend for one day, usually billed in USD on an ad account.
type DailyAdCost struct {
	ID        string          `json:"id" validate:"required"`
	Date      string          `json:"date" validate:"required,datetime=2006-01-02"`
	ProjectID string          `json:"projectId,omitempty"`
	AssetID   string          `json:"assetId" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  Currency        `json:"currency"`
	Rate      decimal.Decimal `json:"rate"`
	VATRate   decimal.Decimal `json:"vatRate"`
}

func (r DailyAdCost) RecordID() string   { return r.ID }
func (r DailyAdCost) RecordDate() string { return r.Date }

// Commission is affiliate revenue received for a project.
type Commission struct {
	ID        string          `json:"id" validate:"required"`
	Date      string          `json:"date" validate:"required,datetime=2006-01-02"`
	ProjectID string          `json:"projectId,omitempty"`
	AssetID   string          `json:"assetId" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  Currency        `json:"currency"`
	Rate      decimal.Decimal `json:"rate"`
}

func (r Commission) RecordID() string   { return r.ID }
func (r Commission) RecordDate() string { return r.Date }

// MiscellaneousExpense is any non-ad cost. Without a project it may carry its own partner split.
type MiscellaneousExpense struct {
	ID            string          `json:"id" validate:"required"`
	Date          string          `json:"date" validate:"required,datetime=2006-01-02"`
	Description   string          `json:"description,omitempty"`
	ProjectID     string          `json:"projectId,omitempty"`
	AssetID       string          `json:"assetId" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      Currency        `json:"currency"`
	Rate          decimal.Decimal `json:"rate"`
	VATRate       decimal.Decimal `json:"vatRate"`
	IsPartnership bool            `json:"isPartnership"`
	PartnerShares []PartnerShare  `json:"partnerShares,omitempty" validate:"dive"`
}

func (r MiscellaneousExpense) RecordID() string   { return r.ID }
func (r MiscellaneousExpense) RecordDate() string { return r.Date }

// ExchangeLog converts money between two assets. FromAmount is in the source asset's
// currency and ToAmount in the destination asset's currency.
type ExchangeLog struct {
	ID          string          `json:"id" validate:"required"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	FromAssetID string          `json:"fromAssetId" validate:"required"`
	ToAssetID   string          `json:"toAssetId" validate:"required"`
	FromAmount  decimal.Decimal `json:"fromAmount"`
	ToAmount    decimal.Decimal `json:"toAmount"`
	Rate        decimal.Decimal `json:"rate"`
}

func (r ExchangeLog) RecordID() string   { return r.ID }
func (r ExchangeLog) RecordDate() string { return r.Date }

// AdFundTransfer moves funds into or between ad accounts. Both ends are assets of the same currency.
type AdFundTransfer struct {
	ID          string          `json:"id" validate:"required"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	FromAssetID string          `json:"fromAssetId" validate:"required"`
	ToAssetID   string          `json:"toAssetId" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
}

func (r AdFundTransfer) RecordID() string   { return r.ID }
func (r AdFundTransfer) RecordDate() string { return r.Date }

// TaxPayment is tax actually paid out of an asset.
type TaxPayment struct {
	ID        string          `json:"id" validate:"required"`
	Date      string          `json:"date" validate:"required,datetime=2006-01-02"`
	AssetID   string          `json:"assetId" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  Currency        `json:"currency"`
	ForPeriod string          `json:"forPeriod,omitempty"`
}

func (r TaxPayment) RecordID() string   { return r.ID }
func (r TaxPayment) RecordDate() string { return r.Date }

// CapitalInflow is cash put into the business outside operating activity.
type CapitalInflow struct {
	ID                     string          `json:"id" validate:"required"`
	Date                   string          `json:"date" validate:"required,datetime=2006-01-02"`
	AssetID                string          `json:"assetId" validate:"required"`
	Amount                 decimal.Decimal `json:"amount"`
	Currency               Currency        `json:"currency"`
	Rate                   decimal.Decimal `json:"rate"`
	ContributedByPartnerID string          `json:"contributedByPartnerId,omitempty"`
	Description            string          `json:"description,omitempty"`
}

func (r CapitalInflow) RecordID() string   { return r.ID }
func (r CapitalInflow) RecordDate() string { return r.Date }

// Withdrawal is cash taken out of the business by a partner.
type Withdrawal struct {
	ID          string          `json:"id" validate:"required"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	AssetID     string          `json:"assetId" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    Currency        `json:"currency"`
	Rate        decimal.Decimal `json:"rate"`
	WithdrawnBy string          `json:"withdrawnBy,omitempty"`
	Description string          `json:"description,omitempty"`
}

func (r Withdrawal) RecordID() string   { return r.ID }
func (r Withdrawal) RecordDate() string { return r.Date }
