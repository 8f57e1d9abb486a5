package domain

import "github.com/shopspring/decimal"

// TaxMethod selects how tax payable is computed.
type TaxMethod string

const (
	TaxMethodRevenue   TaxMethod = "revenue"
	TaxMethodProfitVAT TaxMethod = "profit_vat"
)

// TaxBase selects between the owner's apportioned share and the period total.
type TaxBase string

const (
	TaxBasePersonal TaxBase = "personal"
	TaxBaseTotal    TaxBase = "total"
)

// InputVATMode selects whether input VAT is summed from cost records or entered by hand.
type InputVATMode string

const (
	InputVATAuto   InputVATMode = "auto"
	InputVATManual InputVATMode = "manual"
)

// TaxSettings is the per-workplace tax configuration. Rates are percentages.
// Pointer fields are required by one of the methods and must not default to zero.
type TaxSettings struct {
	Method              TaxMethod        `json:"method" validate:"required,oneof=revenue profit_vat"`
	RevenueRate         *decimal.Decimal `json:"revenueRate,omitempty"`
	RevenueBase         TaxBase          `json:"revenueBase,omitempty"`
	TaxSeparationAmount decimal.Decimal  `json:"taxSeparationAmount"`
	VATRate             *decimal.Decimal `json:"vatRate,omitempty"`
	VATOutputBase       TaxBase          `json:"vatOutputBase,omitempty"`
	VATInputBase        TaxBase          `json:"vatInputBase,omitempty"`
	InputVATMode        InputVATMode     `json:"inputVatMode,omitempty"`
	ManualInputVAT      *decimal.Decimal `json:"manualInputVat,omitempty"`
	IncomeRate          *decimal.Decimal `json:"incomeRate,omitempty"`
	ProfitBase          TaxBase          `json:"profitBase,omitempty"`
}
