package domain

import "github.com/shopspring/decimal"

// Liability is money the business owes. When AssetID is set, the principal was received into that asset on Date.
type Liability struct {
	ID          string          `json:"id" validate:"required"`
	Name        string          `json:"name"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	AssetID     string          `json:"assetId,omitempty"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Currency    Currency        `json:"currency"`
}

func (r Liability) RecordID() string   { return r.ID }
func (r Liability) RecordDate() string { return r.Date }

// LiabilityPayment is an installment paid against a Liability.
type LiabilityPayment struct {
	ID          string          `json:"id" validate:"required"`
	LiabilityID string          `json:"liabilityId" validate:"required"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	AssetID     string          `json:"assetId" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
}

func (r LiabilityPayment) RecordID() string   { return r.ID }
func (r LiabilityPayment) RecordDate() string { return r.Date }

// Receivable is money owed to the business. When AssetID is set, the principal was lent out of that asset on Date.
type Receivable struct {
	ID          string          `json:"id" validate:"required"`
	Name        string          `json:"name"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	AssetID     string          `json:"assetId,omitempty"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Currency    Currency        `json:"currency"`
}

func (r Receivable) RecordID() string   { return r.ID }
func (r Receivable) RecordDate() string { return r.Date }

// ReceivablePayment is a collection received against a Receivable.
type ReceivablePayment struct {
	ID           string          `json:"id" validate:"required"`
	ReceivableID string          `json:"receivableId" validate:"required"`
	Date         string          `json:"date" validate:"required,datetime=2006-01-02"`
	AssetID      string          `json:"assetId" validate:"required"`
	Amount       decimal.Decimal `json:"amount"`
}

func (r ReceivablePayment) RecordID() string   { return r.ID }
func (r ReceivablePayment) RecordDate() string { return r.Date }

// Outstanding returns total minus paid, floored at zero.
func Outstanding(total, paid decimal.Decimal) decimal.Decimal {
	rest := total.Sub(paid)
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}

// IsSettled reports whether cumulative payments cover the total.
func IsSettled(total, paid decimal.Decimal) bool {
	return paid.GreaterThanOrEqual(total)
}
