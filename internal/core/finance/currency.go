package finance

import (
	"errors"
	"fmt"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrMissingRate is returned by ToVND for USD amounts without a positive rate.
	ErrMissingRate = errors.New("missing exchange rate")
	// ErrInvalidCurrency is returned by ToVND for currencies other than USD and VND.
	ErrInvalidCurrency = errors.New("invalid currency")
)

// ToVND converts amount to VND. Rate is VND per 1 USD and is ignored for VND amounts.
// Every aggregator converts through this function.
func ToVND(amount decimal.Decimal, currency domain.Currency, rate decimal.Decimal) (decimal.Decimal, error) {
	switch currency {
	case domain.VND:
		return amount, nil
	case domain.USD:
		if !rate.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: USD amount %s has rate %s", ErrMissingRate, amount.String(), rate.String())
		}
		return amount.Mul(rate), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}
}

// conversionWarning maps a ToVND failure to the warning reported for the record.
func conversionWarning(w *warnings, recordID string, err error) {
	code := domain.WarnInvalidCurrency
	if errors.Is(err, ErrMissingRate) {
		code = domain.WarnMissingRate
	}
	w.add(code, recordID, "record excluded: %v", err)
}
