package accounting

import (
	"fmt"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Percentage returns amount * pct / 100.
func Percentage(amount, pct decimal.Decimal) decimal.Decimal {
	if pct.IsZero() || amount.IsZero() {
		return decimal.Zero
	}
	return amount.Mul(pct).Div(hundred)
}

// NonNegative floors d at zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// SignedAmount applies the direction of a partner ledger entry to its amount.
// Inflows increase a partner's balance, outflows decrease it.
func SignedAmount(entry domain.PartnerLedgerEntry) (decimal.Decimal, error) {
	switch entry.Type {
	case domain.LedgerInflow:
		return entry.Amount, nil
	case domain.LedgerOutflow:
		return entry.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown ledger entry type '%s' for entry %s", entry.Type, entry.ID)
	}
}

// ValidateShares checks that share percentages are non-negative, name each partner at most once,
// and together do not exceed 100. It returns the total of the percentages.
func ValidateShares(shares []domain.PartnerShare) (decimal.Decimal, error) {
	sum := decimal.Zero
	seen := make(map[string]struct{}, len(shares))

	for _, s := range shares {
		if s.SharePercentage.IsNegative() {
			return decimal.Zero, fmt.Errorf("share for partner %s is negative: %s", s.PartnerID, s.SharePercentage.String())
		}
		if _, dup := seen[s.PartnerID]; dup {
			return decimal.Zero, fmt.Errorf("partner %s appears more than once in shares", s.PartnerID)
		}
		seen[s.PartnerID] = struct{}{}
		sum = sum.Add(s.SharePercentage)
	}

	if sum.GreaterThan(hundred) {
		return decimal.Zero, fmt.Errorf("shares sum to %s, more than 100", sum.String())
	}
	return sum, nil
}
