package finance

import (
	"sort"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DebtPositions reports every liability and receivable that exists by the end of period,
// with the payments made against it up to that point.
func DebtPositions(s *domain.LedgerSnapshot, period string) (liabilities, receivables []domain.DebtPosition) {
	liabPaid := make(map[string]decimal.Decimal)
	for _, p := range s.LiabilityPayments {
		if !AfterPeriod(p.Date, period) {
			liabPaid[p.LiabilityID] = liabPaid[p.LiabilityID].Add(p.Amount)
		}
	}
	recvPaid := make(map[string]decimal.Decimal)
	for _, p := range s.ReceivablePayments {
		if !AfterPeriod(p.Date, period) {
			recvPaid[p.ReceivableID] = recvPaid[p.ReceivableID].Add(p.Amount)
		}
	}

	liabilities = make([]domain.DebtPosition, 0, len(s.Liabilities))
	for _, l := range s.Liabilities {
		if AfterPeriod(l.Date, period) {
			continue
		}
		liabilities = append(liabilities, position(l.ID, l.Name, l.Currency, l.TotalAmount, liabPaid[l.ID]))
	}

	receivables = make([]domain.DebtPosition, 0, len(s.Receivables))
	for _, r := range s.Receivables {
		if AfterPeriod(r.Date, period) {
			continue
		}
		receivables = append(receivables, position(r.ID, r.Name, r.Currency, r.TotalAmount, recvPaid[r.ID]))
	}

	sort.Slice(liabilities, func(i, j int) bool { return liabilities[i].ID < liabilities[j].ID })
	sort.Slice(receivables, func(i, j int) bool { return receivables[i].ID < receivables[j].ID })
	return liabilities, receivables
}

func position(id, name string, currency domain.Currency, total, paid decimal.Decimal) domain.DebtPosition {
	return domain.DebtPosition{
		ID:          id,
		Name:        name,
		Currency:    currency,
		TotalAmount: total,
		Paid:        paid,
		Outstanding: domain.Outstanding(total, paid),
		Settled:     domain.IsSettled(total, paid),
	}
}
