package finance

import (
	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
)

// ComputePeriodFinancials runs every aggregator over s for period. The previous month's closed
// snapshot, when s carries one, seeds the cash flow beginning balances. Only an invalid period or
// incomplete tax settings fail the computation; data problems surface as warnings.
func ComputePeriodFinancials(s *domain.LedgerSnapshot, period string, settings *domain.TaxSettings) (domain.PeriodFinancials, error) {
	if _, err := ParsePeriod(period); err != nil {
		return domain.PeriodFinancials{}, err
	}

	w := newWarnings()
	book := newPartnerBook(s, w)

	pnl := aggregatePnL(s, period, book, w)
	tax, err := CalculateTax(pnl, settings)
	if err != nil {
		return domain.PeriodFinancials{}, err
	}

	var prior *domain.PeriodFinancials
	if prev, err := PreviousPeriod(period); err == nil {
		for i := range s.ClosedPeriods {
			if s.ClosedPeriods[i].Period == prev {
				prior = &s.ClosedPeriods[i].Financials
				break
			}
		}
	}

	cashFlows, assets := buildCashFlow(s, period, prior, w)
	liabilities, receivables := DebtPositions(s, period)

	return domain.PeriodFinancials{
		Period:      period,
		PnL:         pnl,
		Tax:         tax,
		CashFlows:   cashFlows,
		Assets:      assets,
		Liabilities: liabilities,
		Receivables: receivables,
		Warnings:    w.result(),
	}, nil
}
