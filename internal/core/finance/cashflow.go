package finance

import (
	"sort"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildCashFlow produces one cash flow statement per currency for period plus the opening and
// closing balance of every asset. The beginning balance of a statement is prior's end balance for
// the same currency when prior is given, otherwise the assets' initial balances plus everything
// that moved before the period started. A statement whose end balance differs from the sum of its
// assets' closing balances is flagged as unreconciled.
func BuildCashFlow(s *domain.LedgerSnapshot, period string, prior *domain.PeriodFinancials) ([]domain.CashFlowStatement, []domain.PeriodAssetDetail, []domain.Warning) {
	w := newWarnings()
	statements, assets := buildCashFlow(s, period, prior, w)
	return statements, assets, w.result()
}

func buildCashFlow(s *domain.LedgerSnapshot, period string, prior *domain.PeriodFinancials, w *warnings) ([]domain.CashFlowStatement, []domain.PeriodAssetDetail) {
	movements := collectMovements(s, period, w)
	details := assetDetails(s, period, movements, w)

	inPeriod := make([]movement, 0, len(movements))
	for _, m := range movements {
		if InPeriod(m.date, period) {
			inPeriod = append(inPeriod, m)
		}
	}
	sort.SliceStable(inPeriod, func(i, j int) bool {
		if inPeriod[i].date != inPeriod[j].date {
			return inPeriod[i].date < inPeriod[j].date
		}
		return inPeriod[i].recordID < inPeriod[j].recordID
	})

	statements := make([]domain.CashFlowStatement, 0, len(domain.Currencies))
	for _, cur := range domain.Currencies {
		st := domain.CashFlowStatement{
			Currency:  cur,
			Operating: newBucket(),
			Investing: newBucket(),
			Financing: newBucket(),
		}

		opening, closing := decimal.Zero, decimal.Zero
		for _, d := range details {
			if d.Currency == cur {
				opening = opening.Add(d.OpeningBalance)
				closing = closing.Add(d.ClosingBalance)
			}
		}

		for _, m := range inPeriod {
			if m.currency != cur {
				continue
			}
			line := domain.CashFlowLine{RecordID: m.recordID, AssetID: m.assetID, Date: m.date, Label: m.label, Amount: m.amount.Abs()}
			b := bucketFor(&st, m.activity)
			if m.amount.IsPositive() {
				b.Inflows = append(b.Inflows, line)
				b.TotalInflow = b.TotalInflow.Add(line.Amount)
			} else {
				b.Outflows = append(b.Outflows, line)
				b.TotalOutflow = b.TotalOutflow.Add(line.Amount)
			}
		}
		for _, b := range []*domain.CashFlowBucket{&st.Operating, &st.Investing, &st.Financing} {
			b.Net = b.TotalInflow.Sub(b.TotalOutflow)
		}

		st.BeginningBalance = opening
		if prior != nil {
			if prev, ok := prior.CashFlowFor(cur); ok {
				st.BeginningBalance = prev.EndBalance
			}
		}
		st.NetChange = st.Operating.Net.Add(st.Investing.Net).Add(st.Financing.Net)
		st.EndBalance = st.BeginningBalance.Add(st.NetChange)
		st.AssetsEndBalance = closing
		st.Reconciled = st.EndBalance.Equal(closing)
		if !st.Reconciled {
			w.add(domain.WarnUnreconciled, "", "%s cash flow ends at %s but assets close at %s",
				cur, st.EndBalance.String(), closing.String())
		}

		statements = append(statements, st)
	}

	return statements, details
}

// assetDetails computes each asset's opening, inflow, outflow and closing balance for period.
func assetDetails(s *domain.LedgerSnapshot, period string, movements []movement, w *warnings) []domain.PeriodAssetDetail {
	index := make(map[string]*domain.PeriodAssetDetail, len(s.Assets))
	details := make([]domain.PeriodAssetDetail, 0, len(s.Assets))
	for _, a := range s.Assets {
		if !a.Currency.IsValid() {
			w.add(domain.WarnInvalidCurrency, a.ID, "asset %s has invalid currency %q; excluded from cash flow statements", a.ID, a.Currency)
		}
		details = append(details, domain.PeriodAssetDetail{
			AssetID:        a.ID,
			Name:           a.Name,
			Kind:           a.Kind,
			Currency:       a.Currency,
			OpeningBalance: a.InitialBalance,
			Inflow:         decimal.Zero,
			Outflow:        decimal.Zero,
		})
	}
	sort.Slice(details, func(i, j int) bool { return details[i].AssetID < details[j].AssetID })
	for i := range details {
		index[details[i].AssetID] = &details[i]
	}

	for _, m := range movements {
		d, ok := index[m.assetID]
		if !ok {
			continue
		}
		switch {
		case !BeforePeriod(m.date, period) && !InPeriod(m.date, period):
			continue
		case BeforePeriod(m.date, period):
			d.OpeningBalance = d.OpeningBalance.Add(m.amount)
		case m.amount.IsPositive():
			d.Inflow = d.Inflow.Add(m.amount)
		default:
			d.Outflow = d.Outflow.Add(m.amount.Neg())
		}
	}

	for i := range details {
		details[i].ClosingBalance = details[i].OpeningBalance.Add(details[i].Inflow).Sub(details[i].Outflow)
	}
	return details
}

func bucketFor(st *domain.CashFlowStatement, a activity) *domain.CashFlowBucket {
	switch a {
	case investing:
		return &st.Investing
	case financing:
		return &st.Financing
	default:
		return &st.Operating
	}
}

func newBucket() domain.CashFlowBucket {
	return domain.CashFlowBucket{
		Inflows:      []domain.CashFlowLine{},
		Outflows:     []domain.CashFlowLine{},
		TotalInflow:  decimal.Zero,
		TotalOutflow: decimal.Zero,
		Net:          decimal.Zero,
	}
}
