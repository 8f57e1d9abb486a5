package finance

import (
	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/SscSPs/affiliate_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type partnerTotals struct {
	revenue  decimal.Decimal
	cost     decimal.Decimal
	inputVAT decimal.Decimal
}

type pnlBuilder struct {
	book     *partnerBook
	projects map[string]domain.Project
	w        *warnings
	pnl      domain.PnL
	totals   map[string]*partnerTotals
}

// AggregatePnL sums revenue and cost of period in VND and apportions them across partners.
// Records that cannot be converted are excluded and reported; records whose project or partners
// cannot be resolved are attributed to the owner and reported.
func AggregatePnL(s *domain.LedgerSnapshot, period string) (domain.PnL, []domain.Warning) {
	w := newWarnings()
	pnl := aggregatePnL(s, period, newPartnerBook(s, w), w)
	return pnl, w.result()
}

func aggregatePnL(s *domain.LedgerSnapshot, period string, book *partnerBook, w *warnings) domain.PnL {
	b := &pnlBuilder{
		book:     book,
		projects: s.ProjectByID(),
		w:        w,
		pnl:      domain.PnL{Period: period},
		totals:   make(map[string]*partnerTotals, len(book.order)),
	}
	for _, p := range book.order {
		b.totals[p.ID] = &partnerTotals{}
	}

	for _, c := range SelectInPeriod(s.Commissions, period) {
		vnd, err := ToVND(c.Amount, c.Currency, c.Rate)
		if err != nil {
			conversionWarning(w, c.ID, err)
			continue
		}
		sp := book.resolveSplit(w, b.projects, c.ID, c.ProjectID, nil, false)
		b.addRevenue(vnd, sp)
	}

	for _, c := range SelectInPeriod(s.AdCosts, period) {
		vnd, err := ToVND(c.Amount, c.Currency, c.Rate)
		if err != nil {
			conversionWarning(w, c.ID, err)
			continue
		}
		sp := book.resolveSplit(w, b.projects, c.ID, c.ProjectID, nil, false)
		b.addCost(vnd, accounting.Percentage(vnd, c.VATRate), sp)
		b.pnl.AdCost = b.pnl.AdCost.Add(vnd)
	}

	for _, e := range SelectInPeriod(s.Expenses, period) {
		vnd, err := ToVND(e.Amount, e.Currency, e.Rate)
		if err != nil {
			conversionWarning(w, e.ID, err)
			continue
		}
		sp := book.resolveSplit(w, b.projects, e.ID, e.ProjectID, e.PartnerShares, e.IsPartnership)
		b.addCost(vnd, accounting.Percentage(vnd, e.VATRate), sp)
		b.pnl.MiscCost = b.pnl.MiscCost.Add(vnd)
	}

	return b.finish()
}

func (b *pnlBuilder) partner(id string) *partnerTotals {
	t, ok := b.totals[id]
	if !ok {
		t = &partnerTotals{}
		b.totals[id] = t
	}
	return t
}

func (b *pnlBuilder) addRevenue(vnd decimal.Decimal, sp split) {
	b.pnl.TotalRevenue = b.pnl.TotalRevenue.Add(vnd)
	if sp.partnered {
		b.pnl.PartnershipRevenue = b.pnl.PartnershipRevenue.Add(vnd)
	} else {
		b.pnl.SoloRevenue = b.pnl.SoloRevenue.Add(vnd)
	}
	for id, part := range b.book.apportion(vnd, sp) {
		t := b.partner(id)
		t.revenue = t.revenue.Add(part)
	}
}

func (b *pnlBuilder) addCost(vnd, vat decimal.Decimal, sp split) {
	b.pnl.TotalCost = b.pnl.TotalCost.Add(vnd)
	b.pnl.InputVAT = b.pnl.InputVAT.Add(vat)
	if sp.partnered {
		b.pnl.PartnershipCost = b.pnl.PartnershipCost.Add(vnd)
	} else {
		b.pnl.SoloCost = b.pnl.SoloCost.Add(vnd)
	}
	for id, part := range b.book.apportion(vnd, sp) {
		t := b.partner(id)
		t.cost = t.cost.Add(part)
	}
	if vat.IsZero() {
		return
	}
	for id, part := range b.book.apportion(vat, sp) {
		t := b.partner(id)
		t.inputVAT = t.inputVAT.Add(part)
	}
}

func (b *pnlBuilder) finish() domain.PnL {
	pnl := b.pnl
	pnl.TotalProfit = pnl.TotalRevenue.Sub(pnl.TotalCost)

	pnl.PartnerPnlDetails = make([]domain.PartnerPnl, 0, len(b.book.order))
	for _, p := range b.book.order {
		t := b.totals[p.ID]
		pnl.PartnerPnlDetails = append(pnl.PartnerPnlDetails, domain.PartnerPnl{
			PartnerID: p.ID,
			Name:      p.Name,
			Revenue:   t.revenue,
			Cost:      t.cost,
			Profit:    t.revenue.Sub(t.cost),
			InputVAT:  t.inputVAT,
		})
	}

	owner := b.totals[b.book.owner.ID]
	pnl.MyRevenue = owner.revenue
	pnl.MyCost = owner.cost
	pnl.MyProfit = owner.revenue.Sub(owner.cost)
	pnl.MyInputVAT = owner.inputVAT
	return pnl
}
