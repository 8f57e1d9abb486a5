package finance

import (
	"fmt"
	"sort"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/SscSPs/affiliate_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Automatic ledger entry id formats.
const (
	autoProfitIDFormat     = domain.AutoEntryPrefix + "profit-%s-%s"
	autoCapitalIDFormat    = domain.AutoEntryPrefix + "capital-%s"
	autoWithdrawalIDFormat = domain.AutoEntryPrefix + "withdrawal-%s"
)

// AutoEntries synthesizes the ledger entries implied by other records: the profit share of every
// closed period, capital contributions and withdrawals. Ids are stable across invocations.
func AutoEntries(s *domain.LedgerSnapshot) ([]domain.PartnerLedgerEntry, []domain.Warning) {
	w := newWarnings()
	return autoEntries(s, w), w.result()
}

func autoEntries(s *domain.LedgerSnapshot, w *warnings) []domain.PartnerLedgerEntry {
	var out []domain.PartnerLedgerEntry

	for _, cp := range s.ClosedPeriods {
		end, err := PeriodEndDate(cp.Period)
		if err != nil {
			continue
		}
		for _, d := range cp.Financials.PnL.PartnerPnlDetails {
			if d.Profit.IsZero() {
				continue
			}
			e := domain.PartnerLedgerEntry{
				ID:          fmt.Sprintf(autoProfitIDFormat, cp.Period, d.PartnerID),
				PartnerID:   d.PartnerID,
				Date:        end,
				Type:        domain.LedgerInflow,
				Amount:      d.Profit,
				Description: "Profit share " + cp.Period,
			}
			if d.Profit.IsNegative() {
				e.Type = domain.LedgerOutflow
				e.Amount = d.Profit.Neg()
				e.Description = "Loss share " + cp.Period
			}
			out = append(out, e)
		}
	}

	for _, c := range s.CapitalInflows {
		if c.ContributedByPartnerID == "" {
			continue
		}
		vnd, err := ToVND(c.Amount, c.Currency, c.Rate)
		if err != nil {
			conversionWarning(w, c.ID, err)
			continue
		}
		out = append(out, domain.PartnerLedgerEntry{
			ID:          fmt.Sprintf(autoCapitalIDFormat, c.ID),
			PartnerID:   c.ContributedByPartnerID,
			Date:        c.Date,
			Type:        domain.LedgerInflow,
			Amount:      vnd,
			Description: describe("Capital contribution", c.Description),
		})
	}

	for _, wd := range s.Withdrawals {
		if wd.WithdrawnBy == "" {
			continue
		}
		vnd, err := ToVND(wd.Amount, wd.Currency, wd.Rate)
		if err != nil {
			conversionWarning(w, wd.ID, err)
			continue
		}
		out = append(out, domain.PartnerLedgerEntry{
			ID:          fmt.Sprintf(autoWithdrawalIDFormat, wd.ID),
			PartnerID:   wd.WithdrawnBy,
			Date:        wd.Date,
			Type:        domain.LedgerOutflow,
			Amount:      vnd,
			Description: describe("Withdrawal", wd.Description),
		})
	}

	return out
}

func describe(kind, text string) string {
	if text == "" {
		return kind
	}
	return kind + ": " + text
}

// ReconcilePartners builds every partner's ledger from automatic and manual entries. Running
// balances accumulate in date order with ties broken by entry id; lines are returned newest first.
func ReconcilePartners(s *domain.LedgerSnapshot) ([]domain.PartnerLedger, []domain.Warning) {
	w := newWarnings()
	book := newPartnerBook(s, w)

	byPartner := make(map[string][]domain.PartnerLedgerEntry, len(book.order))
	entries := append(autoEntries(s, w), s.PartnerLedgerEntries...)
	for _, e := range entries {
		if !book.known(e.PartnerID) {
			w.add(domain.WarnUnknownPartner, e.ID, "ledger entry for unknown partner %s ignored", e.PartnerID)
			continue
		}
		byPartner[e.PartnerID] = append(byPartner[e.PartnerID], e)
	}

	ledgers := make([]domain.PartnerLedger, 0, len(book.order))
	for _, p := range book.order {
		ledgers = append(ledgers, buildLedger(p, byPartner[p.ID], w))
	}
	return ledgers, w.result()
}

func buildLedger(p domain.Partner, entries []domain.PartnerLedgerEntry, w *warnings) domain.PartnerLedger {
	sorted := make([]domain.PartnerLedgerEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].ID < sorted[j].ID
	})

	ledger := domain.PartnerLedger{
		PartnerID:    p.ID,
		Name:         p.Name,
		IsSelf:       p.IsSelf,
		Lines:        make([]domain.PartnerLedgerLine, 0, len(sorted)),
		TotalInflow:  decimal.Zero,
		TotalOutflow: decimal.Zero,
		Balance:      decimal.Zero,
	}

	for _, e := range sorted {
		signed, err := accounting.SignedAmount(e)
		if err != nil {
			w.add(domain.WarnInvalidEntry, e.ID, "ledger entry ignored: %v", err)
			continue
		}
		if signed.IsNegative() {
			ledger.TotalOutflow = ledger.TotalOutflow.Add(e.Amount)
		} else {
			ledger.TotalInflow = ledger.TotalInflow.Add(e.Amount)
		}
		ledger.Balance = ledger.Balance.Add(signed)
		ledger.Lines = append(ledger.Lines, domain.PartnerLedgerLine{
			Entry:          e,
			Automatic:      e.IsAutomatic(),
			RunningBalance: ledger.Balance,
		})
	}

	for i, j := 0, len(ledger.Lines)-1; i < j; i, j = i+1, j-1 {
		ledger.Lines[i], ledger.Lines[j] = ledger.Lines[j], ledger.Lines[i]
	}
	return ledger
}
