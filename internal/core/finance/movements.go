package finance

import (
	"fmt"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

type activity int

const (
	operating activity = iota
	investing
	financing
)

// movement is one signed change to one asset's balance, in that asset's currency.
type movement struct {
	recordID string
	assetID  string
	currency domain.Currency
	date     string
	label    string
	activity activity
	amount   decimal.Decimal
}

// movementCollector turns cash-moving records into movements. Records dated after the period are
// ignored. Records that name no asset, reference an unknown asset or disagree with the asset's
// currency are excluded entirely; only those dated within the period are reported.
type movementCollector struct {
	assets map[string]domain.Asset
	period string
	w      *warnings
	out    []movement
}

// leg is one side of a record. An empty currency takes the asset's currency.
type leg struct {
	assetID  string
	currency domain.Currency
	amount   decimal.Decimal
	label    string
}

func (c *movementCollector) record(recordID, date string, act activity, legs ...leg) {
	if AfterPeriod(date, c.period) {
		return
	}
	report := InPeriod(date, c.period)

	resolved := make([]movement, 0, len(legs))
	for _, l := range legs {
		if l.assetID == "" {
			if report {
				c.w.add(domain.WarnMissingAsset, recordID, "record names no asset; record excluded from cash flow")
			}
			return
		}
		asset, ok := c.assets[l.assetID]
		if !ok {
			if report {
				c.w.add(domain.WarnMissingAsset, recordID, "asset %s not found; record excluded from cash flow", l.assetID)
			}
			return
		}
		if l.currency != "" && l.currency != asset.Currency {
			if report {
				c.w.add(domain.WarnCurrencyMismatch, recordID, "record currency %s does not match asset %s currency %s; record excluded from cash flow",
					l.currency, asset.ID, asset.Currency)
			}
			return
		}
		if l.amount.IsZero() {
			continue
		}
		resolved = append(resolved, movement{
			recordID: recordID,
			assetID:  asset.ID,
			currency: asset.Currency,
			date:     date,
			label:    l.label,
			activity: act,
			amount:   l.amount,
		})
	}
	c.out = append(c.out, resolved...)
}

// collectMovements derives every asset movement up to the end of period. The cash flow statements
// and the per-asset details are both built from this one list, which is what keeps them reconciled.
func collectMovements(s *domain.LedgerSnapshot, period string, w *warnings) []movement {
	c := &movementCollector{assets: s.AssetByID(), period: period, w: w}

	for _, r := range s.Commissions {
		c.record(r.ID, r.Date, operating, leg{r.AssetID, r.Currency, r.Amount, "Commission received"})
	}
	for _, r := range s.AdCosts {
		c.record(r.ID, r.Date, operating, leg{r.AssetID, r.Currency, r.Amount.Neg(), "Ad spend"})
	}
	for _, r := range s.Expenses {
		label := "Miscellaneous expense"
		if r.Description != "" {
			label = "Expense: " + r.Description
		}
		c.record(r.ID, r.Date, operating, leg{r.AssetID, r.Currency, r.Amount.Neg(), label})
	}
	for _, r := range s.TaxPayments {
		label := "Tax payment"
		if r.ForPeriod != "" {
			label = fmt.Sprintf("Tax payment for %s", r.ForPeriod)
		}
		c.record(r.ID, r.Date, operating, leg{r.AssetID, r.Currency, r.Amount.Neg(), label})
	}

	for _, r := range s.Exchanges {
		c.record(r.ID, r.Date, investing,
			leg{r.FromAssetID, "", r.FromAmount.Neg(), "Exchange out"},
			leg{r.ToAssetID, "", r.ToAmount, "Exchange in"})
	}
	for _, r := range s.AdFundTransfers {
		if !c.sameCurrency(r.ID, r.Date, r.FromAssetID, r.ToAssetID) {
			continue
		}
		c.record(r.ID, r.Date, investing,
			leg{r.FromAssetID, "", r.Amount.Neg(), "Ad fund transfer out"},
			leg{r.ToAssetID, "", r.Amount, "Ad fund transfer in"})
	}

	for _, r := range s.CapitalInflows {
		c.record(r.ID, r.Date, financing, leg{r.AssetID, r.Currency, r.Amount, "Capital contribution"})
	}
	for _, r := range s.Withdrawals {
		c.record(r.ID, r.Date, financing, leg{r.AssetID, r.Currency, r.Amount.Neg(), "Withdrawal"})
	}

	liabilities := make(map[string]domain.Liability, len(s.Liabilities))
	for _, r := range s.Liabilities {
		liabilities[r.ID] = r
		if r.AssetID == "" {
			// principal received outside the tracked assets
			continue
		}
		c.record(r.ID, r.Date, financing, leg{r.AssetID, r.Currency, r.TotalAmount, "Loan received: " + r.Name})
	}
	for _, r := range s.LiabilityPayments {
		label := "Debt payment"
		var cur domain.Currency
		if l, ok := liabilities[r.LiabilityID]; ok {
			label = "Debt payment: " + l.Name
			cur = l.Currency
		} else if InPeriod(r.Date, period) {
			w.add(domain.WarnMissingDebt, r.ID, "liability %s not found", r.LiabilityID)
		}
		c.record(r.ID, r.Date, financing, leg{r.AssetID, cur, r.Amount.Neg(), label})
	}

	receivables := make(map[string]domain.Receivable, len(s.Receivables))
	for _, r := range s.Receivables {
		receivables[r.ID] = r
		if r.AssetID == "" {
			continue
		}
		c.record(r.ID, r.Date, financing, leg{r.AssetID, r.Currency, r.TotalAmount.Neg(), "Loan given: " + r.Name})
	}
	for _, r := range s.ReceivablePayments {
		label := "Receivable collected"
		var cur domain.Currency
		if rc, ok := receivables[r.ReceivableID]; ok {
			label = "Receivable collected: " + rc.Name
			cur = rc.Currency
		} else if InPeriod(r.Date, period) {
			w.add(domain.WarnMissingDebt, r.ID, "receivable %s not found", r.ReceivableID)
		}
		c.record(r.ID, r.Date, financing, leg{r.AssetID, cur, r.Amount, label})
	}

	return c.out
}

// sameCurrency reports whether two existing assets share a currency; a transfer between
// currencies has to be logged as an exchange.
func (c *movementCollector) sameCurrency(recordID, date, fromID, toID string) bool {
	from, okFrom := c.assets[fromID]
	to, okTo := c.assets[toID]
	if !okFrom || !okTo || from.Currency == to.Currency {
		// missing assets are reported by record
		return true
	}
	if InPeriod(date, c.period) {
		c.w.add(domain.WarnCurrencyMismatch, recordID, "transfer from %s (%s) to %s (%s) crosses currencies; record excluded from cash flow",
			from.ID, from.Currency, to.ID, to.Currency)
	}
	return false
}
