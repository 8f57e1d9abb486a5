package finance_test

import (
	"testing"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/SscSPs/affiliate_ledger/internal/core/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func owner() domain.Partner {
	return domain.Partner{ID: "me", Name: "Me", IsSelf: true}
}

func partnerDetail(t *testing.T, pnl domain.PnL, id string) domain.PartnerPnl {
	t.Helper()
	for _, d := range pnl.PartnerPnlDetails {
		if d.PartnerID == id {
			return d
		}
	}
	t.Fatalf("partner %s missing from pnl details", id)
	return domain.PartnerPnl{}
}

func sumPartnerProfit(pnl domain.PnL) decimal.Decimal {
	sum := decimal.Zero
	for _, d := range pnl.PartnerPnlDetails {
		sum = sum.Add(d.Profit)
	}
	return sum
}

func hasWarning(ws []domain.Warning, code domain.WarningCode, recordID string) bool {
	for _, w := range ws {
		if w.Code == code && w.RecordID == recordID {
			return true
		}
	}
	return false
}

func TestAggregatePnL_SoloProjectInUSD(t *testing.T) {
	s := &domain.LedgerSnapshot{
		Partners: []domain.Partner{owner()},
		Projects: []domain.Project{{ID: "p1", Name: "Solo offer"}},
		Commissions: []domain.Commission{
			{ID: "c1", Date: "2024-05-10", ProjectID: "p1", Amount: dec("350"), Currency: domain.USD, Rate: dec("25400")},
		},
		AdCosts: []domain.DailyAdCost{
			{ID: "a1", Date: "2024-05-11", ProjectID: "p1", Amount: dec("50.75"), Currency: domain.USD, Rate: dec("25500")},
		},
	}

	pnl, warnings := finance.AggregatePnL(s, "2024-05")

	assert.Empty(t, warnings)
	assertDecimal(t, "8890000", pnl.TotalRevenue)
	assertDecimal(t, "1294125", pnl.TotalCost)
	assertDecimal(t, "7595875", pnl.TotalProfit)
	assertDecimal(t, "1294125", pnl.AdCost)
	assertDecimal(t, "8890000", pnl.SoloRevenue)
	assertDecimal(t, "0", pnl.PartnershipRevenue)
	assertDecimal(t, "7595875", pnl.MyProfit)
	assertDecimal(t, "7595875", sumPartnerProfit(pnl))
}

func TestAggregatePnL_PartneredProjectSplitsByShare(t *testing.T) {
	s := &domain.LedgerSnapshot{
		Partners: []domain.Partner{owner(), {ID: "pa", Name: "Partner A"}, {ID: "pb", Name: "Partner B"}},
		Projects: []domain.Project{{
			ID:            "p1",
			IsPartnership: true,
			PartnerShares: []domain.PartnerShare{
				{PartnerID: "pa", SharePercentage: dec("60")},
				{PartnerID: "pb", SharePercentage: dec("40")},
			},
		}},
		Commissions: []domain.Commission{{ID: "c1", Date: "2024-05-02", ProjectID: "p1", Amount: dec("1500000"), Currency: domain.VND}},
		AdCosts:     []domain.DailyAdCost{{ID: "a1", Date: "2024-05-03", ProjectID: "p1", Amount: dec("500000"), Currency: domain.VND}},
	}

	pnl, warnings := finance.AggregatePnL(s, "2024-05")

	assert.Empty(t, warnings)
	assertDecimal(t, "1000000", pnl.TotalProfit)
	assertDecimal(t, "600000", partnerDetail(t, pnl, "pa").Profit)
	assertDecimal(t, "400000", partnerDetail(t, pnl, "pb").Profit)
	assertDecimal(t, "0", pnl.MyProfit)
	assertDecimal(t, "1000000", sumPartnerProfit(pnl))
	assertDecimal(t, "1500000", pnl.PartnershipRevenue)
	assertDecimal(t, "500000", pnl.PartnershipCost)

	// owner is always listed first
	require.Len(t, pnl.PartnerPnlDetails, 3)
	assert.Equal(t, "me", pnl.PartnerPnlDetails[0].PartnerID)
}

func TestAggregatePnL_OwnerHoldsUnassignedRemainder(t *testing.T) {
	s := &domain.LedgerSnapshot{
		Partners: []domain.Partner{owner(), {ID: "pa", Name: "Partner A"}},
		Projects: []domain.Project{{
			ID:            "p1",
			IsPartnership: true,
			PartnerShares: []domain.PartnerShare{{PartnerID: "pa", SharePercentage: dec("33.33")}},
		}},
		Commissions: []domain.Commission{{ID: "c1", Date: "2024-05-02", ProjectID: "p1", Amount: dec("1000001"), Currency: domain.VND}},
	}

	pnl, _ := finance.AggregatePnL(s, "2024-05")

	assertDecimal(t, "333300.3333", partnerDetail(t, pnl, "pa").Revenue)
	assertDecimal(t, "666700.6667", pnl.MyRevenue)
	assertDecimal(t, "1000001", sumPartnerProfit(pnl))
}

func TestAggregatePnL_DeletedProjectFallsBackToOwner(t *testing.T) {
	s := &domain.LedgerSnapshot{
		Partners: []domain.Partner{owner(), {ID: "pa", Name: "Partner A"}},
		Projects: []domain.Project{{
			ID:            "p1",
			IsPartnership: true,
			PartnerShares: []domain.PartnerShare{{PartnerID: "pa", SharePercentage: dec("50")}},
		}},
		Commissions: []domain.Commission{{ID: "c1", Date: "2024-05-02", ProjectID: "p1", Amount: dec("2000000"), Currency: domain.VND}},
		AdCosts:     []domain.DailyAdCost{{ID: "a-orphan", Date: "2024-05-03", ProjectID: "deleted", Amount: dec("300000"), Currency: domain.VND}},
	}

	pnl, warnings := finance.AggregatePnL(s, "2024-05")

	assert.True(t, hasWarning(warnings, domain.WarnMissingProject, "a-orphan"))
	assertDecimal(t, "300000", pnl.MyCost)
	assertDecimal(t, "0", partnerDetail(t, pnl, "pa").Cost)
	assertDecimal(t, "1700000", pnl.TotalProfit)
	assert.True(t, pnl.TotalProfit.Equal(pnl.TotalRevenue.Sub(pnl.TotalCost)))
	assert.True(t, pnl.TotalProfit.Equal(sumPartnerProfit(pnl)))
	assertDecimal(t, "300000", pnl.SoloCost)
}

func TestAggregatePnL_InvalidSharesAndUnknownPartners(t *testing.T) {
	s := &domain.LedgerSnapshot{
		Partners: []domain.Partner{owner(), {ID: "pa", Name: "Partner A"}},
		Projects: []domain.Project{
			{ID: "over", IsPartnership: true, PartnerShares: []domain.PartnerShare{
				{PartnerID: "pa", SharePercentage: dec("80")},
				{PartnerID: "me", SharePercentage: dec("30")},
			}},
			{ID: "ghost", IsPartnership: true, PartnerShares: []domain.PartnerShare{
				{PartnerID: "pa", SharePercentage: dec("50")},
				{PartnerID: "nobody", SharePercentage: dec("50")},
			}},
			{ID: "zero", IsPartnership: true, PartnerShares: []domain.PartnerShare{
				{PartnerID: "pa", SharePercentage: dec("0")},
			}},
		},
		Commissions: []domain.Commission{
			{ID: "c-over", Date: "2024-05-01", ProjectID: "over", Amount: dec("100"), Currency: domain.VND},
			{ID: "c-ghost", Date: "2024-05-01", ProjectID: "ghost", Amount: dec("100"), Currency: domain.VND},
			{ID: "c-zero", Date: "2024-05-01", ProjectID: "zero", Amount: dec("100"), Currency: domain.VND},
		},
	}

	pnl, warnings := finance.AggregatePnL(s, "2024-05")

	assert.True(t, hasWarning(warnings, domain.WarnInvalidShares, "c-over"))
	assert.True(t, hasWarning(warnings, domain.WarnUnknownPartner, "c-ghost"))
	assertDecimal(t, "50", partnerDetail(t, pnl, "pa").Revenue)
	assertDecimal(t, "250", pnl.MyRevenue)
	assertDecimal(t, "300", pnl.TotalRevenue)
}

func TestAggregatePnL_ExpenseWithOwnShares(t *testing.T) {
	s := &domain.LedgerSnapshot{
		Partners: []domain.Partner{owner(), {ID: "pa", Name: "Partner A"}},
		Expenses: []domain.MiscellaneousExpense{
			{
				ID: "e1", Date: "2024-05-20", Amount: dec("40"), Currency: domain.USD, Rate: dec("25000"), VATRate: dec("10"),
				IsPartnership: true, PartnerShares: []domain.PartnerShare{{PartnerID: "pa", SharePercentage: dec("25")}},
			},
			{ID: "e2", Date: "2024-05-21", Amount: dec("100000"), Currency: domain.VND},
		},
	}

	pnl, warnings := finance.AggregatePnL(s, "2024-05")

	assert.Empty(t, warnings)
	assertDecimal(t, "1100000", pnl.MiscCost)
	assertDecimal(t, "1000000", pnl.PartnershipCost)
	assertDecimal(t, "100000", pnl.SoloCost)
	assertDecimal(t, "250000", partnerDetail(t, pnl, "pa").Cost)
	assertDecimal(t, "850000", pnl.MyCost)
	assertDecimal(t, "100000", pnl.InputVAT)
	assertDecimal(t, "75000", pnl.MyInputVAT)
	assertDecimal(t, "25000", partnerDetail(t, pnl, "pa").InputVAT)
}

func TestAggregatePnL_ConversionProblemsAreExcluded(t *testing.T) {
	s := &domain.LedgerSnapshot{
		Partners: []domain.Partner{owner()},
		Commissions: []domain.Commission{
			{ID: "no-rate", Date: "2024-05-01", Amount: dec("10"), Currency: domain.USD},
			{ID: "bad-cur", Date: "2024-05-01", Amount: dec("10"), Currency: "EUR", Rate: dec("27000")},
			{ID: "ok", Date: "2024-05-01", Amount: dec("10"), Currency: domain.USD, Rate: dec("25000")},
			{ID: "other-month", Date: "2024-06-01", Amount: dec("10"), Currency: domain.USD},
		},
	}

	pnl, warnings := finance.AggregatePnL(s, "2024-05")

	assert.True(t, hasWarning(warnings, domain.WarnMissingRate, "no-rate"))
	assert.True(t, hasWarning(warnings, domain.WarnInvalidCurrency, "bad-cur"))
	assert.False(t, hasWarning(warnings, domain.WarnMissingRate, "other-month"))
	assertDecimal(t, "250000", pnl.TotalRevenue)
}

func TestAggregatePnL_MissingOwnerUsesSyntheticOwner(t *testing.T) {
	s := &domain.LedgerSnapshot{
		Commissions: []domain.Commission{{ID: "c1", Date: "2024-05-01", Amount: dec("500"), Currency: domain.VND}},
		AdCosts:     []domain.DailyAdCost{{ID: "a1", Date: "2024-05-01", Amount: dec("200"), Currency: domain.VND}},
	}

	pnl, warnings := finance.AggregatePnL(s, "2024-05")

	require.Len(t, warnings, 1)
	assert.Equal(t, domain.WarnMissingOwner, warnings[0].Code)
	require.Len(t, pnl.PartnerPnlDetails, 1)
	assert.Equal(t, finance.SyntheticOwnerID, pnl.PartnerPnlDetails[0].PartnerID)
	assertDecimal(t, "300", pnl.MyProfit)
}
