package finance_test

import (
	"testing"

	"github.com/SscSPs/affiliate_ledger/internal/apperrors"
	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/SscSPs/affiliate_ledger/internal/core/finance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTax_RevenueMethod(t *testing.T) {
	pnl := domain.PnL{TotalRevenue: dec("8890000"), MyRevenue: dec("4000000")}

	res, err := finance.CalculateTax(pnl, &domain.TaxSettings{
		Method:      domain.TaxMethodRevenue,
		RevenueRate: decPtr("1.5"),
		RevenueBase: domain.TaxBaseTotal,
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assertDecimal(t, "8890000", res.RevenueBase)
	assertDecimal(t, "133350", res.TaxPayable)

	res, err = finance.CalculateTax(pnl, &domain.TaxSettings{
		Method:              domain.TaxMethodRevenue,
		RevenueRate:         decPtr("1.5"),
		RevenueBase:         domain.TaxBasePersonal,
		TaxSeparationAmount: dec("1000000"),
	})
	require.NoError(t, err)
	assertDecimal(t, "4000000", res.RevenueBase)
	assertDecimal(t, "3000000", res.TaxableRevenue)
	assertDecimal(t, "45000", res.TaxPayable)
}

func TestCalculateTax_SeparationAmountFloorsAtZero(t *testing.T) {
	res, err := finance.CalculateTax(domain.PnL{TotalRevenue: dec("500000")}, &domain.TaxSettings{
		Method:              domain.TaxMethodRevenue,
		RevenueRate:         decPtr("1.5"),
		TaxSeparationAmount: dec("1000000"),
	})
	require.NoError(t, err)
	assertDecimal(t, "0", res.TaxableRevenue)
	assertDecimal(t, "0", res.TaxPayable)
}

func TestCalculateTax_ProfitVATMethod(t *testing.T) {
	pnl := domain.PnL{
		TotalRevenue: dec("10000000"),
		TotalProfit:  dec("2000000"),
		InputVAT:     dec("300000"),
		MyRevenue:    dec("6000000"),
		MyProfit:     dec("1000000"),
		MyInputVAT:   dec("100000"),
	}

	t.Run("auto input vat on totals", func(t *testing.T) {
		res, err := finance.CalculateTax(pnl, &domain.TaxSettings{
			Method:     domain.TaxMethodProfitVAT,
			VATRate:    decPtr("10"),
			IncomeRate: decPtr("2"),
		})
		require.NoError(t, err)
		assertDecimal(t, "1000000", res.OutputVAT)
		assertDecimal(t, "300000", res.InputVAT)
		assertDecimal(t, "700000", res.NetVAT)
		assertDecimal(t, "2000000", res.ProfitBase)
		assertDecimal(t, "40000", res.IncomeTax)
		assertDecimal(t, "740000", res.TaxPayable)
	})

	t.Run("personal bases", func(t *testing.T) {
		res, err := finance.CalculateTax(pnl, &domain.TaxSettings{
			Method:        domain.TaxMethodProfitVAT,
			VATRate:       decPtr("10"),
			IncomeRate:    decPtr("2"),
			VATOutputBase: domain.TaxBasePersonal,
			VATInputBase:  domain.TaxBasePersonal,
			ProfitBase:    domain.TaxBasePersonal,
		})
		require.NoError(t, err)
		assertDecimal(t, "600000", res.OutputVAT)
		assertDecimal(t, "100000", res.InputVAT)
		assertDecimal(t, "500000", res.NetVAT)
		assertDecimal(t, "20000", res.IncomeTax)
		assertDecimal(t, "520000", res.TaxPayable)
	})

	t.Run("manual input vat larger than output", func(t *testing.T) {
		res, err := finance.CalculateTax(pnl, &domain.TaxSettings{
			Method:         domain.TaxMethodProfitVAT,
			VATRate:        decPtr("10"),
			IncomeRate:     decPtr("2"),
			InputVATMode:   domain.InputVATManual,
			ManualInputVAT: decPtr("5000000"),
		})
		require.NoError(t, err)
		assertDecimal(t, "5000000", res.InputVAT)
		assertDecimal(t, "0", res.NetVAT)
		assertDecimal(t, "40000", res.TaxPayable)
	})

	t.Run("loss pays no income tax", func(t *testing.T) {
		loss := pnl
		loss.TotalProfit = dec("-500000")
		res, err := finance.CalculateTax(loss, &domain.TaxSettings{
			Method:     domain.TaxMethodProfitVAT,
			VATRate:    decPtr("10"),
			IncomeRate: decPtr("2"),
		})
		require.NoError(t, err)
		assertDecimal(t, "-500000", res.ProfitBase)
		assertDecimal(t, "0", res.IncomeTax)
	})
}

func TestCalculateTax_Configuration(t *testing.T) {
	res, err := finance.CalculateTax(domain.PnL{}, nil)
	assert.NoError(t, err)
	assert.Nil(t, res)

	tests := []struct {
		name     string
		settings domain.TaxSettings
	}{
		{name: "revenue without rate", settings: domain.TaxSettings{Method: domain.TaxMethodRevenue}},
		{name: "vat without vat rate", settings: domain.TaxSettings{Method: domain.TaxMethodProfitVAT, IncomeRate: decPtr("2")}},
		{name: "vat without income rate", settings: domain.TaxSettings{Method: domain.TaxMethodProfitVAT, VATRate: decPtr("10")}},
		{name: "manual without figure", settings: domain.TaxSettings{
			Method: domain.TaxMethodProfitVAT, VATRate: decPtr("10"), IncomeRate: decPtr("2"), InputVATMode: domain.InputVATManual,
		}},
		{name: "unknown method", settings: domain.TaxSettings{Method: "flat"}},
		{name: "negative rate", settings: domain.TaxSettings{Method: domain.TaxMethodRevenue, RevenueRate: decPtr("-1")}},
		{name: "unknown base", settings: domain.TaxSettings{Method: domain.TaxMethodRevenue, RevenueRate: decPtr("1"), RevenueBase: "mine"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := tt.settings
			res, err := finance.CalculateTax(domain.PnL{TotalRevenue: dec("100")}, &settings)
			assert.ErrorIs(t, err, apperrors.ErrConfiguration)
			assert.Nil(t, res)
		})
	}
}
