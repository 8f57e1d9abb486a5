package finance

import (
	"fmt"

	"github.com/SscSPs/affiliate_ledger/internal/apperrors"
	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/SscSPs/affiliate_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// CalculateTax computes tax payable for pnl. Nil settings mean the workplace has not configured
// tax, and nil is returned without error. Settings missing a figure the selected method needs
// yield an apperrors.ErrConfiguration error instead of a zero-valued result.
func CalculateTax(pnl domain.PnL, settings *domain.TaxSettings) (*domain.TaxResult, error) {
	if settings == nil {
		return nil, nil
	}
	if err := ValidateTaxSettings(settings); err != nil {
		return nil, err
	}

	separation := settings.TaxSeparationAmount
	res := &domain.TaxResult{
		Method:           settings.Method,
		SeparationAmount: separation,
		RevenueBase:      decimal.Zero,
		TaxableRevenue:   decimal.Zero,
		OutputVAT:        decimal.Zero,
		InputVAT:         decimal.Zero,
		NetVAT:           decimal.Zero,
		ProfitBase:       decimal.Zero,
		IncomeTax:        decimal.Zero,
	}

	switch settings.Method {
	case domain.TaxMethodRevenue:
		res.RevenueBase = pickBase(settings.RevenueBase, pnl.MyRevenue, pnl.TotalRevenue)
		res.TaxableRevenue = accounting.NonNegative(res.RevenueBase.Sub(separation))
		res.TaxPayable = accounting.Percentage(res.TaxableRevenue, *settings.RevenueRate)

	case domain.TaxMethodProfitVAT:
		res.RevenueBase = pickBase(settings.VATOutputBase, pnl.MyRevenue, pnl.TotalRevenue)
		res.TaxableRevenue = accounting.NonNegative(res.RevenueBase.Sub(separation))
		res.OutputVAT = accounting.Percentage(res.TaxableRevenue, *settings.VATRate)

		if settings.InputVATMode == domain.InputVATManual {
			res.InputVAT = *settings.ManualInputVAT
		} else {
			res.InputVAT = pickBase(settings.VATInputBase, pnl.MyInputVAT, pnl.InputVAT)
		}
		res.NetVAT = accounting.NonNegative(res.OutputVAT.Sub(res.InputVAT))

		res.ProfitBase = pickBase(settings.ProfitBase, pnl.MyProfit, pnl.TotalProfit)
		res.IncomeTax = accounting.Percentage(accounting.NonNegative(res.ProfitBase), *settings.IncomeRate)
		res.TaxPayable = res.NetVAT.Add(res.IncomeTax)
	}

	return res, nil
}

// ValidateTaxSettings reports the first figure missing or invalid for the selected method.
func ValidateTaxSettings(settings *domain.TaxSettings) error {
	if settings.TaxSeparationAmount.IsNegative() {
		return configErr("taxSeparationAmount must not be negative")
	}
	for _, b := range []domain.TaxBase{settings.RevenueBase, settings.VATOutputBase, settings.VATInputBase, settings.ProfitBase} {
		if b != "" && b != domain.TaxBasePersonal && b != domain.TaxBaseTotal {
			return configErr("unknown tax base %q", b)
		}
	}

	switch settings.Method {
	case domain.TaxMethodRevenue:
		return requireRate("revenueRate", settings.RevenueRate)

	case domain.TaxMethodProfitVAT:
		if err := requireRate("vatRate", settings.VATRate); err != nil {
			return err
		}
		if err := requireRate("incomeRate", settings.IncomeRate); err != nil {
			return err
		}
		switch settings.InputVATMode {
		case "", domain.InputVATAuto:
		case domain.InputVATManual:
			if settings.ManualInputVAT == nil {
				return configErr("manualInputVat is required when inputVatMode is manual")
			}
			if settings.ManualInputVAT.IsNegative() {
				return configErr("manualInputVat must not be negative")
			}
		default:
			return configErr("unknown inputVatMode %q", settings.InputVATMode)
		}
		return nil

	default:
		return configErr("unknown tax method %q", settings.Method)
	}
}

func requireRate(name string, rate *decimal.Decimal) error {
	if rate == nil {
		return configErr("%s is required", name)
	}
	if rate.IsNegative() {
		return configErr("%s must not be negative", name)
	}
	return nil
}

func configErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrConfiguration, fmt.Sprintf(format, args...))
}

// pickBase selects the owner's share for TaxBasePersonal and the period total otherwise.
func pickBase(base domain.TaxBase, personal, total decimal.Decimal) decimal.Decimal {
	if base == domain.TaxBasePersonal {
		return personal
	}
	return total
}
