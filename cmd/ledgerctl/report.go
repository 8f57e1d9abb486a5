package main

import (
	"fmt"
	"io"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/SscSPs/affiliate_ledger/internal/core/finance"
	"github.com/SscSPs/affiliate_ledger/internal/utils/moneyfmt"
	"github.com/spf13/cobra"
)

func newReportCmd(opts *options) *cobra.Command {
	var (
		period      string
		taxSettings string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute the financials of a period",
		Example: `  ledgerctl report --period 2024-05 --snapshot ledger.json
  ledgerctl report --period 2024-05 --tax-settings tax.json --json < ledger.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := opts.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			settings, err := loadTaxSettings(taxSettings)
			if err != nil {
				return err
			}

			// A closed period reports its stored snapshot, like the server does.
			financials, closed := closedFinancials(snapshot, period)
			if !closed {
				computed, err := finance.ComputePeriodFinancials(snapshot, period, settings)
				if err != nil {
					return err
				}
				financials = &computed
			}

			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), financials)
			}
			f, err := opts.formatter()
			if err != nil {
				return err
			}
			printFinancials(cmd.OutOrStdout(), f, financials, closed)
			return nil
		},
	}
	cmd.Flags().StringVarP(&period, "period", "p", "", "period as YYYY-MM")
	cmd.Flags().StringVar(&taxSettings, "tax-settings", "", "tax settings JSON file")
	_ = cmd.MarkFlagRequired("period")
	return cmd
}

func closedFinancials(s *domain.LedgerSnapshot, period string) (*domain.PeriodFinancials, bool) {
	for i := range s.ClosedPeriods {
		if s.ClosedPeriods[i].Period == period {
			return &s.ClosedPeriods[i].Financials, true
		}
	}
	return nil, false
}

func printFinancials(w io.Writer, f *moneyfmt.Formatter, fin *domain.PeriodFinancials, closed bool) {
	status := "open"
	if closed {
		status = "closed"
	}
	pnl := fin.PnL
	fmt.Fprintf(w, "Period %s (%s)\n\n", fin.Period, status)
	fmt.Fprintf(w, "Revenue       %s\n", f.Amount(pnl.TotalRevenue, domain.VND))
	fmt.Fprintf(w, "  Ad cost     %s\n", f.Amount(pnl.AdCost, domain.VND))
	fmt.Fprintf(w, "  Misc cost   %s\n", f.Amount(pnl.MiscCost, domain.VND))
	fmt.Fprintf(w, "Profit        %s\n", f.Amount(pnl.TotalProfit, domain.VND))
	fmt.Fprintf(w, "My profit     %s\n", f.Amount(pnl.MyProfit, domain.VND))
	if fin.Tax != nil {
		fmt.Fprintf(w, "Tax payable   %s (%s)\n", f.Amount(fin.Tax.TaxPayable, domain.VND), f.Label(string(fin.Tax.Method)))
	}

	for _, p := range pnl.PartnerPnlDetails {
		fmt.Fprintf(w, "  %-20s profit %s\n", p.Name, f.Amount(p.Profit, domain.VND))
	}

	for _, cf := range fin.CashFlows {
		fmt.Fprintf(w, "\nCash flow %s\n", cf.Currency)
		fmt.Fprintf(w, "  Beginning   %s\n", f.Amount(cf.BeginningBalance, cf.Currency))
		for _, b := range []struct {
			name   string
			bucket domain.CashFlowBucket
		}{{"operating", cf.Operating}, {"investing", cf.Investing}, {"financing", cf.Financing}} {
			fmt.Fprintf(w, "  %-11s %s\n", f.Label(b.name), f.Amount(b.bucket.Net, cf.Currency))
		}
		fmt.Fprintf(w, "  Ending      %s", f.Amount(cf.EndBalance, cf.Currency))
		if !cf.Reconciled {
			fmt.Fprintf(w, " (assets hold %s)", f.Amount(cf.AssetsEndBalance, cf.Currency))
		}
		fmt.Fprintln(w)
	}

	for _, d := range fin.Liabilities {
		fmt.Fprintf(w, "\nOwed %-20s %s outstanding\n", d.Name, f.Amount(d.Outstanding, d.Currency))
	}
	for _, d := range fin.Receivables {
		fmt.Fprintf(w, "\nDue  %-20s %s outstanding\n", d.Name, f.Amount(d.Outstanding, d.Currency))
	}

	printWarnings(w, f, fin.Warnings)
}
