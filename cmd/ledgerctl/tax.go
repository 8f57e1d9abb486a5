package main

import (
	"fmt"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/SscSPs/affiliate_ledger/internal/core/finance"
	"github.com/spf13/cobra"
)

func newTaxCmd(opts *options) *cobra.Command {
	var (
		period      string
		taxSettings string
	)
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Compute the tax payable of a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadTaxSettings(taxSettings)
			if err != nil {
				return err
			}
			if settings == nil {
				return fmt.Errorf("--tax-settings is required")
			}
			snapshot, err := opts.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			if _, err := finance.ParsePeriod(period); err != nil {
				return err
			}

			pnl, warnings := finance.AggregatePnL(snapshot, period)
			result, err := finance.CalculateTax(pnl, settings)
			if err != nil {
				return err
			}

			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}
			f, err := opts.formatter()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Tax %s, method %s\n", period, f.Label(string(result.Method)))
			switch result.Method {
			case domain.TaxMethodRevenue:
				fmt.Fprintf(w, "  Revenue base     %s\n", f.Amount(result.RevenueBase, domain.VND))
				fmt.Fprintf(w, "  Separation       %s\n", f.Amount(result.SeparationAmount, domain.VND))
				fmt.Fprintf(w, "  Taxable revenue  %s\n", f.Amount(result.TaxableRevenue, domain.VND))
			case domain.TaxMethodProfitVAT:
				fmt.Fprintf(w, "  Output VAT       %s\n", f.Amount(result.OutputVAT, domain.VND))
				fmt.Fprintf(w, "  Input VAT        %s\n", f.Amount(result.InputVAT, domain.VND))
				fmt.Fprintf(w, "  Net VAT          %s\n", f.Amount(result.NetVAT, domain.VND))
				fmt.Fprintf(w, "  Profit base      %s\n", f.Amount(result.ProfitBase, domain.VND))
				fmt.Fprintf(w, "  Income tax       %s\n", f.Amount(result.IncomeTax, domain.VND))
			}
			fmt.Fprintf(w, "  Tax payable      %s\n", f.Amount(result.TaxPayable, domain.VND))
			printWarnings(w, f, warnings)
			return nil
		},
	}
	cmd.Flags().StringVarP(&period, "period", "p", "", "period as YYYY-MM")
	cmd.Flags().StringVar(&taxSettings, "tax-settings", "", "tax settings JSON file")
	_ = cmd.MarkFlagRequired("period")
	return cmd
}

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that a snapshot decodes and passes field validation",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := opts.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			_, autoWarnings := finance.AutoEntries(snapshot)
			fmt.Fprintf(cmd.OutOrStdout(), "snapshot %s ok: %d projects, %d assets, %d partners, %d closed periods\n",
				snapshot.WorkplaceID, len(snapshot.Projects), len(snapshot.Assets), len(snapshot.Partners), len(snapshot.ClosedPeriods))
			if _, ok := snapshot.Self(); !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "warning: no isSelf partner")
			}
			for _, w := range autoWarnings {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: [%s] %s %s\n", w.Code, w.RecordID, w.Message)
			}
			return nil
		},
	}
}
