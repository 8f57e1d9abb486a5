package main

import (
	"fmt"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/SscSPs/affiliate_ledger/internal/core/finance"
	"github.com/spf13/cobra"
)

func newPartnersCmd(opts *options) *cobra.Command {
	var lines int
	cmd := &cobra.Command{
		Use:   "partners",
		Short: "Print every partner's reconciled ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := opts.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			ledgers, warnings := finance.ReconcilePartners(snapshot)

			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), struct {
					Ledgers  []domain.PartnerLedger `json:"ledgers"`
					Warnings []domain.Warning       `json:"warnings"`
				}{ledgers, warnings})
			}

			f, err := opts.formatter()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, l := range ledgers {
				name := l.Name
				if l.IsSelf {
					name += " (me)"
				}
				fmt.Fprintf(w, "%s  balance %s\n", name, f.Amount(l.Balance, domain.VND))
				for i, line := range l.Lines {
					if lines > 0 && i >= lines {
						fmt.Fprintf(w, "    ... %d more\n", len(l.Lines)-lines)
						break
					}
					marker := " "
					if line.Automatic {
						marker = "*"
					}
					fmt.Fprintf(w, "  %s %s %-7s %15s  %s\n", marker, line.Entry.Date, line.Entry.Type,
						f.Amount(line.Entry.Amount, domain.VND), f.Amount(line.RunningBalance, domain.VND))
				}
			}
			printWarnings(w, f, warnings)
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "show at most n lines per partner, 0 for all")
	return cmd
}
