package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/SscSPs/affiliate_ledger/internal/utils/moneyfmt"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var version = "1.0.0"

// options are the persistent flags shared by every subcommand.
type options struct {
	snapshotPath string
	locale       string
	asJSON       bool
	verbose      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Offline reports over an affiliate ledger snapshot",
		Long: `ledgerctl reads a ledger snapshot exported as JSON and runs the same
aggregation as the server: period financials, partner ledgers and tax.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.snapshotPath, "snapshot", "s", "-", "snapshot JSON file, - for stdin")
	flags.StringVar(&opts.locale, "locale", "en", "locale used to format amounts (en, vi)")
	flags.BoolVar(&opts.asJSON, "json", false, "print JSON instead of a text summary")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(
		newReportCmd(opts),
		newPartnersCmd(opts),
		newTaxCmd(opts),
		newValidateCmd(opts),
	)
	return rootCmd
}

func (o *options) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func (o *options) formatter() (*moneyfmt.Formatter, error) {
	tag, err := language.Parse(o.locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", o.locale, err)
	}
	return moneyfmt.New(tag), nil
}

var snapshotValidator = validator.New(validator.WithRequiredStructEnabled())

// loadSnapshot decodes and validates the snapshot named by --snapshot.
func (o *options) loadSnapshot(cmd *cobra.Command) (*domain.LedgerSnapshot, error) {
	var r io.Reader = cmd.InOrStdin()
	if o.snapshotPath != "-" {
		f, err := os.Open(o.snapshotPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var snapshot domain.LedgerSnapshot
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if err := snapshotValidator.Struct(&snapshot); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	o.logger(cmd).Debug("Snapshot loaded",
		slog.String("workplace_id", snapshot.WorkplaceID),
		slog.Int("commissions", len(snapshot.Commissions)),
		slog.Int("ad_costs", len(snapshot.AdCosts)),
		slog.Int("closed_periods", len(snapshot.ClosedPeriods)))
	return &snapshot, nil
}

// loadTaxSettings reads optional tax settings; an empty path means tax is not configured.
func loadTaxSettings(path string) (*domain.TaxSettings, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var settings domain.TaxSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("decode tax settings: %w", err)
	}
	if err := snapshotValidator.Struct(&settings); err != nil {
		return nil, fmt.Errorf("invalid tax settings: %w", err)
	}
	return &settings, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printWarnings(w io.Writer, f *moneyfmt.Formatter, warnings []domain.Warning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintf(w, "\nWarnings (%d)\n", len(warnings))
	for _, warn := range warnings {
		fmt.Fprintf(w, "  [%s] %s %s\n", f.Label(string(warn.Code)), warn.RecordID, warn.Message)
	}
}
