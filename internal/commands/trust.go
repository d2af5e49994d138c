package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/trustrecon/trustrecon/internal/logger"
	"github.com/trustrecon/trustrecon/internal/model"
	"github.com/trustrecon/trustrecon/internal/report"
	"github.com/trustrecon/trustrecon/internal/table"
	"github.com/trustrecon/trustrecon/internal/trust"
)

const asOfFormat = "2006-01-02"

type trustOptions struct {
	asOf    string
	split   bool
	export  string
	columns trust.ColumnMapping
}

func newTrustCommand(a *app) *cobra.Command {
	var opts trustOptions

	cmd := &cobra.Command{
		Use:   "trust <listing.csv|listing.xlsx>",
		Short: "Normalize and age a trust listing export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := a.cfg.Trust.Columns
			if cmd.Flags().Changed("client-col") {
				m.Client = opts.columns.Client
			}
			if cmd.Flags().Changed("account-col") {
				m.Account = opts.columns.Account
			}
			if cmd.Flags().Changed("balance-col") {
				m.Balance = opts.columns.Balance
			}
			if cmd.Flags().Changed("date-col") {
				m.Date = opts.columns.Date
			}
			opts.columns = m
			return a.runTrust(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.asOf, "as-of", "", "age balances as of this date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&opts.split, "split", false, "also list clients grouped by account")
	cmd.Flags().StringVar(&opts.export, "export", "", "write the processed listing as CSV to this path")
	cmd.Flags().StringVar(&opts.columns.Client, "client-col", "", "column holding the client")
	cmd.Flags().StringVar(&opts.columns.Account, "account-col", "", "column holding the account")
	cmd.Flags().StringVar(&opts.columns.Balance, "balance-col", "", "column holding the client balance")
	cmd.Flags().StringVar(&opts.columns.Date, "date-col", "", "column holding the last activity date")

	return cmd
}

func (a *app) runTrust(cmd *cobra.Command, path string, opts trustOptions) error {
	log := logger.FromContext(cmd.Context())

	asOf, err := a.asOf(opts.asOf)
	if err != nil {
		return err
	}

	tbl, err := table.DefaultRegistry().Open(path)
	if err != nil {
		return err
	}

	records, err := trust.Normalize(tbl, opts.columns, asOf)
	if err != nil {
		return fmt.Errorf("mapping columns: %w", err)
	}

	var noBalance, noDate int
	for _, r := range records {
		if r.Balance == nil {
			noBalance++
		}
		if r.ActivityAt == nil {
			noDate++
		}
	}
	log.Debug().
		Str("file", path).
		Int("rows", len(tbl.Rows)).
		Int("records", len(records)).
		Str("as_of", asOf.Format(asOfFormat)).
		Msg("normalized trust listing")
	if noBalance > 0 || noDate > 0 {
		log.Warn().Int("unparsed_balances", noBalance).Int("unparsed_dates", noDate).Msg("some cells could not be parsed")
	}

	out := cmd.OutOrStdout()
	if err := report.WriteTrust(out, records); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if opts.split {
		fmt.Fprintln(out)
		if err := report.WriteSplit(out, records); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	if opts.export != "" {
		if err := exportListing(opts.export, records); err != nil {
			return err
		}
		log.Info().Str("path", opts.export).Msg("exported listing")
	}
	return nil
}

func (a *app) asOf(s string) (time.Time, error) {
	loc, err := a.cfg.Location()
	if err != nil {
		return time.Time{}, err
	}
	if s == "" {
		return time.Now().In(loc), nil
	}
	t, err := time.ParseInLocation(asOfFormat, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --as-of %q: %w", s, err)
	}
	return t, nil
}

func exportListing(path string, records []model.TrustRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export: %w", err)
	}
	defer f.Close()

	if err := table.Write(f, trust.Standardize(records)); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return f.Close()
}
