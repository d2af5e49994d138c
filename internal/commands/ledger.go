package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/trustrecon/trustrecon/internal/fees"
	"github.com/trustrecon/trustrecon/internal/ledger"
	"github.com/trustrecon/trustrecon/internal/logger"
	"github.com/trustrecon/trustrecon/internal/model"
	"github.com/trustrecon/trustrecon/internal/money"
	"github.com/trustrecon/trustrecon/internal/report"
	"github.com/trustrecon/trustrecon/internal/table"
)

func (a *app) store(override string) *ledger.FileStore {
	if override != "" {
		return ledger.NewFileStore(override)
	}
	return ledger.NewFileStore(a.resolve(a.cfg.Payments.Path))
}

func (a *app) loadBalances(ctx context.Context, paymentsPath string) ([]model.PartyBalance, error) {
	payments, err := a.store(paymentsPath).LoadPayments(ctx)
	if err != nil {
		return nil, err
	}
	balances := ledger.ComputeBalances(payments)
	log := logger.FromContext(ctx)
	log.Debug().
		Int("payments", len(payments)).
		Int("completed", len(ledger.Completed(payments))).
		Int("parties", len(balances)).
		Msg("computed party balances")
	return balances, nil
}

func newBalancesCommand(a *app) *cobra.Command {
	var paymentsPath string

	cmd := &cobra.Command{
		Use:   "balances",
		Short: "Show paid out, received and net balance per party",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			balances, err := a.loadBalances(cmd.Context(), paymentsPath)
			if err != nil {
				return err
			}
			return report.WriteBalances(cmd.OutOrStdout(), balances)
		},
	}

	cmd.Flags().StringVar(&paymentsPath, "payments", "", "payments CSV (default from config)")
	return cmd
}

func newReconcileCommand(a *app) *cobra.Command {
	var (
		feesPath     string
		paymentsPath string
		attorneys    []string
		cols         fees.FeeColumns
	)

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Net attorney fee obligations against completed payments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.cfg.Fees.Columns
			if cmd.Flags().Changed("user-col") {
				c.User = cols.User
			}
			if cmd.Flags().Changed("attorney-col") {
				c.Attorney = cols.Attorney
			}
			if cmd.Flags().Changed("fee-col") {
				c.Fee = cols.Fee
			}
			path := feesPath
			if path == "" {
				path = a.resolve(a.cfg.Fees.Path)
			}

			tbl, err := table.DefaultRegistry().Open(path)
			if err != nil {
				return err
			}
			rows, err := fees.ReadFees(tbl, c)
			if err != nil {
				return fmt.Errorf("mapping fee columns: %w", err)
			}

			balances, err := a.loadBalances(cmd.Context(), paymentsPath)
			if err != nil {
				return err
			}

			recs := fees.Reconcile(rows, balances, attorneys...)
			log := logger.FromContext(cmd.Context())
			log.Debug().
				Int("fee_rows", len(rows)).
				Int("attorneys", len(recs)).
				Msg("reconciled fees")
			return report.WriteReconciliation(cmd.OutOrStdout(), recs)
		},
	}

	cmd.Flags().StringVar(&feesPath, "fees", "", "fee table CSV/XLSX (default from config)")
	cmd.Flags().StringVar(&paymentsPath, "payments", "", "payments CSV (default from config)")
	cmd.Flags().StringSliceVar(&attorneys, "attorney", nil, "reconcile only these attorneys")
	cmd.Flags().StringVar(&cols.User, "user-col", "", "column holding the fee payer")
	cmd.Flags().StringVar(&cols.Attorney, "attorney-col", "", "column holding the attorney")
	cmd.Flags().StringVar(&cols.Fee, "fee-col", "", "column holding the fee")
	return cmd
}

func newPaymentCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Record and list payments between parties",
	}
	cmd.AddCommand(newPaymentRecordCommand(a))
	cmd.AddCommand(newPaymentListCommand(a))
	return cmd
}

func newPaymentRecordCommand(a *app) *cobra.Command {
	var (
		paymentsPath string
		p            model.Payment
		amount       string
		status       string
		date         string
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Append a payment to the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, ok := money.ParseAmount(amount)
			if !ok {
				return fmt.Errorf("invalid amount %q", amount)
			}
			p.Amount = amt
			p.Status = ledger.ParseStatus(status)

			at, err := a.asOf(date)
			if err != nil {
				return err
			}
			y, m, d := at.Date()
			p.Date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

			stored, err := a.store(paymentsPath).Record(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded payment %s: %s -> %s %s (%s)\n",
				stored.ID, stored.From, stored.To, money.FormatDollars(stored.Amount), stored.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&paymentsPath, "payments", "", "payments CSV (default from config)")
	cmd.Flags().StringVar(&p.From, "from", "", "paying party (required)")
	cmd.Flags().StringVar(&p.To, "to", "", "receiving party (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount paid (required)")
	cmd.Flags().StringVar(&status, "status", string(model.PaymentCompleted), "Pending, Completed or Cancelled")
	cmd.Flags().StringVar(&date, "date", "", "payment date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&p.Note, "note", "", "free-text note")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newPaymentListCommand(a *app) *cobra.Command {
	var paymentsPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded payments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payments, err := a.store(paymentsPath).LoadPayments(cmd.Context())
			if err != nil {
				return err
			}
			return report.WritePayments(cmd.OutOrStdout(), payments)
		},
	}

	cmd.Flags().StringVar(&paymentsPath, "payments", "", "payments CSV (default from config)")
	return cmd
}
