// Package report renders engine output as aligned plain-text tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/trustrecon/trustrecon/internal/model"
	"github.com/trustrecon/trustrecon/internal/money"
	"github.com/trustrecon/trustrecon/internal/trust"
)

const missing = "-"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func amount(d *decimal.Decimal) string {
	if d == nil {
		return missing
	}
	return money.FormatDollars(*d)
}

func days(n *int) string {
	if n == nil {
		return missing
	}
	return strconv.Itoa(*n)
}

// WriteTrust renders the trust summary, the per-account totals and the
// detailed listing.
func WriteTrust(w io.Writer, records []model.TrustRecord) error {
	s := trust.Summarize(records)
	tw := newTable(w)

	fmt.Fprintln(tw, "Trust Account Summary")
	fmt.Fprintf(tw, "Total Accounts: %d\n", s.Count)
	fmt.Fprintf(tw, "Total Balance: %s\n", money.FormatDollars(s.Total))
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "ACCOUNT\tCLIENTS\tBALANCE")
	for _, a := range s.Accounts {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", a.Account, a.Clients, money.FormatDollars(a.Total))
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "CLIENT\tACCOUNT\tBALANCE\tLAST ACTIVITY\tDAYS")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Client, r.Account, amount(r.Balance), r.LastActivityDate, days(r.DaysSinceActive))
	}
	return tw.Flush()
}

// WriteSplit renders one client table per account.
func WriteSplit(w io.Writer, records []model.TrustRecord) error {
	tw := newTable(w)
	for i, g := range trust.GroupByAccount(records) {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "Account: %s\n", g.Account)
		fmt.Fprintln(tw, "CLIENT\tBALANCE\tDAYS")
		for _, r := range g.Records {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Client, amount(r.Balance), days(r.DaysSinceActive))
		}
	}
	return tw.Flush()
}

// WriteBalances renders per-party payment balances.
func WriteBalances(w io.Writer, balances []model.PartyBalance) error {
	if len(balances) == 0 {
		_, err := fmt.Fprintln(w, "No completed payments.")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "PARTY\tPAID OUT\tRECEIVED\tNET BALANCE")
	for _, b := range balances {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.Party,
			money.FormatDollars(b.PaidOut), money.FormatDollars(b.Received), money.FormatDollars(b.Net()))
	}
	return tw.Flush()
}

// WriteReconciliation renders the final reconciled balance per attorney.
func WriteReconciliation(w io.Writer, recs []model.ReconciliationRecord) error {
	if len(recs) == 0 {
		_, err := fmt.Fprintln(w, "No reconciliation data available.")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ATTORNEY\tCORRECTED INVOICE\tPAYMENTS MADE\tPAYMENTS RECEIVED\tFINAL BALANCE")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Attorney,
			money.FormatDollars(r.CorrectedInvoice), money.FormatDollars(r.PaymentsMade),
			money.FormatDollars(r.PaymentsReceived), money.FormatDollars(r.FinalBalance))
	}
	return tw.Flush()
}

// WritePayments renders the payment history.
func WritePayments(w io.Writer, payments []model.Payment) error {
	if len(payments) == 0 {
		_, err := fmt.Fprintln(w, "No payments recorded.")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tFROM\tTO\tAMOUNT\tSTATUS\tNOTE")
	for _, p := range payments {
		date := missing
		if !p.Date.IsZero() {
			date = p.Date.Format("2006-01-02")
		}
		note := p.Note
		if note == "" {
			note = missing
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", p.ID, date, p.From, p.To, money.FormatDollars(p.Amount), p.Status, note)
	}
	return tw.Flush()
}
