package fees

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/trustrecon/trustrecon/internal/ledger"
	"github.com/trustrecon/trustrecon/internal/model"
)

// Attorneys returns the distinct non-blank attorney identities in rows, sorted.
func Attorneys(rows []model.FeeRow) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range rows {
		if r.Attorney == "" || seen[r.Attorney] {
			continue
		}
		seen[r.Attorney] = true
		out = append(out, r.Attorney)
	}
	sort.Strings(out)
	return out
}

// Reconcile produces one record per attorney, sorted by attorney. When no
// attorneys are given, every attorney named in rows is reconciled. An
// attorney with no fee rows or no balance gets zero sums.
//
// For attorney A:
//
//	totalDue         = Σ fee where Attorney == A
//	totalOwed        = Σ fee where User == A and Attorney != A
//	correctedInvoice = -(totalDue - totalOwed)
//	finalBalance     = correctedInvoice - paidOut(A) - received(A)
//
// Missing fees contribute zero.
func Reconcile(rows []model.FeeRow, balances []model.PartyBalance, attorneys ...string) []model.ReconciliationRecord {
	if len(attorneys) == 0 {
		attorneys = Attorneys(rows)
	} else {
		attorneys = dedupeSorted(attorneys)
	}

	due := make(map[string]decimal.Decimal)
	owed := make(map[string]decimal.Decimal)
	for _, r := range rows {
		if r.Fee == nil {
			continue
		}
		due[r.Attorney] = due[r.Attorney].Add(*r.Fee)
		// Self-referential rows count toward due only.
		if r.User != r.Attorney {
			owed[r.User] = owed[r.User].Add(*r.Fee)
		}
	}

	byParty := ledger.Index(balances)
	out := make([]model.ReconciliationRecord, 0, len(attorneys))
	for _, att := range attorneys {
		totalDue, totalOwed := due[att], owed[att]
		corrected := totalDue.Sub(totalOwed).Neg()
		bal := byParty[att]
		out = append(out, model.ReconciliationRecord{
			Attorney:         att,
			TotalDue:         totalDue,
			TotalOwed:        totalOwed,
			CorrectedInvoice: corrected,
			PaymentsMade:     bal.PaidOut,
			PaymentsReceived: bal.Received,
			FinalBalance:     corrected.Sub(bal.PaidOut).Sub(bal.Received),
		})
	}
	return out
}

func dedupeSorted(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	n := 0
	for i, s := range out {
		if i > 0 && s == out[n-1] {
			continue
		}
		out[n] = s
		n++
	}
	return out[:n]
}
