// Package ledger reduces recorded payments to per-party cash positions.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/trustrecon/trustrecon/internal/model"
)

// Completed returns the completed payments, in input order.
func Completed(payments []model.Payment) []model.Payment {
	var out []model.Payment
	for _, p := range payments {
		if p.Status == model.PaymentCompleted {
			out = append(out, p)
		}
	}
	return out
}

// ComputeBalances sums completed payments per party in a single pass. Every
// party that sent or received a completed payment appears exactly once,
// sorted by party identifier.
func ComputeBalances(payments []model.Payment) []model.PartyBalance {
	byParty := make(map[string]*model.PartyBalance)
	get := func(party string) *model.PartyBalance {
		b, ok := byParty[party]
		if !ok {
			b = &model.PartyBalance{Party: party, PaidOut: decimal.Zero, Received: decimal.Zero}
			byParty[party] = b
		}
		return b
	}

	for _, p := range Completed(payments) {
		from := get(p.From)
		from.PaidOut = from.PaidOut.Add(p.Amount)
		to := get(p.To)
		to.Received = to.Received.Add(p.Amount)
	}

	out := make([]model.PartyBalance, 0, len(byParty))
	for _, b := range byParty {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Party < out[j].Party })
	return out
}

// Index keys balances by party.
func Index(balances []model.PartyBalance) map[string]model.PartyBalance {
	m := make(map[string]model.PartyBalance, len(balances))
	for _, b := range balances {
		m[b.Party] = b
	}
	return m
}

// NetTotal sums every party's net balance. For balances produced by
// ComputeBalances it is always zero.
func NetTotal(balances []model.PartyBalance) decimal.Decimal {
	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b.Net())
	}
	return total
}
