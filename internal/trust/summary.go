package trust

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/trustrecon/trustrecon/internal/model"
	"github.com/trustrecon/trustrecon/internal/table"
)

// AccountTotal is the summed balance of one trust account.
type AccountTotal struct {
	Account string
	Total   decimal.Decimal
	Clients int
}

// Summary aggregates a normalized listing.
type Summary struct {
	Count    int
	Total    decimal.Decimal
	Accounts []AccountTotal // in order of first appearance
}

// Summarize totals records overall and per account. Missing balances count as zero.
func Summarize(records []model.TrustRecord) Summary {
	s := Summary{Count: len(records), Total: decimal.Zero}
	pos := make(map[string]int)
	for _, rec := range records {
		bal := rec.BalanceOrZero()
		s.Total = s.Total.Add(bal)

		i, ok := pos[rec.Account]
		if !ok {
			i = len(s.Accounts)
			pos[rec.Account] = i
			s.Accounts = append(s.Accounts, AccountTotal{Account: rec.Account, Total: decimal.Zero})
		}
		s.Accounts[i].Total = s.Accounts[i].Total.Add(bal)
		s.Accounts[i].Clients++
	}
	return s
}

// AccountGroup is the split-listing view of one account.
type AccountGroup struct {
	Account string
	Records []model.TrustRecord
}

// GroupByAccount splits records per account, keeping listing order within and across groups.
func GroupByAccount(records []model.TrustRecord) []AccountGroup {
	var groups []AccountGroup
	pos := make(map[string]int)
	for _, rec := range records {
		i, ok := pos[rec.Account]
		if !ok {
			i = len(groups)
			pos[rec.Account] = i
			groups = append(groups, AccountGroup{Account: rec.Account})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}
	return groups
}

// Standardize renders records back into a table with the standard column
// names, so the listing can be exported or normalized again with
// DefaultColumnMapping.
func Standardize(records []model.TrustRecord) *table.Table {
	t := &table.Table{Header: []string{ColClient, ColAccount, ColBalance, ColDate, ColDaysIdle}}
	for _, rec := range records {
		bal, days := "", ""
		if rec.Balance != nil {
			bal = rec.Balance.String()
		}
		if rec.DaysSinceActive != nil {
			days = strconv.Itoa(*rec.DaysSinceActive)
		}
		t.Rows = append(t.Rows, []string{rec.Client, rec.Account, bal, rec.LastActivityDate, days})
	}
	return t
}
