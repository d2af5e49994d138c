// Package trust turns a raw trust listing into aged, validated records.
package trust

import (
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/trustrecon/trustrecon/internal/model"
	"github.com/trustrecon/trustrecon/internal/money"
	"github.com/trustrecon/trustrecon/internal/table"
)

const (
	isoDate    = "2006-01-02"
	secondsDay = 24 * 60 * 60
)

// Normalize validates the column mapping, then parses, ages, sorts and filters
// the listing. Aging is measured against the calendar day of asOf, in asOf's
// location. Unparseable balances and dates become nil; they are never errors.
// Only a schema failure returns an error.
func Normalize(t *table.Table, m ColumnMapping, asOf time.Time) ([]model.TrustRecord, error) {
	idx, err := t.Resolve(m.bindings()...)
	if err != nil {
		return nil, err
	}
	clientIdx, accountIdx, balanceIdx, dateIdx := idx[0], idx[1], idx[2], idx[3]

	records := make([]model.TrustRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := model.TrustRecord{
			Client:  table.Cell(row, clientIdx),
			Account: table.Cell(row, accountIdx),
			Balance: money.ParseAmountPtr(table.Cell(row, balanceIdx)),
		}
		if at, ok := ParseDate(table.Cell(row, dateIdx), asOf.Location()); ok {
			days := DaysBetween(at, asOf)
			rec.ActivityAt = &at
			rec.DaysSinceActive = &days
		}
		records = append(records, rec)
	}

	// Undated rows sort last.
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].ActivityAt, records[j].ActivityAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})

	out := records[:0]
	for _, rec := range records {
		rec.LastActivityDate = model.NoDate
		if rec.ActivityAt != nil {
			rec.LastActivityDate = rec.ActivityAt.Format(isoDate)
		}
		if rec.Balance != nil && rec.Balance.IsZero() {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// ParseDate parses a free-text date in loc. It reports false for blank or
// unrecognised input.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == model.NoDate {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DaysBetween returns floor(midnight(asOf) - at) in whole days, using wall
// clock values so DST transitions do not shift the count.
func DaysBetween(at, asOf time.Time) int {
	ay, am, ad := asOf.Date()
	today := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC).Unix()

	y, mo, d := at.Date()
	midnight := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC).Unix()
	days := int((today - midnight) / secondsDay)

	// A time of day past midnight means less than a whole day elapsed.
	if at.Hour() != 0 || at.Minute() != 0 || at.Second() != 0 || at.Nanosecond() != 0 {
		days--
	}
	return days
}
