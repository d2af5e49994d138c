package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoDate is the display value for a listing row without a parseable activity date.
const NoDate = "N/A"

// TrustRecord is one normalized row of a trust listing.
type TrustRecord struct {
	Client           string
	Account          string
	Balance          *decimal.Decimal // nil if the balance cell did not parse
	LastActivityDate string           // "YYYY-MM-DD" or NoDate
	ActivityAt       *time.Time       // parsed activity date, nil if unparseable
	DaysSinceActive  *int             // nil iff ActivityAt is nil
}

// BalanceOrZero returns the balance, treating a missing value as zero.
func (r TrustRecord) BalanceOrZero() decimal.Decimal {
	if r.Balance == nil {
		return decimal.Zero
	}
	return *r.Balance
}
