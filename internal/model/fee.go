package model

import "github.com/shopspring/decimal"

// FeeRow is one row of the externally computed fee table: User owes Fee to Attorney.
type FeeRow struct {
	User     string
	Attorney string
	Fee      *decimal.Decimal // nil if the fee cell did not parse
}

// ReconciliationRecord nets an attorney's fee position against recorded payments.
type ReconciliationRecord struct {
	Attorney         string
	TotalDue         decimal.Decimal
	TotalOwed        decimal.Decimal
	CorrectedInvoice decimal.Decimal // -(TotalDue - TotalOwed)
	PaymentsMade     decimal.Decimal
	PaymentsReceived decimal.Decimal
	FinalBalance     decimal.Decimal // CorrectedInvoice - PaymentsMade - PaymentsReceived
}

// NetInvoice returns total fees due minus total fees owed.
func (r ReconciliationRecord) NetInvoice() decimal.Decimal {
	return r.TotalDue.Sub(r.TotalOwed)
}
