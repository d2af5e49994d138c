package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle state of a recorded payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentCancelled PaymentStatus = "Cancelled"
)

// Payment is a cash movement between two parties, as kept by the payment store.
type Payment struct {
	ID     string
	Date   time.Time
	From   string
	To     string
	Amount decimal.Decimal // always > 0
	Status PaymentStatus
	Note   string
}

// PartyBalance is the net cash position of one party over completed payments.
type PartyBalance struct {
	Party    string
	PaidOut  decimal.Decimal
	Received decimal.Decimal
}

// Net returns received - paid out.
func (b PartyBalance) Net() decimal.Decimal {
	return b.Received.Sub(b.PaidOut)
}
