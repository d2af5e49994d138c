package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPartyBalanceNet(t *testing.T) {
	tests := []struct {
		paidOut, received string
		want              string
	}{
		{"100", "0", "-100"},
		{"40", "100", "60"},
		{"0", "0", "0"},
	}
	for _, tt := range tests {
		b := PartyBalance{PaidOut: decimal.RequireFromString(tt.paidOut), Received: decimal.RequireFromString(tt.received)}
		assert.True(t, decimal.RequireFromString(tt.want).Equal(b.Net()), "Net(%s, %s)", tt.paidOut, tt.received)
	}
}

func TestTrustRecordBalanceOrZero(t *testing.T) {
	assert.True(t, TrustRecord{}.BalanceOrZero().IsZero())

	d := decimal.RequireFromString("12.50")
	assert.Equal(t, "12.50", TrustRecord{Balance: &d}.BalanceOrZero().StringFixed(2))
}

func TestReconciliationNetInvoice(t *testing.T) {
	r := ReconciliationRecord{TotalDue: decimal.NewFromInt(70), TotalOwed: decimal.NewFromInt(20)}
	assert.Equal(t, "50", r.NetInvoice().String())
}
