package ledger

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustrecon/trustrecon/internal/model"
)

func pay(from, to, amount string, status model.PaymentStatus) model.Payment {
	return model.Payment{From: from, To: to, Amount: decimal.RequireFromString(amount), Status: status}
}

func assertBalance(t *testing.T, b model.PartyBalance, party, paidOut, received, net string) {
	t.Helper()
	assert.Equal(t, party, b.Party)
	assert.True(t, decimal.RequireFromString(paidOut).Equal(b.PaidOut), "%s paid out %s", party, b.PaidOut)
	assert.True(t, decimal.RequireFromString(received).Equal(b.Received), "%s received %s", party, b.Received)
	assert.True(t, decimal.RequireFromString(net).Equal(b.Net()), "%s net %s", party, b.Net())
}

func TestComputeBalances_Example(t *testing.T) {
	balances := ComputeBalances([]model.Payment{
		pay("A", "B", "100", model.PaymentCompleted),
		pay("B", "C", "40", model.PaymentCompleted),
		pay("A", "C", "10", model.PaymentPending),
	})
	require.Len(t, balances, 3)
	assertBalance(t, balances[0], "A", "100", "0", "-100")
	assertBalance(t, balances[1], "B", "40", "100", "60")
	assertBalance(t, balances[2], "C", "0", "40", "40")
}

func TestComputeBalances_OnlyPartiesWithCompletedPayments(t *testing.T) {
	balances := ComputeBalances([]model.Payment{
		pay("A", "B", "5", model.PaymentCompleted),
		pay("X", "Y", "10", model.PaymentPending),
		pay("Z", "A", "10", model.PaymentCancelled),
		pay("Q", "A", "10", "completed"),
	})
	var parties []string
	for _, b := range balances {
		parties = append(parties, b.Party)
	}
	assert.Equal(t, []string{"A", "B"}, parties)
}

func TestComputeBalances_Empty(t *testing.T) {
	assert.Empty(t, ComputeBalances(nil))
	assert.Empty(t, ComputeBalances([]model.Payment{pay("A", "B", "1", model.PaymentPending)}))
}

func TestComputeBalances_SortedAndIdempotent(t *testing.T) {
	payments := []model.Payment{
		pay("zeta", "alpha", "1.10", model.PaymentCompleted),
		pay("Mike", "alpha", "2.20", model.PaymentCompleted),
		pay("alpha", "Mike", "0.30", model.PaymentCompleted),
	}
	first := ComputeBalances(payments)
	assert.Equal(t, "Mike", first[0].Party)
	assert.Equal(t, "alpha", first[1].Party)
	assert.Equal(t, "zeta", first[2].Party)
	assert.Equal(t, first, ComputeBalances(payments))
}

func TestComputeBalances_Conservation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	parties := []string{"A", "B", "C", "D", "E"}
	statuses := []model.PaymentStatus{model.PaymentCompleted, model.PaymentPending, model.PaymentCancelled}

	for run := 0; run < 25; run++ {
		var payments []model.Payment
		for i := 0; i < 40; i++ {
			from := parties[rng.Intn(len(parties))]
			to := parties[rng.Intn(len(parties))]
			amount := fmt.Sprintf("%d.%02d", rng.Intn(5000)+1, rng.Intn(100))
			payments = append(payments, pay(from, to, amount, statuses[rng.Intn(len(statuses))]))
		}
		balances := ComputeBalances(payments)
		assert.True(t, NetTotal(balances).IsZero(), "run %d: net total %s", run, NetTotal(balances))

		// Single-pass sums match a per-party rescan.
		for _, b := range balances {
			out, in := decimal.Zero, decimal.Zero
			for _, p := range Completed(payments) {
				if p.From == b.Party {
					out = out.Add(p.Amount)
				}
				if p.To == b.Party {
					in = in.Add(p.Amount)
				}
			}
			assert.True(t, out.Equal(b.PaidOut))
			assert.True(t, in.Equal(b.Received))
		}
	}
}

func TestIndex(t *testing.T) {
	idx := Index(ComputeBalances([]model.Payment{pay("A", "B", "3", model.PaymentCompleted)}))
	assert.Len(t, idx, 2)
	assert.Equal(t, "3", idx["A"].PaidOut.String())
	_, ok := idx["C"]
	assert.False(t, ok)
}

func TestCompleted(t *testing.T) {
	got := Completed([]model.Payment{
		pay("A", "B", "1", model.PaymentPending),
		pay("A", "B", "2", model.PaymentCompleted),
	})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].Amount.String())
}
