package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLedgerBalance(t *testing.T) {
	t.Run("nets invoices against payments", func(t *testing.T) {
		balance := ComputeLedgerBalance(
			[]float64{5000, 12500, 7500},
			[]float64{5000, 10000},
		)

		assert.Equal(t, 25000.0, balance.TotalInvoice)
		assert.Equal(t, 15000.0, balance.TotalPayment)
		assert.Equal(t, 10000.0, balance.Balance)
	})

	t.Run("empty ledger has zero balance", func(t *testing.T) {
		balance := ComputeLedgerBalance(nil, nil)

		assert.Equal(t, 0.0, balance.TotalInvoice)
		assert.Equal(t, 0.0, balance.TotalPayment)
		assert.Equal(t, 0.0, balance.Balance)
	})

	t.Run("payments without invoices yield negative balance", func(t *testing.T) {
		balance := ComputeLedgerBalance(nil, []float64{2000})

		assert.Equal(t, -2000.0, balance.Balance)
	})
}

func TestBuildItemLedger(t *testing.T) {
	t.Run("running balance satisfies the fold invariant", func(t *testing.T) {
		events := []ItemLedgerEvent{
			{Type: LedgerEventReceipt, Date: "2024-01-18", ReferenceNo: "CH001", Quantity: 40},
			{Type: LedgerEventReceipt, Date: "2024-01-22", ReferenceNo: "CH002", Quantity: 20},
			{Type: LedgerEventIssue, Date: "2024-01-28", ReferenceNo: "ISS001", Quantity: 10, IssuedTo: "John Smith"},
		}

		rows := BuildItemLedger(events)

		require.Len(t, rows, 3)
		assert.Equal(t, 40, rows[0].BalanceQuantity)
		assert.Equal(t, 60, rows[1].BalanceQuantity)
		assert.Equal(t, 50, rows[2].BalanceQuantity)

		prev := 0
		for _, row := range rows {
			assert.Equal(t, prev+row.ReceivedQuantity-row.Quantity, row.BalanceQuantity)
			prev = row.BalanceQuantity
		}
	})

	t.Run("orders events by date regardless of input order", func(t *testing.T) {
		events := []ItemLedgerEvent{
			{Type: LedgerEventIssue, Date: "2024-02-10", ReferenceNo: "ISS002", Quantity: 5},
			{Type: LedgerEventReceipt, Date: "2024-01-05", ReferenceNo: "CH009", Quantity: 30},
		}

		rows := BuildItemLedger(events)

		require.Len(t, rows, 2)
		assert.Equal(t, "CH009", rows[0].ChallanNo)
		assert.Equal(t, 30, rows[0].BalanceQuantity)
		assert.Equal(t, 25, rows[1].BalanceQuantity)
	})

	t.Run("preserves insertion order for same-date events", func(t *testing.T) {
		events := []ItemLedgerEvent{
			{Type: LedgerEventReceipt, Date: "2024-01-18", ReferenceNo: "CH001", Quantity: 40},
			{Type: LedgerEventIssue, Date: "2024-01-18", ReferenceNo: "ISS001", Quantity: 15},
		}

		rows := BuildItemLedger(events)

		require.Len(t, rows, 2)
		assert.Equal(t, 40, rows[0].BalanceQuantity)
		assert.Equal(t, 25, rows[1].BalanceQuantity)
	})

	t.Run("empty event sequence yields no rows", func(t *testing.T) {
		rows := BuildItemLedger(nil)
		assert.Empty(t, rows)
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		events := []ItemLedgerEvent{
			{Type: LedgerEventIssue, Date: "2024-02-10", Quantity: 5},
			{Type: LedgerEventReceipt, Date: "2024-01-05", Quantity: 30},
		}

		BuildItemLedger(events)

		assert.Equal(t, "2024-02-10", events[0].Date)
	})
}
