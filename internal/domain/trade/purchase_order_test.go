package trade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		received int
		ordered  int
		want     OrderStatus
	}{
		{"nothing received", 0, 100, OrderStatusPending},
		{"partially received", 60, 100, OrderStatusPartial},
		{"one short", 99, 100, OrderStatusPartial},
		{"exactly received", 100, 100, OrderStatusCompleted},
		{"over-received", 120, 100, OrderStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.received, tt.ordered))
		})
	}
}

func TestNewPurchaseOrder(t *testing.T) {
	t.Run("creates order in pending status with zero received", func(t *testing.T) {
		order, err := NewPurchaseOrder("PO001", "2024-01-15", "V001", "001", 100, "Ream")

		require.NoError(t, err)
		assert.Equal(t, OrderStatusPending, order.Status)
		assert.Equal(t, 0, order.ReceivedQuantity)
		assert.Equal(t, 100, order.OrderedQuantity)
	})

	t.Run("fails with non-positive ordered quantity", func(t *testing.T) {
		order, err := NewPurchaseOrder("PO001", "2024-01-15", "V001", "001", 0, "Ream")

		require.Error(t, err)
		assert.Nil(t, order)
	})

	t.Run("fails with missing references", func(t *testing.T) {
		_, err := NewPurchaseOrder("PO001", "2024-01-15", "", "001", 100, "Ream")
		require.Error(t, err)

		_, err = NewPurchaseOrder("PO001", "2024-01-15", "V001", "", 100, "Ream")
		require.Error(t, err)
	})
}

func TestPurchaseOrder_AddReceipt(t *testing.T) {
	t.Run("accumulates receipts and transitions partial then completed", func(t *testing.T) {
		order, _ := NewPurchaseOrder("PO001", "2024-01-15", "V001", "001", 100, "Ream")

		require.NoError(t, order.AddReceipt(60))
		assert.Equal(t, 60, order.ReceivedQuantity)
		assert.Equal(t, OrderStatusPartial, order.Status)

		require.NoError(t, order.AddReceipt(40))
		assert.Equal(t, 100, order.ReceivedQuantity)
		assert.Equal(t, OrderStatusCompleted, order.Status)
	})

	t.Run("preserves literal over-receipt and clamps status to completed", func(t *testing.T) {
		order, _ := NewPurchaseOrder("PO001", "2024-01-15", "V001", "001", 100, "Ream")

		require.NoError(t, order.AddReceipt(130))

		assert.Equal(t, 130, order.ReceivedQuantity)
		assert.Equal(t, OrderStatusCompleted, order.Status)
		assert.Equal(t, 0, order.RemainingQuantity())
	})

	t.Run("rejects non-positive receipt quantity", func(t *testing.T) {
		order, _ := NewPurchaseOrder("PO001", "2024-01-15", "V001", "001", 100, "Ream")

		require.Error(t, order.AddReceipt(0))
		require.Error(t, order.AddReceipt(-5))
		assert.Equal(t, 0, order.ReceivedQuantity)
		assert.Equal(t, OrderStatusPending, order.Status)
	})

	t.Run("received quantity equals sum of all receipts", func(t *testing.T) {
		order, _ := NewPurchaseOrder("PO001", "2024-01-15", "V001", "001", 500, "Ream")

		receipts := []int{40, 20, 200, 15}
		sum := 0
		for _, r := range receipts {
			require.NoError(t, order.AddReceipt(r))
			sum += r
		}

		assert.Equal(t, sum, order.ReceivedQuantity)
		assert.Equal(t, OrderStatusPartial, order.Status)
	})
}

func TestNewChallan(t *testing.T) {
	t.Run("creates challan against an order", func(t *testing.T) {
		challan, err := NewChallan("CH001", "2024-01-18", "PO001", "V001", "001", 40, "Ream")

		require.NoError(t, err)
		assert.True(t, challan.HasOrder())
		assert.Equal(t, 40, challan.ReceivedQuantity)
	})

	t.Run("creates standalone challan without an order", func(t *testing.T) {
		challan, err := NewChallan("CH001", "2024-01-18", "", "V001", "001", 40, "Ream")

		require.NoError(t, err)
		assert.False(t, challan.HasOrder())
	})

	t.Run("rejects non-positive received quantity", func(t *testing.T) {
		_, err := NewChallan("CH001", "2024-01-18", "PO001", "V001", "001", 0, "Ream")
		require.Error(t, err)
	})
}

func TestNewItemIssue(t *testing.T) {
	t.Run("creates issue record", func(t *testing.T) {
		issue, err := NewItemIssue("ISS001", "2024-01-28", "001", "DEPT001", 10, "Ream", "Admin User", "John Smith")

		require.NoError(t, err)
		assert.Equal(t, 10, issue.IssuedQuantity)
	})

	t.Run("rejects non-positive issued quantity", func(t *testing.T) {
		_, err := NewItemIssue("ISS001", "2024-01-28", "001", "DEPT001", 0, "Ream", "", "")
		require.Error(t, err)

		_, err = NewItemIssue("ISS001", "2024-01-28", "001", "DEPT001", -4, "Ream", "", "")
		require.Error(t, err)
	})
}
