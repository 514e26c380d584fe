package catalog

import (
	"testing"

	"github.com/paperstock/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("creates item successfully", func(t *testing.T) {
		item, err := NewItem("001", "Standard Paper", "A4 size white paper", "A4", "White", 500)

		require.NoError(t, err)
		assert.Equal(t, "001", item.ItemNumber)
		assert.Equal(t, "Standard Paper", item.ItemName)
		assert.Equal(t, 500, item.CurrentStock)
	})

	t.Run("fails with empty item number", func(t *testing.T) {
		item, err := NewItem("", "Standard Paper", "", "", "", 0)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "Item number")
	})

	t.Run("fails with empty item name", func(t *testing.T) {
		item, err := NewItem("001", "", "", "", "", 0)

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("fails with negative stock", func(t *testing.T) {
		item, err := NewItem("001", "Standard Paper", "", "", "", -1)

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("allows zero stock", func(t *testing.T) {
		item, err := NewItem("001", "Standard Paper", "", "", "", 0)

		require.NoError(t, err)
		assert.Equal(t, 0, item.CurrentStock)
	})
}

func TestItem_Decrease(t *testing.T) {
	t.Run("decreases stock by exact quantity", func(t *testing.T) {
		item, _ := NewItem("001", "Standard Paper", "", "", "", 10)

		err := item.Decrease(4)

		require.NoError(t, err)
		assert.Equal(t, 6, item.CurrentStock)
	})

	t.Run("fails when stock is insufficient and leaves stock unchanged", func(t *testing.T) {
		item, _ := NewItem("001", "Standard Paper", "", "", "", 6)

		err := item.Decrease(10)

		require.Error(t, err)
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "INSUFFICIENT_STOCK", derr.Code)
		assert.Equal(t, 6, item.CurrentStock)
	})

	t.Run("allows issuing entire stock", func(t *testing.T) {
		item, _ := NewItem("001", "Standard Paper", "", "", "", 10)

		err := item.Decrease(10)

		require.NoError(t, err)
		assert.Equal(t, 0, item.CurrentStock)
	})

	t.Run("rejects zero quantity as input error", func(t *testing.T) {
		item, _ := NewItem("001", "Standard Paper", "", "", "", 10)

		err := item.Decrease(0)

		require.Error(t, err)
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "INVALID_INPUT", derr.Code)
		assert.Equal(t, 10, item.CurrentStock)
	})

	t.Run("rejects negative quantity as input error", func(t *testing.T) {
		item, _ := NewItem("001", "Standard Paper", "", "", "", 10)

		err := item.Decrease(-3)

		require.Error(t, err)
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "INVALID_INPUT", derr.Code)
	})
}
