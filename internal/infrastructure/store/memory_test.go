package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("get on absent key reports not found", func(t *testing.T) {
		s := NewMemoryStore()

		var out []string
		found, err := s.Get(ctx, "missing", &out)

		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, out)
	})

	t.Run("set then get round-trips JSON values", func(t *testing.T) {
		s := NewMemoryStore()
		type record struct {
			Code  string `json:"code"`
			Count int    `json:"count"`
		}

		require.NoError(t, s.Set(ctx, "records", []record{{Code: "A", Count: 1}, {Code: "B", Count: 2}}))

		var out []record
		found, err := s.Get(ctx, "records", &out)

		require.NoError(t, err)
		assert.True(t, found)
		require.Len(t, out, 2)
		assert.Equal(t, "A", out[0].Code)
		assert.Equal(t, 2, out[1].Count)
	})

	t.Run("set replaces the whole value", func(t *testing.T) {
		s := NewMemoryStore()

		require.NoError(t, s.Set(ctx, "k", []int{1, 2, 3}))
		require.NoError(t, s.Set(ctx, "k", []int{9}))

		var out []int
		found, err := s.Get(ctx, "k", &out)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []int{9}, out)
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := NewMemoryStore()

		require.NoError(t, s.Set(ctx, "a", 1))
		require.NoError(t, s.Set(ctx, "b", 2))

		var a, b int
		_, err := s.Get(ctx, "a", &a)
		require.NoError(t, err)
		_, err = s.Get(ctx, "b", &b)
		require.NoError(t, err)
		assert.Equal(t, 1, a)
		assert.Equal(t, 2, b)
	})
}
