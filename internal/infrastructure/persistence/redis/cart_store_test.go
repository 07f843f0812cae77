package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/cart"
	apperrors "github.com/AhmadAyoub1/bookstore-backend-render/pkg/errors"
)

func TestCartStore(t *testing.T) {
	client, mr := newTestClient(t)
	store := NewCartStore(client, 24*time.Hour)
	ctx := context.Background()

	t.Run("不存在的购物车为空", func(t *testing.T) {
		lines, err := store.Lines(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("累加并按bookId排序", func(t *testing.T) {
		require.NoError(t, store.Add(ctx, "c1", 10, 2))
		require.NoError(t, store.Add(ctx, "c1", 3, 1))
		require.NoError(t, store.Add(ctx, "c1", 10, 5))

		lines, err := store.Lines(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, []cart.Line{{BookID: 3, Quantity: 1}, {BookID: 10, Quantity: 7}}, lines)
		assert.Equal(t, 24*time.Hour, mr.TTL("cart:c1"))
	})

	t.Run("累加超过上限不修改", func(t *testing.T) {
		err := store.Add(ctx, "c1", 10, cart.MaxQuantity)
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)

		lines, err := store.Lines(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, 7, lines[1].Quantity)
	})

	t.Run("数量非法", func(t *testing.T) {
		assert.ErrorIs(t, store.Add(ctx, "c1", 3, 0), cart.ErrInvalidQuantity)
		assert.ErrorIs(t, store.Set(ctx, "c1", 3, 1000), cart.ErrInvalidQuantity)
	})

	t.Run("覆盖数量", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "c1", 3, 4))
		lines, err := store.Lines(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, cart.Line{BookID: 3, Quantity: 4}, lines[0])
	})

	t.Run("写操作刷新TTL", func(t *testing.T) {
		mr.FastForward(20 * time.Hour)
		require.NoError(t, store.Set(ctx, "c1", 3, 2))
		assert.Equal(t, 24*time.Hour, mr.TTL("cart:c1"))
	})

	t.Run("移除一行", func(t *testing.T) {
		require.NoError(t, store.Remove(ctx, "c1", 3))
		require.NoError(t, store.Remove(ctx, "c1", 999), "不存在的行不报错")
		lines, err := store.Lines(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, []cart.Line{{BookID: 10, Quantity: 7}}, lines)
	})

	t.Run("清空", func(t *testing.T) {
		require.NoError(t, store.Clear(ctx, "c1"))
		assert.False(t, mr.Exists("cart:c1"))
	})

	t.Run("过期", func(t *testing.T) {
		require.NoError(t, store.Add(ctx, "c2", 1, 1))
		mr.FastForward(25 * time.Hour)
		lines, err := store.Lines(ctx, "c2")
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("Redis不可用", func(t *testing.T) {
		mr.SetError("LOADING")
		defer mr.SetError("")
		_, err := store.Lines(ctx, "c1")
		assert.ErrorIs(t, err, apperrors.ErrRedisError)
	})
}
