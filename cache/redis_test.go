package cache

import (
	"context"
	"testing"
	"time"

	"preorder/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, time.Hour), mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "s1")
	require.ErrorIs(t, err, ErrCacheMiss)

	cart := &entity.Cart{Lines: []entity.CartLine{
		{MealID: "m1", Name: "Nasi Lemak", UnitPrice: decimal.RequireFromString("12.50"), Quantity: 2},
	}}
	require.NoError(t, store.Set(ctx, "s1", cart))
	assert.Equal(t, time.Hour, mr.TTL("cart:s1"))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got.Lines, 1)
	assert.True(t, got.Total().Equal(decimal.NewFromInt(25)))

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	require.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisStore_Expires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", &entity.Cart{}))
	mr.FastForward(2 * time.Hour)

	_, err := store.Get(ctx, "s1")
	require.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisStore_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedisStore(client, time.Hour)
	mr.Close()

	_, err = store.Get(context.Background(), "s1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}
