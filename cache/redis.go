package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"preorder/entity"

	"github.com/redis/go-redis/v9"
)

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*entity.Cart, error) {
	data, err := r.client.Get(ctx, cacheKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var cart entity.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	return &cart, nil
}

// Set refreshes the TTL on every write so an active session never expires.
func (r *RedisStore) Set(ctx context.Context, sessionID string, cart *entity.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	if err := r.client.Set(ctx, cacheKey(sessionID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, cacheKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cacheKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}
