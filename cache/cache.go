package cache

import (
	"context"
	"errors"

	"preorder/entity"
)

// CartStore keeps a session's cart across navigation.
// It is a convenience copy: callers treat every error as non-fatal.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (*entity.Cart, error)
	Set(ctx context.Context, sessionID string, cart *entity.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

var ErrCacheMiss = errors.New("cache miss")

// NopStore is used when no Redis is configured.
type NopStore struct{}

func (NopStore) Get(context.Context, string) (*entity.Cart, error) { return nil, ErrCacheMiss }
func (NopStore) Set(context.Context, string, *entity.Cart) error   { return nil }
func (NopStore) Delete(context.Context, string) error              { return nil }
