package cache

import (
	"context"
	"time"
)

// Store is a string key-value store with per-key expiration.
// Get reports a missing or expired key as ok == false.
type Store interface {
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
	Close() error
}
