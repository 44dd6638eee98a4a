package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key has no value (or its TTL
// expired).
var ErrNotFound = errors.New("storage: key not found")

// KV is the durable key-value store behind all persisted state: the
// AppState snapshot, the todo and notes records, and the quote/wallpaper
// caches. A ttl of zero means the value never expires.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
