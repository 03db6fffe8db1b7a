package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when nothing was ever stored under the key.
var ErrNotFound = errors.New("key not found")

// Store is durable key/value storage. Every Put replaces the whole value;
// there are no partial updates and no transactions spanning keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
