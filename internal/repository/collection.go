package repository

import (
	"context"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/tuanvumaihuynh/pos/internal/storage/kv"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	keyProducts = "products"
	keySales    = "sales"
)

// collection reads and writes one named slice as a single JSON document.
type collection[T any] struct {
	store kv.Store
	key   string
}

// load returns an empty slice when the key was never written and an error
// when the stored bytes cannot be decoded.
func (c collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if errors.Is(err, kv.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", c.key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

func (c collection[T]) replace(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}

	if err := c.store.Put(ctx, c.key, raw); err != nil {
		return fmt.Errorf("put %s: %w", c.key, err)
	}

	return nil
}
