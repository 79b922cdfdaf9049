package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/andy/billfold/internal/store"
)

// loadCollection reads and decodes a whole stored collection. A key that
// was never written decodes to an empty slice.
func loadCollection[T any](ctx context.Context, kv store.KV, key string) ([]T, error) {
	data, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return make([]T, 0), nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}

// saveCollection encodes and replaces a whole stored collection.
func saveCollection[T any](ctx context.Context, kv store.KV, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return kv.Set(ctx, key, data)
}
