package store

import (
	"context"
	"errors"
	"fmt"
)

// Counter document location. One document holds the last-issued integer
// for every collection, keyed by collection name.
const (
	counterCollection = "counters"
	counterKey        = "main"
)

// Allocator mints unique, strictly increasing integer IDs per collection
// name. The sequence lives entirely in the store (no in-memory cache), so
// multiple processes sharing the store never duplicate IDs.
type Allocator struct {
	store Store
}

// NewAllocator creates an Allocator backed by the given store.
func NewAllocator(s Store) *Allocator {
	return &Allocator{store: s}
}

// NextID returns the next integer ID for the named collection. The
// read-increment-write runs inside a store transaction, so concurrent
// callers targeting the same collection never observe the same value.
// A collection absent from the counter document starts at 0.
func (a *Allocator) NextID(ctx context.Context, collection string) (int64, error) {
	var next int64
	err := a.store.RunTransaction(ctx, func(tx Tx) error {
		data, err := tx.Get(counterCollection, counterKey)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		next = asInt64(data[collection]) + 1
		return tx.Set(counterCollection, counterKey, map[string]interface{}{collection: next}, true)
	})
	if err != nil {
		return 0, fmt.Errorf("allocating id for %q: %w", collection, err)
	}
	return next, nil
}

// asInt64 coerces a stored counter value to int64. Firestore hands back
// int64, the in-memory store whatever was written.
func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}
