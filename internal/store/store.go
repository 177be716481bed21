package store

import (
	"context"
	"errors"
)

// Store errors
var (
	// ErrNotFound is returned for point reads and updates targeting a
	// nonexistent document key.
	ErrNotFound = errors.New("document not found")
	// ErrUnavailable is returned when the backing store cannot be reached
	// or its client failed to initialize.
	ErrUnavailable = errors.New("document store unavailable")
)

// Document is a single record in a collection. Key is the storage key and
// the single source of truth for the record's identity.
type Document struct {
	Key  string
	Data map[string]interface{}
}

// Filter is one equality condition of a collection query.
type Filter struct {
	Field string
	Value interface{}
}

// Eq builds an equality filter.
func Eq(field string, value interface{}) Filter {
	return Filter{Field: field, Value: value}
}

// Tx is the view of the store inside a transaction. Reads observe a
// snapshot; writes take effect exactly once at commit.
type Tx interface {
	// Get reads a document inside the transaction. Returns ErrNotFound
	// if the key has no document.
	Get(collection, key string) (map[string]interface{}, error)
	// Set writes a document inside the transaction. With merge, fields
	// not mentioned are left untouched.
	Set(collection, key string, fields map[string]interface{}, merge bool) error
}

// Store is the document database boundary: schemaless collections of
// records addressed by string keys, with equality-filtered scans and an
// atomic read-modify-write transaction primitive.
type Store interface {
	// Get performs a point read. Returns ErrNotFound if the key is absent.
	Get(ctx context.Context, collection, key string) (*Document, error)

	// Set writes a document at the given key, creating it if absent.
	// With merge, existing fields not mentioned are preserved.
	Set(ctx context.Context, collection, key string, fields map[string]interface{}, merge bool) error

	// Update merges partial fields into an existing document. Returns
	// ErrNotFound if the key has no document.
	Update(ctx context.Context, collection, key string, fields map[string]interface{}) error

	// Delete removes a document. Deleting an absent key is not an error.
	Delete(ctx context.Context, collection, key string) error

	// Query scans a collection for documents matching all equality
	// filters. limit <= 0 means no limit. No ordering is guaranteed.
	Query(ctx context.Context, collection string, filters []Filter, limit int) ([]*Document, error)

	// RunTransaction executes fn against a snapshot with exactly-once
	// effects, retrying internally on conflict.
	RunTransaction(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying client.
	Close() error
}
