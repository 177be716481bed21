package repositories

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/joinwork/joinwork/internal/store"
)

// Collection is the one repository shape every entity shares: allocate a
// fresh integer ID, write the document at key = decimal string of that ID,
// and re-stamp the ID from the key on every read. Per-entity repositories
// wrap a Collection with their codec and the query shapes their callers
// need.
//
// Lookups are fail-soft by contract: expected absence and unexpected store
// failures both come back as nil/empty/false, with failures logged once
// here. Create is the exception — its callers must distinguish "could not
// write" from "not found", so it returns the error.
type Collection[T any] struct {
	name   string
	store  store.Store
	alloc  *store.Allocator
	encode func(e *T) map[string]interface{}
	decode func(key string, data map[string]interface{}) *T
	logger zerolog.Logger
}

func newCollection[T any](
	name string,
	s store.Store,
	alloc *store.Allocator,
	encode func(e *T) map[string]interface{},
	decode func(key string, data map[string]interface{}) *T,
	logger zerolog.Logger,
) *Collection[T] {
	return &Collection[T]{
		name:   name,
		store:  s,
		alloc:  alloc,
		encode: encode,
		decode: decode,
		logger: logger.With().Str("collection", name).Logger(),
	}
}

func key(id int64) string {
	return strconv.FormatInt(id, 10)
}

// Create allocates a fresh ID and writes the entity's fields (the ID
// itself is never part of the document body). Returns the entity with the
// assigned ID stamped in.
func (c *Collection[T]) Create(ctx context.Context, e *T) (*T, error) {
	id, err := c.alloc.NextID(ctx, c.name)
	if err != nil {
		c.logger.Error().Err(err).Msg("id allocation failed")
		return nil, err
	}

	fields := c.encode(e)
	k := key(id)
	if err := c.store.Set(ctx, c.name, k, fields, false); err != nil {
		c.logger.Error().Err(err).Str("key", k).Msg("create failed")
		return nil, err
	}
	return c.decode(k, fields), nil
}

// GetByID performs a point read. Returns nil when the document is absent
// or the store is unavailable.
func (c *Collection[T]) GetByID(ctx context.Context, id int64) *T {
	doc, err := c.store.Get(ctx, c.name, key(id))
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			c.logger.Error().Err(err).Int64("id", id).Msg("get failed")
		}
		return nil
	}
	return c.decode(doc.Key, doc.Data)
}

// Update merges partial fields into an existing document. Fields not
// mentioned are left untouched. Returns false when the document is absent
// or the store is unavailable.
func (c *Collection[T]) Update(ctx context.Context, id int64, fields map[string]interface{}) bool {
	if err := c.store.Update(ctx, c.name, key(id), fields); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			c.logger.Error().Err(err).Int64("id", id).Msg("update failed")
		}
		return false
	}
	return true
}

// Delete removes the document. Dependent documents in other collections
// are not touched.
func (c *Collection[T]) Delete(ctx context.Context, id int64) bool {
	if err := c.store.Delete(ctx, c.name, key(id)); err != nil {
		c.logger.Error().Err(err).Int64("id", id).Msg("delete failed")
		return false
	}
	return true
}

// FindOne returns any one document matching all filters, or nil. No
// ordering is guaranteed; unique lookups rely on the uniqueness invariant,
// not on which match wins.
func (c *Collection[T]) FindOne(ctx context.Context, filters ...store.Filter) *T {
	docs, err := c.store.Query(ctx, c.name, filters, 1)
	if err != nil {
		c.logger.Error().Err(err).Msg("query failed")
		return nil
	}
	if len(docs) == 0 {
		return nil
	}
	return c.decode(docs[0].Key, docs[0].Data)
}

// Find returns every document matching all filters.
func (c *Collection[T]) Find(ctx context.Context, filters ...store.Filter) []*T {
	docs, err := c.store.Query(ctx, c.name, filters, 0)
	if err != nil {
		c.logger.Error().Err(err).Msg("query failed")
		return nil
	}
	out := make([]*T, 0, len(docs))
	for _, doc := range docs {
		out = append(out, c.decode(doc.Key, doc.Data))
	}
	return out
}

// All returns the whole collection.
func (c *Collection[T]) All(ctx context.Context) []*T {
	return c.Find(ctx)
}
