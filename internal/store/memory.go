package store

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used by tests and local development.
// Transactions are serialized under a single mutex, which trivially gives
// the atomicity the Store contract requires.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]map[string]map[string]interface{}
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[string]map[string]interface{}),
	}
}

func (s *MemoryStore) coll(name string) map[string]map[string]interface{} {
	c, ok := s.collections[name]
	if !ok {
		c = make(map[string]map[string]interface{})
		s.collections[name] = c
	}
	return c
}

func cloneFields(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

// Get performs a point read.
func (s *MemoryStore) Get(ctx context.Context, collection, key string) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.coll(collection)[key]
	if !ok {
		return nil, ErrNotFound
	}
	return &Document{Key: key, Data: cloneFields(data)}, nil
}

// Set writes a document, optionally merging into existing fields.
func (s *MemoryStore) Set(ctx context.Context, collection, key string, fields map[string]interface{}, merge bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setLocked(collection, key, fields, merge)
	return nil
}

func (s *MemoryStore) setLocked(collection, key string, fields map[string]interface{}, merge bool) {
	c := s.coll(collection)
	if merge {
		if existing, ok := c[key]; ok {
			for k, v := range fields {
				existing[k] = v
			}
			return
		}
	}
	c[key] = cloneFields(fields)
}

// Update merges partial fields into an existing document.
func (s *MemoryStore) Update(ctx context.Context, collection, key string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.coll(collection)[key]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		existing[k] = v
	}
	return nil
}

// Delete removes a document.
func (s *MemoryStore) Delete(ctx context.Context, collection, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.coll(collection), key)
	return nil
}

// Query scans a collection for documents matching all equality filters.
func (s *MemoryStore) Query(ctx context.Context, collection string, filters []Filter, limit int) ([]*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var docs []*Document
	for key, data := range s.coll(collection) {
		if !matches(data, filters) {
			continue
		}
		docs = append(docs, &Document{Key: key, Data: cloneFields(data)})
		if limit > 0 && len(docs) == limit {
			break
		}
	}
	return docs, nil
}

func matches(data map[string]interface{}, filters []Filter) bool {
	for _, f := range filters {
		if data[f.Field] != f.Value {
			return false
		}
	}
	return true
}

// RunTransaction executes fn while holding the store mutex, so the
// read-modify-write is atomic with respect to every other operation.
func (s *MemoryStore) RunTransaction(ctx context.Context, fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(&memoryTx{store: s})
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }

type memoryTx struct {
	store *MemoryStore
}

func (t *memoryTx) Get(collection, key string) (map[string]interface{}, error) {
	data, ok := t.store.coll(collection)[key]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneFields(data), nil
}

func (t *memoryTx) Set(collection, key string, fields map[string]interface{}, merge bool) error {
	t.store.setLocked(collection, key, fields, merge)
	return nil
}
