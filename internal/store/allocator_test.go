package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextIDStartsAtOne(t *testing.T) {
	alloc := NewAllocator(NewMemoryStore())

	id, err := alloc.NextID(context.Background(), "jobs")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	id, err = alloc.NextID(context.Background(), "jobs")
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
}

func TestNextIDSequentialMonotonic(t *testing.T) {
	alloc := NewAllocator(NewMemoryStore())

	var prev int64
	for i := 0; i < 50; i++ {
		id, err := alloc.NextID(context.Background(), "users")
		require.NoError(t, err)
		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestNextIDIndependentSequences(t *testing.T) {
	alloc := NewAllocator(NewMemoryStore())
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		id, err := alloc.NextID(ctx, "jobs")
		require.NoError(t, err)
		assert.Equal(t, i, id)
	}

	id, err := alloc.NextID(ctx, "applications")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id, "a new collection starts its own sequence")
}

func TestNextIDConcurrentUnique(t *testing.T) {
	alloc := NewAllocator(NewMemoryStore())

	const n = 100
	ids := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := alloc.NextID(context.Background(), "applications")
			assert.NoError(t, err)
			ids[i] = id
		}(i)
	}
	wg.Wait()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i := 0; i < n; i++ {
		assert.Equal(t, int64(i+1), ids[i], "ids must be distinct with no duplicates")
	}
}

func TestNextIDStoreFailure(t *testing.T) {
	alloc := NewAllocator(&failingStore{})

	_, err := alloc.NextID(context.Background(), "jobs")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

// failingStore refuses every operation.
type failingStore struct{}

func (f *failingStore) Get(ctx context.Context, collection, key string) (*Document, error) {
	return nil, ErrUnavailable
}

func (f *failingStore) Set(ctx context.Context, collection, key string, fields map[string]interface{}, merge bool) error {
	return ErrUnavailable
}

func (f *failingStore) Update(ctx context.Context, collection, key string, fields map[string]interface{}) error {
	return ErrUnavailable
}

func (f *failingStore) Delete(ctx context.Context, collection, key string) error {
	return ErrUnavailable
}

func (f *failingStore) Query(ctx context.Context, collection string, filters []Filter, limit int) ([]*Document, error) {
	return nil, ErrUnavailable
}

func (f *failingStore) RunTransaction(ctx context.Context, fn func(tx Tx) error) error {
	return ErrUnavailable
}

func (f *failingStore) Close() error { return nil }
