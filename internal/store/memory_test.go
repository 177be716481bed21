package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Get(ctx, "jobs", "1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "jobs", "1", map[string]interface{}{"title": "Backend Engineer"}, false))

	doc, err := s.Get(ctx, "jobs", "1")
	require.NoError(t, err)
	assert.Equal(t, "1", doc.Key)
	assert.Equal(t, "Backend Engineer", doc.Data["title"])
}

func TestMemoryStoreSetMerge(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "jobs", "1", map[string]interface{}{"title": "A", "status": "active"}, false))
	require.NoError(t, s.Set(ctx, "jobs", "1", map[string]interface{}{"status": "closed"}, true))

	doc, err := s.Get(ctx, "jobs", "1")
	require.NoError(t, err)
	assert.Equal(t, "A", doc.Data["title"], "merge must preserve untouched fields")
	assert.Equal(t, "closed", doc.Data["status"])

	// Without merge the document is replaced wholesale.
	require.NoError(t, s.Set(ctx, "jobs", "1", map[string]interface{}{"title": "B"}, false))
	doc, err = s.Get(ctx, "jobs", "1")
	require.NoError(t, err)
	assert.Nil(t, doc.Data["status"])
}

func TestMemoryStoreUpdate(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	err := s.Update(ctx, "graduates", "9", map[string]interface{}{"major": "CS"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "graduates", "9", map[string]interface{}{"major": "EE", "university": "Basra"}, false))
	require.NoError(t, s.Update(ctx, "graduates", "9", map[string]interface{}{"major": "CS"}))

	doc, err := s.Get(ctx, "graduates", "9")
	require.NoError(t, err)
	assert.Equal(t, "CS", doc.Data["major"])
	assert.Equal(t, "Basra", doc.Data["university"])
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "jobs", "1", map[string]interface{}{"title": "A"}, false))
	require.NoError(t, s.Delete(ctx, "jobs", "1"))
	require.NoError(t, s.Delete(ctx, "jobs", "1"), "deleting an absent key is not an error")

	_, err := s.Get(ctx, "jobs", "1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreQuery(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "applications", "1", map[string]interface{}{"job_id": int64(5), "graduate_id": int64(9)}, false))
	require.NoError(t, s.Set(ctx, "applications", "2", map[string]interface{}{"job_id": int64(5), "graduate_id": int64(10)}, false))
	require.NoError(t, s.Set(ctx, "applications", "3", map[string]interface{}{"job_id": int64(6), "graduate_id": int64(9)}, false))

	docs, err := s.Query(ctx, "applications", []Filter{Eq("job_id", int64(5))}, 0)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	docs, err = s.Query(ctx, "applications", []Filter{Eq("job_id", int64(5)), Eq("graduate_id", int64(9))}, 1)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "1", docs[0].Key)

	docs, err = s.Query(ctx, "applications", []Filter{Eq("job_id", int64(99))}, 0)
	require.NoError(t, err)
	assert.Empty(t, docs)

	// Empty filter set matches everything.
	docs, err = s.Query(ctx, "applications", nil, 0)
	require.NoError(t, err)
	assert.Len(t, docs, 3)
}

func TestMemoryStoreTransactionReadYourWrites(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	err := s.RunTransaction(ctx, func(tx Tx) error {
		_, err := tx.Get("counters", "main")
		assert.ErrorIs(t, err, ErrNotFound)
		return tx.Set("counters", "main", map[string]interface{}{"jobs": int64(1)}, true)
	})
	require.NoError(t, err)

	doc, err := s.Get(ctx, "counters", "main")
	require.NoError(t, err)
	assert.Equal(t, int64(1), doc.Data["jobs"])
}
