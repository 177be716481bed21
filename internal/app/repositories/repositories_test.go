package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joinwork/joinwork/internal/app/models"
	"github.com/joinwork/joinwork/internal/store"
)

func newTestRepos() (*Repositories, *store.MemoryStore) {
	s := store.NewMemoryStore()
	return NewRepositories(s, zerolog.Nop()), s
}

func TestUserCreateGetRoundTrip(t *testing.T) {
	repos, _ := newTestRepos()
	ctx := context.Background()

	created, err := repos.UserRepository.Create(ctx, &models.User{
		FullName:     "Sara Ahmed",
		Email:        "Sara@Example.COM",
		PasswordHash: "hash",
		Role:         models.RoleGraduate,
		CreatedAt:    time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "sara@example.com", created.Email, "email is stored lower-cased")

	got := repos.UserRepository.GetByID(ctx, created.ID)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Sara Ahmed", got.FullName)
	assert.Equal(t, models.RoleGraduate, got.Role)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)
}

func TestUserGetByEmailNormalizes(t *testing.T) {
	repos, _ := newTestRepos()
	ctx := context.Background()

	_, err := repos.UserRepository.Create(ctx, &models.User{Email: "grad@example.com", Role: models.RoleGraduate})
	require.NoError(t, err)

	got := repos.UserRepository.GetByEmail(ctx, "  GRAD@example.com ")
	require.NotNil(t, got)
	assert.Equal(t, "grad@example.com", got.Email)

	assert.Nil(t, repos.UserRepository.GetByEmail(ctx, "other@example.com"))
}

func TestJobCreateAllocatesSequentialIDs(t *testing.T) {
	repos, _ := newTestRepos()
	ctx := context.Background()

	first, err := repos.JobRepository.Create(ctx, &models.Job{CompanyID: 1, Title: "X", Status: models.JobActive})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	second, err := repos.JobRepository.Create(ctx, &models.Job{CompanyID: 1, Title: "Y", Status: models.JobActive})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	got := repos.JobRepository.GetByID(ctx, 1)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, int64(1), got.CompanyID)
	assert.Equal(t, "X", got.Title)
}

func TestIDComesFromDocumentKey(t *testing.T) {
	repos, s := newTestRepos()
	ctx := context.Background()

	// A document whose body claims a different identity: the key wins.
	require.NoError(t, s.Set(ctx, "jobs", "42", map[string]interface{}{
		"job_id":     int64(7),
		"company_id": int64(1),
		"title":      "Mislabeled",
	}, false))

	got := repos.JobRepository.GetByID(ctx, 42)
	require.NotNil(t, got)
	assert.Equal(t, int64(42), got.ID)
}

func TestGraduatePartialUpdatePreservesFields(t *testing.T) {
	repos, _ := newTestRepos()
	ctx := context.Background()

	age := 24
	created, err := repos.GraduateRepository.Create(ctx, &models.Graduate{
		UserID:     1,
		University: "University of Baghdad",
		Major:      "CS",
		Skills:     "Go",
		Age:        &age,
	})
	require.NoError(t, err)

	ok := repos.GraduateRepository.Update(ctx, created.ID, map[string]interface{}{"major": "SE"})
	require.True(t, ok)

	got := repos.GraduateRepository.GetByID(ctx, created.ID)
	require.NotNil(t, got)
	assert.Equal(t, "SE", got.Major)
	assert.Equal(t, "University of Baghdad", got.University, "untouched fields survive a partial update")
	assert.Equal(t, "Go", got.Skills)
	require.NotNil(t, got.Age)
	assert.Equal(t, 24, *got.Age)
}

func TestGraduateUpdateMissing(t *testing.T) {
	repos, _ := newTestRepos()

	ok := repos.GraduateRepository.Update(context.Background(), 99, map[string]interface{}{"major": "SE"})
	assert.False(t, ok)
}

func TestApplicationByJobAndGraduate(t *testing.T) {
	repos, _ := newTestRepos()
	ctx := context.Background()

	// No matching document: absent, not an error.
	assert.Nil(t, repos.ApplicationRepository.GetByJobAndGraduate(ctx, 5, 9))

	created, err := repos.ApplicationRepository.Create(ctx, &models.Application{
		JobID:      5,
		GraduateID: 9,
		Status:     models.ApplicationPending,
	})
	require.NoError(t, err)

	got := repos.ApplicationRepository.GetByJobAndGraduate(ctx, 5, 9)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	assert.Nil(t, repos.ApplicationRepository.GetByJobAndGraduate(ctx, 5, 10))
	assert.Nil(t, repos.ApplicationRepository.GetByJobAndGraduate(ctx, 6, 9))
}

func TestJobGetFiltered(t *testing.T) {
	repos, _ := newTestRepos()
	ctx := context.Background()

	mk := func(companyID int64, status string) {
		_, err := repos.JobRepository.Create(ctx, &models.Job{CompanyID: companyID, Title: "t", Status: status})
		require.NoError(t, err)
	}
	mk(1, models.JobActive)
	mk(1, models.JobClosed)
	mk(2, models.JobActive)

	assert.Len(t, repos.JobRepository.GetFiltered(ctx, nil, nil), 3)

	companyID := int64(1)
	assert.Len(t, repos.JobRepository.GetFiltered(ctx, &companyID, nil), 2)

	active := models.JobActive
	assert.Len(t, repos.JobRepository.GetFiltered(ctx, nil, &active), 2)
	assert.Len(t, repos.JobRepository.GetFiltered(ctx, &companyID, &active), 1)
}

func TestJobDeleteDoesNotCascade(t *testing.T) {
	repos, _ := newTestRepos()
	ctx := context.Background()

	job, err := repos.JobRepository.Create(ctx, &models.Job{CompanyID: 1, Title: "X", Status: models.JobActive})
	require.NoError(t, err)
	_, err = repos.ApplicationRepository.Create(ctx, &models.Application{JobID: job.ID, GraduateID: 1, Status: models.ApplicationPending})
	require.NoError(t, err)

	require.True(t, repos.JobRepository.Delete(ctx, job.ID))
	assert.Nil(t, repos.JobRepository.GetByID(ctx, job.ID))

	// Applications for the deleted job are orphaned, not removed.
	assert.Len(t, repos.ApplicationRepository.GetByJobID(ctx, job.ID), 1)
}

func TestLookupsFailSoftWhenStoreDown(t *testing.T) {
	repos := NewRepositories(&downStore{}, zerolog.Nop())
	ctx := context.Background()

	assert.Nil(t, repos.UserRepository.GetByID(ctx, 1))
	assert.Nil(t, repos.UserRepository.GetByEmail(ctx, "x@example.com"))
	assert.Empty(t, repos.JobRepository.GetFiltered(ctx, nil, nil))
	assert.False(t, repos.GraduateRepository.Update(ctx, 1, map[string]interface{}{"major": "SE"}))

	// Create must surface the failure instead of swallowing it.
	_, err := repos.UserRepository.Create(ctx, &models.User{Email: "x@example.com"})
	assert.ErrorIs(t, err, store.ErrUnavailable)
}

// downStore simulates an unreachable backing store.
type downStore struct{}

func (d *downStore) Get(ctx context.Context, collection, key string) (*store.Document, error) {
	return nil, store.ErrUnavailable
}

func (d *downStore) Set(ctx context.Context, collection, key string, fields map[string]interface{}, merge bool) error {
	return store.ErrUnavailable
}

func (d *downStore) Update(ctx context.Context, collection, key string, fields map[string]interface{}) error {
	return store.ErrUnavailable
}

func (d *downStore) Delete(ctx context.Context, collection, key string) error {
	return store.ErrUnavailable
}

func (d *downStore) Query(ctx context.Context, collection string, filters []store.Filter, limit int) ([]*store.Document, error) {
	return nil, store.ErrUnavailable
}

func (d *downStore) RunTransaction(ctx context.Context, fn func(tx store.Tx) error) error {
	return store.ErrUnavailable
}

func (d *downStore) Close() error { return nil }
