package repositories

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/joinwork/joinwork/internal/app/models"
	"github.com/joinwork/joinwork/internal/store"
)

// JobRepository provides access to the 'jobs' collection
type JobRepository struct {
	coll *Collection[models.Job]
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(s store.Store, alloc *store.Allocator, logger zerolog.Logger) *JobRepository {
	return &JobRepository{
		coll: newCollection("jobs", s, alloc, encodeJob, decodeJob, logger),
	}
}

func encodeJob(j *models.Job) map[string]interface{} {
	fields := map[string]interface{}{
		"company_id":      j.CompanyID,
		"title":           j.Title,
		"description":     j.Description,
		"location":        j.Location,
		"skills_required": j.SkillsRequired,
		"employment_type": j.EmploymentType,
		"status":          j.Status,
		"created_at":      timeField(j.CreatedAt),
	}
	if j.Salary != nil {
		fields["salary"] = *j.Salary
	} else {
		fields["salary"] = nil
	}
	return fields
}

func decodeJob(key string, data map[string]interface{}) *models.Job {
	return &models.Job{
		ID:             keyID(key, data, "job_id"),
		CompanyID:      asInt64(data["company_id"]),
		Title:          asString(data["title"]),
		Description:    asString(data["description"]),
		Location:       asString(data["location"]),
		Salary:         asFloatPtr(data["salary"]),
		SkillsRequired: asString(data["skills_required"]),
		EmploymentType: asString(data["employment_type"]),
		Status:         asString(data["status"]),
		CreatedAt:      asTime(data["created_at"]),
	}
}

// Create writes a new job with a freshly allocated ID
func (r *JobRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	return r.coll.Create(ctx, job)
}

// GetByID retrieves a job by ID, nil if absent
func (r *JobRepository) GetByID(ctx context.Context, id int64) *models.Job {
	return r.coll.GetByID(ctx, id)
}

// GetFiltered returns jobs matching the optional company and status
// filters. Nil filters match everything.
func (r *JobRepository) GetFiltered(ctx context.Context, companyID *int64, status *string) []*models.Job {
	var filters []store.Filter
	if companyID != nil {
		filters = append(filters, store.Eq("company_id", *companyID))
	}
	if status != nil {
		filters = append(filters, store.Eq("status", *status))
	}
	return r.coll.Find(ctx, filters...)
}

// Update merges partial fields into a job document
func (r *JobRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) bool {
	return r.coll.Update(ctx, id, fields)
}

// Delete removes a job. Applications referencing it are left in place.
func (r *JobRepository) Delete(ctx context.Context, id int64) bool {
	return r.coll.Delete(ctx, id)
}

// All returns every job
func (r *JobRepository) All(ctx context.Context) []*models.Job {
	return r.coll.All(ctx)
}
