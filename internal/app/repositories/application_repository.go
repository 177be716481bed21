package repositories

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/joinwork/joinwork/internal/app/models"
	"github.com/joinwork/joinwork/internal/store"
)

// ApplicationRepository provides access to the 'applications' collection
type ApplicationRepository struct {
	coll *Collection[models.Application]
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(s store.Store, alloc *store.Allocator, logger zerolog.Logger) *ApplicationRepository {
	return &ApplicationRepository{
		coll: newCollection("applications", s, alloc, encodeApplication, decodeApplication, logger),
	}
}

func encodeApplication(a *models.Application) map[string]interface{} {
	return map[string]interface{}{
		"job_id":       a.JobID,
		"graduate_id":  a.GraduateID,
		"status":       string(a.Status),
		"cover_letter": a.CoverLetter,
		"applied_date": timeField(a.AppliedDate),
	}
}

func decodeApplication(key string, data map[string]interface{}) *models.Application {
	return &models.Application{
		ID:          keyID(key, data, "application_id"),
		JobID:       asInt64(data["job_id"]),
		GraduateID:  asInt64(data["graduate_id"]),
		Status:      models.ApplicationStatus(asString(data["status"])),
		CoverLetter: asString(data["cover_letter"]),
		AppliedDate: asTime(data["applied_date"]),
	}
}

// Create writes a new application with a freshly allocated ID
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) (*models.Application, error) {
	return r.coll.Create(ctx, application)
}

// GetByID retrieves an application by ID, nil if absent
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) *models.Application {
	return r.coll.GetByID(ctx, id)
}

// GetByJobID returns every application for a job
func (r *ApplicationRepository) GetByJobID(ctx context.Context, jobID int64) []*models.Application {
	return r.coll.Find(ctx, store.Eq("job_id", jobID))
}

// GetByJobAndGraduate returns the application a graduate filed for a job,
// nil if absent
func (r *ApplicationRepository) GetByJobAndGraduate(ctx context.Context, jobID, graduateID int64) *models.Application {
	return r.coll.FindOne(ctx, store.Eq("job_id", jobID), store.Eq("graduate_id", graduateID))
}

// Update merges partial fields into an application document
func (r *ApplicationRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) bool {
	return r.coll.Update(ctx, id, fields)
}

// All returns every application
func (r *ApplicationRepository) All(ctx context.Context) []*models.Application {
	return r.coll.All(ctx)
}
