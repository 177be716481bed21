package repositories

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/joinwork/joinwork/internal/app/models"
	"github.com/joinwork/joinwork/internal/store"
)

// GraduateRepository provides access to the 'graduates' collection
type GraduateRepository struct {
	coll *Collection[models.Graduate]
}

// NewGraduateRepository creates a new GraduateRepository
func NewGraduateRepository(s store.Store, alloc *store.Allocator, logger zerolog.Logger) *GraduateRepository {
	return &GraduateRepository{
		coll: newCollection("graduates", s, alloc, encodeGraduate, decodeGraduate, logger),
	}
}

func encodeGraduate(g *models.Graduate) map[string]interface{} {
	fields := map[string]interface{}{
		"user_id":             g.UserID,
		"university":          g.University,
		"major":               g.Major,
		"unified_card_number": g.UnifiedCardNumber,
		"skills":              g.Skills,
		"date_of_birth":       g.DateOfBirth,
		"gender":              g.Gender,
		"profile_picture":     g.ProfilePicture,
		"projects":            g.Projects,
		"experience":          g.Experience,
	}
	if g.Age != nil {
		fields["age"] = int64(*g.Age)
	} else {
		fields["age"] = nil
	}
	return fields
}

func decodeGraduate(key string, data map[string]interface{}) *models.Graduate {
	return &models.Graduate{
		ID:                keyID(key, data, "graduate_id"),
		UserID:            asInt64(data["user_id"]),
		University:        asString(data["university"]),
		Major:             asString(data["major"]),
		UnifiedCardNumber: asString(data["unified_card_number"]),
		Skills:            asString(data["skills"]),
		Age:               asIntPtr(data["age"]),
		DateOfBirth:       asString(data["date_of_birth"]),
		Gender:            asString(data["gender"]),
		ProfilePicture:    asString(data["profile_picture"]),
		Projects:          asString(data["projects"]),
		Experience:        asString(data["experience"]),
	}
}

// Create writes a new graduate profile with a freshly allocated ID
func (r *GraduateRepository) Create(ctx context.Context, graduate *models.Graduate) (*models.Graduate, error) {
	return r.coll.Create(ctx, graduate)
}

// GetByID retrieves a graduate by ID, nil if absent
func (r *GraduateRepository) GetByID(ctx context.Context, id int64) *models.Graduate {
	return r.coll.GetByID(ctx, id)
}

// GetByUserID retrieves the graduate profile owned by a user, nil if absent
func (r *GraduateRepository) GetByUserID(ctx context.Context, userID int64) *models.Graduate {
	return r.coll.FindOne(ctx, store.Eq("user_id", userID))
}

// Update merges partial fields into a graduate document
func (r *GraduateRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) bool {
	return r.coll.Update(ctx, id, fields)
}

// All returns every graduate
func (r *GraduateRepository) All(ctx context.Context) []*models.Graduate {
	return r.coll.All(ctx)
}
