package repositories

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/joinwork/joinwork/internal/app/models"
	"github.com/joinwork/joinwork/internal/store"
)

// WorkshopRepository provides access to the 'workshops' collection.
// Read-only through the API; Create exists for the seed step.
type WorkshopRepository struct {
	coll *Collection[models.Workshop]
}

// NewWorkshopRepository creates a new WorkshopRepository
func NewWorkshopRepository(s store.Store, alloc *store.Allocator, logger zerolog.Logger) *WorkshopRepository {
	return &WorkshopRepository{
		coll: newCollection("workshops", s, alloc, encodeWorkshop, decodeWorkshop, logger),
	}
}

func encodeWorkshop(w *models.Workshop) map[string]interface{} {
	return map[string]interface{}{
		"title":       w.Title,
		"description": w.Description,
		"date":        w.Date,
		"location":    w.Location,
		"organizer":   w.Organizer,
	}
}

func decodeWorkshop(key string, data map[string]interface{}) *models.Workshop {
	return &models.Workshop{
		ID:          keyID(key, data, "workshop_id"),
		Title:       asString(data["title"]),
		Description: asString(data["description"]),
		Date:        asString(data["date"]),
		Location:    asString(data["location"]),
		Organizer:   asString(data["organizer"]),
	}
}

// Create writes a new workshop with a freshly allocated ID
func (r *WorkshopRepository) Create(ctx context.Context, workshop *models.Workshop) (*models.Workshop, error) {
	return r.coll.Create(ctx, workshop)
}

// All returns every workshop
func (r *WorkshopRepository) All(ctx context.Context) []*models.Workshop {
	return r.coll.All(ctx)
}
