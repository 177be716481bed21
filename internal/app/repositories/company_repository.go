package repositories

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/joinwork/joinwork/internal/app/models"
	"github.com/joinwork/joinwork/internal/store"
)

// CompanyRepository provides access to the 'companies' collection
type CompanyRepository struct {
	coll *Collection[models.Company]
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(s store.Store, alloc *store.Allocator, logger zerolog.Logger) *CompanyRepository {
	return &CompanyRepository{
		coll: newCollection("companies", s, alloc, encodeCompany, decodeCompany, logger),
	}
}

func encodeCompany(c *models.Company) map[string]interface{} {
	return map[string]interface{}{
		"user_id":      c.UserID,
		"company_name": c.CompanyName,
		"sector":       c.Sector,
		"location":     c.Location,
	}
}

func decodeCompany(key string, data map[string]interface{}) *models.Company {
	return &models.Company{
		ID:          keyID(key, data, "company_id"),
		UserID:      asInt64(data["user_id"]),
		CompanyName: asString(data["company_name"]),
		Sector:      asString(data["sector"]),
		Location:    asString(data["location"]),
	}
}

// Create writes a new company profile with a freshly allocated ID
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	return r.coll.Create(ctx, company)
}

// GetByID retrieves a company by ID, nil if absent
func (r *CompanyRepository) GetByID(ctx context.Context, id int64) *models.Company {
	return r.coll.GetByID(ctx, id)
}

// GetByUserID retrieves the company profile owned by a user, nil if absent
func (r *CompanyRepository) GetByUserID(ctx context.Context, userID int64) *models.Company {
	return r.coll.FindOne(ctx, store.Eq("user_id", userID))
}

// All returns every company
func (r *CompanyRepository) All(ctx context.Context) []*models.Company {
	return r.coll.All(ctx)
}
