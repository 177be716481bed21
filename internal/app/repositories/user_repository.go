package repositories

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/joinwork/joinwork/internal/app/models"
	"github.com/joinwork/joinwork/internal/pkg/validation"
	"github.com/joinwork/joinwork/internal/store"
)

// UserRepository provides access to the 'users' collection
type UserRepository struct {
	coll *Collection[models.User]
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(s store.Store, alloc *store.Allocator, logger zerolog.Logger) *UserRepository {
	return &UserRepository{
		coll: newCollection("users", s, alloc, encodeUser, decodeUser, logger),
	}
}

func encodeUser(u *models.User) map[string]interface{} {
	return map[string]interface{}{
		"full_name":     u.FullName,
		"email":         validation.NormalizeEmail(u.Email),
		"password_hash": u.PasswordHash,
		"role":          string(u.Role),
		"created_at":    timeField(u.CreatedAt),
	}
}

func decodeUser(key string, data map[string]interface{}) *models.User {
	return &models.User{
		ID:           keyID(key, data, "user_id"),
		FullName:     asString(data["full_name"]),
		Email:        asString(data["email"]),
		PasswordHash: asString(data["password_hash"]),
		Role:         models.Role(asString(data["role"])),
		CreatedAt:    asTime(data["created_at"]),
	}
}

// Create writes a new user with a freshly allocated ID
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	return r.coll.Create(ctx, user)
}

// GetByID retrieves a user by ID, nil if absent
func (r *UserRepository) GetByID(ctx context.Context, id int64) *models.User {
	return r.coll.GetByID(ctx, id)
}

// GetByEmail retrieves a user by normalized email, nil if absent
func (r *UserRepository) GetByEmail(ctx context.Context, email string) *models.User {
	return r.coll.FindOne(ctx, store.Eq("email", validation.NormalizeEmail(email)))
}

// All returns every user
func (r *UserRepository) All(ctx context.Context) []*models.User {
	return r.coll.All(ctx)
}
