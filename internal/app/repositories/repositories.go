package repositories

import (
	"github.com/rs/zerolog"

	"github.com/joinwork/joinwork/internal/store"
)

// Repositories bundles every entity repository over one store and one
// ID allocator.
type Repositories struct {
	UserRepository        *UserRepository
	GraduateRepository    *GraduateRepository
	CompanyRepository     *CompanyRepository
	JobRepository         *JobRepository
	ApplicationRepository *ApplicationRepository
	WorkshopRepository    *WorkshopRepository
}

// NewRepositories creates all repositories backed by the given store
func NewRepositories(s store.Store, logger zerolog.Logger) *Repositories {
	alloc := store.NewAllocator(s)
	return &Repositories{
		UserRepository:        NewUserRepository(s, alloc, logger),
		GraduateRepository:    NewGraduateRepository(s, alloc, logger),
		CompanyRepository:     NewCompanyRepository(s, alloc, logger),
		JobRepository:         NewJobRepository(s, alloc, logger),
		ApplicationRepository: NewApplicationRepository(s, alloc, logger),
		WorkshopRepository:    NewWorkshopRepository(s, alloc, logger),
	}
}
