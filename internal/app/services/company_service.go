package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/joinwork/joinwork/internal/app/models"
	"github.com/joinwork/joinwork/internal/app/repositories"
	"github.com/joinwork/joinwork/internal/pkg/apperrors"
)

// CompanyService handles company profile operations
type CompanyService struct {
	companyRepo *repositories.CompanyRepository
	userRepo    *repositories.UserRepository
	logger      zerolog.Logger
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(
	companyRepo *repositories.CompanyRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// GetCompany returns a company by ID
func (s *CompanyService) GetCompany(ctx context.Context, companyID int64) (*models.Company, error) {
	company := s.companyRepo.GetByID(ctx, companyID)
	if company == nil {
		return nil, apperrors.ErrCompanyNotFound
	}
	return company, nil
}

// GetOrCreateByUser returns the company profile owned by a user, creating
// a minimal one named after the account when it does not exist yet.
// Company accounts created before profile bootstrapping get one lazily.
func (s *CompanyService) GetOrCreateByUser(ctx context.Context, userID int64) (*models.Company, error) {
	if company := s.companyRepo.GetByUserID(ctx, userID); company != nil {
		return company, nil
	}

	companyName := fmt.Sprintf("Company %d", userID)
	if user := s.userRepo.GetByID(ctx, userID); user != nil {
		companyName = user.FullName
	}

	company, err := s.companyRepo.Create(ctx, &models.Company{
		UserID:      userID,
		CompanyName: companyName,
	})
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable
	}
	return company, nil
}
