package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/joinwork/joinwork/internal/app/models"
	"github.com/joinwork/joinwork/internal/app/repositories"
	"github.com/joinwork/joinwork/internal/pkg/apperrors"
)

// ApplicationService handles application status decisions
type ApplicationService struct {
	applicationRepo *repositories.ApplicationRepository
	jobRepo         *repositories.JobRepository
	companyRepo     *repositories.CompanyRepository
	logger          zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applicationRepo *repositories.ApplicationRepository,
	jobRepo *repositories.JobRepository,
	companyRepo *repositories.CompanyRepository,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		companyRepo:     companyRepo,
		logger:          logger,
	}
}

// UpdateStatus sets an application's status. The caller must own the
// company behind the application's job; the status must be one of
// pending, accepted or rejected.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID, userID int64, status string) (*models.Application, error) {
	if !models.ApplicationStatus(status).Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	application := s.applicationRepo.GetByID(ctx, applicationID)
	if application == nil {
		return nil, apperrors.ErrApplicationNotFound
	}

	job := s.jobRepo.GetByID(ctx, application.JobID)
	if job == nil {
		return nil, apperrors.ErrPermissionDenied
	}
	company := s.companyRepo.GetByID(ctx, job.CompanyID)
	if company == nil || company.UserID != userID {
		return nil, apperrors.ErrPermissionDenied
	}

	if !s.applicationRepo.Update(ctx, application.ID, map[string]interface{}{"status": status}) {
		return nil, apperrors.ErrStoreUnavailable
	}

	updated := s.applicationRepo.GetByID(ctx, application.ID)
	if updated == nil {
		return nil, apperrors.ErrApplicationNotFound
	}
	return updated, nil
}
