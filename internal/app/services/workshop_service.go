package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/joinwork/joinwork/internal/app/models/dto"
	"github.com/joinwork/joinwork/internal/app/repositories"
)

// WorkshopService handles the workshop catalog
type WorkshopService struct {
	workshopRepo *repositories.WorkshopRepository
	logger       zerolog.Logger
}

// NewWorkshopService creates a new WorkshopService
func NewWorkshopService(workshopRepo *repositories.WorkshopRepository, logger zerolog.Logger) *WorkshopService {
	return &WorkshopService{workshopRepo: workshopRepo, logger: logger}
}

// ListWorkshops returns every workshop in the catalog
func (s *WorkshopService) ListWorkshops(ctx context.Context) *dto.WorkshopListResponse {
	workshops := s.workshopRepo.All(ctx)
	return &dto.WorkshopListResponse{Workshops: workshops, Total: len(workshops)}
}
