package dto

import "github.com/joinwork/joinwork/internal/app/models"

// WorkshopListResponse wraps the workshop listing
type WorkshopListResponse struct {
	Workshops []*models.Workshop `json:"workshops"`
	Total     int                `json:"total" example:"4"`
}
