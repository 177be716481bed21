package dto

import "github.com/joinwork/joinwork/internal/app/models"

// CreateGraduateRequest carries a standalone graduate profile creation
type CreateGraduateRequest struct {
	University        string `json:"university"`
	Major             string `json:"major"`
	UnifiedCardNumber string `json:"unified_card_number"`
	Skills            string `json:"skills"`
	Age               *int   `json:"age"`
	Projects          string `json:"projects"`
	Experience        string `json:"experience"`
}

// UpdateGraduateRequest carries a partial profile update. Pointer fields
// distinguish "not sent" from "set to empty".
type UpdateGraduateRequest struct {
	University        *string `json:"university"`
	Major             *string `json:"major"`
	UnifiedCardNumber *string `json:"unified_card_number"`
	Skills            *string `json:"skills"`
	Age               *int    `json:"age"`
	DateOfBirth       *string `json:"date_of_birth"`
	Gender            *string `json:"gender"`
	ProfilePicture    *string `json:"profile_picture"`
	Projects          *string `json:"projects"`
	Experience        *string `json:"experience"`
}

// GraduateProfileView is a graduate annotated with identity fields from
// the owning user. Missing user references degrade to empty strings.
type GraduateProfileView struct {
	models.Graduate
	FullName string `json:"full_name" example:"Sara Ahmed"`
	Email    string `json:"email" example:"sara@example.com"`
}
