package dto

import "github.com/joinwork/joinwork/internal/app/models"

// ApplyRequest carries a job application
type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

// UpdateApplicationStatusRequest carries a status decision
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending accepted rejected" example:"accepted"`
}

// ApplicationView is an application annotated with the applying
// graduate's identity. Annotation fields are omitted when the graduate or
// its user no longer resolves.
type ApplicationView struct {
	models.Application
	GraduateName       string `json:"graduate_name,omitempty" example:"Sara Ahmed"`
	GraduateEmail      string `json:"graduate_email,omitempty" example:"sara@example.com"`
	GraduateMajor      string `json:"graduate_major,omitempty" example:"Computer Science"`
	GraduateUniversity string `json:"graduate_university,omitempty"`
	GraduateSkills     string `json:"graduate_skills,omitempty"`
}

// ApplicationListResponse wraps a job's application listing
type ApplicationListResponse struct {
	Applications []ApplicationView `json:"applications"`
	Total        int               `json:"total" example:"3"`
}
