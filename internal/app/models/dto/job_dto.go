package dto

import "github.com/joinwork/joinwork/internal/app/models"

// CreateJobRequest carries a new job posting
type CreateJobRequest struct {
	Title          string   `json:"title" binding:"required" example:"Backend Engineer"`
	Description    string   `json:"description" binding:"required"`
	Location       string   `json:"location" binding:"required" example:"Baghdad"`
	Salary         *float64 `json:"salary"`
	SkillsRequired string   `json:"skills_required"`
	EmploymentType string   `json:"employment_type" example:"full-time"`
}

// UpdateJobRequest carries a partial job update
type UpdateJobRequest struct {
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	Location       *string  `json:"location"`
	Salary         *float64 `json:"salary"`
	SkillsRequired *string  `json:"skills_required"`
	EmploymentType *string  `json:"employment_type"`
	Status         *string  `json:"status"`
}

// JobView is a job annotated with its company's display name. A dangling
// company reference yields "Unknown Company" instead of an error.
type JobView struct {
	models.Job
	CompanyName string `json:"company_name" example:"Basra Oil Services"`
}

// JobListResponse wraps a filtered job listing
type JobListResponse struct {
	Jobs  []JobView `json:"jobs"`
	Total int       `json:"total" example:"2"`
}
