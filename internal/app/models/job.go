package models

import "time"

// Job defines the job posting stored in the 'jobs' collection
type Job struct {
	ID             int64     `json:"job_id" example:"1"`
	CompanyID      int64     `json:"company_id" example:"1"` // Must reference an existing company
	Title          string    `json:"title" example:"Backend Engineer"`
	Description    string    `json:"description"`
	Location       string    `json:"location" example:"Baghdad"`
	Salary         *float64  `json:"salary,omitempty" example:"1500"` // Nullable
	SkillsRequired string    `json:"skills_required" example:"Go, Firestore"`
	EmploymentType string    `json:"employment_type" example:"full-time"`
	Status         string    `json:"status" example:"active"` // active or closed
	CreatedAt      time.Time `json:"created_at" example:"2025-01-01T10:00:00Z"`
}
