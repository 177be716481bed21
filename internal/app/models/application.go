package models

import "time"

// Application defines the job application stored in the 'applications'
// collection. At most one per (job, graduate) pair.
type Application struct {
	ID          int64             `json:"application_id" example:"1"`
	JobID       int64             `json:"job_id" example:"1"`
	GraduateID  int64             `json:"graduate_id" example:"1"`
	Status      ApplicationStatus `json:"status" example:"pending"`
	CoverLetter string            `json:"cover_letter"`
	AppliedDate time.Time         `json:"applied_date" example:"2025-01-02T09:00:00Z"`
}
