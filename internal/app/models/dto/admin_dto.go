package dto

import "github.com/joinwork/joinwork/internal/app/models"

// DatabaseStats holds per-collection counts for the development dump
type DatabaseStats struct {
	TotalUsers        int `json:"total_users"`
	TotalGraduates    int `json:"total_graduates"`
	TotalCompanies    int `json:"total_companies"`
	TotalJobs         int `json:"total_jobs"`
	TotalApplications int `json:"total_applications"`
	TotalWorkshops    int `json:"total_workshops"`
}

// DatabaseDump is the full-contents development view of the store
type DatabaseDump struct {
	Users        []*models.User        `json:"users"`
	Graduates    []*models.Graduate    `json:"graduates"`
	Companies    []*models.Company     `json:"companies"`
	Jobs         []*models.Job         `json:"jobs"`
	Applications []*models.Application `json:"applications"`
	Workshops    []*models.Workshop    `json:"workshops"`
	Stats        DatabaseStats         `json:"stats"`
}

// DatabaseDumpResponse wraps the dump in the legacy envelope
type DatabaseDumpResponse struct {
	Error bool         `json:"error" example:"false"`
	Data  DatabaseDump `json:"data"`
}
