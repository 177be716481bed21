package models

// Workshop defines the training workshop stored in the 'workshops'
// collection. Read-only through the API; rows come from the seed step.
type Workshop struct {
	ID          int64  `json:"workshop_id" example:"1"`
	Title       string `json:"title" example:"CV Writing Workshop"`
	Description string `json:"description"`
	Date        string `json:"date" example:"2025-03-10"`
	Location    string `json:"location" example:"Baghdad"`
	Organizer   string `json:"organizer" example:"Ministry of Labor"`
}
