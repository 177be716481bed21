package models

// Company defines the company profile stored in the 'companies'
// collection. Exactly one per user.
type Company struct {
	ID          int64  `json:"company_id" example:"1"`
	UserID      int64  `json:"user_id" example:"2"`
	CompanyName string `json:"company_name" example:"Basra Oil Services"`
	Sector      string `json:"sector" example:"Energy"`
	Location    string `json:"location" example:"Basra"`
}
