package models

// Graduate defines the graduate profile stored in the 'graduates'
// collection. Exactly one per user.
type Graduate struct {
	ID                int64  `json:"graduate_id" example:"1"`
	UserID            int64  `json:"user_id" example:"1"`
	University        string `json:"university" example:"University of Baghdad"`
	Major             string `json:"major" example:"Computer Science"`
	UnifiedCardNumber string `json:"unified_card_number" example:"123456789012"` // Exactly 12 digits when present
	Skills            string `json:"skills" example:"Go, SQL"`
	Age               *int   `json:"age,omitempty" example:"24"` // Pointer for potential null
	DateOfBirth       string `json:"date_of_birth" example:"2001-05-14"`
	Gender            string `json:"gender" example:"female"`
	ProfilePicture    string `json:"profile_picture"`
	Projects          string `json:"projects"`
	Experience        string `json:"experience"`
}
