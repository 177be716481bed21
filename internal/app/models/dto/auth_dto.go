package dto

// SignupRequest carries the signup form. Role-specific profile fields are
// optional and consumed only for the matching role.
type SignupRequest struct {
	FullName string `json:"full_name" binding:"required" example:"Sara Ahmed"`
	Email    string `json:"email" binding:"required,email" example:"sara@example.com"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=graduate company ministry" example:"graduate"`

	// Graduate profile fields
	University        string `json:"university,omitempty"`
	Major             string `json:"major,omitempty"`
	UnifiedCardNumber string `json:"unified_card_number,omitempty"`
	Skills            string `json:"skills,omitempty"`
	Age               *int   `json:"age,omitempty"`
	DateOfBirth       string `json:"date_of_birth,omitempty"`
	Gender            string `json:"gender,omitempty"`
	ProfilePicture    string `json:"profile_picture,omitempty"`
	Projects          string `json:"projects,omitempty"`
	Experience        string `json:"experience,omitempty"`

	// Company profile fields
	CompanyName string `json:"company_name,omitempty"`
	Sector      string `json:"sector,omitempty"`
	Location    string `json:"location,omitempty"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"sara@example.com"`
	Password string `json:"password" binding:"required"`
}

// UserInfo is the public view of an account
type UserInfo struct {
	UserID   int64  `json:"user_id" example:"1"`
	FullName string `json:"full_name" example:"Sara Ahmed"`
	Email    string `json:"email" example:"sara@example.com"`
	Role     string `json:"role" example:"graduate"`
}

// AuthResponse is returned by signup and login
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}
