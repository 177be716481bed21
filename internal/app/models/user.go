package models

import "time"

// User defines the account model stored in the 'users' collection
type User struct {
	ID           int64     `json:"user_id" example:"1"`                         // Unique identifier, also the document key
	FullName     string    `json:"full_name" example:"Sara Ahmed"`              // Display name
	Email        string    `json:"email" example:"sara@example.com"`            // Lower-cased, unique across users
	PasswordHash string    `json:"-"`                                           // Hashed password (excluded from JSON)
	Role         Role      `json:"role" example:"graduate"`                     // graduate, company or ministry
	CreatedAt    time.Time `json:"created_at" example:"2025-01-01T10:00:00Z"`   // Timestamp when the account was created
}
