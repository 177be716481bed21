package models

// Role is the account type chosen at signup. Immutable after creation.
type Role string

// Known roles
const (
	RoleGraduate Role = "graduate"
	RoleCompany  Role = "company"
	RoleMinistry Role = "ministry"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleGraduate, RoleCompany, RoleMinistry:
		return true
	}
	return false
}

// ApplicationStatus is the review state of a job application.
type ApplicationStatus string

// Application statuses
const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Valid reports whether the status is one of the three named values.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// Job statuses
const (
	JobActive = "active"
	JobClosed = "closed"
)
