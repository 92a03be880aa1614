package domain

import "time"

// Authentication providers. Local accounts carry a password hash;
// federated accounts never do.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// User roles.
const (
	RoleCandidate = "candidate"
	RoleRecruiter = "recruiter"
)

// User represents an account in the system.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Provider     string
	GoogleID     string
	Name         string
	Role         string
	Phone        string
	Location     string
	Bio          string
	Skills       []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate validates the user
func (u *User) Validate() error {
	if u.Email == "" {
		return NewInvalidInputError("email is required")
	}
	if u.Provider == ProviderLocal && u.PasswordHash == "" {
		return NewInvalidInputError("password is required for local accounts")
	}
	if u.Role != RoleCandidate && u.Role != RoleRecruiter {
		return NewInvalidInputError("role must be candidate or recruiter")
	}
	return nil
}
