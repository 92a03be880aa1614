package dto

import (
	"time"

	"interview-prep/internal/domain"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Provider  string    `json:"provider"`
	Phone     string    `json:"phone,omitempty"`
	Location  string    `json:"location,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdateProfileRequest is the request body for PUT /api/profile.
// Nil fields are left unchanged.
type UpdateProfileRequest struct {
	Name     *string   `json:"name,omitempty"`
	Phone    *string   `json:"phone,omitempty"`
	Location *string   `json:"location,omitempty"`
	Bio      *string   `json:"bio,omitempty"`
	Skills   *[]string `json:"skills,omitempty"`
}

// NewUserResponse maps a domain user to its public view.
func NewUserResponse(u *domain.User) UserResponse {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Provider:  u.Provider,
		Phone:     u.Phone,
		Location:  u.Location,
		Bio:       u.Bio,
		Skills:    skills,
		CreatedAt: u.CreatedAt,
	}
}
