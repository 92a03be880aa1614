package models

import (
	"database/sql"
	"time"

	"interview-prep/internal/domain"
)

// User represents a user row.
type User struct {
	ID           string         `db:"id"` // ULID
	Email        string         `db:"email"`
	PasswordHash sql.NullString `db:"password_hash"` // NULL for federated accounts
	Provider     string         `db:"provider"`
	GoogleID     sql.NullString `db:"google_id"`
	Name         sql.NullString `db:"name"`
	Role         string         `db:"role"`
	Phone        sql.NullString `db:"phone"`
	Location     sql.NullString `db:"location"`
	Bio          sql.NullString `db:"bio"`
	Skills       StringSlice    `db:"skills"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// ToDomain converts the row to a domain user.
func (u *User) ToDomain() *domain.User {
	return &domain.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash.String,
		Provider:     u.Provider,
		GoogleID:     u.GoogleID.String,
		Name:         u.Name.String,
		Role:         u.Role,
		Phone:        u.Phone.String,
		Location:     u.Location.String,
		Bio:          u.Bio.String,
		Skills:       u.Skills,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// UserFromDomain converts a domain user to its row representation.
func UserFromDomain(u *domain.User) *User {
	return &User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: toNullString(u.PasswordHash),
		Provider:     u.Provider,
		GoogleID:     toNullString(u.GoogleID),
		Name:         toNullString(u.Name),
		Role:         u.Role,
		Phone:        toNullString(u.Phone),
		Location:     toNullString(u.Location),
		Bio:          toNullString(u.Bio),
		Skills:       StringSlice(u.Skills),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
