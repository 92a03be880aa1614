package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"interview-prep/internal/repository/models"
)

// UserRepository defines the interface for user data operations.
// Lookup methods return (nil, nil) when no row matches.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	UpdateUserSkills(ctx context.Context, userID string, skills models.StringSlice) error
}

// sqlxUserRepository implements UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) UserRepository {
	return &sqlxUserRepository{db: db}
}

func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (id, email, password_hash, provider, google_id, name, role, phone, location, bio, skills, created_at, updated_at)
	          VALUES (:id, :email, :password_hash, :provider, :google_id, :name, :role, :phone, :location, :bio, :skills, :created_at, :updated_at)`

	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return r.getOne(ctx, `SELECT * FROM users WHERE id = $1`, userID)
}

func (r *sqlxUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `SELECT * FROM users WHERE email = $1`, email)
}

func (r *sqlxUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	return r.getOne(ctx, `SELECT * FROM users WHERE google_id = $1`, googleID)
}

func (r *sqlxUserRepository) getOne(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *sqlxUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()

	query := `UPDATE users SET
				name = :name,
				role = :role,
				phone = :phone,
				location = :location,
				bio = :bio,
				skills = :skills,
				updated_at = :updated_at
			  WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateUserSkills writes only the skills column. The resume upload flow
// uses this as an independent write after the resume insert.
func (r *sqlxUserRepository) UpdateUserSkills(ctx context.Context, userID string, skills models.StringSlice) error {
	query := `UPDATE users SET skills = $1, updated_at = $2 WHERE id = $3`
	if _, err := r.db.ExecContext(ctx, query, skills, time.Now(), userID); err != nil {
		return fmt.Errorf("failed to update user skills: %w", err)
	}
	return nil
}
