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

// ResumeRepository defines the interface for resume data operations.
// Resumes are insert-only; the newest row per user is the active resume.
type ResumeRepository interface {
	CreateResume(ctx context.Context, resume *models.Resume) error
	GetResumeByID(ctx context.Context, resumeID string) (*models.Resume, error)
	GetLatestResumeByUserID(ctx context.Context, userID string) (*models.Resume, error)
}

type sqlxResumeRepository struct {
	db *sqlx.DB
}

// NewSQLXResumeRepository creates a new instance of sqlxResumeRepository.
func NewSQLXResumeRepository(db *sqlx.DB) ResumeRepository {
	return &sqlxResumeRepository{db: db}
}

func (r *sqlxResumeRepository) CreateResume(ctx context.Context, resume *models.Resume) error {
	query := `INSERT INTO resumes (id, user_id, raw_text, summary, skills, score, analysis, created_at, updated_at)
	          VALUES (:id, :user_id, :raw_text, :summary, :skills, :score, :analysis, :created_at, :updated_at)`

	resume.CreatedAt = time.Now()
	resume.UpdatedAt = time.Now()

	if _, err := r.db.NamedExecContext(ctx, query, resume); err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}
	return nil
}

func (r *sqlxResumeRepository) GetResumeByID(ctx context.Context, resumeID string) (*models.Resume, error) {
	var resume models.Resume
	query := `SELECT * FROM resumes WHERE id = $1`
	if err := r.db.GetContext(ctx, &resume, query, resumeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume by id: %w", err)
	}
	return &resume, nil
}

func (r *sqlxResumeRepository) GetLatestResumeByUserID(ctx context.Context, userID string) (*models.Resume, error) {
	var resume models.Resume
	query := `SELECT * FROM resumes WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`
	if err := r.db.GetContext(ctx, &resume, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest resume: %w", err)
	}
	return &resume, nil
}
