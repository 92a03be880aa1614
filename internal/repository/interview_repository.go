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

// InterviewRepository defines the interface for interview data operations.
type InterviewRepository interface {
	CreateInterview(ctx context.Context, interview *models.Interview) error
	GetInterviewByID(ctx context.Context, interviewID string) (*models.Interview, error)
	UpdateInterview(ctx context.Context, interview *models.Interview) error
	GetInterviewsByUserID(ctx context.Context, userID string) ([]models.Interview, error)
}

type sqlxInterviewRepository struct {
	db *sqlx.DB
}

// NewSQLXInterviewRepository creates a new instance of sqlxInterviewRepository.
func NewSQLXInterviewRepository(db *sqlx.DB) InterviewRepository {
	return &sqlxInterviewRepository{db: db}
}

func (r *sqlxInterviewRepository) CreateInterview(ctx context.Context, interview *models.Interview) error {
	query := `INSERT INTO interviews (id, user_id, resume_id, questions, status, total_questions, overall_score, created_at, updated_at)
	          VALUES (:id, :user_id, :resume_id, :questions, :status, :total_questions, :overall_score, :created_at, :updated_at)`

	interview.CreatedAt = time.Now()
	interview.UpdatedAt = time.Now()

	if _, err := r.db.NamedExecContext(ctx, query, interview); err != nil {
		return fmt.Errorf("failed to create interview: %w", err)
	}
	return nil
}

func (r *sqlxInterviewRepository) GetInterviewByID(ctx context.Context, interviewID string) (*models.Interview, error) {
	var interview models.Interview
	query := `SELECT * FROM interviews WHERE id = $1`
	if err := r.db.GetContext(ctx, &interview, query, interviewID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview by id: %w", err)
	}
	return &interview, nil
}

// UpdateInterview persists the scored questions, status and overall score.
// This is the single mutation point of the submission flow.
func (r *sqlxInterviewRepository) UpdateInterview(ctx context.Context, interview *models.Interview) error {
	interview.UpdatedAt = time.Now()

	query := `UPDATE interviews SET
				questions = :questions,
				status = :status,
				overall_score = :overall_score,
				updated_at = :updated_at
			  WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, interview)
	if err != nil {
		return fmt.Errorf("failed to update interview: %w", err)
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

func (r *sqlxInterviewRepository) GetInterviewsByUserID(ctx context.Context, userID string) ([]models.Interview, error) {
	var interviews []models.Interview
	query := `SELECT * FROM interviews WHERE user_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &interviews, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	return interviews, nil
}
