package models

import (
	"database/sql"
	"time"

	"interview-prep/internal/domain"
)

// Interview represents an interview row. Questions are embedded as an
// ordered JSONB list; overall_score is NULL until submission.
type Interview struct {
	ID             string        `db:"id"` // ULID
	UserID         string        `db:"user_id"`
	ResumeID       string        `db:"resume_id"`
	Questions      QuestionList  `db:"questions"`
	Status         string        `db:"status"`
	TotalQuestions int           `db:"total_questions"`
	OverallScore   sql.NullInt64 `db:"overall_score"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
}

// ToDomain converts the row to a domain interview.
func (i *Interview) ToDomain() *domain.Interview {
	var overall *int
	if i.OverallScore.Valid {
		v := int(i.OverallScore.Int64)
		overall = &v
	}
	return &domain.Interview{
		ID:             i.ID,
		UserID:         i.UserID,
		ResumeID:       i.ResumeID,
		Questions:      i.Questions,
		Status:         i.Status,
		TotalQuestions: i.TotalQuestions,
		OverallScore:   overall,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

// InterviewFromDomain converts a domain interview to its row representation.
func InterviewFromDomain(i *domain.Interview) *Interview {
	var overall sql.NullInt64
	if i.OverallScore != nil {
		overall = sql.NullInt64{Int64: int64(*i.OverallScore), Valid: true}
	}
	return &Interview{
		ID:             i.ID,
		UserID:         i.UserID,
		ResumeID:       i.ResumeID,
		Questions:      QuestionList(i.Questions),
		Status:         i.Status,
		TotalQuestions: i.TotalQuestions,
		OverallScore:   overall,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}
