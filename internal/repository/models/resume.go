package models

import (
	"database/sql"
	"time"

	"interview-prep/internal/domain"
)

// Resume represents a resume row. Rows are insert-only; the newest row
// per user is the active resume.
type Resume struct {
	ID        string         `db:"id"` // ULID
	UserID    string         `db:"user_id"`
	RawText   string         `db:"raw_text"`
	Summary   sql.NullString `db:"summary"`
	Skills    StringSlice    `db:"skills"`
	Score     int            `db:"score"`
	Analysis  Analysis       `db:"analysis"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// ToDomain converts the row to a domain resume.
func (r *Resume) ToDomain() *domain.Resume {
	return &domain.Resume{
		ID:        r.ID,
		UserID:    r.UserID,
		RawText:   r.RawText,
		Summary:   r.Summary.String,
		Skills:    r.Skills,
		Score:     r.Score,
		Analysis:  domain.ResumeAnalysis(r.Analysis),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ResumeFromDomain converts a domain resume to its row representation.
func ResumeFromDomain(r *domain.Resume) *Resume {
	return &Resume{
		ID:        r.ID,
		UserID:    r.UserID,
		RawText:   r.RawText,
		Summary:   toNullString(r.Summary),
		Skills:    StringSlice(r.Skills),
		Score:     r.Score,
		Analysis:  Analysis(r.Analysis),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
