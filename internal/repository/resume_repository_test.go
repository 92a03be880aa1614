package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-prep/internal/repository/models"
)

func resumeColumns() []string {
	return []string{"id", "user_id", "raw_text", "summary", "skills", "score", "analysis", "created_at", "updated_at"}
}

func TestCreateResume(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXResumeRepository(db)

	mock.ExpectExec(`INSERT INTO resumes`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resume := &models.Resume{
		ID:      "01RESUME",
		UserID:  "01USER",
		RawText: "raw resume text long enough to be stored",
		Skills:  models.StringSlice{"go"},
		Score:   75,
	}
	require.NoError(t, repo.CreateResume(context.Background(), resume))
	assert.False(t, resume.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestResumeByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXResumeRepository(db)

	analysis := `{"skills":["go"],"experienceYears":3,"projects":[],"strengths":["Experienced professional"]}`
	rows := sqlmock.NewRows(resumeColumns()).
		AddRow("01RESUME", "01USER", "raw text", "summary", `["go"]`, 75, analysis, sqlmockTime(), sqlmockTime())

	mock.ExpectQuery(`SELECT \* FROM resumes WHERE user_id = \$1 ORDER BY created_at DESC LIMIT 1`).
		WithArgs("01USER").
		WillReturnRows(rows)

	resume, err := repo.GetLatestResumeByUserID(context.Background(), "01USER")
	require.NoError(t, err)
	require.NotNil(t, resume)
	assert.Equal(t, "01RESUME", resume.ID)
	assert.Equal(t, 3, resume.Analysis.ExperienceYears)
	assert.Equal(t, []string{"Experienced professional"}, resume.Analysis.Strengths)
}

func TestGetLatestResumeByUserID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXResumeRepository(db)

	mock.ExpectQuery(`SELECT \* FROM resumes WHERE user_id = \$1`).
		WithArgs("01USER").
		WillReturnError(sql.ErrNoRows)

	resume, err := repo.GetLatestResumeByUserID(context.Background(), "01USER")
	require.NoError(t, err)
	assert.Nil(t, resume)
}
