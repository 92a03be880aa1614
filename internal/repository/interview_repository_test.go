package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-prep/internal/domain"
	"interview-prep/internal/repository/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func sqlmockTime() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func interviewColumns() []string {
	return []string{"id", "user_id", "resume_id", "questions", "status", "total_questions", "overall_score", "created_at", "updated_at"}
}

func TestCreateInterview(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXInterviewRepository(db)

	mock.ExpectExec(`INSERT INTO interviews`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	interview := &models.Interview{
		ID:             "01INTERVIEW",
		UserID:         "01USER",
		ResumeID:       "01RESUME",
		Questions:      models.QuestionList{{Question: "q", Options: []string{"a", "b", "c", "d"}}},
		Status:         domain.InterviewStatusInProgress,
		TotalQuestions: 1,
	}
	err := repo.CreateInterview(context.Background(), interview)

	require.NoError(t, err)
	assert.False(t, interview.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetInterviewByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXInterviewRepository(db)

	questions, err := models.QuestionList{{Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 1}}.Value()
	require.NoError(t, err)

	rows := sqlmock.NewRows(interviewColumns()).
		AddRow("01INTERVIEW", "01USER", "01RESUME", questions, domain.InterviewStatusInProgress, 1, nil,
			sqlmockTime(), sqlmockTime())

	mock.ExpectQuery(`SELECT \* FROM interviews WHERE id = \$1`).
		WithArgs("01INTERVIEW").
		WillReturnRows(rows)

	interview, err := repo.GetInterviewByID(context.Background(), "01INTERVIEW")
	require.NoError(t, err)
	require.NotNil(t, interview)
	assert.Equal(t, "01USER", interview.UserID)
	require.Len(t, interview.Questions, 1)
	assert.Equal(t, 1, interview.Questions[0].CorrectAnswer)
	assert.False(t, interview.OverallScore.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetInterviewByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXInterviewRepository(db)

	mock.ExpectQuery(`SELECT \* FROM interviews WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	interview, err := repo.GetInterviewByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, interview)
}

func TestUpdateInterview(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXInterviewRepository(db)

	mock.ExpectExec(`UPDATE interviews SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	overall := 60
	interview := &models.Interview{
		ID:           "01INTERVIEW",
		Status:       domain.InterviewStatusCompleted,
		OverallScore: sql.NullInt64{Int64: int64(overall), Valid: true},
	}
	require.NoError(t, repo.UpdateInterview(context.Background(), interview))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateInterview_NoRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXInterviewRepository(db)

	mock.ExpectExec(`UPDATE interviews SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateInterview(context.Background(), &models.Interview{ID: "missing"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestGetInterviewsByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXInterviewRepository(db)

	questions, err := models.QuestionList{}.Value()
	require.NoError(t, err)

	rows := sqlmock.NewRows(interviewColumns()).
		AddRow("01B", "01USER", "01RESUME", questions, domain.InterviewStatusCompleted, 5, 60, sqlmockTime(), sqlmockTime()).
		AddRow("01A", "01USER", "01RESUME", questions, domain.InterviewStatusInProgress, 5, nil, sqlmockTime(), sqlmockTime())

	mock.ExpectQuery(`SELECT \* FROM interviews WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs("01USER").
		WillReturnRows(rows)

	interviews, err := repo.GetInterviewsByUserID(context.Background(), "01USER")
	require.NoError(t, err)
	require.Len(t, interviews, 2)
	assert.True(t, interviews[0].OverallScore.Valid)
	assert.False(t, interviews[1].OverallScore.Valid)
}
