package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"interview-prep/internal/domain"
	"interview-prep/internal/repository/models"
)

func dashboardUser() *models.User {
	return &models.User{
		ID:       "01USER",
		Email:    "jane@example.com",
		Name:     sql.NullString{String: "Jane", Valid: true},
		Provider: domain.ProviderLocal,
		Role:     domain.RoleCandidate,
		Bio:      sql.NullString{String: "Backend engineer", Valid: true},
		Skills:   models.StringSlice{"go", "sql", "docker"},
	}
}

func completedInterview(id string, answers []int) models.Interview {
	questions := make(models.QuestionList, len(answers))
	totalScore := 0
	for i, a := range answers {
		answer := a
		score := 0
		if a == 1 {
			score = 10
		}
		totalScore += score
		s := score
		questions[i] = domain.Question{
			Question:      "q",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: 1,
			UserAnswer:    &answer,
			Score:         &s,
		}
	}
	overall := totalScore * 100 / (len(answers) * 10)
	return models.Interview{
		ID:             id,
		UserID:         "01USER",
		Questions:      questions,
		Status:         domain.InterviewStatusCompleted,
		TotalQuestions: len(answers),
		OverallScore:   sql.NullInt64{Int64: int64(overall), Valid: true},
	}
}

func newDashboardService(userRepo *MockUserRepository, resumeRepo *MockResumeRepository, interviewRepo *MockInterviewRepository) DashboardService {
	return NewDashboardService(userRepo, resumeRepo, interviewRepo, noopDashboardCache())
}

func TestGetDashboard_NoResumeNoInterviews(t *testing.T) {
	userRepo := new(MockUserRepository)
	resumeRepo := new(MockResumeRepository)
	interviewRepo := new(MockInterviewRepository)

	userRepo.On("GetUserByID", mock.Anything, "01USER").Return(dashboardUser(), nil)
	resumeRepo.On("GetLatestResumeByUserID", mock.Anything, "01USER").Return(nil, nil)
	interviewRepo.On("GetInterviewsByUserID", mock.Anything, "01USER").Return([]models.Interview{}, nil)

	svc := newDashboardService(userRepo, resumeRepo, interviewRepo)
	snapshot, err := svc.GetDashboard(context.Background(), "01USER")

	require.NoError(t, err)
	// name 10 + email 10 + bio 15 + skills 15, no resume or quiz bonus.
	assert.Equal(t, 50, snapshot.ProfileCompletion)
	assert.Equal(t, 0, snapshot.ResumeScore)
	assert.Equal(t, "Beginner", snapshot.InterviewReadiness)
	assert.Equal(t, 0, snapshot.TotalSessions)
	assert.Equal(t, 0, snapshot.AverageScore)
	assert.Equal(t, 0, snapshot.AccuracyPercentage)
	assert.Empty(t, snapshot.InterviewHistory)
	assert.Nil(t, snapshot.Resume)
}

func TestGetDashboard_FullProfile(t *testing.T) {
	userRepo := new(MockUserRepository)
	resumeRepo := new(MockResumeRepository)
	interviewRepo := new(MockInterviewRepository)

	longText := make([]byte, 400)
	for i := range longText {
		longText[i] = 'x'
	}
	resume := &models.Resume{
		ID:      "01RESUME",
		UserID:  "01USER",
		RawText: string(longText),
		Summary: sql.NullString{String: "An experienced backend engineer profile", Valid: true},
		Skills:  models.StringSlice{"go", "sql", "docker", "redis", "aws", "grpc"},
	}

	interviews := []models.Interview{
		completedInterview("01A", []int{1, 1, 1, 1, 1}), // 100
		completedInterview("01B", []int{1, 1, 1, 0, 0}), // 60
		{ID: "01C", UserID: "01USER", Status: domain.InterviewStatusInProgress, TotalQuestions: 5},
	}

	userRepo.On("GetUserByID", mock.Anything, "01USER").Return(dashboardUser(), nil)
	resumeRepo.On("GetLatestResumeByUserID", mock.Anything, "01USER").Return(resume, nil)
	interviewRepo.On("GetInterviewsByUserID", mock.Anything, "01USER").Return(interviews, nil)

	svc := newDashboardService(userRepo, resumeRepo, interviewRepo)
	snapshot, err := svc.GetDashboard(context.Background(), "01USER")

	require.NoError(t, err)
	// Profile 50 + resume (25 rawText + 15 summary + 10 skills cap) + quiz 10, capped at 100.
	assert.Equal(t, 100, snapshot.ProfileCompletion)
	// Resume score: 30 summary + 50 skills cap + 20 rawText = 100.
	assert.Equal(t, 100, snapshot.ResumeScore)
	// Average of completed only: (100+60)/2 = 80 => Strong.
	assert.Equal(t, 80, snapshot.AverageScore)
	assert.Equal(t, "Strong", snapshot.InterviewReadiness)
	assert.Equal(t, 3, snapshot.TotalSessions)
	assert.Equal(t, 10, snapshot.TotalQuestionsAnswered)
	assert.Equal(t, 8, snapshot.TotalCorrectAnswers)
	assert.Equal(t, 80, snapshot.AccuracyPercentage)

	// In-progress sessions stay out of history.
	require.Len(t, snapshot.InterviewHistory, 2)
	assert.Equal(t, 100, snapshot.InterviewHistory[0].Score)
	assert.Equal(t, 5, snapshot.InterviewHistory[0].CorrectAnswers)
	assert.Equal(t, 100, snapshot.InterviewHistory[0].Accuracy)
	assert.Equal(t, 60, snapshot.InterviewHistory[1].Score)
	assert.Equal(t, 60, snapshot.InterviewHistory[1].Accuracy)
	require.NotNil(t, snapshot.Resume)
	assert.Equal(t, "01RESUME", snapshot.Resume.ID)
}

func TestGetDashboard_Readiness(t *testing.T) {
	cases := []struct {
		name     string
		answers  [][]int
		expected string
	}{
		{"intermediate", [][]int{{1, 1, 1, 0, 0}, {1, 1, 1, 1, 0}}, "Intermediate"}, // avg 70
		{"beginner", [][]int{{1, 0, 0, 0, 0}}, "Beginner"},                          // avg 20
		{"strong", [][]int{{1, 1, 1, 1, 1}}, "Strong"},                              // avg 100
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			resumeRepo := new(MockResumeRepository)
			interviewRepo := new(MockInterviewRepository)

			var interviews []models.Interview
			for i, answers := range tc.answers {
				interviews = append(interviews, completedInterview(string(rune('A'+i)), answers))
			}

			userRepo.On("GetUserByID", mock.Anything, "01USER").Return(dashboardUser(), nil)
			resumeRepo.On("GetLatestResumeByUserID", mock.Anything, "01USER").Return(nil, nil)
			interviewRepo.On("GetInterviewsByUserID", mock.Anything, "01USER").Return(interviews, nil)

			snapshot, err := newDashboardService(userRepo, resumeRepo, interviewRepo).GetDashboard(context.Background(), "01USER")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, snapshot.InterviewReadiness)
		})
	}
}

func TestGetDashboard_UserNotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	resumeRepo := new(MockResumeRepository)
	interviewRepo := new(MockInterviewRepository)

	userRepo.On("GetUserByID", mock.Anything, "missing").Return(nil, nil)
	resumeRepo.On("GetLatestResumeByUserID", mock.Anything, "missing").Return(nil, nil)
	interviewRepo.On("GetInterviewsByUserID", mock.Anything, "missing").Return([]models.Interview{}, nil)

	_, err := newDashboardService(userRepo, resumeRepo, interviewRepo).GetDashboard(context.Background(), "missing")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeNotFound, domainErr.Code)
}

func TestGetDashboard_CachedSnapshotSkipsRepositories(t *testing.T) {
	userRepo := new(MockUserRepository)
	resumeRepo := new(MockResumeRepository)
	interviewRepo := new(MockInterviewRepository)

	cache := new(MockCache)
	cache.On("Get", mock.Anything, "dashboard:01USER").
		Return(`{"profileCompletion":50,"interviewReadiness":"Beginner"}`, nil)

	svc := NewDashboardService(userRepo, resumeRepo, interviewRepo,
		NewDashboardCacheService(cache, testConfig()))

	snapshot, err := svc.GetDashboard(context.Background(), "01USER")
	require.NoError(t, err)
	assert.Equal(t, 50, snapshot.ProfileCompletion)
	userRepo.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
}
