package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/repository"
	"interview-prep/internal/repository/models"
)

// Thresholds for readiness tiers, compared against the unrounded average
// completed-interview score.
const (
	readinessStrongMin       = 80.0
	readinessIntermediateMin = 60.0
)

// DashboardService aggregates the per-user dashboard snapshot.
type DashboardService interface {
	GetDashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error)
}

type dashboardServiceImpl struct {
	userRepo       repository.UserRepository
	resumeRepo     repository.ResumeRepository
	interviewRepo  repository.InterviewRepository
	dashboardCache DashboardCacheService
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	userRepo repository.UserRepository,
	resumeRepo repository.ResumeRepository,
	interviewRepo repository.InterviewRepository,
	dashboardCache DashboardCacheService,
) DashboardService {
	return &dashboardServiceImpl{
		userRepo:       userRepo,
		resumeRepo:     resumeRepo,
		interviewRepo:  interviewRepo,
		dashboardCache: dashboardCache,
	}
}

func (s *dashboardServiceImpl) GetDashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	if cached, err := s.dashboardCache.GetSnapshot(ctx, userID); err == nil && cached != nil {
		return cached, nil
	}

	var (
		userRow    *models.User
		resumeRow  *models.Resume
		interviews []models.Interview
	)

	// The three reads are independent.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		userRow, err = s.userRepo.GetUserByID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		resumeRow, err = s.resumeRepo.GetLatestResumeByUserID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		interviews, err = s.interviewRepo.GetInterviewsByUserID(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard data: %w", err)
	}
	if userRow == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("User not found: %s", userID))
	}

	user := userRow.ToDomain()
	var resume *domain.Resume
	if resumeRow != nil {
		resume = resumeRow.ToDomain()
	}

	var completed []*domain.Interview
	for i := range interviews {
		if interviews[i].Status == domain.InterviewStatusCompleted {
			completed = append(completed, interviews[i].ToDomain())
		}
	}

	avgScore := averageScore(completed)
	history := make([]dto.InterviewHistoryItem, 0, len(completed))
	totalQuestionsAnswered := 0
	totalCorrectAnswers := 0
	for _, interview := range completed {
		correct := countCorrect(interview.Questions)
		totalQuestionsAnswered += len(interview.Questions)
		totalCorrectAnswers += correct
		history = append(history, historyItem(interview, correct))
	}

	accuracy := 0
	if totalQuestionsAnswered > 0 {
		accuracy = int(math.Round(float64(totalCorrectAnswers) / float64(totalQuestionsAnswered) * 100))
	}

	snapshot := &dto.DashboardResponse{
		User:                   dto.NewUserResponse(user),
		ProfileCompletion:      profileCompletion(user, resume, len(completed)),
		ResumeScore:            resumeScore(resume),
		InterviewReadiness:     readiness(avgScore),
		TotalSessions:          len(interviews),
		AverageScore:           int(math.Round(avgScore)),
		TotalQuestionsAnswered: totalQuestionsAnswered,
		TotalCorrectAnswers:    totalCorrectAnswers,
		AccuracyPercentage:     accuracy,
		InterviewHistory:       history,
	}
	if resume != nil {
		r := dto.NewResumeResponse(resume)
		snapshot.Resume = &r
	}

	s.dashboardCache.PutSnapshot(ctx, userID, snapshot)
	return snapshot, nil
}

// averageScore divides by max(len, 1): zero completed interviews yield 0.
func averageScore(completed []*domain.Interview) float64 {
	sum := 0
	for _, i := range completed {
		if i.OverallScore != nil {
			sum += *i.OverallScore
		}
	}
	divisor := len(completed)
	if divisor == 0 {
		divisor = 1
	}
	return float64(sum) / float64(divisor)
}

func countCorrect(questions []domain.Question) int {
	correct := 0
	for _, q := range questions {
		if q.UserAnswer != nil && *q.UserAnswer == q.CorrectAnswer {
			correct++
		}
	}
	return correct
}

func historyItem(interview *domain.Interview, correct int) dto.InterviewHistoryItem {
	total := len(interview.Questions)
	accuracy := 0
	if total > 0 {
		accuracy = int(math.Round(float64(correct) / float64(total) * 100))
	}
	score := 0
	if interview.OverallScore != nil {
		score = *interview.OverallScore
	}
	questions := make([]dto.ScoredQuestion, len(interview.Questions))
	for i, q := range interview.Questions {
		qScore := 0
		if q.Score != nil {
			qScore = *q.Score
		}
		questions[i] = dto.ScoredQuestion{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			UserAnswer:    q.UserAnswer,
			Score:         qScore,
			Feedback:      q.Feedback,
			Topic:         q.Topic,
			Difficulty:    q.Difficulty,
		}
	}
	return dto.InterviewHistoryItem{
		ID:             interview.ID,
		Score:          score,
		TotalQuestions: total,
		CorrectAnswers: correct,
		Accuracy:       accuracy,
		Status:         interview.Status,
		CreatedAt:      interview.CreatedAt,
		Questions:      questions,
	}
}

// profileCompletion scores profile fields, resume content and completed
// quizzes, capped at 100.
func profileCompletion(user *domain.User, resume *domain.Resume, completedCount int) int {
	completion := 0
	if user.Name != "" {
		completion += 10
	}
	if user.Email != "" {
		completion += 10
	}
	if strings.TrimSpace(user.Bio) != "" {
		completion += 15
	}
	if len(user.Skills) > 0 {
		completion += 15
	}

	if resume != nil {
		if len(resume.RawText) > 300 {
			completion += 25
		}
		if len(strings.TrimSpace(resume.Summary)) > 20 {
			completion += 15
		}
		completion += minInt(len(resume.Skills)*2, 10)
	}

	if completedCount > 0 {
		completion += minInt(completedCount*5, 20)
	}
	return minInt(completion, 100)
}

// resumeScore derives a 0-100 score from resume content; no resume is 0.
func resumeScore(resume *domain.Resume) int {
	if resume == nil {
		return 0
	}
	score := 0
	if len(strings.TrimSpace(resume.Summary)) > 20 {
		score += 30
	}
	score += minInt(len(resume.Skills)*10, 50)
	if len(resume.RawText) > 300 {
		score += 20
	}
	return minInt(score, 100)
}

func readiness(avgScore float64) string {
	switch {
	case avgScore >= readinessStrongMin:
		return "Strong"
	case avgScore >= readinessIntermediateMin:
		return "Intermediate"
	default:
		return "Beginner"
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
