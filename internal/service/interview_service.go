package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/generator"
	"interview-prep/internal/logger"
	"interview-prep/internal/repository"
	"interview-prep/internal/repository/models"
	"interview-prep/internal/util"
)

// QuestionGenerator produces interview questions from resume text. It
// never fails; the local question bank is the terminal tier.
type QuestionGenerator interface {
	Generate(ctx context.Context, resumeText string) []domain.GeneratedQuestion
}

// InterviewService handles interview creation and submission.
type InterviewService interface {
	StartInterview(ctx context.Context, userID string) (*dto.StartInterviewResponse, error)
	SubmitInterview(ctx context.Context, userID string, req dto.SubmitInterviewRequest) (*dto.SubmitInterviewResponse, error)
}

type interviewServiceImpl struct {
	interviewRepo  repository.InterviewRepository
	resumeRepo     repository.ResumeRepository
	questionGen    QuestionGenerator
	dashboardCache DashboardCacheService
}

// NewInterviewService creates a new InterviewService.
func NewInterviewService(
	interviewRepo repository.InterviewRepository,
	resumeRepo repository.ResumeRepository,
	questionGen QuestionGenerator,
	dashboardCache DashboardCacheService,
) InterviewService {
	return &interviewServiceImpl{
		interviewRepo:  interviewRepo,
		resumeRepo:     resumeRepo,
		questionGen:    questionGen,
		dashboardCache: dashboardCache,
	}
}

func (s *interviewServiceImpl) StartInterview(ctx context.Context, userID string) (*dto.StartInterviewResponse, error) {
	appLogger := logger.Get()

	resumeRow, err := s.resumeRepo.GetLatestResumeByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resume: %w", err)
	}
	if resumeRow == nil {
		return nil, domain.NewNoResumeError()
	}
	if strings.TrimSpace(resumeRow.RawText) == "" {
		return nil, domain.NewEmptyResumeError()
	}

	generated := s.questionGen.Generate(ctx, resumeRow.RawText)
	if !wellFormed(generated) {
		appLogger.Warn("Generated questions failed validation, using preseeded set",
			zap.String("userID", userID), zap.Int("count", len(generated)))
		generated = generator.PreseededQuestions()
	}

	interview := domain.NewInterview(userID, resumeRow.ID, domain.NormalizeQuestions(generated))
	interview.ID = util.NewULID()
	if err := interview.Validate(); err != nil {
		return nil, err
	}

	if err := s.interviewRepo.CreateInterview(ctx, models.InterviewFromDomain(interview)); err != nil {
		return nil, fmt.Errorf("failed to store interview: %w", err)
	}

	appLogger.Info("Interview started",
		zap.String("userID", userID),
		zap.String("interviewID", interview.ID))

	resp := dto.NewStartInterviewResponse(interview)
	return &resp, nil
}

func (s *interviewServiceImpl) SubmitInterview(ctx context.Context, userID string, req dto.SubmitInterviewRequest) (*dto.SubmitInterviewResponse, error) {
	row, err := s.interviewRepo.GetInterviewByID(ctx, req.InterviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch interview: %w", err)
	}
	if row == nil || row.UserID != userID {
		return nil, domain.NewInterviewNotFoundError(req.InterviewID)
	}
	interview := row.ToDomain()

	scored, overall := domain.ScoreAnswers(interview.Questions, req.Answers)
	interview.Questions = scored
	interview.Status = domain.InterviewStatusCompleted
	interview.OverallScore = &overall

	if err := s.interviewRepo.UpdateInterview(ctx, models.InterviewFromDomain(interview)); err != nil {
		return nil, fmt.Errorf("failed to store interview result: %w", err)
	}

	s.dashboardCache.Invalidate(ctx, userID)

	logger.Get().Info("Interview submitted",
		zap.String("userID", userID),
		zap.String("interviewID", interview.ID),
		zap.Int("overallScore", overall))

	resp := dto.NewSubmitInterviewResponse(interview)
	return &resp, nil
}

// wellFormed checks the postconditions every generation tier must meet
// before questions are persisted.
func wellFormed(questions []domain.GeneratedQuestion) bool {
	if len(questions) != generator.QuestionCount {
		return false
	}
	for _, q := range questions {
		if strings.TrimSpace(q.Question) == "" || len(q.Options) != 4 {
			return false
		}
		if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex > 3 {
			return false
		}
	}
	return true
}
