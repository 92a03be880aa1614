package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"interview-prep/internal/analyzer"
	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/extract"
	"interview-prep/internal/logger"
	"interview-prep/internal/repository"
	"interview-prep/internal/repository/models"
	"interview-prep/internal/util"
)

// analysisPromptChars bounds how much resume text goes into the analysis
// prompt.
const analysisPromptChars = 3000

// ResumeService handles resume upload, analysis and scoring.
type ResumeService interface {
	Upload(ctx context.Context, userID string, data []byte, mimeType, fileName string) (*dto.UploadResumeResponse, error)
	GetLatest(ctx context.Context, userID string) (*dto.ResumeResponse, error)
}

type resumeServiceImpl struct {
	resumeRepo     repository.ResumeRepository
	userRepo       repository.UserRepository
	providers      []domain.TextGenerator
	timeout        time.Duration
	dashboardCache DashboardCacheService
}

// NewResumeService creates a new ResumeService. The providers are tried
// in order for the structured analysis, each call bounded by timeout; all
// of them failing falls back to the heuristic analyzer.
func NewResumeService(
	resumeRepo repository.ResumeRepository,
	userRepo repository.UserRepository,
	providers []domain.TextGenerator,
	timeout time.Duration,
	dashboardCache DashboardCacheService,
) ResumeService {
	return &resumeServiceImpl{
		resumeRepo:     resumeRepo,
		userRepo:       userRepo,
		providers:      providers,
		timeout:        timeout,
		dashboardCache: dashboardCache,
	}
}

func (s *resumeServiceImpl) Upload(ctx context.Context, userID string, data []byte, mimeType, fileName string) (*dto.UploadResumeResponse, error) {
	appLogger := logger.Get()

	rawText, err := extract.Text(data, mimeType, fileName)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(rawText)) < domain.MinResumeTextLength {
		return nil, domain.NewError(domain.CodeResumeTooShort,
			"Resume text too short (minimum 50 characters)", nil)
	}

	analysis := s.analyze(ctx, rawText)

	resume := &domain.Resume{
		ID:       util.NewULID(),
		UserID:   userID,
		RawText:  rawText,
		Summary:  strings.Join(analysis.Strengths, ". "),
		Skills:   analysis.Skills,
		Score:    analysis.Score(),
		Analysis: analysis,
	}
	if err := resume.Validate(); err != nil {
		return nil, err
	}

	row := models.ResumeFromDomain(resume)
	if err := s.resumeRepo.CreateResume(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to store resume: %w", err)
	}
	resume.CreatedAt = row.CreatedAt
	resume.UpdatedAt = row.UpdatedAt

	// Independent write, same as the resume insert: a failure here leaves
	// the stored resume in place and only logs.
	if err := s.userRepo.UpdateUserSkills(ctx, userID, models.StringSlice(analysis.Skills)); err != nil {
		appLogger.Warn("Failed to update user skills after resume upload",
			zap.String("userID", userID), zap.Error(err))
	}

	s.dashboardCache.Invalidate(ctx, userID)

	appLogger.Info("Resume uploaded and analyzed",
		zap.String("userID", userID),
		zap.String("resumeID", resume.ID),
		zap.Int("score", resume.Score))

	return &dto.UploadResumeResponse{
		Message: "Resume uploaded and analyzed successfully",
		Resume:  dto.NewResumeResponse(resume),
	}, nil
}

func (s *resumeServiceImpl) GetLatest(ctx context.Context, userID string) (*dto.ResumeResponse, error) {
	row, err := s.resumeRepo.GetLatestResumeByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resume: %w", err)
	}
	if row == nil {
		return nil, domain.NewNoResumeError()
	}
	resp := dto.NewResumeResponse(row.ToDomain())
	return &resp, nil
}

// analyze tries the structured AI analysis first and falls back to the
// heuristic analyzer.
func (s *resumeServiceImpl) analyze(ctx context.Context, rawText string) domain.ResumeAnalysis {
	appLogger := logger.Get()

	for _, p := range s.providers {
		analysis, err := s.tryAIAnalysis(ctx, p, rawText)
		if err != nil {
			appLogger.Warn("AI resume analysis failed, falling back",
				zap.String("provider", p.Name()), zap.Error(err))
			continue
		}
		appLogger.Info("AI resume analysis succeeded", zap.String("provider", p.Name()))
		return analysis
	}

	// Defaults apply only to the heuristic path; AI output is stored as
	// returned, so a thin AI analysis can still score below 100.
	return applyAnalysisDefaults(analyzer.Analyze(rawText))
}

func (s *resumeServiceImpl) tryAIAnalysis(ctx context.Context, p domain.TextGenerator, rawText string) (domain.ResumeAnalysis, error) {
	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	excerpt := rawText
	if len(excerpt) > analysisPromptChars {
		excerpt = excerpt[:analysisPromptChars]
	}
	prompt := fmt.Sprintf(`Analyze this resume and return ONLY a valid JSON object with these exact fields:
{
  "skills": ["skill1", "skill2", "skill3"],
  "experienceYears": 3,
  "projects": ["project1", "project2"],
  "strengths": ["strength1", "strength2"]
}

Resume text:
%s

Return ONLY the JSON object, no other text.`, excerpt)

	resp, err := p.Generate(callCtx, prompt)
	if err != nil {
		return domain.ResumeAnalysis{}, err
	}

	cleaned := strings.TrimSpace(resp)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var analysis domain.ResumeAnalysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return domain.ResumeAnalysis{}, fmt.Errorf("parse analysis response: %w", err)
	}
	return analysis, nil
}

// applyAnalysisDefaults fills empty facets so the stored analysis never
// reports a blank resume.
func applyAnalysisDefaults(a domain.ResumeAnalysis) domain.ResumeAnalysis {
	if len(a.Skills) == 0 {
		a.Skills = []string{"General IT skills"}
	}
	if len(a.Skills) > analyzer.MaxSkills {
		a.Skills = a.Skills[:analyzer.MaxSkills]
	}
	if a.ExperienceYears == 0 {
		a.ExperienceYears = 1
	}
	if len(a.Projects) == 0 {
		a.Projects = []string{"Professional work experience"}
	}
	if len(a.Strengths) == 0 {
		a.Strengths = []string{"Strong communication skills", "Quick learner"}
	}
	return a
}
