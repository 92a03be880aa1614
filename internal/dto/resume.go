package dto

import (
	"time"

	"interview-prep/internal/domain"
)

// ResumeAnalysisResponse mirrors the stored analysis facets.
type ResumeAnalysisResponse struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experienceYears"`
	Projects        []string `json:"projects"`
	Strengths       []string `json:"strengths"`
}

// ResumeResponse is returned after upload and embedded in the dashboard.
type ResumeResponse struct {
	ID        string                 `json:"id"`
	Summary   string                 `json:"summary"`
	Skills    []string               `json:"skills"`
	Score     int                    `json:"score"`
	Analysis  ResumeAnalysisResponse `json:"analysis"`
	CreatedAt time.Time              `json:"createdAt"`
}

// UploadResumeResponse is the response body for POST /api/resume/upload.
type UploadResumeResponse struct {
	Message string         `json:"message"`
	Resume  ResumeResponse `json:"resume"`
}

// NewResumeResponse maps a domain resume to its API view.
func NewResumeResponse(r *domain.Resume) ResumeResponse {
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	analysis := ResumeAnalysisResponse{
		Skills:          r.Analysis.Skills,
		ExperienceYears: r.Analysis.ExperienceYears,
		Projects:        r.Analysis.Projects,
		Strengths:       r.Analysis.Strengths,
	}
	if analysis.Skills == nil {
		analysis.Skills = []string{}
	}
	if analysis.Projects == nil {
		analysis.Projects = []string{}
	}
	if analysis.Strengths == nil {
		analysis.Strengths = []string{}
	}
	return ResumeResponse{
		ID:        r.ID,
		Summary:   r.Summary,
		Skills:    skills,
		Score:     r.Score,
		Analysis:  analysis,
		CreatedAt: r.CreatedAt,
	}
}
