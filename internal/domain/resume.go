package domain

import (
	"strings"
	"time"
)

// MinResumeTextLength is the minimum accepted length of extracted resume
// text, enforced before any analysis runs.
const MinResumeTextLength = 50

// ResumeAnalysis is the derived view of a resume: either AI-produced or
// heuristically extracted. It is always present on a stored resume.
type ResumeAnalysis struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experienceYears"`
	Projects        []string `json:"projects"`
	Strengths       []string `json:"strengths"`
}

// Score derives the 0-100 resume quality score from analysis facet
// presence: 25 points per non-empty facet.
func (a ResumeAnalysis) Score() int {
	score := 0
	if len(a.Skills) > 0 {
		score += 25
	}
	if a.ExperienceYears > 0 {
		score += 25
	}
	if len(a.Projects) > 0 {
		score += 25
	}
	if len(a.Strengths) > 0 {
		score += 25
	}
	return score
}

// Resume is one uploaded resume. Resumes are immutable after creation;
// newer uploads supersede older ones, and the most recent by creation
// time is the active resume for interview generation.
type Resume struct {
	ID        string
	UserID    string
	RawText   string
	Summary   string
	Skills    []string
	Score     int
	Analysis  ResumeAnalysis
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate validates the resume
func (r *Resume) Validate() error {
	if r.UserID == "" {
		return NewInvalidInputError("user ID is required")
	}
	if len(strings.TrimSpace(r.RawText)) < MinResumeTextLength {
		return NewError(CodeResumeTooShort, "Resume text too short (minimum 50 characters)", nil)
	}
	return nil
}
