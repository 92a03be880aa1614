// Package analyzer extracts a deterministic resume analysis from raw text.
// It is the heuristic counterpart of the AI resume analysis: pure, total,
// and safe for any input including the empty string.
package analyzer

import (
	"regexp"
	"strconv"
	"strings"

	"interview-prep/internal/domain"
)

// MaxSkills caps how many matched skills the analysis reports.
const MaxSkills = 10

const (
	maxProjects      = 3
	maxProjectLength = 100
	minProjectLength = 20
)

// skillVocabulary is the fixed set of technology and soft-skill keywords
// matched case-insensitively as substrings.
var skillVocabulary = []string{
	"javascript", "python", "java", "react", "node.js", "typescript", "html", "css",
	"sql", "mongodb", "express", "angular", "vue", "git", "docker", "kubernetes",
	"aws", "azure", "machine learning", "data science", "ai", "api", "rest",
	"agile", "scrum", "leadership", "communication", "problem solving",
}

// projectVerbs mark a line as describing a project.
var projectVerbs = []string{"project", "developed", "built", "created", "designed", "implemented"}

var experiencePattern = regexp.MustCompile(`(?i)(\d+)\s*(years?|yrs?)\s*(of)?\s*(experience|exp)`)
var numberPattern = regexp.MustCompile(`\d+`)

// Analyze derives skills, experience years, project lines and strengths
// from raw resume text. Experience years is 0 when the text carries no
// recognizable experience statement; callers that score resumes substitute
// 1 for 0 so an unparsed resume is never reported as "no experience".
func Analyze(rawText string) domain.ResumeAnalysis {
	textLower := strings.ToLower(rawText)

	var foundSkills []string
	for _, skill := range skillVocabulary {
		if strings.Contains(textLower, skill) {
			foundSkills = append(foundSkills, skill)
		}
	}

	experienceYears := 0
	if match := experiencePattern.FindString(rawText); match != "" {
		if num := numberPattern.FindString(match); num != "" {
			experienceYears, _ = strconv.Atoi(num)
		}
	}

	var projects []string
	for _, line := range strings.Split(rawText, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) <= minProjectLength {
			continue
		}
		lineLower := strings.ToLower(trimmed)
		for _, verb := range projectVerbs {
			if strings.Contains(lineLower, verb) {
				if len(trimmed) > maxProjectLength {
					trimmed = trimmed[:maxProjectLength]
				}
				projects = append(projects, trimmed)
				break
			}
		}
		if len(projects) >= maxProjects {
			break
		}
	}

	var strengths []string
	if len(foundSkills) > 5 {
		strengths = append(strengths, "Diverse technical skill set")
	}
	if experienceYears > 2 {
		strengths = append(strengths, "Experienced professional")
	}
	if len(projects) > 0 {
		strengths = append(strengths, "Hands-on project experience")
	}
	if strings.Contains(textLower, "lead") || strings.Contains(textLower, "manage") {
		strengths = append(strengths, "Leadership experience")
	}
	if len(strengths) == 0 {
		strengths = []string{"Strong communication skills", "Quick learner"}
	}

	skills := foundSkills
	if len(skills) > MaxSkills {
		skills = skills[:MaxSkills]
	}

	return domain.ResumeAnalysis{
		Skills:          skills,
		ExperienceYears: experienceYears,
		Projects:        projects,
		Strengths:       strengths,
	}
}
