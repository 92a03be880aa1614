package domain

import (
	"math"
	"time"
)

// Interview lifecycle states. An interview is created in-progress and
// flips to completed exactly once, at submission.
const (
	InterviewStatusInProgress = "in-progress"
	InterviewStatusCompleted  = "completed"
)

// Points awarded per correctly answered question.
const PointsPerQuestion = 10

// Question is one multiple-choice question embedded in an interview.
// CorrectAnswer is fixed at creation; UserAnswer, Score and Feedback are
// set exactly once, at submission.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	UserAnswer    *int     `json:"userAnswer,omitempty"`
	Score         *int     `json:"score,omitempty"`
	Feedback      string   `json:"feedback,omitempty"`
	Topic         string   `json:"topic"`
	Difficulty    string   `json:"difficulty"`
}

// Interview represents one practice quiz session.
type Interview struct {
	ID             string
	UserID         string
	ResumeID       string
	Questions      []Question
	Status         string
	TotalQuestions int
	OverallScore   *int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewInterview creates an in-progress interview for the given questions.
func NewInterview(userID, resumeID string, questions []Question) *Interview {
	now := time.Now()
	return &Interview{
		UserID:         userID,
		ResumeID:       resumeID,
		Questions:      questions,
		Status:         InterviewStatusInProgress,
		TotalQuestions: len(questions),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Validate validates the interview
func (i *Interview) Validate() error {
	if i.UserID == "" {
		return NewInvalidInputError("user ID is required")
	}
	if i.ResumeID == "" {
		return NewInvalidInputError("resume ID is required")
	}
	if len(i.Questions) == 0 {
		return NewInvalidInputError("at least one question is required")
	}
	if i.TotalQuestions != len(i.Questions) {
		return NewInvalidInputError("total questions must match question count")
	}
	return nil
}

// ScoreAnswers scores a positional answers slice against the questions and
// returns a new question slice plus the overall score. Feedback and scores
// on the input are not mutated; the persistence write is the caller's only
// mutation point. An answers slice shorter than the question list leaves
// the trailing questions unanswered and scored zero.
func ScoreAnswers(questions []Question, answers []int) ([]Question, int) {
	scored := make([]Question, len(questions))
	totalScore := 0

	for i, q := range questions {
		sq := q
		if i < len(answers) {
			answer := answers[i]
			sq.UserAnswer = &answer
			score := 0
			if answer == q.CorrectAnswer {
				score = PointsPerQuestion
				sq.Feedback = "Correct answer"
			} else {
				sq.Feedback = "Incorrect answer"
			}
			sq.Score = &score
			totalScore += score
		} else {
			score := 0
			sq.Score = &score
			sq.Feedback = "Incorrect answer"
		}
		scored[i] = sq
	}

	overall := 0
	if len(questions) > 0 {
		overall = int(math.Round(float64(totalScore) / float64(len(questions)*PointsPerQuestion) * 100))
	}
	return scored, overall
}
