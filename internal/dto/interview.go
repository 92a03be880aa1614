package dto

import (
	"time"

	"interview-prep/internal/domain"
)

// SanitizedQuestion is a question as shown to a candidate before
// submission. The correct answer index never leaves the server here.
type SanitizedQuestion struct {
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Topic      string   `json:"topic"`
	Difficulty string   `json:"difficulty"`
}

// StartInterviewResponse is the response body for POST /api/interview/start.
type StartInterviewResponse struct {
	InterviewID    string              `json:"interviewId"`
	Questions      []SanitizedQuestion `json:"questions"`
	TotalQuestions int                 `json:"totalQuestions"`
	Status         string              `json:"status"`
}

// SubmitInterviewRequest is the request body for POST /api/interview/submit.
// Answers are positional option indices, one per question.
type SubmitInterviewRequest struct {
	InterviewID string `json:"interviewId"`
	Answers     []int  `json:"answers"`
}

// ScoredQuestion is a question after submission, correct answer revealed.
type ScoredQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	UserAnswer    *int     `json:"userAnswer"`
	Score         int      `json:"score"`
	Feedback      string   `json:"feedback"`
	Topic         string   `json:"topic"`
	Difficulty    string   `json:"difficulty"`
}

// SubmitInterviewResponse is the response body for POST /api/interview/submit.
type SubmitInterviewResponse struct {
	InterviewID  string           `json:"interviewId"`
	OverallScore int              `json:"overallScore"`
	Questions    []ScoredQuestion `json:"questions"`
	Status       string           `json:"status"`
}

// InterviewHistoryItem is one completed session in the dashboard history
// list, questions and answers included.
type InterviewHistoryItem struct {
	ID             string           `json:"id"`
	Score          int              `json:"score"`
	TotalQuestions int              `json:"totalQuestions"`
	CorrectAnswers int              `json:"correctAnswers"`
	Accuracy       int              `json:"accuracy"`
	Status         string           `json:"status"`
	CreatedAt      time.Time        `json:"createdAt"`
	Questions      []ScoredQuestion `json:"questions"`
}

// NewStartInterviewResponse strips answers from a freshly created interview.
func NewStartInterviewResponse(interview *domain.Interview) StartInterviewResponse {
	questions := make([]SanitizedQuestion, len(interview.Questions))
	for i, q := range interview.Questions {
		questions[i] = SanitizedQuestion{
			Question:   q.Question,
			Options:    q.Options,
			Topic:      q.Topic,
			Difficulty: q.Difficulty,
		}
	}
	return StartInterviewResponse{
		InterviewID:    interview.ID,
		Questions:      questions,
		TotalQuestions: interview.TotalQuestions,
		Status:         interview.Status,
	}
}

// NewSubmitInterviewResponse maps a scored interview to the full result view.
func NewSubmitInterviewResponse(interview *domain.Interview) SubmitInterviewResponse {
	questions := make([]ScoredQuestion, len(interview.Questions))
	for i, q := range interview.Questions {
		score := 0
		if q.Score != nil {
			score = *q.Score
		}
		questions[i] = ScoredQuestion{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			UserAnswer:    q.UserAnswer,
			Score:         score,
			Feedback:      q.Feedback,
			Topic:         q.Topic,
			Difficulty:    q.Difficulty,
		}
	}
	overall := 0
	if interview.OverallScore != nil {
		overall = *interview.OverallScore
	}
	return SubmitInterviewResponse{
		InterviewID:  interview.ID,
		OverallScore: overall,
		Questions:    questions,
		Status:       interview.Status,
	}
}
