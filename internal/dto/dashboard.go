package dto

// DashboardResponse is the aggregate snapshot for GET /api/dashboard.
// It is cached as a whole and invalidated on resume upload and interview
// submission.
type DashboardResponse struct {
	User                   UserResponse           `json:"user"`
	ProfileCompletion      int                    `json:"profileCompletion"`
	ResumeScore            int                    `json:"resumeScore"`
	InterviewReadiness     string                 `json:"interviewReadiness"`
	TotalSessions          int                    `json:"totalSessions"`
	AverageScore           int                    `json:"averageScore"`
	TotalQuestionsAnswered int                    `json:"totalQuestionsAnswered"`
	TotalCorrectAnswers    int                    `json:"totalCorrectAnswers"`
	AccuracyPercentage     int                    `json:"accuracyPercentage"`
	InterviewHistory       []InterviewHistoryItem `json:"interviewHistory"`
	Resume                 *ResumeResponse        `json:"resume"`
}
