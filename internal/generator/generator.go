package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"interview-prep/internal/domain"
	"interview-prep/internal/logger"
)

const (
	// QuestionCount is the fixed number of questions per interview.
	QuestionCount = 5

	// promptResumeChars bounds how much resume text goes into the prompt.
	promptResumeChars = 2000
)

// Generator turns resume text into interview questions. External providers
// are tried in order; any failure falls through to the next, and the local
// question bank guarantees a result when every provider fails.
type Generator struct {
	providers []domain.TextGenerator
	timeout   time.Duration
}

func NewGenerator(providers []domain.TextGenerator, timeout time.Duration) *Generator {
	return &Generator{providers: providers, timeout: timeout}
}

// Generate never returns an error: provider failures are logged and the
// local bank serves as the terminal tier.
func (g *Generator) Generate(ctx context.Context, resumeText string) []domain.GeneratedQuestion {
	log := logger.Get()
	for _, p := range g.providers {
		questions, err := g.tryProvider(ctx, p, resumeText)
		if err != nil {
			log.Warn("question provider failed, falling back",
				zap.String("provider", p.Name()),
				zap.Error(err))
			continue
		}
		log.Info("questions generated",
			zap.String("provider", p.Name()),
			zap.Int("count", len(questions)))
		return questions
	}
	log.Info("generating questions from local bank")
	return g.generateFromBank(resumeText)
}

func (g *Generator) tryProvider(ctx context.Context, p domain.TextGenerator, resumeText string) ([]domain.GeneratedQuestion, error) {
	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := p.Generate(callCtx, buildPrompt(resumeText))
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	questions, err := parseQuestions(resp)
	if err != nil {
		return nil, err
	}
	if len(questions) < QuestionCount {
		return nil, fmt.Errorf("provider returned %d questions, need %d", len(questions), QuestionCount)
	}
	questions = questions[:QuestionCount]
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, fmt.Errorf("question %d has empty text", i)
		}
		if len(q.Options) != 4 {
			return nil, fmt.Errorf("question %d has %d options, need 4", i, len(q.Options))
		}
		if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex > 3 {
			return nil, fmt.Errorf("question %d has answer index %d out of range", i, q.CorrectAnswerIndex)
		}
	}
	return questions, nil
}

func buildPrompt(resumeText string) string {
	excerpt := resumeText
	if len(excerpt) > promptResumeChars {
		excerpt = excerpt[:promptResumeChars]
	}
	return fmt.Sprintf(`Based on this resume, generate 5 technical interview questions as multiple choice questions.

Resume:
%s

Return ONLY a JSON array with this exact structure:
[
  {
    "question": "question text",
    "options": ["option A", "option B", "option C", "option D"],
    "correctAnswerIndex": 0,
    "difficulty": "easy|medium|hard",
    "topic": "topic name"
  }
]

Generate exactly 5 questions tailored to the candidate's skills and experience.`, excerpt)
}

func parseQuestions(raw string) ([]domain.GeneratedQuestion, error) {
	cleaned := stripCodeFences(raw)

	var questions []domain.GeneratedQuestion
	if err := json.Unmarshal([]byte(cleaned), &questions); err == nil {
		return questions, nil
	}

	// Some models wrap the array in prose. Retry on the outermost bracket pair.
	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON array in provider response")
	}
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &questions); err != nil {
		return nil, fmt.Errorf("parse provider response: %w", err)
	}
	return questions, nil
}

func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// generateFromBank matches resume keywords against the skill table in
// table order, then pads with shuffled generic questions until the count
// is reached. Padding skips questions already selected.
func (g *Generator) generateFromBank(resumeText string) []domain.GeneratedQuestion {
	textLower := strings.ToLower(resumeText)

	questions := make([]domain.GeneratedQuestion, 0, QuestionCount)
	for _, entry := range skillBank {
		if strings.Contains(textLower, entry.Skill) {
			questions = append(questions, entry.Question)
		}
	}

	pool := make([]domain.GeneratedQuestion, len(genericPool))
	copy(pool, genericPool)
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	for _, q := range pool {
		if len(questions) >= QuestionCount {
			break
		}
		if containsQuestion(questions, q.Question) {
			continue
		}
		questions = append(questions, q)
	}

	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	return questions[:QuestionCount]
}

func containsQuestion(questions []domain.GeneratedQuestion, text string) bool {
	for _, q := range questions {
		if q.Question == text {
			return true
		}
	}
	return false
}
