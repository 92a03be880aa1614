package domain

import "context"

// TextGenerator is the port for an external text-generation service.
// Implementations may fail or return malformed text; callers treat any
// error or unusable payload as a tier failure, never as fatal.
type TextGenerator interface {
	// Name identifies the provider in logs.
	Name() string
	// Generate sends a prompt and returns the raw model response text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratedQuestion is the shape produced by every generation tier before
// normalization. External models are prompted to emit exactly this JSON.
type GeneratedQuestion struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Difficulty         string   `json:"difficulty"`
	Topic              string   `json:"topic"`
}

// NormalizeQuestions maps generator output into the canonical persisted
// question shape. It is a pure, order-preserving 1:1 mapping: no
// filtering, no reordering. Missing difficulty defaults to "medium",
// missing topic to "general".
func NormalizeQuestions(generated []GeneratedQuestion) []Question {
	normalized := make([]Question, len(generated))
	for i, g := range generated {
		difficulty := g.Difficulty
		if difficulty == "" {
			difficulty = "medium"
		}
		topic := g.Topic
		if topic == "" {
			topic = "general"
		}
		normalized[i] = Question{
			Question:      g.Question,
			Options:       g.Options,
			CorrectAnswer: g.CorrectAnswerIndex,
			Difficulty:    difficulty,
			Topic:         topic,
		}
	}
	return normalized
}
