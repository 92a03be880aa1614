package textgen

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"interview-prep/internal/domain"
)

// GoogleAIGenerator implements domain.TextGenerator on the Gemini API.
type GoogleAIGenerator struct {
	llm *googleai.GoogleAI
}

func NewGoogleAIGenerator(ctx context.Context, apiKey, model string) (*GoogleAIGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google ai api key cannot be empty")
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create google ai client: %w", err)
	}
	return &GoogleAIGenerator{llm: llm}, nil
}

func (g *GoogleAIGenerator) Name() string { return "gemini" }

func (g *GoogleAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, g.llm, prompt,
		llms.WithTemperature(0.7),
	)
}

var _ domain.TextGenerator = (*GoogleAIGenerator)(nil)
