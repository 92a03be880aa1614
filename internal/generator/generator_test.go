package generator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-prep/internal/domain"
	"interview-prep/internal/logger"
)

func TestMain(m *testing.M) {
	logger.InitializeForTest()
	m.Run()
}

type stubProvider struct {
	name     string
	response string
	err      error
	called   bool
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Generate(_ context.Context, _ string) (string, error) {
	s.called = true
	return s.response, s.err
}

func validResponse(t *testing.T, n int) string {
	t.Helper()
	questions := make([]domain.GeneratedQuestion, n)
	for i := range questions {
		questions[i] = domain.GeneratedQuestion{
			Question:           "Question " + string(rune('A'+i)),
			Options:            []string{"a", "b", "c", "d"},
			CorrectAnswerIndex: i % 4,
			Difficulty:         "medium",
			Topic:              "general",
		}
	}
	data, err := json.Marshal(questions)
	require.NoError(t, err)
	return string(data)
}

func assertWellFormed(t *testing.T, questions []domain.GeneratedQuestion) {
	t.Helper()
	require.Len(t, questions, QuestionCount)
	for _, q := range questions {
		assert.NotEmpty(t, q.Question)
		assert.Len(t, q.Options, 4)
		assert.GreaterOrEqual(t, q.CorrectAnswerIndex, 0)
		assert.LessOrEqual(t, q.CorrectAnswerIndex, 3)
		assert.NotEmpty(t, q.Difficulty)
		assert.NotEmpty(t, q.Topic)
	}
}

func TestGenerate_FirstProviderWins(t *testing.T) {
	first := &stubProvider{name: "openai", response: validResponse(t, 5)}
	second := &stubProvider{name: "gemini", response: validResponse(t, 5)}
	gen := NewGenerator([]domain.TextGenerator{first, second}, time.Second)

	questions := gen.Generate(context.Background(), "some resume text")

	assertWellFormed(t, questions)
	assert.True(t, first.called)
	assert.False(t, second.called)
}

func TestGenerate_FallsThroughOnProviderError(t *testing.T) {
	first := &stubProvider{name: "openai", err: errors.New("quota exceeded")}
	second := &stubProvider{name: "gemini", response: validResponse(t, 5)}
	gen := NewGenerator([]domain.TextGenerator{first, second}, time.Second)

	questions := gen.Generate(context.Background(), "some resume text")

	assertWellFormed(t, questions)
	assert.True(t, first.called)
	assert.True(t, second.called)
}

func TestGenerate_FallsThroughOnShortResponse(t *testing.T) {
	first := &stubProvider{name: "openai", response: validResponse(t, 3)}
	second := &stubProvider{name: "gemini", response: validResponse(t, 5)}
	gen := NewGenerator([]domain.TextGenerator{first, second}, time.Second)

	questions := gen.Generate(context.Background(), "some resume text")

	assertWellFormed(t, questions)
	assert.True(t, second.called)
}

func TestGenerate_TruncatesLongResponse(t *testing.T) {
	provider := &stubProvider{name: "openai", response: validResponse(t, 8)}
	gen := NewGenerator([]domain.TextGenerator{provider}, time.Second)

	questions := gen.Generate(context.Background(), "some resume text")

	assertWellFormed(t, questions)
}

func TestGenerate_StripsCodeFences(t *testing.T) {
	provider := &stubProvider{
		name:     "openai",
		response: "```json\n" + validResponse(t, 5) + "\n```",
	}
	gen := NewGenerator([]domain.TextGenerator{provider}, time.Second)

	questions := gen.Generate(context.Background(), "some resume text")

	assertWellFormed(t, questions)
}

func TestGenerate_RejectsMalformedQuestions(t *testing.T) {
	bad := []domain.GeneratedQuestion{
		{Question: "only three options", Options: []string{"a", "b", "c"}, CorrectAnswerIndex: 0},
	}
	for i := 1; i < 5; i++ {
		bad = append(bad, domain.GeneratedQuestion{
			Question:           "ok",
			Options:            []string{"a", "b", "c", "d"},
			CorrectAnswerIndex: 0,
		})
	}
	data, err := json.Marshal(bad)
	require.NoError(t, err)

	first := &stubProvider{name: "openai", response: string(data)}
	second := &stubProvider{name: "gemini", response: validResponse(t, 5)}
	gen := NewGenerator([]domain.TextGenerator{first, second}, time.Second)

	questions := gen.Generate(context.Background(), "some resume text")

	assertWellFormed(t, questions)
	assert.True(t, second.called)
}

func TestGenerate_BankMatchesResumeSkills(t *testing.T) {
	gen := NewGenerator(nil, 0)

	resume := "Senior engineer with React, Node.js and Docker experience"
	questions := gen.Generate(context.Background(), resume)

	assertWellFormed(t, questions)

	topics := make(map[string]bool)
	for _, q := range questions {
		topics[q.Topic] = true
	}
	assert.True(t, topics["react"])
	assert.True(t, topics["backend"])
	assert.True(t, topics["devops"])
}

func TestGenerate_BankPadsWithGenerics(t *testing.T) {
	gen := NewGenerator(nil, 0)

	// No skill keywords at all: every question comes from the generic pool.
	questions := gen.Generate(context.Background(), "I enjoy long walks on the beach")

	assertWellFormed(t, questions)
	seen := make(map[string]bool)
	for _, q := range questions {
		assert.False(t, seen[q.Question], "duplicate question %q", q.Question)
		seen[q.Question] = true
	}
}

func TestGenerate_BankAlwaysTerminates(t *testing.T) {
	gen := NewGenerator(nil, 0)
	for i := 0; i < 50; i++ {
		questions := gen.Generate(context.Background(), "kubernetes and terraform only")
		assertWellFormed(t, questions)
	}
}

func TestParseQuestions_ExtractsArrayFromProse(t *testing.T) {
	raw := "Here are your questions:\n" + validResponse(t, 5) + "\nGood luck!"
	questions, err := parseQuestions(raw)
	require.NoError(t, err)
	assert.Len(t, questions, 5)
}

func TestParseQuestions_NoArray(t *testing.T) {
	_, err := parseQuestions("sorry, I cannot help with that")
	assert.Error(t, err)
}

func TestPreseededQuestions(t *testing.T) {
	questions := PreseededQuestions()
	require.Len(t, questions, QuestionCount)
	for _, q := range questions {
		assert.Len(t, q.Options, 4)
	}
}
