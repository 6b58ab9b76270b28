package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ysato/dokkai/internal/llm"
	"github.com/ysato/dokkai/internal/quiz"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionSetOutput is the raw LLM response. Reasoning is only present
// for the reasoned style and is dropped after decoding.
type questionSetOutput struct {
	Reasoning string          `json:"reasoning"`
	Questions []quiz.Question `json:"questions"`
}

// Generate produces a candidate question set for the given passage.
func (g *LLMGenerator) Generate(ctx context.Context, input Input) (*Candidate, error) {
	if strings.TrimSpace(input.Passage) == "" {
		return nil, fmt.Errorf("empty passage")
	}

	ctx = llm.WithPurpose(ctx, "question-gen")

	system := directSystemPrompt
	schema := QuestionSetSchema
	if g.config.Style == StyleReasoned {
		system = reasonedSystemPrompt
		schema = ReasonedQuestionSetSchema
	}

	req := llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      schema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var out questionSetOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	return &Candidate{
		Raw: resp.Content,
		Set: &quiz.QuestionSet{Questions: out.Questions},
	}, nil
}
