package quizgen

import (
	"context"
	"encoding/json"

	"github.com/ysato/dokkai/internal/quiz"
)

// Input carries the reading passage to generate questions from.
type Input struct {
	// Passage is the Japanese reading text (news article, story, etc.).
	Passage string
}

// Candidate is one generation attempt: the provider's JSON payload and
// the question set decoded from it. Raw is what scorers must consume —
// decoding into the typed set fills missing fields with zero values, so
// only the raw payload can reveal schema problems.
type Candidate struct {
	Raw json.RawMessage
	Set *quiz.QuestionSet
}

// Generator produces comprehension questions for a Japanese passage
// using an LLM provider.
type Generator interface {
	// Generate produces a candidate for the given passage. The result
	// has passed JSON decoding but not the scorer suite.
	Generate(ctx context.Context, input Input) (*Candidate, error)
}
