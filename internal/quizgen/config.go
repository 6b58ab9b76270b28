package quizgen

import (
	"fmt"
	"os"
)

// Style selects how the generation prompt is built.
type Style string

const (
	// StyleDirect asks for the question set in a single shot.
	StyleDirect Style = "direct"

	// StyleReasoned asks the model to analyze the passage step by step
	// before producing questions.
	StyleReasoned Style = "reasoned"
)

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Style selects the prompt style. Both styles produce the same
	// QuestionSet shape; consumers never depend on which was used.
	Style Style

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		Style:       StyleReasoned,
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// ConfigFromEnv builds a Config from DOKKAI_* environment variables,
// falling back to defaults for anything unset.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if s := os.Getenv("DOKKAI_PROMPT_STYLE"); s != "" {
		switch Style(s) {
		case StyleDirect, StyleReasoned:
			cfg.Style = Style(s)
		default:
			return Config{}, fmt.Errorf("invalid DOKKAI_PROMPT_STYLE %q (want %q or %q)", s, StyleDirect, StyleReasoned)
		}
	}

	return cfg, nil
}
