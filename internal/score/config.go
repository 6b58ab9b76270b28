package score

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ysato/dokkai/internal/llm"
)

// DefaultMinQuestions is the minimum question count for the
// sufficient_count scorer: one question per category bucket.
const DefaultMinQuestions = 3

// Config controls which scorers run and how the judge scorers behave.
type Config struct {
	// MinQuestions is the sufficient_count threshold.
	MinQuestions int

	// EnableJudges turns on the LLM judge scorers. When false they are
	// excluded from the suite entirely — not run, not reported.
	EnableJudges bool

	// JudgeTimeout bounds a single judge call. An exceeded timeout is a
	// failing verdict for that scorer, never an error to the caller.
	JudgeTimeout time.Duration

	// JudgeMaxTokens is the token budget for a judge response.
	JudgeMaxTokens int

	// JudgeTemperature controls judge output randomness. Judges should
	// be near-deterministic.
	JudgeTemperature float64
}

// DefaultConfig returns a Config with the rule scorers only and
// recommended judge settings for when they are enabled.
func DefaultConfig() Config {
	return Config{
		MinQuestions:     DefaultMinQuestions,
		EnableJudges:     false,
		JudgeTimeout:     60 * time.Second,
		JudgeMaxTokens:   512,
		JudgeTemperature: 0.0,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for unset values.
//
//	DOKKAI_ENABLE_JUDGES  "true"/"1" enables the judge scorers
//	DOKKAI_MIN_QUESTIONS  sufficient_count threshold
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("DOKKAI_ENABLE_JUDGES"); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes":
			cfg.EnableJudges = true
		}
	}
	if v := os.Getenv("DOKKAI_MIN_QUESTIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MinQuestions = n
		}
	}

	return cfg
}

// Suite returns the active ordered scorer list for the given config.
// The judge provider is only consulted when judges are enabled; pass
// nil when they are not.
func Suite(cfg Config, judge llm.Provider) []Scorer {
	scorers := []Scorer{
		SchemaValid{},
		CategoryCoverage{},
		OptionsUnique{},
		AnswerValid{},
		SufficientCount{Min: cfg.MinQuestions},
	}

	if cfg.EnableJudges && judge != nil {
		scorers = append(scorers,
			NewQuestionRelevance(judge, cfg),
			NewOptionQuality(judge, cfg),
			NewAnswerCorrectness(judge, cfg),
		)
	}

	return scorers
}
