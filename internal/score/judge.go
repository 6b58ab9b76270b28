package score

import (
	"context"
	"encoding/json"

	"github.com/ysato/dokkai/internal/llm"
	"github.com/ysato/dokkai/internal/quiz"
)

// VerdictSchema defines the JSON structure a judge must return.
var VerdictSchema = &llm.Schema{
	Name:        "judge-verdict",
	Description: "A pass/fail judgment with a short rationale",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"passed": map[string]any{
				"type":        "boolean",
				"description": "Whether the question set passes this check",
			},
			"reason": map[string]any{
				"type":        "string",
				"description": "One or two sentences explaining the judgment",
			},
		},
		"required":             []any{"passed", "reason"},
		"additionalProperties": false,
	},
}

type verdictOutput struct {
	Passed bool   `json:"passed"`
	Reason string `json:"reason"`
}

// judgeScorer delegates its judgment to an external LLM judge. The
// verdict is passed through unchanged; any provider error, timeout or
// unparseable response becomes a failing Result — a judge scorer never
// silently passes and never raises.
type judgeScorer struct {
	name        string
	provider    llm.Provider
	cfg         Config
	needsSource bool
	userPrompt  func(set *quiz.QuestionSet, sourceText string) string
}

// NewQuestionRelevance builds the judge scorer that checks whether the
// questions are actually about the source passage.
func NewQuestionRelevance(provider llm.Provider, cfg Config) Scorer {
	return &judgeScorer{
		name:        "question_relevance",
		provider:    provider,
		cfg:         cfg,
		needsSource: true,
		userPrompt:  buildRelevancePrompt,
	}
}

// NewOptionQuality builds the judge scorer that checks whether the
// distractor options are plausible and clearly distinct.
func NewOptionQuality(provider llm.Provider, cfg Config) Scorer {
	return &judgeScorer{
		name:       "option_quality",
		provider:   provider,
		cfg:        cfg,
		userPrompt: buildOptionQualityPrompt,
	}
}

// NewAnswerCorrectness builds the judge scorer that checks whether the
// marked answer is actually correct given the source passage.
func NewAnswerCorrectness(provider llm.Provider, cfg Config) Scorer {
	return &judgeScorer{
		name:        "answer_correctness",
		provider:    provider,
		cfg:         cfg,
		needsSource: true,
		userPrompt:  buildCorrectnessPrompt,
	}
}

func (j *judgeScorer) Name() string { return j.name }

func (j *judgeScorer) Score(input Input) Result {
	set, err := quiz.Normalize(input.Candidate)
	if err != nil {
		return fail("%v", err)
	}
	if j.needsSource && input.SourceText == "" {
		return fail("source text is required for %s but was not provided", j.name)
	}

	ctx, cancel := context.WithTimeout(context.Background(), j.cfg.JudgeTimeout)
	defer cancel()
	ctx = llm.WithPurpose(ctx, "judge")

	req := llm.Request{
		System: judgeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: j.userPrompt(set, input.SourceText)},
		},
		Schema:      VerdictSchema,
		MaxTokens:   j.cfg.JudgeMaxTokens,
		Temperature: j.cfg.JudgeTemperature,
	}

	resp, err := j.provider.Generate(ctx, req)
	if err != nil {
		return fail("judge call failed: %v", err)
	}

	var verdict verdictOutput
	if err := json.Unmarshal(resp.Content, &verdict); err != nil {
		return fail("judge returned an unparseable verdict: %v", err)
	}

	return Result{Pass: verdict.Passed, Rationale: verdict.Reason}
}
