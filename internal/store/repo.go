package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter by purpose label ("" = all)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is the read model for a recorded LLM request.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsage aggregates token consumption for one purpose label.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token consumption for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events, most recent first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// EvalRunRecord describes one evaluation run over a dataset.
type EvalRunRecord struct {
	ID            string // UUID assigned by the harness
	Dataset       string
	Provider      string
	Model         string
	PromptStyle   string
	JudgesEnabled bool
	SampleCount   int
	StartedAt     time.Time
	FinishedAt    time.Time
}

// ScoreRecord is one scorer verdict on one sample within a run.
type ScoreRecord struct {
	RunID     string
	SampleID  string
	Scorer    string
	Pass      bool
	Rationale string
}

// RunRepo persists evaluation runs and their per-sample scorer results.
type RunRepo interface {
	// SaveRun stores a finished run together with all its results.
	SaveRun(ctx context.Context, run *EvalRunRecord, results []ScoreRecord) error

	// ListRuns returns runs, most recent first.
	ListRuns(ctx context.Context, limit int) ([]EvalRunRecord, error)

	// GetRun returns one run and its results, or (nil, nil, nil) if the
	// run ID is unknown.
	GetRun(ctx context.Context, runID string) (*EvalRunRecord, []ScoreRecord, error)
}
