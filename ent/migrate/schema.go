// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EvalRunsColumns holds the columns for the "eval_runs" table.
	EvalRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "dataset", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "prompt_style", Type: field.TypeString},
		{Name: "judges_enabled", Type: field.TypeBool, Default: false},
		{Name: "sample_count", Type: field.TypeInt},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime},
	}
	// EvalRunsTable holds the schema information for the "eval_runs" table.
	EvalRunsTable = &schema.Table{
		Name:       "eval_runs",
		Columns:    EvalRunsColumns,
		PrimaryKey: []*schema.Column{EvalRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evalrun_run_id",
				Unique:  false,
				Columns: []*schema.Column{EvalRunsColumns[1]},
			},
			{
				Name:    "evalrun_started_at",
				Unique:  false,
				Columns: []*schema.Column{EvalRunsColumns[8]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ScoreResultsColumns holds the columns for the "score_results" table.
	ScoreResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "sample_id", Type: field.TypeString},
		{Name: "scorer", Type: field.TypeString},
		{Name: "pass", Type: field.TypeBool},
		{Name: "rationale", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// ScoreResultsTable holds the schema information for the "score_results" table.
	ScoreResultsTable = &schema.Table{
		Name:       "score_results",
		Columns:    ScoreResultsColumns,
		PrimaryKey: []*schema.Column{ScoreResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scoreresult_run_id",
				Unique:  false,
				Columns: []*schema.Column{ScoreResultsColumns[1]},
			},
			{
				Name:    "scoreresult_run_id_scorer",
				Unique:  false,
				Columns: []*schema.Column{ScoreResultsColumns[1], ScoreResultsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EvalRunsTable,
		LlmRequestEventsTable,
		ScoreResultsTable,
	}
)

func init() {
}
