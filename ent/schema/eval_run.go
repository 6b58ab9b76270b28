package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvalRun is one evaluation of a generation configuration over a dataset.
type EvalRun struct {
	ent.Schema
}

func (EvalRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Unique().
			Immutable().
			Comment("UUID assigned by the harness"),
		field.String("dataset").
			Comment("Dataset file path, or 'builtin'"),
		field.String("provider").
			Comment("LLM provider used for generation"),
		field.String("model").
			Comment("Model ID used for generation"),
		field.String("prompt_style").
			Comment("Generation prompt style: direct or reasoned"),
		field.Bool("judges_enabled").
			Default(false).
			Comment("Whether the LLM judge scorers were active"),
		field.Int("sample_count").
			Comment("Number of dataset samples evaluated"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("finished_at"),
	}
}

func (EvalRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("started_at"),
	}
}
