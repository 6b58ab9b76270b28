package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScoreResult is one scorer's verdict on one sample within an EvalRun.
type ScoreResult struct {
	ent.Schema
}

func (ScoreResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Immutable().
			Comment("EvalRun.run_id this result belongs to"),
		field.String("sample_id").
			Comment("Dataset sample identifier"),
		field.String("scorer").
			Comment("Scorer name, e.g. schema_valid"),
		field.Bool("pass"),
		field.Text("rationale").
			Default(""),
	}
}

func (ScoreResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("run_id", "scorer"),
	}
}
