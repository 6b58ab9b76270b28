// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// EvalRun is the predicate function for evalrun builders.
type EvalRun func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// ScoreResult is the predicate function for scoreresult builders.
type ScoreResult func(*sql.Selector)
