// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ysato/dokkai/ent/evalrun"
)

// EvalRun is the model entity for the EvalRun schema.
type EvalRun struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID assigned by the harness
	RunID string `json:"run_id,omitempty"`
	// Dataset file path, or 'builtin'
	Dataset string `json:"dataset,omitempty"`
	// LLM provider used for generation
	Provider string `json:"provider,omitempty"`
	// Model ID used for generation
	Model string `json:"model,omitempty"`
	// Generation prompt style: direct or reasoned
	PromptStyle string `json:"prompt_style,omitempty"`
	// Whether the LLM judge scorers were active
	JudgesEnabled bool `json:"judges_enabled,omitempty"`
	// Number of dataset samples evaluated
	SampleCount int `json:"sample_count,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt   time.Time `json:"finished_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvalRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evalrun.FieldJudgesEnabled:
			values[i] = new(sql.NullBool)
		case evalrun.FieldID, evalrun.FieldSampleCount:
			values[i] = new(sql.NullInt64)
		case evalrun.FieldRunID, evalrun.FieldDataset, evalrun.FieldProvider, evalrun.FieldModel, evalrun.FieldPromptStyle:
			values[i] = new(sql.NullString)
		case evalrun.FieldStartedAt, evalrun.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvalRun fields.
func (_m *EvalRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evalrun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case evalrun.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case evalrun.FieldDataset:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dataset", values[i])
			} else if value.Valid {
				_m.Dataset = value.String
			}
		case evalrun.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case evalrun.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case evalrun.FieldPromptStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_style", values[i])
			} else if value.Valid {
				_m.PromptStyle = value.String
			}
		case evalrun.FieldJudgesEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field judges_enabled", values[i])
			} else if value.Valid {
				_m.JudgesEnabled = value.Bool
			}
		case evalrun.FieldSampleCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sample_count", values[i])
			} else if value.Valid {
				_m.SampleCount = int(value.Int64)
			}
		case evalrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case evalrun.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvalRun.
// This includes values selected through modifiers, order, etc.
func (_m *EvalRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EvalRun.
// Note that you need to call EvalRun.Unwrap() before calling this method if this EvalRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvalRun) Update() *EvalRunUpdateOne {
	return NewEvalRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvalRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvalRun) Unwrap() *EvalRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvalRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvalRun) String() string {
	var builder strings.Builder
	builder.WriteString("EvalRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("dataset=")
	builder.WriteString(_m.Dataset)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("prompt_style=")
	builder.WriteString(_m.PromptStyle)
	builder.WriteString(", ")
	builder.WriteString("judges_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.JudgesEnabled))
	builder.WriteString(", ")
	builder.WriteString("sample_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SampleCount))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("finished_at=")
	builder.WriteString(_m.FinishedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EvalRuns is a parsable slice of EvalRun.
type EvalRuns []*EvalRun
