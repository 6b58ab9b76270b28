// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ysato/dokkai/ent/scoreresult"
)

// ScoreResult is the model entity for the ScoreResult schema.
type ScoreResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// EvalRun.run_id this result belongs to
	RunID string `json:"run_id,omitempty"`
	// Dataset sample identifier
	SampleID string `json:"sample_id,omitempty"`
	// Scorer name, e.g. schema_valid
	Scorer string `json:"scorer,omitempty"`
	// Pass holds the value of the "pass" field.
	Pass bool `json:"pass,omitempty"`
	// Rationale holds the value of the "rationale" field.
	Rationale    string `json:"rationale,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScoreResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scoreresult.FieldPass:
			values[i] = new(sql.NullBool)
		case scoreresult.FieldID:
			values[i] = new(sql.NullInt64)
		case scoreresult.FieldRunID, scoreresult.FieldSampleID, scoreresult.FieldScorer, scoreresult.FieldRationale:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScoreResult fields.
func (_m *ScoreResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scoreresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case scoreresult.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case scoreresult.FieldSampleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sample_id", values[i])
			} else if value.Valid {
				_m.SampleID = value.String
			}
		case scoreresult.FieldScorer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scorer", values[i])
			} else if value.Valid {
				_m.Scorer = value.String
			}
		case scoreresult.FieldPass:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field pass", values[i])
			} else if value.Valid {
				_m.Pass = value.Bool
			}
		case scoreresult.FieldRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rationale", values[i])
			} else if value.Valid {
				_m.Rationale = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScoreResult.
// This includes values selected through modifiers, order, etc.
func (_m *ScoreResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScoreResult.
// Note that you need to call ScoreResult.Unwrap() before calling this method if this ScoreResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScoreResult) Update() *ScoreResultUpdateOne {
	return NewScoreResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScoreResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScoreResult) Unwrap() *ScoreResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScoreResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScoreResult) String() string {
	var builder strings.Builder
	builder.WriteString("ScoreResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("sample_id=")
	builder.WriteString(_m.SampleID)
	builder.WriteString(", ")
	builder.WriteString("scorer=")
	builder.WriteString(_m.Scorer)
	builder.WriteString(", ")
	builder.WriteString("pass=")
	builder.WriteString(fmt.Sprintf("%v", _m.Pass))
	builder.WriteString(", ")
	builder.WriteString("rationale=")
	builder.WriteString(_m.Rationale)
	builder.WriteByte(')')
	return builder.String()
}

// ScoreResults is a parsable slice of ScoreResult.
type ScoreResults []*ScoreResult
