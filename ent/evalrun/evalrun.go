// Code generated by ent, DO NOT EDIT.

package evalrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the evalrun type in the database.
	Label = "eval_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldDataset holds the string denoting the dataset field in the database.
	FieldDataset = "dataset"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldPromptStyle holds the string denoting the prompt_style field in the database.
	FieldPromptStyle = "prompt_style"
	// FieldJudgesEnabled holds the string denoting the judges_enabled field in the database.
	FieldJudgesEnabled = "judges_enabled"
	// FieldSampleCount holds the string denoting the sample_count field in the database.
	FieldSampleCount = "sample_count"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// Table holds the table name of the evalrun in the database.
	Table = "eval_runs"
)

// Columns holds all SQL columns for evalrun fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldDataset,
	FieldProvider,
	FieldModel,
	FieldPromptStyle,
	FieldJudgesEnabled,
	FieldSampleCount,
	FieldStartedAt,
	FieldFinishedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultJudgesEnabled holds the default value on creation for the "judges_enabled" field.
	DefaultJudgesEnabled bool
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// OrderOption defines the ordering options for the EvalRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByDataset orders the results by the dataset field.
func ByDataset(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataset, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByPromptStyle orders the results by the prompt_style field.
func ByPromptStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptStyle, opts...).ToFunc()
}

// ByJudgesEnabled orders the results by the judges_enabled field.
func ByJudgesEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJudgesEnabled, opts...).ToFunc()
}

// BySampleCount orders the results by the sample_count field.
func BySampleCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSampleCount, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}
