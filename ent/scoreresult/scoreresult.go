// Code generated by ent, DO NOT EDIT.

package scoreresult

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scoreresult type in the database.
	Label = "score_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldSampleID holds the string denoting the sample_id field in the database.
	FieldSampleID = "sample_id"
	// FieldScorer holds the string denoting the scorer field in the database.
	FieldScorer = "scorer"
	// FieldPass holds the string denoting the pass field in the database.
	FieldPass = "pass"
	// FieldRationale holds the string denoting the rationale field in the database.
	FieldRationale = "rationale"
	// Table holds the table name of the scoreresult in the database.
	Table = "score_results"
)

// Columns holds all SQL columns for scoreresult fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldSampleID,
	FieldScorer,
	FieldPass,
	FieldRationale,
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
	// DefaultRationale holds the default value on creation for the "rationale" field.
	DefaultRationale string
)

// OrderOption defines the ordering options for the ScoreResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// BySampleID orders the results by the sample_id field.
func BySampleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSampleID, opts...).ToFunc()
}

// ByScorer orders the results by the scorer field.
func ByScorer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScorer, opts...).ToFunc()
}

// ByPass orders the results by the pass field.
func ByPass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPass, opts...).ToFunc()
}

// ByRationale orders the results by the rationale field.
func ByRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRationale, opts...).ToFunc()
}
