// Code generated by ent, DO NOT EDIT.

package scoreresult

import (
	"entgo.io/ent/dialect/sql"
	"github.com/ysato/dokkai/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldEQ(FieldRunID, v))
}

// SampleID applies equality check predicate on the "sample_id" field. It's identical to SampleIDEQ.
func SampleID(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldEQ(FieldSampleID, v))
}

// Scorer applies equality check predicate on the "scorer" field. It's identical to ScorerEQ.
func Scorer(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldEQ(FieldScorer, v))
}

// Pass applies equality check predicate on the "pass" field. It's identical to PassEQ.
func Pass(v bool) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldEQ(FieldPass, v))
}

// Rationale applies equality check predicate on the "rationale" field. It's identical to RationaleEQ.
func Rationale(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldEQ(FieldRationale, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldContainsFold(FieldRunID, v))
}

// SampleIDEQ applies the EQ predicate on the "sample_id" field.
func SampleIDEQ(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldEQ(FieldSampleID, v))
}

// SampleIDNEQ applies the NEQ predicate on the "sample_id" field.
func SampleIDNEQ(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldNEQ(FieldSampleID, v))
}

// SampleIDIn applies the In predicate on the "sample_id" field.
func SampleIDIn(vs ...string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldIn(FieldSampleID, vs...))
}

// SampleIDNotIn applies the NotIn predicate on the "sample_id" field.
func SampleIDNotIn(vs ...string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldNotIn(FieldSampleID, vs...))
}

// SampleIDGT applies the GT predicate on the "sample_id" field.
func SampleIDGT(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldGT(FieldSampleID, v))
}

// SampleIDGTE applies the GTE predicate on the "sample_id" field.
func SampleIDGTE(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldGTE(FieldSampleID, v))
}

// SampleIDLT applies the LT predicate on the "sample_id" field.
func SampleIDLT(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldLT(FieldSampleID, v))
}

// SampleIDLTE applies the LTE predicate on the "sample_id" field.
func SampleIDLTE(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldLTE(FieldSampleID, v))
}

// SampleIDContains applies the Contains predicate on the "sample_id" field.
func SampleIDContains(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldContains(FieldSampleID, v))
}

// SampleIDHasPrefix applies the HasPrefix predicate on the "sample_id" field.
func SampleIDHasPrefix(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldHasPrefix(FieldSampleID, v))
}

// SampleIDHasSuffix applies the HasSuffix predicate on the "sample_id" field.
func SampleIDHasSuffix(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldHasSuffix(FieldSampleID, v))
}

// SampleIDEqualFold applies the EqualFold predicate on the "sample_id" field.
func SampleIDEqualFold(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldEqualFold(FieldSampleID, v))
}

// SampleIDContainsFold applies the ContainsFold predicate on the "sample_id" field.
func SampleIDContainsFold(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldContainsFold(FieldSampleID, v))
}

// ScorerEQ applies the EQ predicate on the "scorer" field.
func ScorerEQ(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldEQ(FieldScorer, v))
}

// ScorerNEQ applies the NEQ predicate on the "scorer" field.
func ScorerNEQ(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldNEQ(FieldScorer, v))
}

// ScorerIn applies the In predicate on the "scorer" field.
func ScorerIn(vs ...string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldIn(FieldScorer, vs...))
}

// ScorerNotIn applies the NotIn predicate on the "scorer" field.
func ScorerNotIn(vs ...string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldNotIn(FieldScorer, vs...))
}

// ScorerGT applies the GT predicate on the "scorer" field.
func ScorerGT(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldGT(FieldScorer, v))
}

// ScorerGTE applies the GTE predicate on the "scorer" field.
func ScorerGTE(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldGTE(FieldScorer, v))
}

// ScorerLT applies the LT predicate on the "scorer" field.
func ScorerLT(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldLT(FieldScorer, v))
}

// ScorerLTE applies the LTE predicate on the "scorer" field.
func ScorerLTE(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldLTE(FieldScorer, v))
}

// ScorerContains applies the Contains predicate on the "scorer" field.
func ScorerContains(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldContains(FieldScorer, v))
}

// ScorerHasPrefix applies the HasPrefix predicate on the "scorer" field.
func ScorerHasPrefix(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldHasPrefix(FieldScorer, v))
}

// ScorerHasSuffix applies the HasSuffix predicate on the "scorer" field.
func ScorerHasSuffix(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldHasSuffix(FieldScorer, v))
}

// ScorerEqualFold applies the EqualFold predicate on the "scorer" field.
func ScorerEqualFold(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldEqualFold(FieldScorer, v))
}

// ScorerContainsFold applies the ContainsFold predicate on the "scorer" field.
func ScorerContainsFold(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldContainsFold(FieldScorer, v))
}

// PassEQ applies the EQ predicate on the "pass" field.
func PassEQ(v bool) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldEQ(FieldPass, v))
}

// PassNEQ applies the NEQ predicate on the "pass" field.
func PassNEQ(v bool) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldNEQ(FieldPass, v))
}

// RationaleEQ applies the EQ predicate on the "rationale" field.
func RationaleEQ(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldEQ(FieldRationale, v))
}

// RationaleNEQ applies the NEQ predicate on the "rationale" field.
func RationaleNEQ(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldNEQ(FieldRationale, v))
}

// RationaleIn applies the In predicate on the "rationale" field.
func RationaleIn(vs ...string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldIn(FieldRationale, vs...))
}

// RationaleNotIn applies the NotIn predicate on the "rationale" field.
func RationaleNotIn(vs ...string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldNotIn(FieldRationale, vs...))
}

// RationaleGT applies the GT predicate on the "rationale" field.
func RationaleGT(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldGT(FieldRationale, v))
}

// RationaleGTE applies the GTE predicate on the "rationale" field.
func RationaleGTE(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldGTE(FieldRationale, v))
}

// RationaleLT applies the LT predicate on the "rationale" field.
func RationaleLT(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldLT(FieldRationale, v))
}

// RationaleLTE applies the LTE predicate on the "rationale" field.
func RationaleLTE(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldLTE(FieldRationale, v))
}

// RationaleContains applies the Contains predicate on the "rationale" field.
func RationaleContains(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldContains(FieldRationale, v))
}

// RationaleHasPrefix applies the HasPrefix predicate on the "rationale" field.
func RationaleHasPrefix(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldHasPrefix(FieldRationale, v))
}

// RationaleHasSuffix applies the HasSuffix predicate on the "rationale" field.
func RationaleHasSuffix(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldHasSuffix(FieldRationale, v))
}

// RationaleEqualFold applies the EqualFold predicate on the "rationale" field.
func RationaleEqualFold(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldEqualFold(FieldRationale, v))
}

// RationaleContainsFold applies the ContainsFold predicate on the "rationale" field.
func RationaleContainsFold(v string) predicate.ScoreResult {
	return predicate.ScoreResult(sql.FieldContainsFold(FieldRationale, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScoreResult) predicate.ScoreResult {
	return predicate.ScoreResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScoreResult) predicate.ScoreResult {
	return predicate.ScoreResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScoreResult) predicate.ScoreResult {
	return predicate.ScoreResult(sql.NotPredicates(p))
}
