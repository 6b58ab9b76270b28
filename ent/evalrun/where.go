// Code generated by ent, DO NOT EDIT.

package evalrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ysato/dokkai/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldRunID, v))
}

// Dataset applies equality check predicate on the "dataset" field. It's identical to DatasetEQ.
func Dataset(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldDataset, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldProvider, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldModel, v))
}

// PromptStyle applies equality check predicate on the "prompt_style" field. It's identical to PromptStyleEQ.
func PromptStyle(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldPromptStyle, v))
}

// JudgesEnabled applies equality check predicate on the "judges_enabled" field. It's identical to JudgesEnabledEQ.
func JudgesEnabled(v bool) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldJudgesEnabled, v))
}

// SampleCount applies equality check predicate on the "sample_count" field. It's identical to SampleCountEQ.
func SampleCount(v int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldSampleCount, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldFinishedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContainsFold(FieldRunID, v))
}

// DatasetEQ applies the EQ predicate on the "dataset" field.
func DatasetEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldDataset, v))
}

// DatasetNEQ applies the NEQ predicate on the "dataset" field.
func DatasetNEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldDataset, v))
}

// DatasetIn applies the In predicate on the "dataset" field.
func DatasetIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldDataset, vs...))
}

// DatasetNotIn applies the NotIn predicate on the "dataset" field.
func DatasetNotIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldDataset, vs...))
}

// DatasetGT applies the GT predicate on the "dataset" field.
func DatasetGT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldDataset, v))
}

// DatasetGTE applies the GTE predicate on the "dataset" field.
func DatasetGTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldDataset, v))
}

// DatasetLT applies the LT predicate on the "dataset" field.
func DatasetLT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldDataset, v))
}

// DatasetLTE applies the LTE predicate on the "dataset" field.
func DatasetLTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldDataset, v))
}

// DatasetContains applies the Contains predicate on the "dataset" field.
func DatasetContains(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContains(FieldDataset, v))
}

// DatasetHasPrefix applies the HasPrefix predicate on the "dataset" field.
func DatasetHasPrefix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasPrefix(FieldDataset, v))
}

// DatasetHasSuffix applies the HasSuffix predicate on the "dataset" field.
func DatasetHasSuffix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasSuffix(FieldDataset, v))
}

// DatasetEqualFold applies the EqualFold predicate on the "dataset" field.
func DatasetEqualFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEqualFold(FieldDataset, v))
}

// DatasetContainsFold applies the ContainsFold predicate on the "dataset" field.
func DatasetContainsFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContainsFold(FieldDataset, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContainsFold(FieldProvider, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContainsFold(FieldModel, v))
}

// PromptStyleEQ applies the EQ predicate on the "prompt_style" field.
func PromptStyleEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldPromptStyle, v))
}

// PromptStyleNEQ applies the NEQ predicate on the "prompt_style" field.
func PromptStyleNEQ(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldPromptStyle, v))
}

// PromptStyleIn applies the In predicate on the "prompt_style" field.
func PromptStyleIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldPromptStyle, vs...))
}

// PromptStyleNotIn applies the NotIn predicate on the "prompt_style" field.
func PromptStyleNotIn(vs ...string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldPromptStyle, vs...))
}

// PromptStyleGT applies the GT predicate on the "prompt_style" field.
func PromptStyleGT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldPromptStyle, v))
}

// PromptStyleGTE applies the GTE predicate on the "prompt_style" field.
func PromptStyleGTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldPromptStyle, v))
}

// PromptStyleLT applies the LT predicate on the "prompt_style" field.
func PromptStyleLT(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldPromptStyle, v))
}

// PromptStyleLTE applies the LTE predicate on the "prompt_style" field.
func PromptStyleLTE(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldPromptStyle, v))
}

// PromptStyleContains applies the Contains predicate on the "prompt_style" field.
func PromptStyleContains(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContains(FieldPromptStyle, v))
}

// PromptStyleHasPrefix applies the HasPrefix predicate on the "prompt_style" field.
func PromptStyleHasPrefix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasPrefix(FieldPromptStyle, v))
}

// PromptStyleHasSuffix applies the HasSuffix predicate on the "prompt_style" field.
func PromptStyleHasSuffix(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldHasSuffix(FieldPromptStyle, v))
}

// PromptStyleEqualFold applies the EqualFold predicate on the "prompt_style" field.
func PromptStyleEqualFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEqualFold(FieldPromptStyle, v))
}

// PromptStyleContainsFold applies the ContainsFold predicate on the "prompt_style" field.
func PromptStyleContainsFold(v string) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldContainsFold(FieldPromptStyle, v))
}

// JudgesEnabledEQ applies the EQ predicate on the "judges_enabled" field.
func JudgesEnabledEQ(v bool) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldJudgesEnabled, v))
}

// JudgesEnabledNEQ applies the NEQ predicate on the "judges_enabled" field.
func JudgesEnabledNEQ(v bool) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldJudgesEnabled, v))
}

// SampleCountEQ applies the EQ predicate on the "sample_count" field.
func SampleCountEQ(v int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldSampleCount, v))
}

// SampleCountNEQ applies the NEQ predicate on the "sample_count" field.
func SampleCountNEQ(v int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldSampleCount, v))
}

// SampleCountIn applies the In predicate on the "sample_count" field.
func SampleCountIn(vs ...int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldSampleCount, vs...))
}

// SampleCountNotIn applies the NotIn predicate on the "sample_count" field.
func SampleCountNotIn(vs ...int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldSampleCount, vs...))
}

// SampleCountGT applies the GT predicate on the "sample_count" field.
func SampleCountGT(v int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldSampleCount, v))
}

// SampleCountGTE applies the GTE predicate on the "sample_count" field.
func SampleCountGTE(v int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldSampleCount, v))
}

// SampleCountLT applies the LT predicate on the "sample_count" field.
func SampleCountLT(v int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldSampleCount, v))
}

// SampleCountLTE applies the LTE predicate on the "sample_count" field.
func SampleCountLTE(v int) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldSampleCount, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.EvalRun {
	return predicate.EvalRun(sql.FieldLTE(FieldFinishedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvalRun) predicate.EvalRun {
	return predicate.EvalRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvalRun) predicate.EvalRun {
	return predicate.EvalRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvalRun) predicate.EvalRun {
	return predicate.EvalRun(sql.NotPredicates(p))
}
