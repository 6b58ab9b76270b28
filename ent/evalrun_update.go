// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ysato/dokkai/ent/evalrun"
	"github.com/ysato/dokkai/ent/predicate"
)

// EvalRunUpdate is the builder for updating EvalRun entities.
type EvalRunUpdate struct {
	config
	hooks    []Hook
	mutation *EvalRunMutation
}

// Where appends a list predicates to the EvalRunUpdate builder.
func (_u *EvalRunUpdate) Where(ps ...predicate.EvalRun) *EvalRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDataset sets the "dataset" field.
func (_u *EvalRunUpdate) SetDataset(v string) *EvalRunUpdate {
	_u.mutation.SetDataset(v)
	return _u
}

// SetNillableDataset sets the "dataset" field if the given value is not nil.
func (_u *EvalRunUpdate) SetNillableDataset(v *string) *EvalRunUpdate {
	if v != nil {
		_u.SetDataset(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *EvalRunUpdate) SetProvider(v string) *EvalRunUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *EvalRunUpdate) SetNillableProvider(v *string) *EvalRunUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *EvalRunUpdate) SetModel(v string) *EvalRunUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *EvalRunUpdate) SetNillableModel(v *string) *EvalRunUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPromptStyle sets the "prompt_style" field.
func (_u *EvalRunUpdate) SetPromptStyle(v string) *EvalRunUpdate {
	_u.mutation.SetPromptStyle(v)
	return _u
}

// SetNillablePromptStyle sets the "prompt_style" field if the given value is not nil.
func (_u *EvalRunUpdate) SetNillablePromptStyle(v *string) *EvalRunUpdate {
	if v != nil {
		_u.SetPromptStyle(*v)
	}
	return _u
}

// SetJudgesEnabled sets the "judges_enabled" field.
func (_u *EvalRunUpdate) SetJudgesEnabled(v bool) *EvalRunUpdate {
	_u.mutation.SetJudgesEnabled(v)
	return _u
}

// SetNillableJudgesEnabled sets the "judges_enabled" field if the given value is not nil.
func (_u *EvalRunUpdate) SetNillableJudgesEnabled(v *bool) *EvalRunUpdate {
	if v != nil {
		_u.SetJudgesEnabled(*v)
	}
	return _u
}

// SetSampleCount sets the "sample_count" field.
func (_u *EvalRunUpdate) SetSampleCount(v int) *EvalRunUpdate {
	_u.mutation.ResetSampleCount()
	_u.mutation.SetSampleCount(v)
	return _u
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_u *EvalRunUpdate) SetNillableSampleCount(v *int) *EvalRunUpdate {
	if v != nil {
		_u.SetSampleCount(*v)
	}
	return _u
}

// AddSampleCount adds value to the "sample_count" field.
func (_u *EvalRunUpdate) AddSampleCount(v int) *EvalRunUpdate {
	_u.mutation.AddSampleCount(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *EvalRunUpdate) SetFinishedAt(v time.Time) *EvalRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *EvalRunUpdate) SetNillableFinishedAt(v *time.Time) *EvalRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// Mutation returns the EvalRunMutation object of the builder.
func (_u *EvalRunUpdate) Mutation() *EvalRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvalRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvalRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvalRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvalRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EvalRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(evalrun.Table, evalrun.Columns, sqlgraph.NewFieldSpec(evalrun.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Dataset(); ok {
		_spec.SetField(evalrun.FieldDataset, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(evalrun.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(evalrun.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptStyle(); ok {
		_spec.SetField(evalrun.FieldPromptStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.JudgesEnabled(); ok {
		_spec.SetField(evalrun.FieldJudgesEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SampleCount(); ok {
		_spec.SetField(evalrun.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSampleCount(); ok {
		_spec.AddField(evalrun.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(evalrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evalrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvalRunUpdateOne is the builder for updating a single EvalRun entity.
type EvalRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvalRunMutation
}

// SetDataset sets the "dataset" field.
func (_u *EvalRunUpdateOne) SetDataset(v string) *EvalRunUpdateOne {
	_u.mutation.SetDataset(v)
	return _u
}

// SetNillableDataset sets the "dataset" field if the given value is not nil.
func (_u *EvalRunUpdateOne) SetNillableDataset(v *string) *EvalRunUpdateOne {
	if v != nil {
		_u.SetDataset(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *EvalRunUpdateOne) SetProvider(v string) *EvalRunUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *EvalRunUpdateOne) SetNillableProvider(v *string) *EvalRunUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *EvalRunUpdateOne) SetModel(v string) *EvalRunUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *EvalRunUpdateOne) SetNillableModel(v *string) *EvalRunUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPromptStyle sets the "prompt_style" field.
func (_u *EvalRunUpdateOne) SetPromptStyle(v string) *EvalRunUpdateOne {
	_u.mutation.SetPromptStyle(v)
	return _u
}

// SetNillablePromptStyle sets the "prompt_style" field if the given value is not nil.
func (_u *EvalRunUpdateOne) SetNillablePromptStyle(v *string) *EvalRunUpdateOne {
	if v != nil {
		_u.SetPromptStyle(*v)
	}
	return _u
}

// SetJudgesEnabled sets the "judges_enabled" field.
func (_u *EvalRunUpdateOne) SetJudgesEnabled(v bool) *EvalRunUpdateOne {
	_u.mutation.SetJudgesEnabled(v)
	return _u
}

// SetNillableJudgesEnabled sets the "judges_enabled" field if the given value is not nil.
func (_u *EvalRunUpdateOne) SetNillableJudgesEnabled(v *bool) *EvalRunUpdateOne {
	if v != nil {
		_u.SetJudgesEnabled(*v)
	}
	return _u
}

// SetSampleCount sets the "sample_count" field.
func (_u *EvalRunUpdateOne) SetSampleCount(v int) *EvalRunUpdateOne {
	_u.mutation.ResetSampleCount()
	_u.mutation.SetSampleCount(v)
	return _u
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_u *EvalRunUpdateOne) SetNillableSampleCount(v *int) *EvalRunUpdateOne {
	if v != nil {
		_u.SetSampleCount(*v)
	}
	return _u
}

// AddSampleCount adds value to the "sample_count" field.
func (_u *EvalRunUpdateOne) AddSampleCount(v int) *EvalRunUpdateOne {
	_u.mutation.AddSampleCount(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *EvalRunUpdateOne) SetFinishedAt(v time.Time) *EvalRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *EvalRunUpdateOne) SetNillableFinishedAt(v *time.Time) *EvalRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// Mutation returns the EvalRunMutation object of the builder.
func (_u *EvalRunUpdateOne) Mutation() *EvalRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvalRunUpdate builder.
func (_u *EvalRunUpdateOne) Where(ps ...predicate.EvalRun) *EvalRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvalRunUpdateOne) Select(field string, fields ...string) *EvalRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvalRun entity.
func (_u *EvalRunUpdateOne) Save(ctx context.Context) (*EvalRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvalRunUpdateOne) SaveX(ctx context.Context) *EvalRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvalRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvalRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EvalRunUpdateOne) sqlSave(ctx context.Context) (_node *EvalRun, err error) {
	_spec := sqlgraph.NewUpdateSpec(evalrun.Table, evalrun.Columns, sqlgraph.NewFieldSpec(evalrun.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvalRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evalrun.FieldID)
		for _, f := range fields {
			if !evalrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evalrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Dataset(); ok {
		_spec.SetField(evalrun.FieldDataset, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(evalrun.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(evalrun.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptStyle(); ok {
		_spec.SetField(evalrun.FieldPromptStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.JudgesEnabled(); ok {
		_spec.SetField(evalrun.FieldJudgesEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SampleCount(); ok {
		_spec.SetField(evalrun.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSampleCount(); ok {
		_spec.AddField(evalrun.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(evalrun.FieldFinishedAt, field.TypeTime, value)
	}
	_node = &EvalRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evalrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
