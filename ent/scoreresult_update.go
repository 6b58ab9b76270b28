// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ysato/dokkai/ent/predicate"
	"github.com/ysato/dokkai/ent/scoreresult"
)

// ScoreResultUpdate is the builder for updating ScoreResult entities.
type ScoreResultUpdate struct {
	config
	hooks    []Hook
	mutation *ScoreResultMutation
}

// Where appends a list predicates to the ScoreResultUpdate builder.
func (_u *ScoreResultUpdate) Where(ps ...predicate.ScoreResult) *ScoreResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSampleID sets the "sample_id" field.
func (_u *ScoreResultUpdate) SetSampleID(v string) *ScoreResultUpdate {
	_u.mutation.SetSampleID(v)
	return _u
}

// SetNillableSampleID sets the "sample_id" field if the given value is not nil.
func (_u *ScoreResultUpdate) SetNillableSampleID(v *string) *ScoreResultUpdate {
	if v != nil {
		_u.SetSampleID(*v)
	}
	return _u
}

// SetScorer sets the "scorer" field.
func (_u *ScoreResultUpdate) SetScorer(v string) *ScoreResultUpdate {
	_u.mutation.SetScorer(v)
	return _u
}

// SetNillableScorer sets the "scorer" field if the given value is not nil.
func (_u *ScoreResultUpdate) SetNillableScorer(v *string) *ScoreResultUpdate {
	if v != nil {
		_u.SetScorer(*v)
	}
	return _u
}

// SetPass sets the "pass" field.
func (_u *ScoreResultUpdate) SetPass(v bool) *ScoreResultUpdate {
	_u.mutation.SetPass(v)
	return _u
}

// SetNillablePass sets the "pass" field if the given value is not nil.
func (_u *ScoreResultUpdate) SetNillablePass(v *bool) *ScoreResultUpdate {
	if v != nil {
		_u.SetPass(*v)
	}
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *ScoreResultUpdate) SetRationale(v string) *ScoreResultUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *ScoreResultUpdate) SetNillableRationale(v *string) *ScoreResultUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// Mutation returns the ScoreResultMutation object of the builder.
func (_u *ScoreResultUpdate) Mutation() *ScoreResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScoreResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScoreResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ScoreResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(scoreresult.Table, scoreresult.Columns, sqlgraph.NewFieldSpec(scoreresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SampleID(); ok {
		_spec.SetField(scoreresult.FieldSampleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scorer(); ok {
		_spec.SetField(scoreresult.FieldScorer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pass(); ok {
		_spec.SetField(scoreresult.FieldPass, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(scoreresult.FieldRationale, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoreresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScoreResultUpdateOne is the builder for updating a single ScoreResult entity.
type ScoreResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScoreResultMutation
}

// SetSampleID sets the "sample_id" field.
func (_u *ScoreResultUpdateOne) SetSampleID(v string) *ScoreResultUpdateOne {
	_u.mutation.SetSampleID(v)
	return _u
}

// SetNillableSampleID sets the "sample_id" field if the given value is not nil.
func (_u *ScoreResultUpdateOne) SetNillableSampleID(v *string) *ScoreResultUpdateOne {
	if v != nil {
		_u.SetSampleID(*v)
	}
	return _u
}

// SetScorer sets the "scorer" field.
func (_u *ScoreResultUpdateOne) SetScorer(v string) *ScoreResultUpdateOne {
	_u.mutation.SetScorer(v)
	return _u
}

// SetNillableScorer sets the "scorer" field if the given value is not nil.
func (_u *ScoreResultUpdateOne) SetNillableScorer(v *string) *ScoreResultUpdateOne {
	if v != nil {
		_u.SetScorer(*v)
	}
	return _u
}

// SetPass sets the "pass" field.
func (_u *ScoreResultUpdateOne) SetPass(v bool) *ScoreResultUpdateOne {
	_u.mutation.SetPass(v)
	return _u
}

// SetNillablePass sets the "pass" field if the given value is not nil.
func (_u *ScoreResultUpdateOne) SetNillablePass(v *bool) *ScoreResultUpdateOne {
	if v != nil {
		_u.SetPass(*v)
	}
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *ScoreResultUpdateOne) SetRationale(v string) *ScoreResultUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *ScoreResultUpdateOne) SetNillableRationale(v *string) *ScoreResultUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// Mutation returns the ScoreResultMutation object of the builder.
func (_u *ScoreResultUpdateOne) Mutation() *ScoreResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScoreResultUpdate builder.
func (_u *ScoreResultUpdateOne) Where(ps ...predicate.ScoreResult) *ScoreResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScoreResultUpdateOne) Select(field string, fields ...string) *ScoreResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScoreResult entity.
func (_u *ScoreResultUpdateOne) Save(ctx context.Context) (*ScoreResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreResultUpdateOne) SaveX(ctx context.Context) *ScoreResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScoreResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ScoreResultUpdateOne) sqlSave(ctx context.Context) (_node *ScoreResult, err error) {
	_spec := sqlgraph.NewUpdateSpec(scoreresult.Table, scoreresult.Columns, sqlgraph.NewFieldSpec(scoreresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScoreResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scoreresult.FieldID)
		for _, f := range fields {
			if !scoreresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scoreresult.FieldID {
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
	if value, ok := _u.mutation.SampleID(); ok {
		_spec.SetField(scoreresult.FieldSampleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scorer(); ok {
		_spec.SetField(scoreresult.FieldScorer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pass(); ok {
		_spec.SetField(scoreresult.FieldPass, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(scoreresult.FieldRationale, field.TypeString, value)
	}
	_node = &ScoreResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoreresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
