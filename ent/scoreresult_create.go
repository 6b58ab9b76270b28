// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ysato/dokkai/ent/scoreresult"
)

// ScoreResultCreate is the builder for creating a ScoreResult entity.
type ScoreResultCreate struct {
	config
	mutation *ScoreResultMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *ScoreResultCreate) SetRunID(v string) *ScoreResultCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetSampleID sets the "sample_id" field.
func (_c *ScoreResultCreate) SetSampleID(v string) *ScoreResultCreate {
	_c.mutation.SetSampleID(v)
	return _c
}

// SetScorer sets the "scorer" field.
func (_c *ScoreResultCreate) SetScorer(v string) *ScoreResultCreate {
	_c.mutation.SetScorer(v)
	return _c
}

// SetPass sets the "pass" field.
func (_c *ScoreResultCreate) SetPass(v bool) *ScoreResultCreate {
	_c.mutation.SetPass(v)
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *ScoreResultCreate) SetRationale(v string) *ScoreResultCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_c *ScoreResultCreate) SetNillableRationale(v *string) *ScoreResultCreate {
	if v != nil {
		_c.SetRationale(*v)
	}
	return _c
}

// Mutation returns the ScoreResultMutation object of the builder.
func (_c *ScoreResultCreate) Mutation() *ScoreResultMutation {
	return _c.mutation
}

// Save creates the ScoreResult in the database.
func (_c *ScoreResultCreate) Save(ctx context.Context) (*ScoreResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScoreResultCreate) SaveX(ctx context.Context) *ScoreResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScoreResultCreate) defaults() {
	if _, ok := _c.mutation.Rationale(); !ok {
		v := scoreresult.DefaultRationale
		_c.mutation.SetRationale(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScoreResultCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ScoreResult.run_id"`)}
	}
	if _, ok := _c.mutation.SampleID(); !ok {
		return &ValidationError{Name: "sample_id", err: errors.New(`ent: missing required field "ScoreResult.sample_id"`)}
	}
	if _, ok := _c.mutation.Scorer(); !ok {
		return &ValidationError{Name: "scorer", err: errors.New(`ent: missing required field "ScoreResult.scorer"`)}
	}
	if _, ok := _c.mutation.Pass(); !ok {
		return &ValidationError{Name: "pass", err: errors.New(`ent: missing required field "ScoreResult.pass"`)}
	}
	if _, ok := _c.mutation.Rationale(); !ok {
		return &ValidationError{Name: "rationale", err: errors.New(`ent: missing required field "ScoreResult.rationale"`)}
	}
	return nil
}

func (_c *ScoreResultCreate) sqlSave(ctx context.Context) (*ScoreResult, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScoreResultCreate) createSpec() (*ScoreResult, *sqlgraph.CreateSpec) {
	var (
		_node = &ScoreResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scoreresult.Table, sqlgraph.NewFieldSpec(scoreresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(scoreresult.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.SampleID(); ok {
		_spec.SetField(scoreresult.FieldSampleID, field.TypeString, value)
		_node.SampleID = value
	}
	if value, ok := _c.mutation.Scorer(); ok {
		_spec.SetField(scoreresult.FieldScorer, field.TypeString, value)
		_node.Scorer = value
	}
	if value, ok := _c.mutation.Pass(); ok {
		_spec.SetField(scoreresult.FieldPass, field.TypeBool, value)
		_node.Pass = value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(scoreresult.FieldRationale, field.TypeString, value)
		_node.Rationale = value
	}
	return _node, _spec
}

// ScoreResultCreateBulk is the builder for creating many ScoreResult entities in bulk.
type ScoreResultCreateBulk struct {
	config
	err      error
	builders []*ScoreResultCreate
}

// Save creates the ScoreResult entities in the database.
func (_c *ScoreResultCreateBulk) Save(ctx context.Context) ([]*ScoreResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScoreResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScoreResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScoreResultCreateBulk) SaveX(ctx context.Context) []*ScoreResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
