// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ysato/dokkai/ent/evalrun"
)

// EvalRunCreate is the builder for creating a EvalRun entity.
type EvalRunCreate struct {
	config
	mutation *EvalRunMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *EvalRunCreate) SetRunID(v string) *EvalRunCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetDataset sets the "dataset" field.
func (_c *EvalRunCreate) SetDataset(v string) *EvalRunCreate {
	_c.mutation.SetDataset(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *EvalRunCreate) SetProvider(v string) *EvalRunCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *EvalRunCreate) SetModel(v string) *EvalRunCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetPromptStyle sets the "prompt_style" field.
func (_c *EvalRunCreate) SetPromptStyle(v string) *EvalRunCreate {
	_c.mutation.SetPromptStyle(v)
	return _c
}

// SetJudgesEnabled sets the "judges_enabled" field.
func (_c *EvalRunCreate) SetJudgesEnabled(v bool) *EvalRunCreate {
	_c.mutation.SetJudgesEnabled(v)
	return _c
}

// SetNillableJudgesEnabled sets the "judges_enabled" field if the given value is not nil.
func (_c *EvalRunCreate) SetNillableJudgesEnabled(v *bool) *EvalRunCreate {
	if v != nil {
		_c.SetJudgesEnabled(*v)
	}
	return _c
}

// SetSampleCount sets the "sample_count" field.
func (_c *EvalRunCreate) SetSampleCount(v int) *EvalRunCreate {
	_c.mutation.SetSampleCount(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *EvalRunCreate) SetStartedAt(v time.Time) *EvalRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *EvalRunCreate) SetNillableStartedAt(v *time.Time) *EvalRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *EvalRunCreate) SetFinishedAt(v time.Time) *EvalRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// Mutation returns the EvalRunMutation object of the builder.
func (_c *EvalRunCreate) Mutation() *EvalRunMutation {
	return _c.mutation
}

// Save creates the EvalRun in the database.
func (_c *EvalRunCreate) Save(ctx context.Context) (*EvalRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvalRunCreate) SaveX(ctx context.Context) *EvalRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvalRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvalRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvalRunCreate) defaults() {
	if _, ok := _c.mutation.JudgesEnabled(); !ok {
		v := evalrun.DefaultJudgesEnabled
		_c.mutation.SetJudgesEnabled(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := evalrun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvalRunCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "EvalRun.run_id"`)}
	}
	if _, ok := _c.mutation.Dataset(); !ok {
		return &ValidationError{Name: "dataset", err: errors.New(`ent: missing required field "EvalRun.dataset"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "EvalRun.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "EvalRun.model"`)}
	}
	if _, ok := _c.mutation.PromptStyle(); !ok {
		return &ValidationError{Name: "prompt_style", err: errors.New(`ent: missing required field "EvalRun.prompt_style"`)}
	}
	if _, ok := _c.mutation.JudgesEnabled(); !ok {
		return &ValidationError{Name: "judges_enabled", err: errors.New(`ent: missing required field "EvalRun.judges_enabled"`)}
	}
	if _, ok := _c.mutation.SampleCount(); !ok {
		return &ValidationError{Name: "sample_count", err: errors.New(`ent: missing required field "EvalRun.sample_count"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "EvalRun.started_at"`)}
	}
	if _, ok := _c.mutation.FinishedAt(); !ok {
		return &ValidationError{Name: "finished_at", err: errors.New(`ent: missing required field "EvalRun.finished_at"`)}
	}
	return nil
}

func (_c *EvalRunCreate) sqlSave(ctx context.Context) (*EvalRun, error) {
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

func (_c *EvalRunCreate) createSpec() (*EvalRun, *sqlgraph.CreateSpec) {
	var (
		_node = &EvalRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evalrun.Table, sqlgraph.NewFieldSpec(evalrun.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(evalrun.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.Dataset(); ok {
		_spec.SetField(evalrun.FieldDataset, field.TypeString, value)
		_node.Dataset = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(evalrun.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(evalrun.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.PromptStyle(); ok {
		_spec.SetField(evalrun.FieldPromptStyle, field.TypeString, value)
		_node.PromptStyle = value
	}
	if value, ok := _c.mutation.JudgesEnabled(); ok {
		_spec.SetField(evalrun.FieldJudgesEnabled, field.TypeBool, value)
		_node.JudgesEnabled = value
	}
	if value, ok := _c.mutation.SampleCount(); ok {
		_spec.SetField(evalrun.FieldSampleCount, field.TypeInt, value)
		_node.SampleCount = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(evalrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(evalrun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = value
	}
	return _node, _spec
}

// EvalRunCreateBulk is the builder for creating many EvalRun entities in bulk.
type EvalRunCreateBulk struct {
	config
	err      error
	builders []*EvalRunCreate
}

// Save creates the EvalRun entities in the database.
func (_c *EvalRunCreateBulk) Save(ctx context.Context) ([]*EvalRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvalRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvalRunMutation)
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
func (_c *EvalRunCreateBulk) SaveX(ctx context.Context) []*EvalRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvalRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvalRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
