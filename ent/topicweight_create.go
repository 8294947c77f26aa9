// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nvarma/quizfeed/ent/topicweight"
)

// TopicWeightCreate is the builder for creating a TopicWeight entity.
type TopicWeightCreate struct {
	config
	mutation *TopicWeightMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *TopicWeightCreate) SetUserID(v string) *TopicWeightCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *TopicWeightCreate) SetTopic(v string) *TopicWeightCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetSubtopic sets the "subtopic" field.
func (_c *TopicWeightCreate) SetSubtopic(v string) *TopicWeightCreate {
	_c.mutation.SetSubtopic(v)
	return _c
}

// SetNillableSubtopic sets the "subtopic" field if the given value is not nil.
func (_c *TopicWeightCreate) SetNillableSubtopic(v *string) *TopicWeightCreate {
	if v != nil {
		_c.SetSubtopic(*v)
	}
	return _c
}

// SetBranch sets the "branch" field.
func (_c *TopicWeightCreate) SetBranch(v string) *TopicWeightCreate {
	_c.mutation.SetBranch(v)
	return _c
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_c *TopicWeightCreate) SetNillableBranch(v *string) *TopicWeightCreate {
	if v != nil {
		_c.SetBranch(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *TopicWeightCreate) SetScore(v float64) *TopicWeightCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetSampleCount sets the "sample_count" field.
func (_c *TopicWeightCreate) SetSampleCount(v int) *TopicWeightCreate {
	_c.mutation.SetSampleCount(v)
	return _c
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_c *TopicWeightCreate) SetNillableSampleCount(v *int) *TopicWeightCreate {
	if v != nil {
		_c.SetSampleCount(*v)
	}
	return _c
}

// SetRecent sets the "recent" field.
func (_c *TopicWeightCreate) SetRecent(v []bool) *TopicWeightCreate {
	_c.mutation.SetRecent(v)
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *TopicWeightCreate) SetLastUpdated(v time.Time) *TopicWeightCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// Mutation returns the TopicWeightMutation object of the builder.
func (_c *TopicWeightCreate) Mutation() *TopicWeightMutation {
	return _c.mutation
}

// Save creates the TopicWeight in the database.
func (_c *TopicWeightCreate) Save(ctx context.Context) (*TopicWeight, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicWeightCreate) SaveX(ctx context.Context) *TopicWeight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicWeightCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicWeightCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicWeightCreate) defaults() {
	if _, ok := _c.mutation.Subtopic(); !ok {
		v := topicweight.DefaultSubtopic
		_c.mutation.SetSubtopic(v)
	}
	if _, ok := _c.mutation.Branch(); !ok {
		v := topicweight.DefaultBranch
		_c.mutation.SetBranch(v)
	}
	if _, ok := _c.mutation.SampleCount(); !ok {
		v := topicweight.DefaultSampleCount
		_c.mutation.SetSampleCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicWeightCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TopicWeight.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := topicweight.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TopicWeight.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "TopicWeight.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := topicweight.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "TopicWeight.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subtopic(); !ok {
		return &ValidationError{Name: "subtopic", err: errors.New(`ent: missing required field "TopicWeight.subtopic"`)}
	}
	if _, ok := _c.mutation.Branch(); !ok {
		return &ValidationError{Name: "branch", err: errors.New(`ent: missing required field "TopicWeight.branch"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "TopicWeight.score"`)}
	}
	if _, ok := _c.mutation.SampleCount(); !ok {
		return &ValidationError{Name: "sample_count", err: errors.New(`ent: missing required field "TopicWeight.sample_count"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "TopicWeight.last_updated"`)}
	}
	return nil
}

func (_c *TopicWeightCreate) sqlSave(ctx context.Context) (*TopicWeight, error) {
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

func (_c *TopicWeightCreate) createSpec() (*TopicWeight, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicWeight{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topicweight.Table, sqlgraph.NewFieldSpec(topicweight.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(topicweight.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(topicweight.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Subtopic(); ok {
		_spec.SetField(topicweight.FieldSubtopic, field.TypeString, value)
		_node.Subtopic = value
	}
	if value, ok := _c.mutation.Branch(); ok {
		_spec.SetField(topicweight.FieldBranch, field.TypeString, value)
		_node.Branch = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(topicweight.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.SampleCount(); ok {
		_spec.SetField(topicweight.FieldSampleCount, field.TypeInt, value)
		_node.SampleCount = value
	}
	if value, ok := _c.mutation.Recent(); ok {
		_spec.SetField(topicweight.FieldRecent, field.TypeJSON, value)
		_node.Recent = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(topicweight.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// TopicWeightCreateBulk is the builder for creating many TopicWeight entities in bulk.
type TopicWeightCreateBulk struct {
	config
	err      error
	builders []*TopicWeightCreate
}

// Save creates the TopicWeight entities in the database.
func (_c *TopicWeightCreateBulk) Save(ctx context.Context) ([]*TopicWeight, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicWeight, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicWeightMutation)
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
func (_c *TopicWeightCreateBulk) SaveX(ctx context.Context) []*TopicWeight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicWeightCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicWeightCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
