// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nvarma/quizfeed/ent/weightchangeevent"
)

// WeightChangeEventCreate is the builder for creating a WeightChangeEvent entity.
type WeightChangeEventCreate struct {
	config
	mutation *WeightChangeEventMutation
	hooks    []Hook
}

// SetEventID sets the "event_id" field.
func (_c *WeightChangeEventCreate) SetEventID(v string) *WeightChangeEventCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *WeightChangeEventCreate) SetUserID(v string) *WeightChangeEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *WeightChangeEventCreate) SetTopic(v string) *WeightChangeEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetSubtopic sets the "subtopic" field.
func (_c *WeightChangeEventCreate) SetSubtopic(v string) *WeightChangeEventCreate {
	_c.mutation.SetSubtopic(v)
	return _c
}

// SetNillableSubtopic sets the "subtopic" field if the given value is not nil.
func (_c *WeightChangeEventCreate) SetNillableSubtopic(v *string) *WeightChangeEventCreate {
	if v != nil {
		_c.SetSubtopic(*v)
	}
	return _c
}

// SetBranch sets the "branch" field.
func (_c *WeightChangeEventCreate) SetBranch(v string) *WeightChangeEventCreate {
	_c.mutation.SetBranch(v)
	return _c
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_c *WeightChangeEventCreate) SetNillableBranch(v *string) *WeightChangeEventCreate {
	if v != nil {
		_c.SetBranch(*v)
	}
	return _c
}

// SetDelta sets the "delta" field.
func (_c *WeightChangeEventCreate) SetDelta(v float64) *WeightChangeEventCreate {
	_c.mutation.SetDelta(v)
	return _c
}

// SetSkipCompensationApplied sets the "skip_compensation_applied" field.
func (_c *WeightChangeEventCreate) SetSkipCompensationApplied(v bool) *WeightChangeEventCreate {
	_c.mutation.SetSkipCompensationApplied(v)
	return _c
}

// SetNillableSkipCompensationApplied sets the "skip_compensation_applied" field if the given value is not nil.
func (_c *WeightChangeEventCreate) SetNillableSkipCompensationApplied(v *bool) *WeightChangeEventCreate {
	if v != nil {
		_c.SetSkipCompensationApplied(*v)
	}
	return _c
}

// SetSkipCompensationTopic sets the "skip_compensation_topic" field.
func (_c *WeightChangeEventCreate) SetSkipCompensationTopic(v float64) *WeightChangeEventCreate {
	_c.mutation.SetSkipCompensationTopic(v)
	return _c
}

// SetNillableSkipCompensationTopic sets the "skip_compensation_topic" field if the given value is not nil.
func (_c *WeightChangeEventCreate) SetNillableSkipCompensationTopic(v *float64) *WeightChangeEventCreate {
	if v != nil {
		_c.SetSkipCompensationTopic(*v)
	}
	return _c
}

// SetSkipCompensationSubtopic sets the "skip_compensation_subtopic" field.
func (_c *WeightChangeEventCreate) SetSkipCompensationSubtopic(v float64) *WeightChangeEventCreate {
	_c.mutation.SetSkipCompensationSubtopic(v)
	return _c
}

// SetNillableSkipCompensationSubtopic sets the "skip_compensation_subtopic" field if the given value is not nil.
func (_c *WeightChangeEventCreate) SetNillableSkipCompensationSubtopic(v *float64) *WeightChangeEventCreate {
	if v != nil {
		_c.SetSkipCompensationSubtopic(*v)
	}
	return _c
}

// SetSkipCompensationBranch sets the "skip_compensation_branch" field.
func (_c *WeightChangeEventCreate) SetSkipCompensationBranch(v float64) *WeightChangeEventCreate {
	_c.mutation.SetSkipCompensationBranch(v)
	return _c
}

// SetNillableSkipCompensationBranch sets the "skip_compensation_branch" field if the given value is not nil.
func (_c *WeightChangeEventCreate) SetNillableSkipCompensationBranch(v *float64) *WeightChangeEventCreate {
	if v != nil {
		_c.SetSkipCompensationBranch(*v)
	}
	return _c
}

// SetOrigin sets the "origin" field.
func (_c *WeightChangeEventCreate) SetOrigin(v string) *WeightChangeEventCreate {
	_c.mutation.SetOrigin(v)
	return _c
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_c *WeightChangeEventCreate) SetNillableOrigin(v *string) *WeightChangeEventCreate {
	if v != nil {
		_c.SetOrigin(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WeightChangeEventCreate) SetCreatedAt(v time.Time) *WeightChangeEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WeightChangeEventCreate) SetNillableCreatedAt(v *time.Time) *WeightChangeEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSyncedAt sets the "synced_at" field.
func (_c *WeightChangeEventCreate) SetSyncedAt(v time.Time) *WeightChangeEventCreate {
	_c.mutation.SetSyncedAt(v)
	return _c
}

// SetNillableSyncedAt sets the "synced_at" field if the given value is not nil.
func (_c *WeightChangeEventCreate) SetNillableSyncedAt(v *time.Time) *WeightChangeEventCreate {
	if v != nil {
		_c.SetSyncedAt(*v)
	}
	return _c
}

// Mutation returns the WeightChangeEventMutation object of the builder.
func (_c *WeightChangeEventCreate) Mutation() *WeightChangeEventMutation {
	return _c.mutation
}

// Save creates the WeightChangeEvent in the database.
func (_c *WeightChangeEventCreate) Save(ctx context.Context) (*WeightChangeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WeightChangeEventCreate) SaveX(ctx context.Context) *WeightChangeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeightChangeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeightChangeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WeightChangeEventCreate) defaults() {
	if _, ok := _c.mutation.Subtopic(); !ok {
		v := weightchangeevent.DefaultSubtopic
		_c.mutation.SetSubtopic(v)
	}
	if _, ok := _c.mutation.Branch(); !ok {
		v := weightchangeevent.DefaultBranch
		_c.mutation.SetBranch(v)
	}
	if _, ok := _c.mutation.SkipCompensationApplied(); !ok {
		v := weightchangeevent.DefaultSkipCompensationApplied
		_c.mutation.SetSkipCompensationApplied(v)
	}
	if _, ok := _c.mutation.SkipCompensationTopic(); !ok {
		v := weightchangeevent.DefaultSkipCompensationTopic
		_c.mutation.SetSkipCompensationTopic(v)
	}
	if _, ok := _c.mutation.SkipCompensationSubtopic(); !ok {
		v := weightchangeevent.DefaultSkipCompensationSubtopic
		_c.mutation.SetSkipCompensationSubtopic(v)
	}
	if _, ok := _c.mutation.SkipCompensationBranch(); !ok {
		v := weightchangeevent.DefaultSkipCompensationBranch
		_c.mutation.SetSkipCompensationBranch(v)
	}
	if _, ok := _c.mutation.Origin(); !ok {
		v := weightchangeevent.DefaultOrigin
		_c.mutation.SetOrigin(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := weightchangeevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WeightChangeEventCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "WeightChangeEvent.event_id"`)}
	}
	if v, ok := _c.mutation.EventID(); ok {
		if err := weightchangeevent.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "WeightChangeEvent.event_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "WeightChangeEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := weightchangeevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "WeightChangeEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "WeightChangeEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := weightchangeevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "WeightChangeEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subtopic(); !ok {
		return &ValidationError{Name: "subtopic", err: errors.New(`ent: missing required field "WeightChangeEvent.subtopic"`)}
	}
	if _, ok := _c.mutation.Branch(); !ok {
		return &ValidationError{Name: "branch", err: errors.New(`ent: missing required field "WeightChangeEvent.branch"`)}
	}
	if _, ok := _c.mutation.Delta(); !ok {
		return &ValidationError{Name: "delta", err: errors.New(`ent: missing required field "WeightChangeEvent.delta"`)}
	}
	if _, ok := _c.mutation.SkipCompensationApplied(); !ok {
		return &ValidationError{Name: "skip_compensation_applied", err: errors.New(`ent: missing required field "WeightChangeEvent.skip_compensation_applied"`)}
	}
	if _, ok := _c.mutation.SkipCompensationTopic(); !ok {
		return &ValidationError{Name: "skip_compensation_topic", err: errors.New(`ent: missing required field "WeightChangeEvent.skip_compensation_topic"`)}
	}
	if _, ok := _c.mutation.SkipCompensationSubtopic(); !ok {
		return &ValidationError{Name: "skip_compensation_subtopic", err: errors.New(`ent: missing required field "WeightChangeEvent.skip_compensation_subtopic"`)}
	}
	if _, ok := _c.mutation.SkipCompensationBranch(); !ok {
		return &ValidationError{Name: "skip_compensation_branch", err: errors.New(`ent: missing required field "WeightChangeEvent.skip_compensation_branch"`)}
	}
	if _, ok := _c.mutation.Origin(); !ok {
		return &ValidationError{Name: "origin", err: errors.New(`ent: missing required field "WeightChangeEvent.origin"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WeightChangeEvent.created_at"`)}
	}
	return nil
}

func (_c *WeightChangeEventCreate) sqlSave(ctx context.Context) (*WeightChangeEvent, error) {
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

func (_c *WeightChangeEventCreate) createSpec() (*WeightChangeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &WeightChangeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(weightchangeevent.Table, sqlgraph.NewFieldSpec(weightchangeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(weightchangeevent.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(weightchangeevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(weightchangeevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Subtopic(); ok {
		_spec.SetField(weightchangeevent.FieldSubtopic, field.TypeString, value)
		_node.Subtopic = value
	}
	if value, ok := _c.mutation.Branch(); ok {
		_spec.SetField(weightchangeevent.FieldBranch, field.TypeString, value)
		_node.Branch = value
	}
	if value, ok := _c.mutation.Delta(); ok {
		_spec.SetField(weightchangeevent.FieldDelta, field.TypeFloat64, value)
		_node.Delta = value
	}
	if value, ok := _c.mutation.SkipCompensationApplied(); ok {
		_spec.SetField(weightchangeevent.FieldSkipCompensationApplied, field.TypeBool, value)
		_node.SkipCompensationApplied = value
	}
	if value, ok := _c.mutation.SkipCompensationTopic(); ok {
		_spec.SetField(weightchangeevent.FieldSkipCompensationTopic, field.TypeFloat64, value)
		_node.SkipCompensationTopic = value
	}
	if value, ok := _c.mutation.SkipCompensationSubtopic(); ok {
		_spec.SetField(weightchangeevent.FieldSkipCompensationSubtopic, field.TypeFloat64, value)
		_node.SkipCompensationSubtopic = value
	}
	if value, ok := _c.mutation.SkipCompensationBranch(); ok {
		_spec.SetField(weightchangeevent.FieldSkipCompensationBranch, field.TypeFloat64, value)
		_node.SkipCompensationBranch = value
	}
	if value, ok := _c.mutation.Origin(); ok {
		_spec.SetField(weightchangeevent.FieldOrigin, field.TypeString, value)
		_node.Origin = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(weightchangeevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.SyncedAt(); ok {
		_spec.SetField(weightchangeevent.FieldSyncedAt, field.TypeTime, value)
		_node.SyncedAt = &value
	}
	return _node, _spec
}

// WeightChangeEventCreateBulk is the builder for creating many WeightChangeEvent entities in bulk.
type WeightChangeEventCreateBulk struct {
	config
	err      error
	builders []*WeightChangeEventCreate
}

// Save creates the WeightChangeEvent entities in the database.
func (_c *WeightChangeEventCreateBulk) Save(ctx context.Context) ([]*WeightChangeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WeightChangeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WeightChangeEventMutation)
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
func (_c *WeightChangeEventCreateBulk) SaveX(ctx context.Context) []*WeightChangeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeightChangeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeightChangeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
