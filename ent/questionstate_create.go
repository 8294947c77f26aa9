// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nvarma/quizfeed/ent/questionstate"
)

// QuestionStateCreate is the builder for creating a QuestionState entity.
type QuestionStateCreate struct {
	config
	mutation *QuestionStateMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *QuestionStateCreate) SetUserID(v string) *QuestionStateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *QuestionStateCreate) SetQuestionID(v string) *QuestionStateCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *QuestionStateCreate) SetStatus(v string) *QuestionStateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QuestionStateCreate) SetNillableStatus(v *string) *QuestionStateCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAnswerIndex sets the "answer_index" field.
func (_c *QuestionStateCreate) SetAnswerIndex(v int) *QuestionStateCreate {
	_c.mutation.SetAnswerIndex(v)
	return _c
}

// SetNillableAnswerIndex sets the "answer_index" field if the given value is not nil.
func (_c *QuestionStateCreate) SetNillableAnswerIndex(v *int) *QuestionStateCreate {
	if v != nil {
		_c.SetAnswerIndex(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *QuestionStateCreate) SetResolvedAt(v time.Time) *QuestionStateCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *QuestionStateCreate) SetNillableResolvedAt(v *time.Time) *QuestionStateCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// Mutation returns the QuestionStateMutation object of the builder.
func (_c *QuestionStateCreate) Mutation() *QuestionStateMutation {
	return _c.mutation
}

// Save creates the QuestionState in the database.
func (_c *QuestionStateCreate) Save(ctx context.Context) (*QuestionState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionStateCreate) SaveX(ctx context.Context) *QuestionState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionStateCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := questionstate.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionStateCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QuestionState.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := questionstate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuestionState.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "QuestionState.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := questionstate.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionState.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QuestionState.status"`)}
	}
	return nil
}

func (_c *QuestionStateCreate) sqlSave(ctx context.Context) (*QuestionState, error) {
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

func (_c *QuestionStateCreate) createSpec() (*QuestionState, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionstate.Table, sqlgraph.NewFieldSpec(questionstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(questionstate.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(questionstate.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(questionstate.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AnswerIndex(); ok {
		_spec.SetField(questionstate.FieldAnswerIndex, field.TypeInt, value)
		_node.AnswerIndex = &value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(questionstate.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	return _node, _spec
}

// QuestionStateCreateBulk is the builder for creating many QuestionState entities in bulk.
type QuestionStateCreateBulk struct {
	config
	err      error
	builders []*QuestionStateCreate
}

// Save creates the QuestionState entities in the database.
func (_c *QuestionStateCreateBulk) Save(ctx context.Context) ([]*QuestionState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionStateMutation)
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
func (_c *QuestionStateCreateBulk) SaveX(ctx context.Context) []*QuestionState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
