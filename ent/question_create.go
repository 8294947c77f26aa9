// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nvarma/quizfeed/ent/question"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
}

// SetQid sets the "qid" field.
func (_c *QuestionCreate) SetQid(v string) *QuestionCreate {
	_c.mutation.SetQid(v)
	return _c
}

// SetText sets the "text" field.
func (_c *QuestionCreate) SetText(v string) *QuestionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *QuestionCreate) SetTags(v []string) *QuestionCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *QuestionCreate) SetTopic(v string) *QuestionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetSubtopic sets the "subtopic" field.
func (_c *QuestionCreate) SetSubtopic(v string) *QuestionCreate {
	_c.mutation.SetSubtopic(v)
	return _c
}

// SetNillableSubtopic sets the "subtopic" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableSubtopic(v *string) *QuestionCreate {
	if v != nil {
		_c.SetSubtopic(*v)
	}
	return _c
}

// SetBranch sets the "branch" field.
func (_c *QuestionCreate) SetBranch(v string) *QuestionCreate {
	_c.mutation.SetBranch(v)
	return _c
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableBranch(v *string) *QuestionCreate {
	if v != nil {
		_c.SetBranch(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuestionCreate) SetDifficulty(v int) *QuestionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableDifficulty(v *int) *QuestionCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetSeq sets the "seq" field.
func (_c *QuestionCreate) SetSeq(v int64) *QuestionCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *QuestionCreate) SetFingerprint(v string) *QuestionCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.Subtopic(); !ok {
		v := question.DefaultSubtopic
		_c.mutation.SetSubtopic(v)
	}
	if _, ok := _c.mutation.Branch(); !ok {
		v := question.DefaultBranch
		_c.mutation.SetBranch(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := question.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.Qid(); !ok {
		return &ValidationError{Name: "qid", err: errors.New(`ent: missing required field "Question.qid"`)}
	}
	if v, ok := _c.mutation.Qid(); ok {
		if err := question.QidValidator(v); err != nil {
			return &ValidationError{Name: "qid", err: fmt.Errorf(`ent: validator failed for field "Question.qid": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Question.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := question.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Question.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "Question.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := question.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Question.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subtopic(); !ok {
		return &ValidationError{Name: "subtopic", err: errors.New(`ent: missing required field "Question.subtopic"`)}
	}
	if _, ok := _c.mutation.Branch(); !ok {
		return &ValidationError{Name: "branch", err: errors.New(`ent: missing required field "Question.branch"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Question.difficulty"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "Question.seq"`)}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "Question.fingerprint"`)}
	}
	if v, ok := _c.mutation.Fingerprint(); ok {
		if err := question.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Question.fingerprint": %w`, err)}
		}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Qid(); ok {
		_spec.SetField(question.FieldQid, field.TypeString, value)
		_node.Qid = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(question.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(question.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Subtopic(); ok {
		_spec.SetField(question.FieldSubtopic, field.TypeString, value)
		_node.Subtopic = value
	}
	if value, ok := _c.mutation.Branch(); ok {
		_spec.SetField(question.FieldBranch, field.TypeString, value)
		_node.Branch = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(question.FieldSeq, field.TypeInt64, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(question.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	return _node, _spec
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
