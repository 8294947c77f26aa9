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
	"github.com/nvarma/quizfeed/ent/predicate"
	"github.com/nvarma/quizfeed/ent/questionstate"
)

// QuestionStateUpdate is the builder for updating QuestionState entities.
type QuestionStateUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionStateMutation
}

// Where appends a list predicates to the QuestionStateUpdate builder.
func (_u *QuestionStateUpdate) Where(ps ...predicate.QuestionState) *QuestionStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuestionStateUpdate) SetStatus(v string) *QuestionStateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuestionStateUpdate) SetNillableStatus(v *string) *QuestionStateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAnswerIndex sets the "answer_index" field.
func (_u *QuestionStateUpdate) SetAnswerIndex(v int) *QuestionStateUpdate {
	_u.mutation.ResetAnswerIndex()
	_u.mutation.SetAnswerIndex(v)
	return _u
}

// SetNillableAnswerIndex sets the "answer_index" field if the given value is not nil.
func (_u *QuestionStateUpdate) SetNillableAnswerIndex(v *int) *QuestionStateUpdate {
	if v != nil {
		_u.SetAnswerIndex(*v)
	}
	return _u
}

// AddAnswerIndex adds value to the "answer_index" field.
func (_u *QuestionStateUpdate) AddAnswerIndex(v int) *QuestionStateUpdate {
	_u.mutation.AddAnswerIndex(v)
	return _u
}

// ClearAnswerIndex clears the value of the "answer_index" field.
func (_u *QuestionStateUpdate) ClearAnswerIndex() *QuestionStateUpdate {
	_u.mutation.ClearAnswerIndex()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *QuestionStateUpdate) SetResolvedAt(v time.Time) *QuestionStateUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *QuestionStateUpdate) SetNillableResolvedAt(v *time.Time) *QuestionStateUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *QuestionStateUpdate) ClearResolvedAt() *QuestionStateUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the QuestionStateMutation object of the builder.
func (_u *QuestionStateUpdate) Mutation() *QuestionStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuestionStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(questionstate.Table, questionstate.Columns, sqlgraph.NewFieldSpec(questionstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(questionstate.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerIndex(); ok {
		_spec.SetField(questionstate.FieldAnswerIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswerIndex(); ok {
		_spec.AddField(questionstate.FieldAnswerIndex, field.TypeInt, value)
	}
	if _u.mutation.AnswerIndexCleared() {
		_spec.ClearField(questionstate.FieldAnswerIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(questionstate.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(questionstate.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionStateUpdateOne is the builder for updating a single QuestionState entity.
type QuestionStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionStateMutation
}

// SetStatus sets the "status" field.
func (_u *QuestionStateUpdateOne) SetStatus(v string) *QuestionStateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuestionStateUpdateOne) SetNillableStatus(v *string) *QuestionStateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAnswerIndex sets the "answer_index" field.
func (_u *QuestionStateUpdateOne) SetAnswerIndex(v int) *QuestionStateUpdateOne {
	_u.mutation.ResetAnswerIndex()
	_u.mutation.SetAnswerIndex(v)
	return _u
}

// SetNillableAnswerIndex sets the "answer_index" field if the given value is not nil.
func (_u *QuestionStateUpdateOne) SetNillableAnswerIndex(v *int) *QuestionStateUpdateOne {
	if v != nil {
		_u.SetAnswerIndex(*v)
	}
	return _u
}

// AddAnswerIndex adds value to the "answer_index" field.
func (_u *QuestionStateUpdateOne) AddAnswerIndex(v int) *QuestionStateUpdateOne {
	_u.mutation.AddAnswerIndex(v)
	return _u
}

// ClearAnswerIndex clears the value of the "answer_index" field.
func (_u *QuestionStateUpdateOne) ClearAnswerIndex() *QuestionStateUpdateOne {
	_u.mutation.ClearAnswerIndex()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *QuestionStateUpdateOne) SetResolvedAt(v time.Time) *QuestionStateUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *QuestionStateUpdateOne) SetNillableResolvedAt(v *time.Time) *QuestionStateUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *QuestionStateUpdateOne) ClearResolvedAt() *QuestionStateUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the QuestionStateMutation object of the builder.
func (_u *QuestionStateUpdateOne) Mutation() *QuestionStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionStateUpdate builder.
func (_u *QuestionStateUpdateOne) Where(ps ...predicate.QuestionState) *QuestionStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionStateUpdateOne) Select(field string, fields ...string) *QuestionStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionState entity.
func (_u *QuestionStateUpdateOne) Save(ctx context.Context) (*QuestionState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionStateUpdateOne) SaveX(ctx context.Context) *QuestionState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuestionStateUpdateOne) sqlSave(ctx context.Context) (_node *QuestionState, err error) {
	_spec := sqlgraph.NewUpdateSpec(questionstate.Table, questionstate.Columns, sqlgraph.NewFieldSpec(questionstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionstate.FieldID)
		for _, f := range fields {
			if !questionstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionstate.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(questionstate.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerIndex(); ok {
		_spec.SetField(questionstate.FieldAnswerIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswerIndex(); ok {
		_spec.AddField(questionstate.FieldAnswerIndex, field.TypeInt, value)
	}
	if _u.mutation.AnswerIndexCleared() {
		_spec.ClearField(questionstate.FieldAnswerIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(questionstate.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(questionstate.FieldResolvedAt, field.TypeTime)
	}
	_node = &QuestionState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
