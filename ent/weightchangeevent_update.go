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
	"github.com/nvarma/quizfeed/ent/weightchangeevent"
)

// WeightChangeEventUpdate is the builder for updating WeightChangeEvent entities.
type WeightChangeEventUpdate struct {
	config
	hooks    []Hook
	mutation *WeightChangeEventMutation
}

// Where appends a list predicates to the WeightChangeEventUpdate builder.
func (_u *WeightChangeEventUpdate) Where(ps ...predicate.WeightChangeEvent) *WeightChangeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSyncedAt sets the "synced_at" field.
func (_u *WeightChangeEventUpdate) SetSyncedAt(v time.Time) *WeightChangeEventUpdate {
	_u.mutation.SetSyncedAt(v)
	return _u
}

// SetNillableSyncedAt sets the "synced_at" field if the given value is not nil.
func (_u *WeightChangeEventUpdate) SetNillableSyncedAt(v *time.Time) *WeightChangeEventUpdate {
	if v != nil {
		_u.SetSyncedAt(*v)
	}
	return _u
}

// ClearSyncedAt clears the value of the "synced_at" field.
func (_u *WeightChangeEventUpdate) ClearSyncedAt() *WeightChangeEventUpdate {
	_u.mutation.ClearSyncedAt()
	return _u
}

// Mutation returns the WeightChangeEventMutation object of the builder.
func (_u *WeightChangeEventUpdate) Mutation() *WeightChangeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WeightChangeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeightChangeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WeightChangeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeightChangeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WeightChangeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(weightchangeevent.Table, weightchangeevent.Columns, sqlgraph.NewFieldSpec(weightchangeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SyncedAt(); ok {
		_spec.SetField(weightchangeevent.FieldSyncedAt, field.TypeTime, value)
	}
	if _u.mutation.SyncedAtCleared() {
		_spec.ClearField(weightchangeevent.FieldSyncedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weightchangeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WeightChangeEventUpdateOne is the builder for updating a single WeightChangeEvent entity.
type WeightChangeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WeightChangeEventMutation
}

// SetSyncedAt sets the "synced_at" field.
func (_u *WeightChangeEventUpdateOne) SetSyncedAt(v time.Time) *WeightChangeEventUpdateOne {
	_u.mutation.SetSyncedAt(v)
	return _u
}

// SetNillableSyncedAt sets the "synced_at" field if the given value is not nil.
func (_u *WeightChangeEventUpdateOne) SetNillableSyncedAt(v *time.Time) *WeightChangeEventUpdateOne {
	if v != nil {
		_u.SetSyncedAt(*v)
	}
	return _u
}

// ClearSyncedAt clears the value of the "synced_at" field.
func (_u *WeightChangeEventUpdateOne) ClearSyncedAt() *WeightChangeEventUpdateOne {
	_u.mutation.ClearSyncedAt()
	return _u
}

// Mutation returns the WeightChangeEventMutation object of the builder.
func (_u *WeightChangeEventUpdateOne) Mutation() *WeightChangeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the WeightChangeEventUpdate builder.
func (_u *WeightChangeEventUpdateOne) Where(ps ...predicate.WeightChangeEvent) *WeightChangeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WeightChangeEventUpdateOne) Select(field string, fields ...string) *WeightChangeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WeightChangeEvent entity.
func (_u *WeightChangeEventUpdateOne) Save(ctx context.Context) (*WeightChangeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeightChangeEventUpdateOne) SaveX(ctx context.Context) *WeightChangeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WeightChangeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeightChangeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WeightChangeEventUpdateOne) sqlSave(ctx context.Context) (_node *WeightChangeEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(weightchangeevent.Table, weightchangeevent.Columns, sqlgraph.NewFieldSpec(weightchangeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WeightChangeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, weightchangeevent.FieldID)
		for _, f := range fields {
			if !weightchangeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != weightchangeevent.FieldID {
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
	if value, ok := _u.mutation.SyncedAt(); ok {
		_spec.SetField(weightchangeevent.FieldSyncedAt, field.TypeTime, value)
	}
	if _u.mutation.SyncedAtCleared() {
		_spec.ClearField(weightchangeevent.FieldSyncedAt, field.TypeTime)
	}
	_node = &WeightChangeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weightchangeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
