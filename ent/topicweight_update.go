// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/nvarma/quizfeed/ent/predicate"
	"github.com/nvarma/quizfeed/ent/topicweight"
)

// TopicWeightUpdate is the builder for updating TopicWeight entities.
type TopicWeightUpdate struct {
	config
	hooks    []Hook
	mutation *TopicWeightMutation
}

// Where appends a list predicates to the TopicWeightUpdate builder.
func (_u *TopicWeightUpdate) Where(ps ...predicate.TopicWeight) *TopicWeightUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScore sets the "score" field.
func (_u *TopicWeightUpdate) SetScore(v float64) *TopicWeightUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TopicWeightUpdate) SetNillableScore(v *float64) *TopicWeightUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TopicWeightUpdate) AddScore(v float64) *TopicWeightUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetSampleCount sets the "sample_count" field.
func (_u *TopicWeightUpdate) SetSampleCount(v int) *TopicWeightUpdate {
	_u.mutation.ResetSampleCount()
	_u.mutation.SetSampleCount(v)
	return _u
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_u *TopicWeightUpdate) SetNillableSampleCount(v *int) *TopicWeightUpdate {
	if v != nil {
		_u.SetSampleCount(*v)
	}
	return _u
}

// AddSampleCount adds value to the "sample_count" field.
func (_u *TopicWeightUpdate) AddSampleCount(v int) *TopicWeightUpdate {
	_u.mutation.AddSampleCount(v)
	return _u
}

// SetRecent sets the "recent" field.
func (_u *TopicWeightUpdate) SetRecent(v []bool) *TopicWeightUpdate {
	_u.mutation.SetRecent(v)
	return _u
}

// AppendRecent appends value to the "recent" field.
func (_u *TopicWeightUpdate) AppendRecent(v []bool) *TopicWeightUpdate {
	_u.mutation.AppendRecent(v)
	return _u
}

// ClearRecent clears the value of the "recent" field.
func (_u *TopicWeightUpdate) ClearRecent() *TopicWeightUpdate {
	_u.mutation.ClearRecent()
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *TopicWeightUpdate) SetLastUpdated(v time.Time) *TopicWeightUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *TopicWeightUpdate) SetNillableLastUpdated(v *time.Time) *TopicWeightUpdate {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// Mutation returns the TopicWeightMutation object of the builder.
func (_u *TopicWeightUpdate) Mutation() *TopicWeightMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicWeightUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicWeightUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicWeightUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicWeightUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TopicWeightUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(topicweight.Table, topicweight.Columns, sqlgraph.NewFieldSpec(topicweight.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(topicweight.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(topicweight.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SampleCount(); ok {
		_spec.SetField(topicweight.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSampleCount(); ok {
		_spec.AddField(topicweight.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Recent(); ok {
		_spec.SetField(topicweight.FieldRecent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topicweight.FieldRecent, value)
		})
	}
	if _u.mutation.RecentCleared() {
		_spec.ClearField(topicweight.FieldRecent, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(topicweight.FieldLastUpdated, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicweight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicWeightUpdateOne is the builder for updating a single TopicWeight entity.
type TopicWeightUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicWeightMutation
}

// SetScore sets the "score" field.
func (_u *TopicWeightUpdateOne) SetScore(v float64) *TopicWeightUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TopicWeightUpdateOne) SetNillableScore(v *float64) *TopicWeightUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TopicWeightUpdateOne) AddScore(v float64) *TopicWeightUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetSampleCount sets the "sample_count" field.
func (_u *TopicWeightUpdateOne) SetSampleCount(v int) *TopicWeightUpdateOne {
	_u.mutation.ResetSampleCount()
	_u.mutation.SetSampleCount(v)
	return _u
}

// SetNillableSampleCount sets the "sample_count" field if the given value is not nil.
func (_u *TopicWeightUpdateOne) SetNillableSampleCount(v *int) *TopicWeightUpdateOne {
	if v != nil {
		_u.SetSampleCount(*v)
	}
	return _u
}

// AddSampleCount adds value to the "sample_count" field.
func (_u *TopicWeightUpdateOne) AddSampleCount(v int) *TopicWeightUpdateOne {
	_u.mutation.AddSampleCount(v)
	return _u
}

// SetRecent sets the "recent" field.
func (_u *TopicWeightUpdateOne) SetRecent(v []bool) *TopicWeightUpdateOne {
	_u.mutation.SetRecent(v)
	return _u
}

// AppendRecent appends value to the "recent" field.
func (_u *TopicWeightUpdateOne) AppendRecent(v []bool) *TopicWeightUpdateOne {
	_u.mutation.AppendRecent(v)
	return _u
}

// ClearRecent clears the value of the "recent" field.
func (_u *TopicWeightUpdateOne) ClearRecent() *TopicWeightUpdateOne {
	_u.mutation.ClearRecent()
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *TopicWeightUpdateOne) SetLastUpdated(v time.Time) *TopicWeightUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *TopicWeightUpdateOne) SetNillableLastUpdated(v *time.Time) *TopicWeightUpdateOne {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// Mutation returns the TopicWeightMutation object of the builder.
func (_u *TopicWeightUpdateOne) Mutation() *TopicWeightMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicWeightUpdate builder.
func (_u *TopicWeightUpdateOne) Where(ps ...predicate.TopicWeight) *TopicWeightUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicWeightUpdateOne) Select(field string, fields ...string) *TopicWeightUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicWeight entity.
func (_u *TopicWeightUpdateOne) Save(ctx context.Context) (*TopicWeight, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicWeightUpdateOne) SaveX(ctx context.Context) *TopicWeight {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicWeightUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicWeightUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TopicWeightUpdateOne) sqlSave(ctx context.Context) (_node *TopicWeight, err error) {
	_spec := sqlgraph.NewUpdateSpec(topicweight.Table, topicweight.Columns, sqlgraph.NewFieldSpec(topicweight.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicWeight.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicweight.FieldID)
		for _, f := range fields {
			if !topicweight.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicweight.FieldID {
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
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(topicweight.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(topicweight.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SampleCount(); ok {
		_spec.SetField(topicweight.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSampleCount(); ok {
		_spec.AddField(topicweight.FieldSampleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Recent(); ok {
		_spec.SetField(topicweight.FieldRecent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, topicweight.FieldRecent, value)
		})
	}
	if _u.mutation.RecentCleared() {
		_spec.ClearField(topicweight.FieldRecent, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(topicweight.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &TopicWeight{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicweight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
