// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nvarma/quizfeed/ent/questionstate"
)

// QuestionState is the model entity for the QuestionState schema.
type QuestionState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// References Question.qid
	QuestionID string `json:"question_id,omitempty"`
	// unanswered, answered, or skipped
	Status string `json:"status,omitempty"`
	// Chosen answer position, set only for answered
	AnswerIndex *int `json:"answer_index,omitempty"`
	// When the terminal status was reached
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionstate.FieldID, questionstate.FieldAnswerIndex:
			values[i] = new(sql.NullInt64)
		case questionstate.FieldUserID, questionstate.FieldQuestionID, questionstate.FieldStatus:
			values[i] = new(sql.NullString)
		case questionstate.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionState fields.
func (_m *QuestionState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case questionstate.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case questionstate.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case questionstate.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case questionstate.FieldAnswerIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field answer_index", values[i])
			} else if value.Valid {
				_m.AnswerIndex = new(int)
				*_m.AnswerIndex = int(value.Int64)
			}
		case questionstate.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionState.
// This includes values selected through modifiers, order, etc.
func (_m *QuestionState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuestionState.
// Note that you need to call QuestionState.Unwrap() before calling this method if this QuestionState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuestionState) Update() *QuestionStateUpdateOne {
	return NewQuestionStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuestionState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuestionState) Unwrap() *QuestionState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuestionState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuestionState) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.AnswerIndex; v != nil {
		builder.WriteString("answer_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// QuestionStates is a parsable slice of QuestionState.
type QuestionStates []*QuestionState
