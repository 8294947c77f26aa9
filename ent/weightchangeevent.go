// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nvarma/quizfeed/ent/weightchangeevent"
)

// WeightChangeEvent is the model entity for the WeightChangeEvent schema.
type WeightChangeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID, the idempotency key
	EventID string `json:"event_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Subtopic holds the value of the "subtopic" field.
	Subtopic string `json:"subtopic,omitempty"`
	// Branch holds the value of the "branch" field.
	Branch string `json:"branch,omitempty"`
	// Intended delta before clamping
	Delta float64 `json:"delta,omitempty"`
	// SkipCompensationApplied holds the value of the "skip_compensation_applied" field.
	SkipCompensationApplied bool `json:"skip_compensation_applied,omitempty"`
	// SkipCompensationTopic holds the value of the "skip_compensation_topic" field.
	SkipCompensationTopic float64 `json:"skip_compensation_topic,omitempty"`
	// SkipCompensationSubtopic holds the value of the "skip_compensation_subtopic" field.
	SkipCompensationSubtopic float64 `json:"skip_compensation_subtopic,omitempty"`
	// SkipCompensationBranch holds the value of the "skip_compensation_branch" field.
	SkipCompensationBranch float64 `json:"skip_compensation_branch,omitempty"`
	// local for events created on this device, remote for pulled ones
	Origin string `json:"origin,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Stamped after remote acknowledgment
	SyncedAt     *time.Time `json:"synced_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WeightChangeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case weightchangeevent.FieldSkipCompensationApplied:
			values[i] = new(sql.NullBool)
		case weightchangeevent.FieldDelta, weightchangeevent.FieldSkipCompensationTopic, weightchangeevent.FieldSkipCompensationSubtopic, weightchangeevent.FieldSkipCompensationBranch:
			values[i] = new(sql.NullFloat64)
		case weightchangeevent.FieldID:
			values[i] = new(sql.NullInt64)
		case weightchangeevent.FieldEventID, weightchangeevent.FieldUserID, weightchangeevent.FieldTopic, weightchangeevent.FieldSubtopic, weightchangeevent.FieldBranch, weightchangeevent.FieldOrigin:
			values[i] = new(sql.NullString)
		case weightchangeevent.FieldCreatedAt, weightchangeevent.FieldSyncedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WeightChangeEvent fields.
func (_m *WeightChangeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case weightchangeevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case weightchangeevent.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case weightchangeevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case weightchangeevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case weightchangeevent.FieldSubtopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subtopic", values[i])
			} else if value.Valid {
				_m.Subtopic = value.String
			}
		case weightchangeevent.FieldBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch", values[i])
			} else if value.Valid {
				_m.Branch = value.String
			}
		case weightchangeevent.FieldDelta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field delta", values[i])
			} else if value.Valid {
				_m.Delta = value.Float64
			}
		case weightchangeevent.FieldSkipCompensationApplied:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field skip_compensation_applied", values[i])
			} else if value.Valid {
				_m.SkipCompensationApplied = value.Bool
			}
		case weightchangeevent.FieldSkipCompensationTopic:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field skip_compensation_topic", values[i])
			} else if value.Valid {
				_m.SkipCompensationTopic = value.Float64
			}
		case weightchangeevent.FieldSkipCompensationSubtopic:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field skip_compensation_subtopic", values[i])
			} else if value.Valid {
				_m.SkipCompensationSubtopic = value.Float64
			}
		case weightchangeevent.FieldSkipCompensationBranch:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field skip_compensation_branch", values[i])
			} else if value.Valid {
				_m.SkipCompensationBranch = value.Float64
			}
		case weightchangeevent.FieldOrigin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field origin", values[i])
			} else if value.Valid {
				_m.Origin = value.String
			}
		case weightchangeevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case weightchangeevent.FieldSyncedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field synced_at", values[i])
			} else if value.Valid {
				_m.SyncedAt = new(time.Time)
				*_m.SyncedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WeightChangeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *WeightChangeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WeightChangeEvent.
// Note that you need to call WeightChangeEvent.Unwrap() before calling this method if this WeightChangeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WeightChangeEvent) Update() *WeightChangeEventUpdateOne {
	return NewWeightChangeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WeightChangeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WeightChangeEvent) Unwrap() *WeightChangeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WeightChangeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WeightChangeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("WeightChangeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("subtopic=")
	builder.WriteString(_m.Subtopic)
	builder.WriteString(", ")
	builder.WriteString("branch=")
	builder.WriteString(_m.Branch)
	builder.WriteString(", ")
	builder.WriteString("delta=")
	builder.WriteString(fmt.Sprintf("%v", _m.Delta))
	builder.WriteString(", ")
	builder.WriteString("skip_compensation_applied=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkipCompensationApplied))
	builder.WriteString(", ")
	builder.WriteString("skip_compensation_topic=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkipCompensationTopic))
	builder.WriteString(", ")
	builder.WriteString("skip_compensation_subtopic=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkipCompensationSubtopic))
	builder.WriteString(", ")
	builder.WriteString("skip_compensation_branch=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkipCompensationBranch))
	builder.WriteString(", ")
	builder.WriteString("origin=")
	builder.WriteString(_m.Origin)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.SyncedAt; v != nil {
		builder.WriteString("synced_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// WeightChangeEvents is a parsable slice of WeightChangeEvent.
type WeightChangeEvents []*WeightChangeEvent
