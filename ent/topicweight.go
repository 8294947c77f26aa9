// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nvarma/quizfeed/ent/topicweight"
)

// TopicWeight is the model entity for the TopicWeight schema.
type TopicWeight struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Subtopic holds the value of the "subtopic" field.
	Subtopic string `json:"subtopic,omitempty"`
	// Branch holds the value of the "branch" field.
	Branch string `json:"branch,omitempty"`
	// Clamped interest score
	Score float64 `json:"score,omitempty"`
	// Number of events applied, only ever increases
	SampleCount int `json:"sample_count,omitempty"`
	// Recent answer outcomes, newest last, used for skip compensation
	Recent []bool `json:"recent,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated  time.Time `json:"last_updated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TopicWeight) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case topicweight.FieldRecent:
			values[i] = new([]byte)
		case topicweight.FieldScore:
			values[i] = new(sql.NullFloat64)
		case topicweight.FieldID, topicweight.FieldSampleCount:
			values[i] = new(sql.NullInt64)
		case topicweight.FieldUserID, topicweight.FieldTopic, topicweight.FieldSubtopic, topicweight.FieldBranch:
			values[i] = new(sql.NullString)
		case topicweight.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TopicWeight fields.
func (_m *TopicWeight) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case topicweight.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case topicweight.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case topicweight.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case topicweight.FieldSubtopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subtopic", values[i])
			} else if value.Valid {
				_m.Subtopic = value.String
			}
		case topicweight.FieldBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch", values[i])
			} else if value.Valid {
				_m.Branch = value.String
			}
		case topicweight.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case topicweight.FieldSampleCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sample_count", values[i])
			} else if value.Valid {
				_m.SampleCount = int(value.Int64)
			}
		case topicweight.FieldRecent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recent", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recent); err != nil {
					return fmt.Errorf("unmarshal field recent: %w", err)
				}
			}
		case topicweight.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TopicWeight.
// This includes values selected through modifiers, order, etc.
func (_m *TopicWeight) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TopicWeight.
// Note that you need to call TopicWeight.Unwrap() before calling this method if this TopicWeight
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TopicWeight) Update() *TopicWeightUpdateOne {
	return NewTopicWeightClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TopicWeight entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TopicWeight) Unwrap() *TopicWeight {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TopicWeight is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TopicWeight) String() string {
	var builder strings.Builder
	builder.WriteString("TopicWeight(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
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
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("sample_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SampleCount))
	builder.WriteString(", ")
	builder.WriteString("recent=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recent))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TopicWeights is a parsable slice of TopicWeight.
type TopicWeights []*TopicWeight
