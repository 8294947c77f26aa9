// Code generated by ent, DO NOT EDIT.

package weightchangeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the weightchangeevent type in the database.
	Label = "weight_change_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldSubtopic holds the string denoting the subtopic field in the database.
	FieldSubtopic = "subtopic"
	// FieldBranch holds the string denoting the branch field in the database.
	FieldBranch = "branch"
	// FieldDelta holds the string denoting the delta field in the database.
	FieldDelta = "delta"
	// FieldSkipCompensationApplied holds the string denoting the skip_compensation_applied field in the database.
	FieldSkipCompensationApplied = "skip_compensation_applied"
	// FieldSkipCompensationTopic holds the string denoting the skip_compensation_topic field in the database.
	FieldSkipCompensationTopic = "skip_compensation_topic"
	// FieldSkipCompensationSubtopic holds the string denoting the skip_compensation_subtopic field in the database.
	FieldSkipCompensationSubtopic = "skip_compensation_subtopic"
	// FieldSkipCompensationBranch holds the string denoting the skip_compensation_branch field in the database.
	FieldSkipCompensationBranch = "skip_compensation_branch"
	// FieldOrigin holds the string denoting the origin field in the database.
	FieldOrigin = "origin"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldSyncedAt holds the string denoting the synced_at field in the database.
	FieldSyncedAt = "synced_at"
	// Table holds the table name of the weightchangeevent in the database.
	Table = "weight_change_events"
)

// Columns holds all SQL columns for weightchangeevent fields.
var Columns = []string{
	FieldID,
	FieldEventID,
	FieldUserID,
	FieldTopic,
	FieldSubtopic,
	FieldBranch,
	FieldDelta,
	FieldSkipCompensationApplied,
	FieldSkipCompensationTopic,
	FieldSkipCompensationSubtopic,
	FieldSkipCompensationBranch,
	FieldOrigin,
	FieldCreatedAt,
	FieldSyncedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	EventIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// DefaultSubtopic holds the default value on creation for the "subtopic" field.
	DefaultSubtopic string
	// DefaultBranch holds the default value on creation for the "branch" field.
	DefaultBranch string
	// DefaultSkipCompensationApplied holds the default value on creation for the "skip_compensation_applied" field.
	DefaultSkipCompensationApplied bool
	// DefaultSkipCompensationTopic holds the default value on creation for the "skip_compensation_topic" field.
	DefaultSkipCompensationTopic float64
	// DefaultSkipCompensationSubtopic holds the default value on creation for the "skip_compensation_subtopic" field.
	DefaultSkipCompensationSubtopic float64
	// DefaultSkipCompensationBranch holds the default value on creation for the "skip_compensation_branch" field.
	DefaultSkipCompensationBranch float64
	// DefaultOrigin holds the default value on creation for the "origin" field.
	DefaultOrigin string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the WeightChangeEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// BySubtopic orders the results by the subtopic field.
func BySubtopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtopic, opts...).ToFunc()
}

// ByBranch orders the results by the branch field.
func ByBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranch, opts...).ToFunc()
}

// ByDelta orders the results by the delta field.
func ByDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDelta, opts...).ToFunc()
}

// BySkipCompensationApplied orders the results by the skip_compensation_applied field.
func BySkipCompensationApplied(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipCompensationApplied, opts...).ToFunc()
}

// BySkipCompensationTopic orders the results by the skip_compensation_topic field.
func BySkipCompensationTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipCompensationTopic, opts...).ToFunc()
}

// BySkipCompensationSubtopic orders the results by the skip_compensation_subtopic field.
func BySkipCompensationSubtopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipCompensationSubtopic, opts...).ToFunc()
}

// BySkipCompensationBranch orders the results by the skip_compensation_branch field.
func BySkipCompensationBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipCompensationBranch, opts...).ToFunc()
}

// ByOrigin orders the results by the origin field.
func ByOrigin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrigin, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySyncedAt orders the results by the synced_at field.
func BySyncedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSyncedAt, opts...).ToFunc()
}
