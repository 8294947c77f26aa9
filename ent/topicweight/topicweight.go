// Code generated by ent, DO NOT EDIT.

package topicweight

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the topicweight type in the database.
	Label = "topic_weight"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldSubtopic holds the string denoting the subtopic field in the database.
	FieldSubtopic = "subtopic"
	// FieldBranch holds the string denoting the branch field in the database.
	FieldBranch = "branch"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldSampleCount holds the string denoting the sample_count field in the database.
	FieldSampleCount = "sample_count"
	// FieldRecent holds the string denoting the recent field in the database.
	FieldRecent = "recent"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// Table holds the table name of the topicweight in the database.
	Table = "topic_weights"
)

// Columns holds all SQL columns for topicweight fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTopic,
	FieldSubtopic,
	FieldBranch,
	FieldScore,
	FieldSampleCount,
	FieldRecent,
	FieldLastUpdated,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// DefaultSubtopic holds the default value on creation for the "subtopic" field.
	DefaultSubtopic string
	// DefaultBranch holds the default value on creation for the "branch" field.
	DefaultBranch string
	// DefaultSampleCount holds the default value on creation for the "sample_count" field.
	DefaultSampleCount int
)

// OrderOption defines the ordering options for the TopicWeight queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
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

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// BySampleCount orders the results by the sample_count field.
func BySampleCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSampleCount, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}
