// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQid holds the string denoting the qid field in the database.
	FieldQid = "qid"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldSubtopic holds the string denoting the subtopic field in the database.
	FieldSubtopic = "subtopic"
	// FieldBranch holds the string denoting the branch field in the database.
	FieldBranch = "branch"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldFingerprint holds the string denoting the fingerprint field in the database.
	FieldFingerprint = "fingerprint"
	// Table holds the table name of the question in the database.
	Table = "questions"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldQid,
	FieldText,
	FieldTags,
	FieldTopic,
	FieldSubtopic,
	FieldBranch,
	FieldDifficulty,
	FieldSeq,
	FieldFingerprint,
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
	// QidValidator is a validator for the "qid" field. It is called by the builders before save.
	QidValidator func(string) error
	// TextValidator is a validator for the "text" field. It is called by the builders before save.
	TextValidator func(string) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// DefaultSubtopic holds the default value on creation for the "subtopic" field.
	DefaultSubtopic string
	// DefaultBranch holds the default value on creation for the "branch" field.
	DefaultBranch string
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty int
	// FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	FingerprintValidator func(string) error
)

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQid orders the results by the qid field.
func ByQid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQid, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
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

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByFingerprint orders the results by the fingerprint field.
func ByFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFingerprint, opts...).ToFunc()
}
