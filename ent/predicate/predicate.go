// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// QuestionState is the predicate function for questionstate builders.
type QuestionState func(*sql.Selector)

// TopicWeight is the predicate function for topicweight builders.
type TopicWeight func(*sql.Selector)

// WeightChangeEvent is the predicate function for weightchangeevent builders.
type WeightChangeEvent func(*sql.Selector)
