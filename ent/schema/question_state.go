package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionState tracks one (user, question) pair. Created the first
// time a question is shown; the status transition to answered or
// skipped is terminal and never reverts.
type QuestionState struct {
	ent.Schema
}

func (QuestionState) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("question_id").
			NotEmpty().
			Immutable().
			Comment("References Question.qid"),
		field.String("status").
			Default("unanswered").
			Comment("unanswered, answered, or skipped"),
		field.Int("answer_index").
			Optional().
			Nillable().
			Comment("Chosen answer position, set only for answered"),
		field.Time("resolved_at").
			Optional().
			Nillable().
			Comment("When the terminal status was reached"),
	}
}

func (QuestionState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "question_id").Unique(),
		index.Fields("user_id", "status"),
	}
}
