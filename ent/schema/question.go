package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is an ingested trivia question. Rows are immutable after
// creation; a changed question is a new row with a fresh fingerprint
// collision check.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("qid").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Opaque question identifier assigned at authoring time"),
		field.String("text").
			NotEmpty().
			Immutable().
			Comment("The question as shown to the user"),
		field.JSON("tags", []string{}).
			Optional().
			Immutable().
			Comment("Free-form classification tags"),
		field.String("topic").
			NotEmpty().
			Immutable().
			Comment("Top level of the topic hierarchy"),
		field.String("subtopic").
			Default("").
			Immutable().
			Comment("Second hierarchy level, empty when unclassified"),
		field.String("branch").
			Default("").
			Immutable().
			Comment("Third hierarchy level under subtopic"),
		field.Int("difficulty").
			Default(0).
			Immutable(),
		field.Int64("seq").
			Unique().
			Immutable().
			Comment("Ingestion order assigned by the pool index"),
		field.String("fingerprint").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Canonical dedup digest of text+tags"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("topic", "subtopic"),
	}
}
