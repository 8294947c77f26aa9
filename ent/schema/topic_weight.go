package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicWeight holds a user's interest score at one level of the
// topic/subtopic/branch hierarchy. Mutated only through the weight
// model's update path.
type TopicWeight struct {
	ent.Schema
}

func (TopicWeight) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("topic").
			NotEmpty().
			Immutable(),
		field.String("subtopic").
			Default("").
			Immutable(),
		field.String("branch").
			Default("").
			Immutable(),
		field.Float("score").
			Comment("Clamped interest score"),
		field.Int("sample_count").
			Default(0).
			Comment("Number of events applied, only ever increases"),
		field.JSON("recent", []bool{}).
			Optional().
			Comment("Recent answer outcomes, newest last, used for skip compensation"),
		field.Time("last_updated"),
	}
}

func (TopicWeight) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic", "subtopic", "branch").Unique(),
		index.Fields("user_id"),
	}
}
