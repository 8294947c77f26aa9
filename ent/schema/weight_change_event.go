package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WeightChangeEvent is an immutable, append-only record of one weight
// delta. The event_id is the idempotency key for cross-device sync;
// synced_at is the only field ever written after creation. Columns
// added after initial deployment must be additive and defaulted so
// older clients keep inserting successfully.
type WeightChangeEvent struct {
	ent.Schema
}

func (WeightChangeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID, the idempotency key"),
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
		field.Float("delta").
			Immutable().
			Comment("Intended delta before clamping"),
		field.Bool("skip_compensation_applied").
			Default(false).
			Immutable(),
		field.Float("skip_compensation_topic").
			Default(0).
			Immutable(),
		field.Float("skip_compensation_subtopic").
			Default(0).
			Immutable(),
		field.Float("skip_compensation_branch").
			Default(0).
			Immutable(),
		field.String("origin").
			Default("local").
			Immutable().
			Comment("local for events created on this device, remote for pulled ones"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("synced_at").
			Optional().
			Nillable().
			Comment("Stamped after remote acknowledgment"),
	}
}

func (WeightChangeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("synced_at"),
		index.Fields("origin", "created_at"),
	}
}
