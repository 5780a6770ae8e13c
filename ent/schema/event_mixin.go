package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin provides the base fields shared by all activity event types.
// Every event entity includes this mixin so the dashboard can order events
// across tables by a single global sequence, and scope them to the sandbox
// group they were seeded for.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Monotonically increasing global sequence number"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("UTC time the simulated activity happened (usually in the past)"),
		field.String("group_id").
			NotEmpty().
			Immutable().
			Comment("Public ID of the group this event was seeded for"),
	}
}

func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
		index.Fields("timestamp"),
		index.Fields("group_id"),
	}
}
