package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PointEvent records a point award shown on the group leaderboard.
type PointEvent struct {
	ent.Schema
}

func (PointEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PointEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("enrollment_id").NotEmpty(),
		field.Int("points").
			Positive(),
		field.String("reason").
			NotEmpty().
			Comment("lesson-completed, mastery-check or streak"),
	}
}

func (PointEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enrollment_id"),
	}
}
