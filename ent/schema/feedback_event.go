package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FeedbackEvent records an AI feedback comment attached to a student's
// work, as rendered in the Canvas feedback panel.
type FeedbackEvent struct {
	ent.Schema
}

func (FeedbackEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (FeedbackEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("enrollment_id").NotEmpty(),
		field.String("lesson_id").NotEmpty(),
		field.String("comment").
			NotEmpty().
			Comment("Teacher-facing feedback text"),
		field.String("tone").
			NotEmpty().
			Comment("encouraging, corrective or neutral"),
		field.String("generator").
			NotEmpty().
			Comment("Model ID that produced the comment, or canned"),
	}
}

func (FeedbackEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enrollment_id"),
		index.Fields("lesson_id"),
	}
}
