package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a leaf content item within a lesson. Question order is
// significant: it drives per-question timestamp offsets during seeding.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("public_id").
			Unique().
			NotEmpty(),
		field.String("lesson_id").NotEmpty(),
		field.Int("position").
			NonNegative(),
		field.String("assignment_question_id").
			NotEmpty().
			Comment("ID the pacing dashboard uses to join responses"),
		field.String("knowledge_component_id").
			Optional().
			Comment("Empty suppresses the question-shown event"),
		field.String("prompt").NotEmpty(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("public_id"),
		index.Fields("lesson_id", "position"),
	}
}
