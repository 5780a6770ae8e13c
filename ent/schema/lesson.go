package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lesson is one teachable unit within a module, optionally gated by a
// mastery-check assignment.
type Lesson struct {
	ent.Schema
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("public_id").
			Unique().
			NotEmpty(),
		field.String("module_id").NotEmpty(),
		field.String("title").NotEmpty(),
		field.Int("position").
			NonNegative().
			Comment("Zero-based order within the module"),
		field.String("assignment_id").
			Optional().
			Comment("Mastery-check assignment public ID, empty when ungated"),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("public_id"),
		index.Fields("module_id", "position"),
	}
}
