package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CourseModule is one sequential unit of the curriculum. Module order
// drives the pacing simulation: students progress module by module.
type CourseModule struct {
	ent.Schema
}

func (CourseModule) Fields() []ent.Field {
	return []ent.Field{
		field.String("public_id").
			Unique().
			NotEmpty(),
		field.String("group_id").NotEmpty(),
		field.String("title").NotEmpty(),
		field.Int("position").
			NonNegative().
			Comment("Zero-based order within the group's curriculum"),
	}
}

func (CourseModule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("public_id"),
		index.Fields("group_id", "position"),
	}
}
