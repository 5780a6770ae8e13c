package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Enrollment links a student profile to a group. Enrollment creation
// order is stable and determines the student index every deterministic
// pacing decision is derived from.
type Enrollment struct {
	ent.Schema
}

func (Enrollment) Fields() []ent.Field {
	return []ent.Field{
		field.String("public_id").
			Unique().
			NotEmpty(),
		field.String("group_id").NotEmpty(),
		field.String("student_profile_id").NotEmpty(),
		field.String("display_name").NotEmpty(),
		field.Int("position").
			NonNegative().
			Comment("Stable index within the group roster"),
	}
}

func (Enrollment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("public_id"),
		index.Fields("group_id", "position"),
	}
}
