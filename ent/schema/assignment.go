package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assignment is either a mastery check paired with a lesson or a
// group-level assessment.
type Assignment struct {
	ent.Schema
}

func (Assignment) Fields() []ent.Field {
	return []ent.Field{
		field.String("public_id").
			Unique().
			NotEmpty(),
		field.String("group_id").NotEmpty(),
		field.String("title").NotEmpty(),
		field.String("kind").
			NotEmpty().
			Comment("mastery-check or assessment"),
	}
}

func (Assignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("public_id"),
		index.Fields("group_id", "kind"),
	}
}
