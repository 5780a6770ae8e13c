package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Group is a class of students taught by one educator.
type Group struct {
	ent.Schema
}

func (Group) Fields() []ent.Field {
	return []ent.Field{
		field.String("public_id").
			Unique().
			NotEmpty(),
		field.String("name").NotEmpty(),
		field.String("educator_id").
			NotEmpty().
			Comment("Public ID of the owning educator"),
	}
}

func (Group) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("public_id"),
		index.Fields("educator_id"),
	}
}
