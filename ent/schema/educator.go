package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Educator is the sandbox teacher account the seeded group belongs to.
type Educator struct {
	ent.Schema
}

func (Educator) Fields() []ent.Field {
	return []ent.Field{
		field.String("public_id").
			Unique().
			NotEmpty(),
		field.String("name").NotEmpty(),
		field.String("email").NotEmpty(),
	}
}

func (Educator) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("public_id"),
	}
}
