package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudentProfile is a synthetic student identity. The same profile could
// in principle be enrolled in several groups; the sandbox uses one each.
type StudentProfile struct {
	ent.Schema
}

func (StudentProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("public_id").
			Unique().
			NotEmpty(),
		field.String("display_name").NotEmpty(),
	}
}

func (StudentProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("public_id"),
	}
}
