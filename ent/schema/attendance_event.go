package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttendanceEvent records attendance for one student on one working day.
type AttendanceEvent struct {
	ent.Schema
}

func (AttendanceEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttendanceEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("enrollment_id").NotEmpty(),
		field.Time("date").
			Comment("Calendar day being marked, midnight UTC"),
		field.String("status").
			NotEmpty().
			Comment("present, absent or late"),
	}
}

func (AttendanceEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enrollment_id"),
		index.Fields("date"),
		index.Fields("status"),
	}
}
