package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentResponseEvent records a synthetic student's response to a
// group-level assessment (distinct from per-lesson mastery checks).
type AssessmentResponseEvent struct {
	ent.Schema
}

func (AssessmentResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("enrollment_id").NotEmpty(),
		field.String("assessment_id").NotEmpty(),
		field.Float("score").
			Comment("Overall assessment score, 0..1"),
		field.Int("questions_answered"),
	}
}

func (AssessmentResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enrollment_id"),
		index.Fields("assessment_id"),
	}
}
