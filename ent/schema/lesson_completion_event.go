package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonCompletionEvent records a synthetic student finishing a lesson.
type LessonCompletionEvent struct {
	ent.Schema
}

func (LessonCompletionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LessonCompletionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("enrollment_id").NotEmpty(),
		field.String("lesson_id").NotEmpty(),
		field.String("module_id").NotEmpty(),
		field.Int("questions_answered").
			Comment("Number of questions answered before completion"),
	}
}

func (LessonCompletionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enrollment_id"),
		index.Fields("lesson_id"),
	}
}
