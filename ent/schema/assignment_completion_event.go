package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssignmentCompletionEvent records a mastery-check response and its
// completion. Mastery checks are paired 1:1 with lessons; the completion
// materializes as an assignment-completion record on the dashboard.
type AssignmentCompletionEvent struct {
	ent.Schema
}

func (AssignmentCompletionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssignmentCompletionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("enrollment_id").NotEmpty(),
		field.String("assignment_id").NotEmpty(),
		field.String("lesson_id").
			NotEmpty().
			Comment("Lesson this mastery check gates"),
		field.Float("score").
			Comment("Fraction of the mastery check answered correctly, 0..1"),
		field.Bool("delayed").
			Default(false).
			Comment("True when completion happened on a later working day than the lesson"),
	}
}

func (AssignmentCompletionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enrollment_id"),
		index.Fields("assignment_id"),
	}
}
