package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionEvent records a question being shown to or answered by a
// synthetic student. Shown events exist only for questions with a
// knowledge component; answered events exist for every question.
type QuestionEvent struct {
	ent.Schema
}

func (QuestionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuestionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("enrollment_id").
			NotEmpty().
			Comment("Enrollment the activity belongs to"),
		field.String("lesson_id").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
		field.String("assignment_question_id").
			NotEmpty().
			Comment("Question's ID within its assignment"),
		field.String("knowledge_component_id").
			Optional().
			Comment("Empty for questions without a knowledge component"),
		field.String("action").
			NotEmpty().
			Comment("shown or answered"),
		field.Bool("correct").
			Default(true).
			Comment("Answered events only; sandbox students answer correctly"),
	}
}

func (QuestionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enrollment_id"),
		index.Fields("lesson_id"),
		index.Fields("action"),
	}
}
