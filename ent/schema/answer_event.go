package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one answer tapped during a quiz run.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("Quiz run the answer belongs to"),
		field.Int("page").
			Comment("Zero-based question index"),
		field.Int("seq").
			Comment("Position in the run's responses"),
		field.String("question").
			Comment("Question text shown on the page"),
		field.String("answer").
			Comment("Answer as recorded, not checked against the choices"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
	}
}
