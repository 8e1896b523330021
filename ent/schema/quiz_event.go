package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records quiz lifecycle milestones: a generated batch or a scored
// session. Audit-only; user state lives client-side.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			Comment("Event kind: generated, scored"),
		field.String("certification_id").
			Comment("Exam code, e.g. AZ-900"),
		field.String("domain").
			Comment("Curriculum domain the quiz targeted"),
		field.Int("question_count").
			Default(0).
			Comment("Number of questions in the batch"),
		field.Bool("used_fallback").
			Default(false).
			Comment("Whether the static bank served the batch"),
		field.Int("score").
			Default(0).
			Comment("Correct answers (scored events only)"),
		field.Int("percentage").
			Default(0).
			Comment("Rounded score percentage (scored events only)"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
		index.Fields("certification_id"),
	}
}
