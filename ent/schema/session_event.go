package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records assessment lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("student_name").
			NotEmpty().
			Comment("Student full name"),
		field.String("student_prn").
			NotEmpty().
			Comment("Personal registration number"),
		field.String("topic_id").
			NotEmpty().
			Comment("Catalog key or 'custom'"),
		field.String("topic_name").
			NotEmpty().
			Comment("Display name of the assessment topic"),
		field.Int("score").
			Default(0).
			Comment("Points earned (on end only)"),
		field.Int("max_score").
			Default(0).
			Comment("Points possible across issued questions (on end only)"),
		field.Int("questions_asked").
			Default(0).
			Comment("Questions issued (on end only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Answers marked correct (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Time budget consumed in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
		index.Fields("student_prn"),
	}
}
