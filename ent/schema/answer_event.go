package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single scored answer within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.Int("question_number").
			Comment("1-based position within the session"),
		field.String("kind").
			NotEmpty().
			Comment("mcq, truefalse, descriptive, or scenario"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.String("question_text").
			NotEmpty().
			Comment("The question as shown"),
		field.String("student_answer").
			NotEmpty().
			Comment("What the student submitted"),
		field.Bool("correct").
			Comment("Evaluator's correctness verdict"),
		field.Int("points_awarded").
			Comment("Points granted, clamped to [0, max_points]"),
		field.Int("max_points").
			Comment("Point value of the question"),
		field.String("reference_answer").
			Default("").
			Comment("Evaluator's ideal answer"),
		field.Int("time_secs").
			Comment("Seconds spent on the question"),
		field.Bool("hint_used").
			Default(false).
			Comment("Whether the hint was revealed"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("correct"),
		index.Fields("kind"),
	}
}
