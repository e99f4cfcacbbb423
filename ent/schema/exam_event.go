package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamEvent records the outcome of a finished timed exam.
type ExamEvent struct {
	ent.Schema
}

func (ExamEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExamEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the exam session"),
		field.Int("correct_count").
			Comment("Questions answered correctly"),
		field.Int("total").
			Comment("Questions sampled for the exam"),
		field.Int("threshold").
			Comment("Correct answers required to pass"),
		field.Bool("passed").
			Comment("Whether correct_count met the threshold"),
		field.Int("duration_secs").
			Default(0).
			Comment("Seconds elapsed before submission"),
	}
}

func (ExamEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("passed"),
	}
}
