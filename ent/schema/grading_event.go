package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GradingEvent records one graded answer submission within a session.
type GradingEvent struct {
	ent.Schema
}

func (GradingEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GradingEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session the answer belongs to"),
		field.String("node_id").
			NotEmpty().
			Comment("Topic node the question was generated for"),
		field.String("question_id").
			NotEmpty().
			Comment("Question that was answered"),
		field.Int("attempt").
			Comment("Attempt number for this question, 1-based"),
		field.Int("grade").
			Comment("Grade assigned by the grader, 0-100"),
		field.Bool("passed").
			Comment("Whether the grade met the pass threshold"),
		field.String("node_status").
			NotEmpty().
			Comment("Node status after the result was applied"),
	}
}

func (GradingEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("node_id"),
		index.Fields("passed"),
	}
}
