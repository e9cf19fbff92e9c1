package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle: initialization with graph
// data, map generation, and idle expiry.
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
			Comment("Client-generated session UUID"),
		field.String("action").
			NotEmpty().
			Comment("init, generate, or expire"),
		field.Int("node_count").
			Default(0).
			Comment("Nodes in the session graph at event time"),
		field.Int("edge_count").
			Default(0).
			Comment("Edges in the session graph at event time"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
