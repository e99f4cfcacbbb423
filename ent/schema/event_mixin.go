package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin carries the ordering fields shared by the answer, exam and
// LLM request event tables. The sequence number totals across all three
// tables, so interleaving them reconstructs a full session history.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Global event ordering, shared across event tables"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (EventMixin) Indexes() []ent.Index {
	// sequence already gets an index from Unique; timestamp backs the
	// stats screen's per-day rollups.
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
