package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// StateRecord is one key of the persisted session state: the question
// bank, the subject label, tallies, and the wrong/bookmark sets each
// live under their own key so a missing key can fall back to its
// documented default independently.
type StateRecord struct {
	ent.Schema
}

func (StateRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Unique().
			Comment("State key, e.g. bank, progress"),
		field.JSON("data", map[string]any{}).
			Comment("Serialized value for this key"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
	}
}
