package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HistoryEntry holds the schema definition for the append-only audit trail
// attached to a BusinessCase. Never rewritten.
type HistoryEntry struct {
	ent.Schema
}

// Fields of the HistoryEntry.
func (HistoryEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("history_id").
			Unique().
			Immutable(),
		field.String("case_id").
			Immutable(),
		field.Int("sequence_number").
			Immutable().
			Comment("Monotonic per-case ordering, independent of clock resolution"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("actor_user_id").
			Optional().
			Immutable(),
		field.String("actor_role").
			Optional().
			Immutable(),
		field.Enum("source").
			Values("USER", "AGENT", "SYSTEM").
			Immutable(),
		field.String("event_kind").
			Immutable(),
		field.String("from_status").
			Immutable(),
		field.String("to_status").
			Immutable(),
		field.Text("message").
			Optional().
			Immutable(),
		field.String("artifact_ref").
			Optional().
			Immutable(),
	}
}

// Edges of the HistoryEntry.
func (HistoryEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("case", BusinessCase.Type).
			Ref("history").
			Field("case_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the HistoryEntry.
func (HistoryEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_id", "sequence_number").
			Unique(),
	}
}
