package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Prompt holds the schema definition for a catalog entry keyed by
// (agent_name, agent_function).
type Prompt struct {
	ent.Schema
}

// Fields of the Prompt.
func (Prompt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("prompt_id").
			Unique().
			Immutable(),
		field.String("agent_name").
			Immutable(),
		field.String("agent_function").
			Immutable(),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.String("category").
			Optional(),
		field.Bool("is_enabled").
			Default(true),
		field.String("current_version").
			Optional().
			Comment("Label of the version with is_active=true; denormalized for fast reads"),
		field.Int("usage_count").
			Default(0),
	}
}

// Edges of the Prompt.
func (Prompt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("versions", PromptVersion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Prompt.
func (Prompt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_name", "agent_function").
			Unique(),
	}
}
