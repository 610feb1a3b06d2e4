package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PromptVersion holds the schema definition for one rendered-template
// revision of a Prompt. Exactly one version per prompt has is_active=true
// at any time — enforced transactionally in pkg/promptcatalog.
type PromptVersion struct {
	ent.Schema
}

// Fields of the PromptVersion.
func (PromptVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("prompt_version_id").
			Unique().
			Immutable(),
		field.String("prompt_id").
			Immutable(),
		field.String("label").
			Immutable(),
		field.Text("template_text").
			Immutable(),
		field.JSON("placeholders", []string{}).
			Immutable(),
		field.String("description").
			Optional().
			Immutable(),
		field.Bool("is_active").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PromptVersion.
func (PromptVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("prompt", Prompt.Type).
			Ref("versions").
			Field("prompt_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PromptVersion.
func (PromptVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("prompt_id", "label").
			Unique(),
	}
}
