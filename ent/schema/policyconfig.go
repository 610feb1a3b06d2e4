package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// PolicyConfig holds the schema definition for the singleton key-value
// policy document at config/approval_settings.
type PolicyConfig struct {
	ent.Schema
}

// Fields of the PolicyConfig.
func (PolicyConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("config_key").
			Unique().
			Immutable(),
		field.String("final_approver_role_name").
			Default("FINAL_APPROVER"),
	}
}
