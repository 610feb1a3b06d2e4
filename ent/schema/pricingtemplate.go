package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// PricingScenarioExample is an example Low/Base/High value set embedded in
// a PricingTemplate, used to validate the Low ≤ Base ≤ High contract at
// template-write time.
type PricingScenarioExample struct {
	Low  float64 `json:"low"`
	Base float64 `json:"base"`
	High float64 `json:"high"`
}

// PricingTemplate holds the schema definition for a named value-projection
// scenario structure consumed by the Sales Value Analyst agent runner.
type PricingTemplate struct {
	ent.Schema
}

// Fields of the PricingTemplate.
func (PricingTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("pricing_template_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Bool("is_active").
			Default(true),
		field.String("methodology"),
		field.JSON("example", &PricingScenarioExample{}).
			Optional().
			Comment("Representative scenario used to validate Low<=Base<=High at write time"),
	}
}
