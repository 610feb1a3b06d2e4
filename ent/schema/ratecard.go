package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// RateCardRole is one role→rate entry embedded in a RateCard.
type RateCardRole struct {
	RoleName   string  `json:"role_name"`
	HourlyRate float64 `json:"hourly_rate"`
}

// RateCard holds the schema definition for a named role→hourly-rate mapping
// consumed by the Cost Analyst agent runner.
type RateCard struct {
	ent.Schema
}

// Fields of the RateCard.
func (RateCard) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rate_card_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Bool("is_active").
			Default(true),
		field.Float("default_hourly_rate"),
		field.JSON("roles", []RateCardRole{}),
	}
}
