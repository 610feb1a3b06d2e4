package pricing

import (
	"context"
	"fmt"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/ent"
)

// LoadAll reads every pricing template row into the snapshot map NewRegistry
// expects, same "no write logic in scope" posture as ratecard.LoadAll.
func LoadAll(ctx context.Context, client *ent.Client) (map[string]*Template, error) {
	rows, err := client.PricingTemplate.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("pricing: load all: %w", err)
	}

	out := make(map[string]*Template, len(rows))
	for _, row := range rows {
		t := &Template{
			ID:          row.ID,
			Name:        row.Name,
			IsActive:    row.IsActive,
			Methodology: row.Methodology,
		}
		if row.Example != nil {
			t.Example = &ScenarioExample{
				LowCents:  int64(row.Example.Low*100 + 0.5),
				BaseCents: int64(row.Example.Base*100 + 0.5),
				HighCents: int64(row.Example.High*100 + 0.5),
			}
		}
		out[row.ID] = t
	}
	return out, nil
}
