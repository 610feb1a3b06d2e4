package ratecard

import (
	"context"
	"fmt"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/ent"
)

// LoadAll reads every active rate card row into the snapshot map NewRegistry
// expects. There is no corresponding SaveAll — rate card writes happen
// through the admin CRUD surface, not this process.
func LoadAll(ctx context.Context, client *ent.Client) (map[string]*RateCard, error) {
	rows, err := client.RateCard.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("ratecard: load all: %w", err)
	}

	out := make(map[string]*RateCard, len(rows))
	for _, row := range rows {
		roles := make([]Role, 0, len(row.Roles))
		for _, r := range row.Roles {
			roles = append(roles, Role{
				RoleName:        r.RoleName,
				HourlyRateCents: int64(r.HourlyRate*100 + 0.5),
			})
		}
		out[row.ID] = &RateCard{
			ID:                     row.ID,
			Name:                   row.Name,
			IsActive:               row.IsActive,
			DefaultHourlyRateCents: int64(row.DefaultHourlyRate*100 + 0.5),
			Roles:                  roles,
		}
	}
	return out, nil
}
