package policy

import (
	"context"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/ent"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
)

// EntPersister is the production Persister, backed by the PolicyConfig
// singleton row at id "config_key".
type EntPersister struct {
	Client *ent.Client
}

func (p *EntPersister) Load(ctx context.Context) (statemachine.Role, bool, error) {
	row, err := p.Client.PolicyConfig.Get(ctx, "config_key")
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return statemachine.Role(row.FinalApproverRoleName), true, nil
}

func (p *EntPersister) Save(ctx context.Context, role statemachine.Role) error {
	return p.Client.PolicyConfig.Create().
		SetID("config_key").
		SetFinalApproverRoleName(string(role)).
		OnConflictColumns("config_key").
		UpdateFinalApproverRoleName().
		Exec(ctx)
}
