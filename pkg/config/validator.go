package config

import (
	"fmt"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
	"github.com/go-playground/validator/v10"
)

var knownRoles = map[statemachine.Role]bool{
	statemachine.RoleAdmin:                true,
	statemachine.RoleDeveloper:            true,
	statemachine.RoleTechnicalArchitect:   true,
	statemachine.RoleFinanceApprover:      true,
	statemachine.RoleSalesManagerApprover: true,
	statemachine.RoleFinalApprover:        true,
	statemachine.RoleCaseInitiator:        true,
}

// validate runs struct-tag validation over the merged YAML document, then
// the cross-field checks tags can't express — failing fast on the first
// problem found.
func validate(y yamlConfig) error {
	if err := validator.New().Struct(y); err != nil {
		return fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	if !knownRoles[statemachine.Role(y.FinalApproverRoleName)] {
		return fmt.Errorf("%w: final_approver_role_name names unknown role %q", ErrValidationFailed, y.FinalApproverRoleName)
	}
	if y.DefaultRateCardID == "" {
		return fmt.Errorf("%w: default_rate_card_id must not be empty", ErrValidationFailed)
	}
	return nil
}
