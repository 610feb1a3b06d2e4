package statemachine

// Role is a system-wide role an authenticated caller carries on their
// AuthContext. Roles gate which events an actor may attempt against a
// given case.
type Role string

const (
	RoleAdmin                Role = "ADMIN"
	RoleDeveloper            Role = "DEVELOPER"
	RoleTechnicalArchitect   Role = "TECHNICAL_ARCHITECT"
	RoleFinanceApprover      Role = "FINANCE_APPROVER"
	RoleSalesManagerApprover Role = "SALES_MANAGER_APPROVER"
	RoleFinalApprover        Role = "FINAL_APPROVER"
	RoleCaseInitiator        Role = "CASE_INITIATOR"
)

// reviewerEligibility is the role × phase review table: the fixed roles
// (independent of case ownership) allowed to Approve/Reject a phase.
// ADMIN is additively eligible everywhere and is checked separately by
// CanAct, so it is omitted here. A phase absent from this map (PRD) is
// reviewable by the case initiator only.
var reviewerEligibility = map[Phase][]Role{
	PhaseSystemDesign:   {RoleDeveloper, RoleTechnicalArchitect},
	PhaseEffort:         {RoleDeveloper, RoleTechnicalArchitect},
	PhaseCosting:        {RoleFinanceApprover},
	PhaseValue:          {RoleSalesManagerApprover},
	PhaseFinancialModel: {RoleFinanceApprover},
}

// initiatorEligiblePhases are phases where the case initiator is additionally
// (or, for PRD, exclusively) an eligible reviewer.
var initiatorEligiblePhases = map[Phase]bool{
	PhasePRD:    true,
	PhaseEffort: true,
	PhaseValue:  true,
}

// PendingReviewStatuses returns the pending-review statuses whose cases a
// holder of role may act on — the reviewer's inbox query. PRD review has
// no fixed reviewer role (initiator plus ADMIN only), so it appears only
// in ADMIN's set. finalApproverRole is the
// current policy value, resolved by the caller the same way CanAct takes it.
func PendingReviewStatuses(role, finalApproverRole Role) []Status {
	var out []Status
	for _, cfg := range phaseFlow {
		if role == RoleAdmin || hasRole(reviewerEligibility[cfg.Phase], role) {
			out = append(out, cfg.Review)
		}
	}
	if role == RoleAdmin || role == finalApproverRole {
		out = append(out, StatusPendingFinalApproval)
	}
	return out
}

func hasRole(roles []Role, r Role) bool {
	for _, candidate := range roles {
		if candidate == r {
			return true
		}
	}
	return false
}
