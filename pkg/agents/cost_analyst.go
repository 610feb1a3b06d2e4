package agents

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casemodel"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/llm"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/promptcatalog"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/ratecard"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
)

// CostAnalystRunner produces a CostEstimate from the case's approved effort
// estimate and the active rate card named by in.RateCardID.
type CostAnalystRunner struct {
	Catalog *promptcatalog.Store
	Backend llm.Backend
	Cards   *ratecard.Registry
}

// Run asks the model to narrate the cost estimate, then recomputes every
// line itself from the resolved rate card rather than trusting the model's
// arithmetic — per-role rate resolution, the total_cost
// equality, and the rate card id + rate snapshot are a Go-side job, not
// something a prompt can be relied on to get exactly right in integer
// cents.
func (r *CostAnalystRunner) Run(ctx context.Context, in Inputs) (any, error) {
	if in.Case.EffortEstimate == nil {
		return nil, &AgentError{Kind: statemachine.ErrorKindDependencyMissing, Err: errEffortRequired}
	}
	effort, _ := in.Case.EffortEstimate.Artifact.(*casemodel.EffortEstimate)
	if effort == nil {
		return nil, &AgentError{Kind: statemachine.ErrorKindDependencyMissing, Err: errEffortRequired}
	}

	card, err := r.Cards.Get(in.RateCardID)
	if err != nil {
		return nil, &AgentError{Kind: statemachine.ErrorKindDependencyMissing, Err: err}
	}

	values := map[string]string{
		"title":          in.Case.Title,
		"case_id":        in.Case.CaseID,
		"effort_summary": effortSummary(effort),
		"rate_card_name": card.Name,
	}
	narration, err := generate(ctx, r.Catalog, r.Backend, agentCostAnalyst, fnNarrateCost, values, in.Params)
	if err != nil {
		return nil, err
	}

	estimate := &casemodel.CostEstimate{
		Currency:          "USD",
		RateCardID:        card.ID,
		CalculationMethod: "role_hours_times_rate",
		Notes:             narration,
	}
	var total int64
	for _, role := range effort.Roles {
		rate := card.Rate(role.Role)
		lineCents := int64(role.Hours*100+0.5) * rate / 100
		estimate.Breakdown = append(estimate.Breakdown, casemodel.CostBreakdownLine{
			Role:            role.Role,
			Hours:           role.Hours,
			HourlyRateCents: rate,
			TotalCostCents:  lineCents,
		})
		total += lineCents
	}
	estimate.EstimatedCostCents = total

	if err := estimate.Validate(); err != nil {
		return nil, &AgentError{Kind: statemachine.ErrorKindInvariantViolation, Err: err}
	}
	return estimate, nil
}

func effortSummary(e *casemodel.EffortEstimate) string {
	s := "total_hours=" + strconv.FormatFloat(e.TotalHours, 'f', 2, 64) + "\n"
	for _, role := range e.Roles {
		s += fmt.Sprintf("%s: %.2f hours\n", role.Role, role.Hours)
	}
	return s
}
