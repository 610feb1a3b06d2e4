package agents

import (
	"context"
	"fmt"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casemodel"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/llm"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/promptcatalog"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
)

// FinancialModelRunner produces a FinancialSummary from the case's approved
// cost estimate and value projection. The net_value_base and
// roi_percentage_base identities are computed in Go from the Base scenario, not left
// to the model — only the key_assumptions narrative comes from the prompt.
type FinancialModelRunner struct {
	Catalog *promptcatalog.Store
	Backend llm.Backend
}

func (r *FinancialModelRunner) Run(ctx context.Context, in Inputs) (any, error) {
	if in.Case.CostEstimate == nil {
		return nil, &AgentError{Kind: statemachine.ErrorKindDependencyMissing, Err: errCostRequired}
	}
	cost, _ := in.Case.CostEstimate.Artifact.(*casemodel.CostEstimate)
	if cost == nil {
		return nil, &AgentError{Kind: statemachine.ErrorKindDependencyMissing, Err: errCostRequired}
	}
	if in.Case.ValueProjection == nil {
		return nil, &AgentError{Kind: statemachine.ErrorKindDependencyMissing, Err: errValueRequired}
	}
	value, _ := in.Case.ValueProjection.Artifact.(*casemodel.ValueProjection)
	if value == nil {
		return nil, &AgentError{Kind: statemachine.ErrorKindDependencyMissing, Err: errValueRequired}
	}

	var baseCents int64
	for _, s := range value.Scenarios {
		if s.Case == casemodel.ScenarioBase {
			baseCents = s.ValueCents
		}
	}

	values := map[string]string{
		"title":                  in.Case.Title,
		"estimated_cost_cents":   fmt.Sprintf("%d", cost.EstimatedCostCents),
		"projected_value_cents":  fmt.Sprintf("%d", baseCents),
	}
	narration, err := generate(ctx, r.Catalog, r.Backend, agentFinancialModel, fnNarrateFinancial, values, in.Params)
	if err != nil {
		return nil, err
	}

	summary := &casemodel.FinancialSummary{
		TotalEstimatedCostCents:      cost.EstimatedCostCents,
		TotalProjectedValueBaseCents: baseCents,
		Currency:                     cost.Currency,
		KeyAssumptions:               []string{narration},
	}
	summary.NetValueBaseCents = summary.TotalProjectedValueBaseCents - summary.TotalEstimatedCostCents
	if summary.TotalEstimatedCostCents > 0 {
		roi := 100 * float64(summary.NetValueBaseCents) / float64(summary.TotalEstimatedCostCents)
		summary.ROIPercentageBase = &roi
	}

	if err := summary.Validate(); err != nil {
		return nil, &AgentError{Kind: statemachine.ErrorKindInvariantViolation, Err: err}
	}
	return summary, nil
}
