package agents

import (
	"context"
	"fmt"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casemodel"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/llm"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/pricing"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/promptcatalog"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
)

// SalesValueAnalystRunner produces a ValueProjection from the case's
// approved cost and effort estimates, shaped against the chosen pricing
// template named by in.PricingTemplateID.
type SalesValueAnalystRunner struct {
	Catalog   *promptcatalog.Store
	Backend   llm.Backend
	Templates *pricing.Registry
}

func (r *SalesValueAnalystRunner) Run(ctx context.Context, in Inputs) (any, error) {
	if in.Case.CostEstimate == nil {
		return nil, &AgentError{Kind: statemachine.ErrorKindDependencyMissing, Err: errCostRequired}
	}
	cost, _ := in.Case.CostEstimate.Artifact.(*casemodel.CostEstimate)
	if cost == nil {
		return nil, &AgentError{Kind: statemachine.ErrorKindDependencyMissing, Err: errCostRequired}
	}
	if in.Case.EffortEstimate == nil {
		return nil, &AgentError{Kind: statemachine.ErrorKindDependencyMissing, Err: errEffortRequired}
	}

	template, err := r.Templates.Get(in.PricingTemplateID)
	if err != nil {
		return nil, &AgentError{Kind: statemachine.ErrorKindDependencyMissing, Err: err}
	}

	values := map[string]string{
		"title":               in.Case.Title,
		"estimated_cost_cents": fmt.Sprintf("%d", cost.EstimatedCostCents),
		"template_methodology": template.Methodology,
	}
	raw, err := generate(ctx, r.Catalog, r.Backend, agentSalesValueAnalyst, fnProjectValue, values, in.Params)
	if err != nil {
		return nil, err
	}

	projection := &casemodel.ValueProjection{TemplateID: template.ID}
	if err := decodeArtifact(raw, projection); err != nil {
		return nil, err
	}
	return projection, nil
}
