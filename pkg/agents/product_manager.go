package agents

import (
	"context"
	"strings"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casemodel"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/llm"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/promptcatalog"
)

// agentName/agentFunction pairs the six runners resolve from the prompt
// catalog. Kept as package-level constants so orchestrator wiring and
// prompt catalog seed data share one vocabulary.
const (
	agentProductManager    = "product_manager"
	agentArchitect         = "architect"
	agentPlanner           = "planner"
	agentCostAnalyst       = "cost_analyst"
	agentSalesValueAnalyst = "sales_value_analyst"
	agentFinancialModel    = "financial_model"

	fnDraftPRD        = "draft_prd"
	fnDesignSystem    = "design_system"
	fnEstimateEffort  = "estimate_effort"
	fnNarrateCost     = "narrate_cost"
	fnProjectValue    = "project_value"
	fnNarrateFinancial = "narrate_financial"
)

// ProductManagerRunner drafts a PRD from the case's title, problem
// statement, and relevant links.
type ProductManagerRunner struct {
	Catalog *promptcatalog.Store
	Backend llm.Backend
}

func relevantLinksText(links []casemodel.RelevantLink) string {
	parts := make([]string, 0, len(links))
	for _, l := range links {
		parts = append(parts, l.Name+": "+l.URL)
	}
	return strings.Join(parts, "\n")
}

// Run generates and validates a PRDDraft (casemodel.PRDDraft.Validate).
func (r *ProductManagerRunner) Run(ctx context.Context, in Inputs) (any, error) {
	values := map[string]string{
		"title":            in.Case.Title,
		"problem_statement": in.Case.ProblemStatement,
		"relevant_links":   relevantLinksText(in.Case.RelevantLinks),
	}
	raw, err := generate(ctx, r.Catalog, r.Backend, agentProductManager, fnDraftPRD, values, in.Params)
	if err != nil {
		return nil, err
	}

	draft := &casemodel.PRDDraft{}
	if err := decodeArtifact(raw, draft); err != nil {
		return nil, err
	}
	if draft.Title == "" {
		draft.Title = in.Case.Title
	}
	return draft, nil
}
