package agents

import (
	"context"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casemodel"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/llm"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/promptcatalog"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
)

// PlannerRunner produces an EffortEstimate from the case's approved
// system design.
type PlannerRunner struct {
	Catalog *promptcatalog.Store
	Backend llm.Backend
}

func (r *PlannerRunner) Run(ctx context.Context, in Inputs) (any, error) {
	if in.Case.SystemDesign == nil {
		return nil, &AgentError{Kind: statemachine.ErrorKindDependencyMissing, Err: errDesignRequired}
	}
	design, _ := in.Case.SystemDesign.Artifact.(*casemodel.SystemDesign)
	if design == nil {
		return nil, &AgentError{Kind: statemachine.ErrorKindDependencyMissing, Err: errDesignRequired}
	}

	values := map[string]string{
		"title":              in.Case.Title,
		"system_design":      design.ContentMarkdown,
	}
	raw, err := generate(ctx, r.Catalog, r.Backend, agentPlanner, fnEstimateEffort, values, in.Params)
	if err != nil {
		return nil, err
	}

	estimate := &casemodel.EffortEstimate{}
	if err := decodeArtifact(raw, estimate); err != nil {
		return nil, err
	}
	return estimate, nil
}
