package agents

import (
	"context"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casemodel"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/llm"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/promptcatalog"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
)

// ArchitectRunner produces a SystemDesign from the case's approved PRD.
type ArchitectRunner struct {
	Catalog *promptcatalog.Store
	Backend llm.Backend
}

// Run generates and validates a SystemDesign. It returns DependencyMissing
// if the case has no PRD draft yet — the orchestrator should never reach
// this phase without one, but the runner doesn't trust that invariant.
func (r *ArchitectRunner) Run(ctx context.Context, in Inputs) (any, error) {
	if in.Case.PRDDraft == nil {
		return nil, &AgentError{Kind: statemachine.ErrorKindDependencyMissing, Err: errPRDRequired}
	}
	prd, _ := in.Case.PRDDraft.Artifact.(*casemodel.PRDDraft)
	if prd == nil {
		return nil, &AgentError{Kind: statemachine.ErrorKindDependencyMissing, Err: errPRDRequired}
	}

	values := map[string]string{
		"title":            in.Case.Title,
		"prd_content":      prd.ContentMarkdown,
	}
	raw, err := generate(ctx, r.Catalog, r.Backend, agentArchitect, fnDesignSystem, values, in.Params)
	if err != nil {
		return nil, err
	}

	design := &casemodel.SystemDesign{GeneratedBy: agentArchitect}
	if err := decodeArtifact(raw, design); err != nil {
		return nil, err
	}
	return design, nil
}
