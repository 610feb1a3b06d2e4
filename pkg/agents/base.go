// Package agents implements the six phase-specific Agent Runners: Product
// Manager, Architect, Planner, Cost Analyst, Sales Value Analyst, and
// Financial Model. Each follows the same shape: render the prompt, call
// the backend, then classify any failure into the AgentError taxonomy.
package agents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casemodel"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/llm"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/promptcatalog"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
)

// Dependency sentinels reported as DependencyMissing when a runner is
// dispatched against a case whose upstream artifact slot is empty — the
// orchestrator's phase ordering should prevent this, but a runner never
// trusts a caller invariant it didn't itself check.
var (
	errPRDRequired    = errors.New("agents: prd draft required")
	errDesignRequired = errors.New("agents: system design required")
	errEffortRequired = errors.New("agents: effort estimate required")
	errCostRequired   = errors.New("agents: cost estimate required")
	errValueRequired  = errors.New("agents: value projection required")
)

// Inputs is everything a Runner may read from to produce its artifact. Not
// every field is meaningful to every runner — Cost Analyst reads
// RateCardID, Sales Value Analyst reads PricingTemplateID, and so on — but
// all six take the same shape so the orchestrator's dispatch table
// can hold a single Runner interface value per phase.
type Inputs struct {
	Case               *casemodel.Case
	RateCardID         string
	PricingTemplateID  string
	Params             llm.Params
}

// Runner is the uniform capability every agent implements.
type Runner interface {
	Run(ctx context.Context, in Inputs) (any, error)
}

// AgentError is a classified failure a Runner reports back to the
// orchestrator as a GenerationFailed event payload.
type AgentError struct {
	Kind statemachine.ErrorKind
	Err  error
}

func (e *AgentError) Error() string {
	return fmt.Sprintf("agents: %s: %v", e.Kind, e.Err)
}

func (e *AgentError) Unwrap() error { return e.Err }

// classifyGenerationError maps a llm.Backend failure onto the AgentError
// taxonomy. Anything not recognized as a transport-level sentinel is
// treated as unavailable — the orchestrator's retry policy is the same for
// both (ErrorKind.Retryable).
func classifyGenerationError(err error) *AgentError {
	switch {
	case errors.Is(err, llm.ErrTimeout):
		return &AgentError{Kind: statemachine.ErrorKindLLMTimeout, Err: err}
	default:
		return &AgentError{Kind: statemachine.ErrorKindLLMUnavailable, Err: err}
	}
}

// generate resolves the active prompt for (agentName, agentFunction),
// renders it against values, and calls the backend — the common first half
// of every runner's Run.
func generate(ctx context.Context, catalog *promptcatalog.Store, backend llm.Backend, agentName, agentFunction string, values map[string]string, params llm.Params) (string, error) {
	rendered, err := catalog.ResolveActive(ctx, agentName, agentFunction, values)
	if err != nil {
		return "", &AgentError{Kind: statemachine.ErrorKindPromptMissing, Err: err}
	}

	text, err := backend.Generate(ctx, rendered, params)
	if err != nil {
		return "", classifyGenerationError(err)
	}
	return text, nil
}

// validator is implemented by every artifact shape in pkg/casemodel.
type validator interface {
	Validate() error
}

// decodeArtifact unmarshals the model's raw text into out and runs its
// invariant check, classifying both failure modes into the AgentError
// taxonomy (ParseFailure for malformed JSON, InvariantViolation for
// a structurally valid artifact that fails its Validate()).
func decodeArtifact(raw string, out validator) error {
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return &AgentError{Kind: statemachine.ErrorKindParseFailure, Err: err}
	}
	if err := out.Validate(); err != nil {
		return &AgentError{Kind: statemachine.ErrorKindInvariantViolation, Err: err}
	}
	return nil
}
