// Package llm is the client seam to the external LLM inference backend: a
// text-completion capability taking (rendered_prompt, generation_params)
// and returning text. Agent Runners depend on the
// Backend interface only, never on the concrete gRPC transport, so they can
// be tested against a stub.
package llm

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable maps to the AgentError taxonomy's LLMUnavailable:
// the backend could not be reached at all (connection refused, DNS, etc).
// Retryable by the orchestrator's retry policy.
var ErrUnavailable = errors.New("llm: backend unavailable")

// ErrTimeout maps to LLMTimeout: the call exceeded Params.Timeout
// (or the caller's context deadline). Retryable.
var ErrTimeout = errors.New("llm: generation timed out")

// Params is the generation_params half of the backend contract.
type Params struct {
	Model       string
	Temperature float32
	MaxTokens   int32
	Timeout     time.Duration
}

// Backend is the text-completion capability every Agent Runner calls
// through. Generate returns the model's raw text, or one of ErrUnavailable/
// ErrTimeout/a wrapped transport error for the runner to classify.
type Backend interface {
	Generate(ctx context.Context, renderedPrompt string, params Params) (string, error)
}
