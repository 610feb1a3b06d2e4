// Package orchestrator implements the coordination layer: it turns an inbound event into a statemachine decision, commits the
// resulting mutation through casestore with concurrency-conflict retry, and
// schedules the agent dispatch table's side effects. It owns no storage of
// its own — every durable fact lives behind casestore.Store, policy.Store,
// ratecard.Registry, and pricing.Registry.
package orchestrator

import "fmt"

// AuthorizationError means the calling actor is not permitted to attempt
// the requested event against this case.
type AuthorizationError struct {
	CaseID string
	Event  string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("orchestrator: actor not authorized to apply %s to case %s", e.Event, e.CaseID)
}

// IllegalStateError wraps a statemachine.RejectionError: the event is
// structurally impossible from the case's current status.
type IllegalStateError struct {
	CaseID string
	Err    error
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("orchestrator: illegal transition on case %s: %v", e.CaseID, e.Err)
}

func (e *IllegalStateError) Unwrap() error { return e.Err }

// ValidationError means a submitted artifact, or the case as a whole,
// failed an invariant check (including the stale-slot rejection on SubmitFinal).
type ValidationError struct {
	CaseID string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("orchestrator: validation failed for case %s: %v", e.CaseID, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ConflictError means concurrency_retry_limit optimistic-concurrency
// retries were exhausted without committing.
type ConflictError struct {
	CaseID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("orchestrator: concurrency retries exhausted for case %s", e.CaseID)
}

// NotFoundError means case_id has no matching case.
type NotFoundError struct {
	CaseID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("orchestrator: case %s not found", e.CaseID)
}

// PolicyError means a policy document names a role that does not exist in
// the system's role vocabulary.
type PolicyError struct {
	RoleName string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("orchestrator: policy names unknown role %q", e.RoleName)
}

// InternalError is an unexpected failure (storage, cache, anything not in
// the taxonomy above). Callers at the API boundary log it and respond 500
// without leaking e.Err's detail.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("orchestrator: internal error: %v", e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }
