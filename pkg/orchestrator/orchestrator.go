package orchestrator

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/agents"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casemodel"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casestore"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/llm"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/policy"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

var errStaleSlot = errors.New("orchestrator: case has a stale downstream artifact awaiting regeneration")

// Config holds the orchestrator's recognized tunables.
type Config struct {
	GenerationTimeout        time.Duration
	ConcurrencyRetryLimit    int
	LLMRetryLimit            int
	DefaultRateCardID        string
	DefaultPricingTemplateID string
	LLMParams                llm.Params
}

// Orchestrator is the top-level coordinator. Its public methods correspond
// one-for-one with the external events the HTTP route table exposes; each
// runs the load/authorize/transition/validate/commit/dispatch sequence
// through commit and transition below.
type Orchestrator struct {
	store   casestore.Store
	policy  *policy.Store
	runners map[statemachine.Phase]agents.Runner
	cfg     Config

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

// New wires a ready-to-use Orchestrator. runners must hold one entry per
// artifact-owning phase (PhasePRD..PhaseFinancialModel); PhaseFinal is never
// dispatched, so it has no runner.
func New(store casestore.Store, policyStore *policy.Store, runners map[statemachine.Phase]agents.Runner, cfg Config) *Orchestrator {
	return &Orchestrator{
		store:   store,
		policy:  policyStore,
		runners: runners,
		cfg:     cfg,
		cancels: make(map[string]context.CancelFunc),
	}
}

func (o *Orchestrator) finalApproverRole(ctx context.Context) (statemachine.Role, error) {
	cfg, err := o.policy.Get(ctx)
	if err != nil {
		return "", err
	}
	return cfg.FinalApproverRoleName, nil
}

// commit runs fn against the current case under the optimistic-concurrency
// retry protocol: up to ConcurrencyRetryLimit retries after the first
// attempt, with 50ms/200ms/800ms backoff. fn is re-run from scratch on every attempt
// against a freshly loaded case, since a stale expected version means the
// previous attempt's decision may no longer be the right one.
func (o *Orchestrator) commit(ctx context.Context, caseID string, fn func(current *casemodel.Case) (*casemodel.Case, []casemodel.HistoryEntry, []statemachine.SideEffect, error)) (*casemodel.Case, error) {
	var sideEffects []statemachine.SideEffect
	var result *casemodel.Case

	op := func() error {
		current, err := o.store.Get(ctx, caseID)
		if err != nil {
			if errors.Is(err, casestore.ErrNotFound) {
				return backoff.Permanent(&NotFoundError{CaseID: caseID})
			}
			return backoff.Permanent(&InternalError{Err: err})
		}

		mutate := func(c *casemodel.Case) (*casemodel.Case, []casemodel.HistoryEntry, error) {
			mutated, history, effects, ferr := fn(c)
			if ferr != nil {
				return nil, nil, ferr
			}
			sideEffects = effects
			return mutated, history, nil
		}

		updated, err := o.store.AtomicUpdate(ctx, caseID, current.Version, mutate)
		if err != nil {
			if errors.Is(err, casestore.ErrConcurrencyConflict) {
				return err
			}
			return backoff.Permanent(err)
		}
		result = updated
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 50 * time.Millisecond
	bo.Multiplier = 4
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0
	retrier := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(o.cfg.ConcurrencyRetryLimit)), ctx)

	if err := backoff.Retry(op, retrier); err != nil {
		if errors.Is(err, casestore.ErrConcurrencyConflict) {
			return nil, &ConflictError{CaseID: caseID}
		}
		return nil, err
	}

	for _, se := range sideEffects {
		if se.Kind == statemachine.SideEffectDispatch {
			o.dispatch(caseID, se.Phase)
		}
	}
	return result, nil
}

// transition is the shared event core: authorize, ask the state machine,
// apply an optional artifact mutation, and record one history entry. It is
// always run inside commit's retry loop.
func (o *Orchestrator) transition(ctx context.Context, caseID string, ev statemachine.Event, source casemodel.HistorySource, apply func(c *casemodel.Case) error) (*casemodel.Case, error) {
	return o.commit(ctx, caseID, func(current *casemodel.Case) (*casemodel.Case, []casemodel.HistoryEntry, []statemachine.SideEffect, error) {
		finalApproverRole, err := o.finalApproverRole(ctx)
		if err != nil {
			return nil, nil, nil, &InternalError{Err: err}
		}
		if !statemachine.CanAct(ev, current.OwnerUserID, finalApproverRole) {
			return nil, nil, nil, &AuthorizationError{CaseID: caseID, Event: string(ev.Kind)}
		}

		nextStatus, effects, err := statemachine.Apply(current.Status, ev)
		if err != nil {
			var rej *statemachine.RejectionError
			if errors.As(err, &rej) {
				return nil, nil, nil, &IllegalStateError{CaseID: caseID, Err: rej}
			}
			return nil, nil, nil, &InternalError{Err: err}
		}

		mutated := current.Clone()
		if apply != nil {
			if err := apply(mutated); err != nil {
				return nil, nil, nil, err
			}
		}
		mutated.Status = nextStatus

		entry := casemodel.HistoryEntry{
			SequenceNumber: len(current.History) + 1,
			Timestamp:      time.Now().UTC(),
			ActorUserID:    ev.Actor.UserID,
			ActorRole:      ev.Actor.SystemRole,
			Source:         source,
			EventKind:      ev.Kind,
			FromStatus:     current.Status,
			ToStatus:       nextStatus,
			Message:        ev.Reason,
		}
		return mutated, []casemodel.HistoryEntry{entry}, effects, nil
	})
}

// InitiateCase creates a new case and immediately transitions it from
// intake into PRD drafting, scheduling the Product Manager dispatch.
func (o *Orchestrator) InitiateCase(ctx context.Context, actor statemachine.Actor, req casemodel.CreateCaseRequest) (*casemodel.Case, error) {
	ev := statemachine.Event{Kind: statemachine.EventInitiateCase, Actor: actor}

	finalApproverRole, err := o.finalApproverRole(ctx)
	if err != nil {
		return nil, &InternalError{Err: err}
	}
	if !statemachine.CanAct(ev, "", finalApproverRole) {
		return nil, &AuthorizationError{Event: string(ev.Kind)}
	}

	now := time.Now().UTC()
	c := &casemodel.Case{
		CaseID:           uuid.New().String(),
		OwnerUserID:      actor.UserID,
		Title:            req.Title,
		ProblemStatement: req.ProblemStatement,
		RelevantLinks:    req.RelevantLinks,
		Status:           statemachine.StatusIntake,
		Version:          1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	nextStatus, effects, err := statemachine.Apply(c.Status, ev)
	if err != nil {
		return nil, &InternalError{Err: err}
	}
	c.Status = nextStatus
	c.History = []casemodel.HistoryEntry{{
		SequenceNumber: 1,
		Timestamp:      now,
		ActorUserID:    actor.UserID,
		ActorRole:      actor.SystemRole,
		Source:         casemodel.HistorySourceUser,
		EventKind:      ev.Kind,
		FromStatus:     statemachine.StatusIntake,
		ToStatus:       nextStatus,
	}}

	if err := o.store.Create(ctx, c); err != nil {
		if errors.Is(err, casestore.ErrConflict) {
			return nil, &ConflictError{CaseID: c.CaseID}
		}
		return nil, &InternalError{Err: err}
	}

	for _, se := range effects {
		if se.Kind == statemachine.SideEffectDispatch {
			o.dispatch(c.CaseID, se.Phase)
		}
	}
	return c, nil
}

// SubmitForReview moves phase's artifact from drafted to pending review.
func (o *Orchestrator) SubmitForReview(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase) (*casemodel.Case, error) {
	ev := statemachine.Event{Kind: statemachine.EventSubmitForReview, Phase: phase, Actor: actor}
	return o.transition(ctx, caseID, ev, casemodel.HistorySourceUser, nil)
}

// Approve records a reviewer's approval of phase's artifact, auto-dispatching
// the next phase's generation per phaseFlow.
func (o *Orchestrator) Approve(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase) (*casemodel.Case, error) {
	ev := statemachine.Event{Kind: statemachine.EventApprove, Phase: phase, Actor: actor}
	return o.transition(ctx, caseID, ev, casemodel.HistorySourceUser, nil)
}

// Reject sends phase's artifact back to the case initiator with reason.
func (o *Orchestrator) Reject(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase, reason string) (*casemodel.Case, error) {
	ev := statemachine.Event{Kind: statemachine.EventReject, Phase: phase, Actor: actor, Reason: reason}
	return o.transition(ctx, caseID, ev, casemodel.HistorySourceUser, nil)
}

// EditArtifact installs a case-initiator-authored replacement for phase's
// artifact and, if phase was already approved, marks every downstream slot
// stale rather than regenerating it automatically.
func (o *Orchestrator) EditArtifact(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase, artifact Artifact) (*casemodel.Case, error) {
	ev := statemachine.Event{Kind: statemachine.EventEditArtifact, Phase: phase, Actor: actor, HasArtifact: true}
	return o.transition(ctx, caseID, ev, casemodel.HistorySourceUser, func(c *casemodel.Case) error {
		if err := artifact.Validate(); err != nil {
			return &ValidationError{CaseID: caseID, Err: err}
		}

		wasApproved := false
		if approvedPhase, ok := statemachine.PhaseOfApproved(c.Status); ok && approvedPhase == phase {
			wasApproved = true
		}

		c.SetSlot(phase, artifact, time.Now().UTC())
		if wasApproved {
			c.MarkDownstreamStale(phase)
		}
		return nil
	})
}

// TriggerGeneration is the ADMIN-only retrigger after a GenerationFailed
// rejection.
func (o *Orchestrator) TriggerGeneration(ctx context.Context, caseID string, actor statemachine.Actor, phase statemachine.Phase) (*casemodel.Case, error) {
	ev := statemachine.Event{Kind: statemachine.EventTriggerGeneration, Phase: phase, Actor: actor}
	return o.transition(ctx, caseID, ev, casemodel.HistorySourceUser, nil)
}

// SubmitFinal moves a case with every phase approved into final review,
// rejecting it with ValidationError if any artifact slot is stale.
func (o *Orchestrator) SubmitFinal(ctx context.Context, caseID string, actor statemachine.Actor) (*casemodel.Case, error) {
	ev := statemachine.Event{Kind: statemachine.EventSubmitFinal, Phase: statemachine.PhaseFinal, Actor: actor}
	return o.transition(ctx, caseID, ev, casemodel.HistorySourceUser, func(c *casemodel.Case) error {
		if c.HasStaleSlot() {
			return &ValidationError{CaseID: caseID, Err: errStaleSlot}
		}
		return nil
	})
}

// ApproveFinal is the final approver's sign-off; the actor must currently
// hold the role named by final_approver_role_name.
func (o *Orchestrator) ApproveFinal(ctx context.Context, caseID string, actor statemachine.Actor) (*casemodel.Case, error) {
	ev := statemachine.Event{Kind: statemachine.EventApproveFinal, Phase: statemachine.PhaseFinal, Actor: actor}
	return o.transition(ctx, caseID, ev, casemodel.HistorySourceUser, nil)
}

// RejectFinal sends an already-complete case back to rejected, cancelling
// any in-flight agent run defensively, though none should be running at this point in the flow.
func (o *Orchestrator) RejectFinal(ctx context.Context, caseID string, actor statemachine.Actor, reason string) (*casemodel.Case, error) {
	ev := statemachine.Event{Kind: statemachine.EventRejectFinal, Phase: statemachine.PhaseFinal, Actor: actor, Reason: reason}
	c, err := o.transition(ctx, caseID, ev, casemodel.HistorySourceUser, nil)
	if err == nil {
		o.CancelSession(caseID)
	}
	return c, err
}

// CancelCase withdraws a case before final approval, tripping the
// cancellation signal for any agent run currently in flight.
func (o *Orchestrator) CancelCase(ctx context.Context, caseID string, actor statemachine.Actor) (*casemodel.Case, error) {
	ev := statemachine.Event{Kind: statemachine.EventCancelCase, Actor: actor}
	c, err := o.transition(ctx, caseID, ev, casemodel.HistorySourceUser, nil)
	if err == nil {
		o.CancelSession(caseID)
	}
	return c, err
}

// GetCase loads a case by id, translating a missing row into NotFoundError.
func (o *Orchestrator) GetCase(ctx context.Context, caseID string) (*casemodel.Case, error) {
	c, err := o.store.Get(ctx, caseID)
	if err != nil {
		if errors.Is(err, casestore.ErrNotFound) {
			return nil, &NotFoundError{CaseID: caseID}
		}
		return nil, &InternalError{Err: err}
	}
	return c, nil
}

// ListByOwner returns the cases owned by ownerUserID, matching filter.
func (o *Orchestrator) ListByOwner(ctx context.Context, ownerUserID string, filter casestore.ListFilter) ([]*casemodel.Case, int, error) {
	cases, total, err := o.store.ListByOwner(ctx, ownerUserID, filter)
	if err != nil {
		return nil, 0, &InternalError{Err: err}
	}
	return cases, total, nil
}

// ListByRole returns every case currently in one of statuses, for a
// reviewer's queue view.
func (o *Orchestrator) ListByRole(ctx context.Context, statuses []statemachine.Status, filter casestore.ListFilter) ([]*casemodel.Case, int, error) {
	cases, total, err := o.store.ListByRole(ctx, statuses, filter)
	if err != nil {
		return nil, 0, &InternalError{Err: err}
	}
	return cases, total, nil
}

// Artifact is implemented by every artifact shape in pkg/casemodel; the API
// layer passes the decoded shape through this seam so EditArtifact can
// re-validate it before committing.
type Artifact interface {
	Validate() error
}
