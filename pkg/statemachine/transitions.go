package statemachine

import "fmt"

// RejectionError is returned by Apply when an event is structurally invalid
// for the current status — not an authorization failure (that's CanAct's
// job), just an impossible transition: e.g. Approve on a case that is still
// drafting, or SubmitFinal before every phase has been approved.
type RejectionError struct {
	Status Status
	Event  EventKind
	Reason string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("statemachine: cannot apply %s to status %s: %s", e.Event, e.Status, e.Reason)
}

func reject(s Status, ev EventKind, reason string) (Status, []SideEffect, error) {
	return s, nil, &RejectionError{Status: s, Event: ev, Reason: reason}
}

// phaseConfig describes the generic drafting → (complete) → review →
// approved|rejected shape shared by every artifact-owning phase.
// Complete is the empty Status for PRD, whose GenerationCompleted event
// moves straight from Drafting to Review without an operator-triggered
// SubmitForReview step.
type phaseConfig struct {
	Phase     Phase
	Drafting  Status
	Complete  Status
	Review    Status
	Approved  Status
	Rejected  Status
	NextPhase Phase // phase auto-dispatched on approval; "" if none
}

var phaseFlow = []phaseConfig{
	{PhasePRD, StatusPRDDrafting, "", StatusPRDReview, StatusPRDApproved, StatusPRDRejected, PhaseSystemDesign},
	{PhaseSystemDesign, StatusSystemDesignDrafting, StatusSystemDesignDrafted, StatusSystemDesignPendingReview, StatusSystemDesignApproved, StatusSystemDesignRejected, PhaseEffort},
	{PhaseEffort, StatusPlanningInProgress, StatusPlanningComplete, StatusEffortPendingReview, StatusEffortApproved, StatusEffortRejected, PhaseCosting},
	{PhaseCosting, StatusCostingInProgress, StatusCostingComplete, StatusCostingPendingReview, StatusCostingApproved, StatusCostingRejected, PhaseValue},
	{PhaseValue, StatusValueAnalysisInProgress, StatusValueAnalysisComplete, StatusValuePendingReview, StatusValueApproved, StatusValueRejected, PhaseFinancialModel},
	{PhaseFinancialModel, StatusFinancialModelInProgress, StatusFinancialModelComplete, StatusFinancialModelPendingReview, StatusFinancialModelApproved, StatusFinancialModelRejected, ""},
}

func phaseConfigFor(p Phase) (phaseConfig, bool) {
	for _, c := range phaseFlow {
		if c.Phase == p {
			return c, true
		}
	}
	return phaseConfig{}, false
}

func configForDrafting(s Status) (phaseConfig, bool) {
	for _, c := range phaseFlow {
		if c.Drafting == s {
			return c, true
		}
	}
	return phaseConfig{}, false
}

func configForReview(s Status) (phaseConfig, bool) {
	for _, c := range phaseFlow {
		if c.Review == s {
			return c, true
		}
	}
	return phaseConfig{}, false
}

func configForApproved(s Status) (phaseConfig, bool) {
	for _, c := range phaseFlow {
		if c.Approved == s {
			return c, true
		}
	}
	return phaseConfig{}, false
}

func configForRejected(s Status) (phaseConfig, bool) {
	for _, c := range phaseFlow {
		if c.Rejected == s {
			return c, true
		}
	}
	return phaseConfig{}, false
}

// Apply computes the next status and any orchestrator side effects for one
// event against the current status. It performs no I/O and consults nothing
// but its arguments — authorization (can this actor attempt this event at
// all) is CanAct's job, called by the orchestrator before Apply.
func Apply(current Status, ev Event) (Status, []SideEffect, error) {
	switch ev.Kind {
	case EventInitiateCase:
		if current != "" && current != StatusIntake {
			return reject(current, ev.Kind, "case already initiated")
		}
		return StatusPRDDrafting, []SideEffect{{Kind: SideEffectDispatch, Phase: PhasePRD}}, nil

	case EventTriggerGeneration:
		cfg, ok := phaseConfigFor(ev.Phase)
		if !ok {
			return reject(current, ev.Kind, "unknown phase")
		}
		if current != cfg.Rejected && !(ev.Phase == PhasePRD && current == StatusIntake) {
			return reject(current, ev.Kind, "generation may only be (re)triggered from a rejected or initial status")
		}
		return cfg.Drafting, []SideEffect{{Kind: SideEffectDispatch, Phase: ev.Phase}}, nil

	case EventGenerationStarted:
		if cfg, ok := configForDrafting(current); ok && cfg.Phase == ev.Phase {
			return current, nil, nil
		}
		// A phase dispatched by an approval starts from the previous
		// phase's approved status and enters its own drafting status here.
		if prev, ok := configForApproved(current); ok && prev.NextPhase == ev.Phase {
			next, _ := phaseConfigFor(ev.Phase)
			return next.Drafting, nil, nil
		}
		return reject(current, ev.Kind, "not currently drafting this phase")

	case EventGenerationCompleted:
		cfg, ok := configForDrafting(current)
		if !ok || cfg.Phase != ev.Phase {
			return reject(current, ev.Kind, "not currently drafting this phase")
		}
		if cfg.Phase == PhasePRD {
			return cfg.Review, nil, nil
		}
		return cfg.Complete, nil, nil

	case EventGenerationFailed:
		cfg, ok := configForDrafting(current)
		if !ok || cfg.Phase != ev.Phase {
			return reject(current, ev.Kind, "not currently drafting this phase")
		}
		return cfg.Rejected, nil, nil

	case EventSubmitForReview:
		cfg, ok := phaseConfigFor(ev.Phase)
		if !ok {
			return reject(current, ev.Kind, "unknown phase")
		}
		if cfg.Phase == PhasePRD {
			return reject(current, ev.Kind, "PRD enters review automatically on generation completion")
		}
		if current != cfg.Complete {
			return reject(current, ev.Kind, "phase artifact is not in a complete, unsubmitted state")
		}
		return cfg.Review, nil, nil

	case EventEditArtifact:
		cfg, ok := phaseConfigFor(ev.Phase)
		if !ok {
			return reject(current, ev.Kind, "unknown phase")
		}
		// Editing is legal while *_REJECTED or *_COMPLETE, and on an
		// already-approved artifact: an approved upstream edit must be
		// representable so the downstream slots it feeds can be marked
		// stale.
		if current != cfg.Rejected && current != cfg.Complete && current != cfg.Approved {
			return reject(current, ev.Kind, "artifact is not editable in its current status")
		}
		return current, nil, nil

	case EventApprove:
		cfg, ok := configForReview(current)
		if !ok || cfg.Phase != ev.Phase {
			return reject(current, ev.Kind, "phase artifact is not pending review")
		}
		if cfg.NextPhase == "" {
			return cfg.Approved, nil, nil
		}
		return cfg.Approved, []SideEffect{{Kind: SideEffectDispatch, Phase: cfg.NextPhase}}, nil

	case EventReject:
		cfg, ok := configForReview(current)
		if !ok || cfg.Phase != ev.Phase {
			return reject(current, ev.Kind, "phase artifact is not pending review")
		}
		return cfg.Rejected, nil, nil

	case EventSubmitFinal:
		if current != StatusFinancialModelApproved && current != StatusFinancialModelComplete {
			return reject(current, ev.Kind, "every phase must be approved before final submission")
		}
		return StatusPendingFinalApproval, nil, nil

	case EventApproveFinal:
		if current != StatusPendingFinalApproval {
			return reject(current, ev.Kind, "case is not pending final approval")
		}
		return StatusApproved, nil, nil

	case EventRejectFinal:
		if current != StatusPendingFinalApproval {
			return reject(current, ev.Kind, "case is not pending final approval")
		}
		return StatusRejected, nil, nil

	case EventCancelCase:
		if current.IsTerminal() {
			return reject(current, ev.Kind, "case is already terminal")
		}
		return StatusRejected, nil, nil
	}

	return reject(current, ev.Kind, "unrecognized event kind")
}

// PhaseOfRejected returns the phase a rejected status belongs to.
func PhaseOfRejected(s Status) (Phase, bool) {
	cfg, ok := configForRejected(s)
	return cfg.Phase, ok
}

// PhaseOfApproved returns the phase an approved status belongs to.
func PhaseOfApproved(s Status) (Phase, bool) {
	cfg, ok := configForApproved(s)
	return cfg.Phase, ok
}
