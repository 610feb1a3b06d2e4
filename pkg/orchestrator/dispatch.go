package orchestrator

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/agents"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casemodel"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
	"github.com/cenkalti/backoff/v4"
)

// RegisterSession records caseID's cancel func so CancelCase/RejectFinal
// and the recovery sweep can trip an in-flight run.
func (o *Orchestrator) RegisterSession(caseID string, cancel context.CancelFunc) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cancels[caseID] = cancel
}

// UnregisterSession removes caseID's cancel func once its run has finished.
func (o *Orchestrator) UnregisterSession(caseID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.cancels, caseID)
}

// CancelSession trips the cancellation signal for caseID's in-flight agent
// run, if one is currently registered. Reports whether one was found.
func (o *Orchestrator) CancelSession(caseID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	cancel, ok := o.cancels[caseID]
	if ok {
		cancel()
	}
	return ok
}

// dispatch schedules phase's agent run for caseID in its own goroutine.
// Scheduling is best-effort: after InitiateCase or TriggerGeneration the
// case has already committed to the in-flight status, a phase chained by an
// approval enters it through the GenerationStarted event at the start of
// the run, and a dispatch failure re-enters the orchestrator
// as a GenerationFailed event rather than failing the caller's request.
func (o *Orchestrator) dispatch(caseID string, phase statemachine.Phase) {
	go o.runAgent(context.Background(), caseID, phase)
}

func (o *Orchestrator) runAgent(parent context.Context, caseID string, phase statemachine.Phase) {
	runner, ok := o.runners[phase]
	if !ok {
		slog.Error("orchestrator: no runner registered for phase", "phase", phase, "case_id", caseID)
		return
	}

	ctx, cancel := context.WithTimeout(parent, o.cfg.GenerationTimeout)
	o.RegisterSession(caseID, cancel)
	defer o.UnregisterSession(caseID)
	defer cancel()

	if err := o.generationStarted(ctx, caseID, phase); err != nil {
		slog.Error("orchestrator: failed to record generation start", "case_id", caseID, "phase", phase, "error", err)
	}

	current, err := o.GetCase(ctx, caseID)
	if err != nil {
		slog.Error("orchestrator: failed to load case for dispatch", "case_id", caseID, "phase", phase, "error", err)
		return
	}

	in := agents.Inputs{
		Case:              current,
		RateCardID:        o.cfg.DefaultRateCardID,
		PricingTemplateID: o.cfg.DefaultPricingTemplateID,
		Params:            o.cfg.LLMParams,
	}

	artifact, runErr := o.runWithRetry(ctx, runner, in)
	if runErr != nil {
		kind := statemachine.ErrorKindLLMUnavailable
		var ae *agents.AgentError
		if errors.As(runErr, &ae) {
			kind = ae.Kind
		}
		if err := o.generationFailed(ctx, caseID, phase, kind, runErr, casemodel.HistorySourceAgent); err != nil {
			slog.Error("orchestrator: failed to record generation failure", "case_id", caseID, "phase", phase, "error", err)
		}
		return
	}

	if err := o.generationCompleted(ctx, caseID, phase, artifact, time.Now().UTC()); err != nil {
		slog.Error("orchestrator: failed to record generation completion", "case_id", caseID, "phase", phase, "error", err)
	}
}

// runWithRetry retries an agent run that fails with a retryable ErrorKind
// (LLMUnavailable/LLMTimeout) up to llm_retry_limit times with 2s/8s
// backoff; ParseFailure and InvariantViolation are deterministic and
// surface on the first attempt.
func (o *Orchestrator) runWithRetry(ctx context.Context, runner agents.Runner, in agents.Inputs) (any, error) {
	var artifact any

	op := func() error {
		result, err := runner.Run(ctx, in)
		if err != nil {
			var ae *agents.AgentError
			if errors.As(err, &ae) && ae.Kind.Retryable() {
				return err
			}
			return backoff.Permanent(err)
		}
		artifact = result
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.Multiplier = 4
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0
	retrier := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(o.cfg.LLMRetryLimit)), ctx)

	if err := backoff.Retry(op, retrier); err != nil {
		return nil, err
	}
	return artifact, nil
}

// generationStarted records the start of an agent run; for a phase chained
// by an approval it also moves the case from the previous phase's approved
// status into this phase's in-flight status. Failure is logged by the
// caller, never returned up as a request failure.
func (o *Orchestrator) generationStarted(ctx context.Context, caseID string, phase statemachine.Phase) error {
	ev := statemachine.Event{Kind: statemachine.EventGenerationStarted, Phase: phase}
	_, err := o.transition(ctx, caseID, ev, casemodel.HistorySourceSystem, nil)
	return o.swallowIdempotentReplay(err, caseID, "generation started")
}

// generationCompleted installs artifact into phase's slot and advances the
// case to pending review. Idempotent: replaying this on a case that has
// already moved past phase (e.g. a slow retry racing a sweep-triggered
// failure) is a silent no-op.
func (o *Orchestrator) generationCompleted(ctx context.Context, caseID string, phase statemachine.Phase, artifact any, generatedAt time.Time) error {
	ev := statemachine.Event{Kind: statemachine.EventGenerationCompleted, Phase: phase, HasArtifact: true}
	_, err := o.transition(ctx, caseID, ev, casemodel.HistorySourceAgent, func(c *casemodel.Case) error {
		c.SetSlot(phase, artifact, generatedAt)
		return nil
	})
	return o.swallowIdempotentReplay(err, caseID, "generation completed")
}

// generationFailed records a failed generation and moves the case to
// phase's rejected status, awaiting an ADMIN TriggerGeneration retry.
// source lets the recovery sweep's synthetic timeout tag itself SYSTEM
// rather than AGENT.
func (o *Orchestrator) generationFailed(ctx context.Context, caseID string, phase statemachine.Phase, kind statemachine.ErrorKind, cause error, source casemodel.HistorySource) error {
	ev := statemachine.Event{Kind: statemachine.EventGenerationFailed, Phase: phase, ErrorKind: kind, Reason: cause.Error()}
	_, err := o.transition(ctx, caseID, ev, source, nil)
	return o.swallowIdempotentReplay(err, caseID, "generation failed")
}

// swallowIdempotentReplay turns an IllegalStateError from a replayed
// generation-lifecycle event into success: the case already advanced past
// the phase this event targets, so there is nothing left to do.
func (o *Orchestrator) swallowIdempotentReplay(err error, caseID, what string) error {
	if err == nil {
		return nil
	}
	var illegal *IllegalStateError
	if errors.As(err, &illegal) {
		slog.Debug("orchestrator: ignoring replayed event on already-advanced case", "case_id", caseID, "event", what)
		return nil
	}
	slog.Error("orchestrator: failed to record "+what, "case_id", caseID, "error", err)
	return err
}
