package orchestrator

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casemodel"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casestore"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
)

var errGenerationTimedOut = errors.New("orchestrator: generation exceeded generation_timeout_ms with no follow-up event")

// inFlightStatusList is every status the recovery sweep watches: a case
// sitting here past the generation timeout has a lost or hung agent run.
var inFlightStatusList = []statemachine.Status{
	statemachine.StatusPRDDrafting,
	statemachine.StatusSystemDesignDrafting,
	statemachine.StatusPlanningInProgress,
	statemachine.StatusCostingInProgress,
	statemachine.StatusValueAnalysisInProgress,
	statemachine.StatusFinancialModelInProgress,
}

// RunRecoverySweep blocks until ctx is cancelled, periodically scanning for
// cases stuck in an in-flight status past generation_timeout_ms and
// synthesizing GenerationFailed(LLMTimeout) for each. The
// synthetic event is idempotent: Apply rejects it outright on a case that
// has already advanced, and generationFailed swallows that rejection.
func (o *Orchestrator) RunRecoverySweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o.sweepOnce(ctx)
		}
	}
}

func (o *Orchestrator) sweepOnce(ctx context.Context) {
	threshold := time.Now().UTC().Add(-o.cfg.GenerationTimeout)

	stuck, _, err := o.store.ListByRole(ctx, inFlightStatusList, casestore.ListFilter{Limit: 200})
	if err != nil {
		slog.Error("orchestrator: recovery sweep failed to list in-flight cases", "error", err)
		return
	}

	for _, c := range stuck {
		if c.UpdatedAt.After(threshold) {
			continue
		}
		phase, ok := statemachine.InFlightPhase(c.Status)
		if !ok {
			continue
		}

		slog.Warn("orchestrator: recovering stuck generation", "case_id", c.CaseID, "phase", phase, "status", c.Status)
		o.CancelSession(c.CaseID)
		if err := o.generationFailed(ctx, c.CaseID, phase, statemachine.ErrorKindLLMTimeout, errGenerationTimedOut, casemodel.HistorySourceSystem); err != nil {
			slog.Error("orchestrator: recovery sweep failed to record timeout", "case_id", c.CaseID, "error", err)
		}
	}
}
