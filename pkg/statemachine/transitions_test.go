package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyInitiateCase(t *testing.T) {
	next, effects, err := Apply(StatusIntake, Event{Kind: EventInitiateCase})
	require.NoError(t, err)
	assert.Equal(t, StatusPRDDrafting, next)
	require.Len(t, effects, 1)
	assert.Equal(t, PhasePRD, effects[0].Phase)
}

func TestApplyInitiateCaseRejectsAlreadyInitiated(t *testing.T) {
	_, _, err := Apply(StatusPRDDrafting, Event{Kind: EventInitiateCase})
	assert.Error(t, err)
	var rerr *RejectionError
	assert.ErrorAs(t, err, &rerr)
}

func TestPRDSkipsSubmitForReview(t *testing.T) {
	next, _, err := Apply(StatusPRDDrafting, Event{Kind: EventGenerationCompleted, Phase: PhasePRD})
	require.NoError(t, err)
	assert.Equal(t, StatusPRDReview, next)

	_, _, err = Apply(StatusPRDDrafting, Event{Kind: EventSubmitForReview, Phase: PhasePRD})
	assert.Error(t, err)
}

func TestSystemDesignRequiresExplicitSubmitForReview(t *testing.T) {
	next, _, err := Apply(StatusSystemDesignDrafting, Event{Kind: EventGenerationCompleted, Phase: PhaseSystemDesign})
	require.NoError(t, err)
	assert.Equal(t, StatusSystemDesignDrafted, next)

	next, _, err = Apply(StatusSystemDesignDrafted, Event{Kind: EventSubmitForReview, Phase: PhaseSystemDesign})
	require.NoError(t, err)
	assert.Equal(t, StatusSystemDesignPendingReview, next)
}

func TestApproveDispatchesNextPhase(t *testing.T) {
	next, effects, err := Apply(StatusCostingPendingReview, Event{Kind: EventApprove, Phase: PhaseCosting})
	require.NoError(t, err)
	assert.Equal(t, StatusCostingApproved, next)
	require.Len(t, effects, 1)
	assert.Equal(t, PhaseValue, effects[0].Phase)
}

func TestApproveFinancialModelDoesNotAutoDispatch(t *testing.T) {
	next, effects, err := Apply(StatusFinancialModelPendingReview, Event{Kind: EventApprove, Phase: PhaseFinancialModel})
	require.NoError(t, err)
	assert.Equal(t, StatusFinancialModelApproved, next)
	assert.Empty(t, effects)
}

func TestRejectSendsBackToRejectedStatus(t *testing.T) {
	next, _, err := Apply(StatusValuePendingReview, Event{Kind: EventReject, Phase: PhaseValue})
	require.NoError(t, err)
	assert.Equal(t, StatusValueRejected, next)
}

func TestTriggerGenerationFromRejectedReDraftsSamePhase(t *testing.T) {
	next, effects, err := Apply(StatusValueRejected, Event{Kind: EventTriggerGeneration, Phase: PhaseValue})
	require.NoError(t, err)
	assert.Equal(t, StatusValueAnalysisInProgress, next)
	require.Len(t, effects, 1)
	assert.Equal(t, PhaseValue, effects[0].Phase)
}

func TestTriggerGenerationRejectsNonRejectedStatus(t *testing.T) {
	_, _, err := Apply(StatusValueApproved, Event{Kind: EventTriggerGeneration, Phase: PhaseValue})
	assert.Error(t, err)
}

func TestSubmitFinalRequiresFinancialModelApproved(t *testing.T) {
	_, _, err := Apply(StatusFinancialModelPendingReview, Event{Kind: EventSubmitFinal})
	assert.Error(t, err)

	next, _, err := Apply(StatusFinancialModelApproved, Event{Kind: EventSubmitFinal})
	require.NoError(t, err)
	assert.Equal(t, StatusPendingFinalApproval, next)
}

func TestApproveFinalAndRejectFinal(t *testing.T) {
	next, _, err := Apply(StatusPendingFinalApproval, Event{Kind: EventApproveFinal})
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, next)
	assert.True(t, next.IsTerminal())

	next, _, err = Apply(StatusPendingFinalApproval, Event{Kind: EventRejectFinal, Reason: "budget"})
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, next)
	assert.True(t, next.IsTerminal())
}

func TestEditArtifactAllowedWhenCompleteAndAfterApproval(t *testing.T) {
	next, _, err := Apply(StatusCostingComplete, Event{Kind: EventEditArtifact, Phase: PhaseCosting})
	require.NoError(t, err)
	assert.Equal(t, StatusCostingComplete, next)

	next, _, err = Apply(StatusCostingApproved, Event{Kind: EventEditArtifact, Phase: PhaseCosting})
	require.NoError(t, err)
	assert.Equal(t, StatusCostingApproved, next)

	_, _, err = Apply(StatusCostingInProgress, Event{Kind: EventEditArtifact, Phase: PhaseCosting})
	assert.Error(t, err)
}

func TestCancelCaseRejectsTerminalCase(t *testing.T) {
	_, _, err := Apply(StatusApproved, Event{Kind: EventCancelCase})
	assert.Error(t, err)

	next, _, err := Apply(StatusCostingInProgress, Event{Kind: EventCancelCase})
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, next)
}

func TestInFlightPhaseLookup(t *testing.T) {
	phase, ok := InFlightPhase(StatusCostingInProgress)
	require.True(t, ok)
	assert.Equal(t, PhaseCosting, phase)

	_, ok = InFlightPhase(StatusCostingComplete)
	assert.False(t, ok)
}
