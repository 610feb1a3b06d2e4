package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanActAdminAlwaysAllowed(t *testing.T) {
	ev := Event{Kind: EventApprove, Phase: PhaseCosting, Actor: Actor{UserID: "u1", SystemRole: RoleAdmin}}
	assert.True(t, CanAct(ev, "someone-else", RoleFinalApprover))
}

func TestCanActCostReviewRequiresFinanceApprover(t *testing.T) {
	ev := Event{Kind: EventApprove, Phase: PhaseCosting, Actor: Actor{UserID: "u1", SystemRole: RoleFinanceApprover}}
	assert.True(t, CanAct(ev, "case-owner", RoleFinalApprover))

	ev.Actor.SystemRole = RoleTechnicalArchitect
	assert.False(t, CanAct(ev, "case-owner", RoleFinalApprover))
}

func TestCanActSystemDesignReviewAcceptsDeveloperOrArchitect(t *testing.T) {
	ev := Event{Kind: EventApprove, Phase: PhaseSystemDesign, Actor: Actor{UserID: "u1", SystemRole: RoleDeveloper}}
	assert.True(t, CanAct(ev, "case-owner", RoleFinalApprover))

	ev.Actor.SystemRole = RoleTechnicalArchitect
	assert.True(t, CanAct(ev, "case-owner", RoleFinalApprover))

	ev.Actor.SystemRole = RoleSalesManagerApprover
	assert.False(t, CanAct(ev, "case-owner", RoleFinalApprover))
}

func TestCanActEffortReviewAcceptsInitiatorToo(t *testing.T) {
	ev := Event{Kind: EventApprove, Phase: PhaseEffort, Actor: Actor{UserID: "owner-1", SystemRole: RoleCaseInitiator}}
	assert.True(t, CanAct(ev, "owner-1", RoleFinalApprover))

	ev.Actor = Actor{UserID: "stranger", SystemRole: RoleCaseInitiator}
	assert.False(t, CanAct(ev, "owner-1", RoleFinalApprover))
}

func TestCanActPRDReviewIsOwnerOnly(t *testing.T) {
	ev := Event{Kind: EventApprove, Phase: PhasePRD, Actor: Actor{UserID: "owner-1", SystemRole: RoleCaseInitiator}}
	assert.True(t, CanAct(ev, "owner-1", RoleFinalApprover))
	assert.False(t, CanAct(ev, "owner-2", RoleFinalApprover))
}

func TestCanActValueReviewAcceptsSalesManagerOrInitiator(t *testing.T) {
	ev := Event{Kind: EventReject, Phase: PhaseValue, Actor: Actor{UserID: "u1", SystemRole: RoleSalesManagerApprover}}
	assert.True(t, CanAct(ev, "owner-1", RoleFinalApprover))

	ev.Actor = Actor{UserID: "owner-1", SystemRole: RoleCaseInitiator}
	assert.True(t, CanAct(ev, "owner-1", RoleFinalApprover))

	ev.Actor = Actor{UserID: "stranger", SystemRole: RoleDeveloper}
	assert.False(t, CanAct(ev, "owner-1", RoleFinalApprover))
}

func TestCanActFinalApprovalHonorsConfiguredRole(t *testing.T) {
	ev := Event{Kind: EventApproveFinal, Actor: Actor{UserID: "u1", SystemRole: RoleFinalApprover}}
	assert.True(t, CanAct(ev, "owner-1", RoleFinalApprover))

	// Policy changes the configured role mid-flight; the same actor is
	// now unauthorized even though nothing about them changed.
	assert.False(t, CanAct(ev, "owner-1", RoleAdmin))
}

func TestCanActSubmitFinalRequiresOwnership(t *testing.T) {
	ev := Event{Kind: EventSubmitFinal, Actor: Actor{UserID: "owner-1", SystemRole: RoleCaseInitiator}}
	assert.True(t, CanAct(ev, "owner-1", RoleFinalApprover))
	assert.False(t, CanAct(ev, "owner-2", RoleFinalApprover))
}

func TestCanActGenerationLifecycleEventsAlwaysAllowed(t *testing.T) {
	// Orchestrator-internal events carry a zero-value actor; they must not
	// be stopped by the authorization gate, or no case could ever advance
	// out of a drafting status.
	for _, kind := range []EventKind{EventGenerationStarted, EventGenerationCompleted, EventGenerationFailed} {
		ev := Event{Kind: kind, Phase: PhasePRD}
		assert.True(t, CanAct(ev, "owner-1", RoleFinalApprover), string(kind))
	}
}

func TestCanActEditArtifactIsInitiatorOnly(t *testing.T) {
	ev := Event{Kind: EventEditArtifact, Phase: PhaseValue, Actor: Actor{UserID: "owner-1", SystemRole: RoleCaseInitiator}}
	assert.True(t, CanAct(ev, "owner-1", RoleFinalApprover))

	ev.Actor = Actor{UserID: "u1", SystemRole: RoleSalesManagerApprover}
	assert.False(t, CanAct(ev, "owner-1", RoleFinalApprover))
}
