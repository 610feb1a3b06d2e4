package statemachine

// CanAct reports whether an actor is permitted to attempt the given event
// against a case owned by caseOwnerID. finalApproverRole is the role
// currently named by policy.final_approver_role_name — CanAct takes it as a parameter rather than a package
// constant so a policy change is honored by the very next call.
//
// ADMIN is additively eligible for every review transition; it is checked once, up front, and everything below it
// applies only to non-ADMIN actors.
func CanAct(ev Event, caseOwnerID string, finalApproverRole Role) bool {
	if ev.Actor.SystemRole == RoleAdmin {
		return true
	}

	isOwner := ev.Actor.UserID != "" && ev.Actor.UserID == caseOwnerID

	switch ev.Kind {
	case EventInitiateCase:
		return true

	case EventApproveFinal, EventRejectFinal:
		return ev.Actor.SystemRole == finalApproverRole

	case EventSubmitFinal:
		return isOwner

	case EventApprove, EventReject:
		if isOwner && initiatorEligiblePhases[ev.Phase] {
			return true
		}
		return hasRole(reviewerEligibility[ev.Phase], ev.Actor.SystemRole)

	case EventEditArtifact:
		// Editing is a case-initiator privilege only.
		return isOwner

	case EventTriggerGeneration:
		// Retrigger after a GenerationFailed is an ADMIN-only
		// operator action; ADMIN already short-circuited true above.
		return false

	case EventGenerationStarted, EventGenerationCompleted, EventGenerationFailed:
		// Generation lifecycle events originate inside the orchestrator
		// (agent completion, recovery sweep), never from an external
		// caller; they carry no actor and are always permitted. Whether
		// they apply is Apply's call, not an authorization question.
		return true

	case EventSubmitForReview, EventCancelCase:
		return isOwner

	default:
		return false
	}
}
