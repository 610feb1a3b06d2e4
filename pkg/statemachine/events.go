package statemachine

// EventKind names one of the external or internal events the state machine
// accepts.
type EventKind string

const (
	EventInitiateCase       EventKind = "InitiateCase"
	EventSubmitForReview    EventKind = "SubmitForReview"
	EventApprove            EventKind = "Approve"
	EventReject             EventKind = "Reject"
	EventEditArtifact       EventKind = "EditArtifact"
	EventTriggerGeneration  EventKind = "TriggerGeneration"
	EventGenerationStarted  EventKind = "GenerationStarted"
	EventGenerationCompleted EventKind = "GenerationCompleted"
	EventGenerationFailed   EventKind = "GenerationFailed"
	EventSubmitFinal        EventKind = "SubmitFinal"
	EventApproveFinal       EventKind = "ApproveFinal"
	EventRejectFinal        EventKind = "RejectFinal"
	EventCancelCase         EventKind = "CancelCase"
)

// ErrorKind is the AgentError taxonomy an agent run can report back as a
// GenerationFailed event.
type ErrorKind string

const (
	ErrorKindPromptMissing      ErrorKind = "PromptMissing"
	ErrorKindLLMUnavailable     ErrorKind = "LLMUnavailable"
	ErrorKindLLMTimeout         ErrorKind = "LLMTimeout"
	ErrorKindParseFailure       ErrorKind = "ParseFailure"
	ErrorKindInvariantViolation ErrorKind = "InvariantViolation"
	ErrorKindDependencyMissing  ErrorKind = "DependencyMissing"
)

// Retryable reports whether the orchestrator should retry an agent run that
// failed with this error kind.
func (k ErrorKind) Retryable() bool {
	return k == ErrorKindLLMUnavailable || k == ErrorKindLLMTimeout
}

// Event is one state-machine input: an event kind, the phase it targets (if
// any), the actor attempting it, and any payload the event carries.
type Event struct {
	Kind       EventKind
	Phase      Phase
	Actor      Actor
	Reason     string    // Reject/RejectFinal optional reason
	ErrorKind  ErrorKind // GenerationFailed payload
	HasArtifact bool     // EditArtifact/GenerationCompleted carry a new artifact
}

// Actor carries the identity and role a caller is attempting the event as.
// AuthContext is the trusted external carrier of this
// information; the state machine only ever sees this already-verified view.
type Actor struct {
	UserID     string
	SystemRole Role
}

// SideEffectKind is what the orchestrator must do after a transition
// commits. The state machine never performs the side effect itself — it
// only reports what's needed, keeping the state machine pure.
type SideEffectKind string

const (
	SideEffectNone     SideEffectKind = "None"
	SideEffectDispatch SideEffectKind = "Dispatch"
)

// SideEffect is one dispatch instruction the orchestrator must act on.
type SideEffect struct {
	Kind  SideEffectKind
	Phase Phase
}
