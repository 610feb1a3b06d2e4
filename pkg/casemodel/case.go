package casemodel

import (
	"time"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
)

// ArtifactSlot wraps one of a Case's six artifact slots: the artifact
// payload plus the case version it was generated against and whether a
// later edit to an upstream artifact has marked it stale.
type ArtifactSlot struct {
	Artifact  any    `json:"artifact"`
	Version   int    `json:"version"`
	Stale     bool   `json:"stale"`
	CreatedAt time.Time `json:"created_at"`
}

// Case is the aggregate root of the business case workflow. Artifacts are
// embedded value objects, never shared by reference with other cases.
type Case struct {
	CaseID           string               `json:"case_id"`
	OwnerUserID      string               `json:"owner_user_id"`
	Title            string               `json:"title"`
	ProblemStatement string               `json:"problem_statement"`
	RelevantLinks    []RelevantLink       `json:"relevant_links"`
	Status           statemachine.Status  `json:"status"`
	Version          int                  `json:"version"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`

	PRDDraft         *ArtifactSlot `json:"prd_draft,omitempty"`
	SystemDesign     *ArtifactSlot `json:"system_design,omitempty"`
	EffortEstimate   *ArtifactSlot `json:"effort_estimate,omitempty"`
	CostEstimate     *ArtifactSlot `json:"cost_estimate,omitempty"`
	ValueProjection  *ArtifactSlot `json:"value_projection,omitempty"`
	FinancialSummary *ArtifactSlot `json:"financial_summary,omitempty"`

	History []HistoryEntry `json:"history"`
}

// HistorySource identifies who or what produced a HistoryEntry.
type HistorySource string

const (
	HistorySourceUser   HistorySource = "USER"
	HistorySourceAgent  HistorySource = "AGENT"
	HistorySourceSystem HistorySource = "SYSTEM"
)

// HistoryEntry is one append-only record of a state-affecting operation.
type HistoryEntry struct {
	SequenceNumber int                       `json:"sequence_number"`
	Timestamp      time.Time                 `json:"timestamp"`
	ActorUserID    string                    `json:"actor_user_id,omitempty"`
	ActorRole      statemachine.Role         `json:"actor_role,omitempty"`
	Source         HistorySource             `json:"source"`
	EventKind      statemachine.EventKind    `json:"event_kind"`
	FromStatus     statemachine.Status       `json:"from_status"`
	ToStatus       statemachine.Status       `json:"to_status"`
	Message        string                    `json:"message,omitempty"`
	ArtifactRef    string                    `json:"artifact_ref,omitempty"`
}

// downstreamOf records, for each phase, the phases whose artifact slots are
// fed by it — used to compute which slots to mark stale when an upstream
// artifact is edited after approval.
var downstreamOf = map[statemachine.Phase][]statemachine.Phase{
	statemachine.PhasePRD:          {statemachine.PhaseSystemDesign},
	statemachine.PhaseSystemDesign: {statemachine.PhaseEffort},
	statemachine.PhaseEffort:       {statemachine.PhaseCosting, statemachine.PhaseValue},
	statemachine.PhaseCosting:      {statemachine.PhaseFinancialModel},
	statemachine.PhaseValue:        {statemachine.PhaseFinancialModel},
}

// slotFor returns the artifact slot a phase owns, or nil if phase is
// unrecognized or owns no slot (PhaseFinal).
func (c *Case) slotFor(p statemachine.Phase) **ArtifactSlot {
	switch p {
	case statemachine.PhasePRD:
		return &c.PRDDraft
	case statemachine.PhaseSystemDesign:
		return &c.SystemDesign
	case statemachine.PhaseEffort:
		return &c.EffortEstimate
	case statemachine.PhaseCosting:
		return &c.CostEstimate
	case statemachine.PhaseValue:
		return &c.ValueProjection
	case statemachine.PhaseFinancialModel:
		return &c.FinancialSummary
	default:
		return nil
	}
}

// MarkDownstreamStale sets stale=true on every already-existing slot fed by
// phase, transitively. Called by the orchestrator when an EditArtifact
// event lands on an already-approved upstream artifact.
func (c *Case) MarkDownstreamStale(phase statemachine.Phase) {
	queue := append([]statemachine.Phase{}, downstreamOf[phase]...)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		slotPtr := c.slotFor(p)
		if slotPtr == nil || *slotPtr == nil {
			continue
		}
		(*slotPtr).Stale = true
		queue = append(queue, downstreamOf[p]...)
	}
}

// HasStaleSlot reports whether any artifact slot is currently stale —
// SubmitFinal must reject a case for which this is true.
func (c *Case) HasStaleSlot() bool {
	for _, slotPtr := range []*ArtifactSlot{c.PRDDraft, c.SystemDesign, c.EffortEstimate, c.CostEstimate, c.ValueProjection, c.FinancialSummary} {
		if slotPtr != nil && slotPtr.Stale {
			return true
		}
	}
	return false
}

// Clone returns a copy of c safe for an orchestrator mutator to modify
// without aliasing the Case the caller read from the store. Slots are
// copied by value; the artifact payload inside a slot is treated as
// immutable once a Runner produces it, so it is not deep-copied.
func (c *Case) Clone() *Case {
	clone := *c
	clone.RelevantLinks = append([]RelevantLink(nil), c.RelevantLinks...)
	clone.History = append([]HistoryEntry(nil), c.History...)
	clone.PRDDraft = cloneSlot(c.PRDDraft)
	clone.SystemDesign = cloneSlot(c.SystemDesign)
	clone.EffortEstimate = cloneSlot(c.EffortEstimate)
	clone.CostEstimate = cloneSlot(c.CostEstimate)
	clone.ValueProjection = cloneSlot(c.ValueProjection)
	clone.FinancialSummary = cloneSlot(c.FinancialSummary)
	return &clone
}

func cloneSlot(s *ArtifactSlot) *ArtifactSlot {
	if s == nil {
		return nil
	}
	copied := *s
	return &copied
}

// SetSlot installs a freshly generated artifact into the slot phase owns,
// stamped with the case's current version so a later upstream edit can be
// detected as staleness. A phase with
// no owned slot (PhaseFinal) is a no-op.
func (c *Case) SetSlot(phase statemachine.Phase, artifact any, generatedAt time.Time) {
	slotPtr := c.slotFor(phase)
	if slotPtr == nil {
		return
	}
	*slotPtr = &ArtifactSlot{Artifact: artifact, Version: c.Version, CreatedAt: generatedAt}
}

// SlotArtifact returns the artifact currently held in phase's slot, or nil
// if the phase owns no slot or the slot is still empty.
func (c *Case) SlotArtifact(phase statemachine.Phase) any {
	slotPtr := c.slotFor(phase)
	if slotPtr == nil || *slotPtr == nil {
		return nil
	}
	return (*slotPtr).Artifact
}
