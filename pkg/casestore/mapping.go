package casestore

import (
	"encoding/json"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/ent"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/ent/schema"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casemodel"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
)

func toEntLinks(links []casemodel.RelevantLink) []schema.RelevantLink {
	out := make([]schema.RelevantLink, len(links))
	for i, l := range links {
		out[i] = schema.RelevantLink{Name: l.Name, URL: l.URL}
	}
	return out
}

func fromEntLinks(links []schema.RelevantLink) []casemodel.RelevantLink {
	out := make([]casemodel.RelevantLink, len(links))
	for i, l := range links {
		out[i] = casemodel.RelevantLink{Name: l.Name, URL: l.URL}
	}
	return out
}

func toEntSlot(s *casemodel.ArtifactSlot) *schema.ArtifactSlot {
	if s == nil {
		return nil
	}
	return &schema.ArtifactSlot{
		Artifact:  s.Artifact,
		Version:   s.Version,
		Stale:     s.Stale,
		CreatedAt: s.CreatedAt,
	}
}

// fromEntSlot rebuilds a domain slot from its persisted shape. The slot's
// artifact comes back from the JSON column as map[string]interface{}, so it
// is re-encoded into artifact — the concrete type the slot's phase owns —
// letting runners type-assert their upstream inputs. A payload that cannot
// be re-typed is passed through as-is rather than dropped.
func fromEntSlot(s *schema.ArtifactSlot, artifact any) *casemodel.ArtifactSlot {
	if s == nil {
		return nil
	}
	out := &casemodel.ArtifactSlot{
		Artifact:  s.Artifact,
		Version:   s.Version,
		Stale:     s.Stale,
		CreatedAt: s.CreatedAt,
	}
	if s.Artifact == nil {
		return out
	}
	raw, err := json.Marshal(s.Artifact)
	if err != nil {
		return out
	}
	if err := json.Unmarshal(raw, artifact); err != nil {
		return out
	}
	out.Artifact = artifact
	return out
}

func fromEnt(row *ent.BusinessCase) *casemodel.Case {
	c := &casemodel.Case{
		CaseID:           row.ID,
		OwnerUserID:      row.OwnerUserID,
		Title:            row.Title,
		ProblemStatement: row.ProblemStatement,
		RelevantLinks:    fromEntLinks(row.RelevantLinks),
		Status:           statemachine.Status(row.Status),
		Version:          row.Version,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
		PRDDraft:         fromEntSlot(row.PrdDraft, &casemodel.PRDDraft{}),
		SystemDesign:     fromEntSlot(row.SystemDesign, &casemodel.SystemDesign{}),
		EffortEstimate:   fromEntSlot(row.EffortEstimate, &casemodel.EffortEstimate{}),
		CostEstimate:     fromEntSlot(row.CostEstimate, &casemodel.CostEstimate{}),
		ValueProjection:  fromEntSlot(row.ValueProjection, &casemodel.ValueProjection{}),
		FinancialSummary: fromEntSlot(row.FinancialSummary, &casemodel.FinancialSummary{}),
	}
	for _, h := range row.Edges.History {
		c.History = append(c.History, casemodel.HistoryEntry{
			SequenceNumber: h.SequenceNumber,
			Timestamp:      h.Timestamp,
			ActorUserID:    h.ActorUserID,
			ActorRole:      statemachine.Role(h.ActorRole),
			Source:         casemodel.HistorySource(h.Source),
			EventKind:      statemachine.EventKind(h.EventKind),
			FromStatus:     statemachine.Status(h.FromStatus),
			ToStatus:       statemachine.Status(h.ToStatus),
			Message:        h.Message,
			ArtifactRef:    h.ArtifactRef,
		})
	}
	return c
}
