package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BusinessCase holds the schema definition for the BusinessCase entity —
// the aggregate root of the PRD-to-approval workflow.
type BusinessCase struct {
	ent.Schema
}

// Fields of the BusinessCase.
func (BusinessCase) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("case_id").
			Unique().
			Immutable(),
		field.String("owner_user_id").
			Immutable(),
		field.String("title"),
		field.Text("problem_statement"),
		field.JSON("relevant_links", []RelevantLink{}).
			Optional(),
		field.Enum("status").
			Values(statusValues()...).
			Default("INTAKE"),
		field.Int("version").
			Default(1).
			Comment("Monotonic optimistic-concurrency counter, bumped on every mutation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),

		// Artifact slots. Each is a nullable JSON blob embedding its own
		// semantic shape (see pkg/casemodel) plus a staleness flag used for
		// downstream invalidation on upstream edits.
		field.JSON("prd_draft", &ArtifactSlot{}).Optional(),
		field.JSON("system_design", &ArtifactSlot{}).Optional(),
		field.JSON("effort_estimate", &ArtifactSlot{}).Optional(),
		field.JSON("cost_estimate", &ArtifactSlot{}).Optional(),
		field.JSON("value_projection", &ArtifactSlot{}).Optional(),
		field.JSON("financial_summary", &ArtifactSlot{}).Optional(),
	}
}

// RelevantLink is one entry of the Case's ordered relevant_links sequence.
type RelevantLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ArtifactSlot wraps a generated artifact with its staleness-tracking
// provenance: the case version it was generated
// against, and whether an upstream edit has since invalidated it. Mirrors
// pkg/casemodel.ArtifactSlot field-for-field so the persistence and domain
// shapes stay a straight JSON round-trip, not a hand-maintained mapping.
type ArtifactSlot struct {
	Artifact  interface{} `json:"artifact"`
	Version   int         `json:"version"`
	Stale     bool        `json:"stale"`
	CreatedAt time.Time   `json:"created_at"`
}

// Edges of the BusinessCase.
func (BusinessCase) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("history", HistoryEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the BusinessCase.
func (BusinessCase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("owner_user_id"),
		index.Fields("status", "updated_at"),
	}
}

// statusValues is the full ~40-value case status enum.
// Kept in one place so the ent schema and pkg/statemachine's pure status
// graph cannot drift.
func statusValues() []string {
	return []string{
		"INTAKE",
		"PRD_DRAFTING", "PRD_REVIEW", "PRD_APPROVED", "PRD_REJECTED",
		"SYSTEM_DESIGN_DRAFTING", "SYSTEM_DESIGN_DRAFTED", "SYSTEM_DESIGN_PENDING_REVIEW",
		"SYSTEM_DESIGN_APPROVED", "SYSTEM_DESIGN_REJECTED",
		"PLANNING_IN_PROGRESS", "PLANNING_COMPLETE", "EFFORT_PENDING_REVIEW",
		"EFFORT_APPROVED", "EFFORT_REJECTED",
		"COSTING_IN_PROGRESS", "COSTING_COMPLETE", "COSTING_PENDING_REVIEW",
		"COSTING_APPROVED", "COSTING_REJECTED",
		"VALUE_ANALYSIS_IN_PROGRESS", "VALUE_ANALYSIS_COMPLETE", "VALUE_PENDING_REVIEW",
		"VALUE_APPROVED", "VALUE_REJECTED",
		"FINANCIAL_MODEL_IN_PROGRESS", "FINANCIAL_MODEL_COMPLETE", "FINANCIAL_MODEL_PENDING_REVIEW",
		"FINANCIAL_MODEL_APPROVED", "FINANCIAL_MODEL_REJECTED",
		"PENDING_FINAL_APPROVAL", "APPROVED", "REJECTED",
	}
}
