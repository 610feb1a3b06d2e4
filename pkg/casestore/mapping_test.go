package casestore

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/ent/schema"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casemodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFromEntLinksRoundTrip(t *testing.T) {
	links := []casemodel.RelevantLink{{Name: "Design doc", URL: "https://example.com/doc"}}
	assert.Equal(t, links, fromEntLinks(toEntLinks(links)))
}

// storedSlot simulates the Postgres JSON column: what toEntSlot wrote comes
// back as generic decoded JSON, not live Go values.
func storedSlot(t *testing.T, slot *casemodel.ArtifactSlot) *schema.ArtifactSlot {
	t.Helper()
	raw, err := json.Marshal(toEntSlot(slot))
	require.NoError(t, err)
	var stored schema.ArtifactSlot
	require.NoError(t, json.Unmarshal(raw, &stored))
	return &stored
}

func TestFromEntSlotRetypesPersistedArtifact(t *testing.T) {
	slot := &casemodel.ArtifactSlot{
		Artifact: &casemodel.EffortEstimate{
			Roles: []casemodel.EffortRole{
				{Role: "Developer", Hours: 100},
				{Role: "QA Engineer", Hours: 20},
			},
			TotalHours:           120,
			DurationWeeks:        3,
			ComplexityAssessment: "medium",
		},
		Version:   3,
		Stale:     true,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	got := fromEntSlot(storedSlot(t, slot), &casemodel.EffortEstimate{})
	require.NotNil(t, got)
	assert.Equal(t, slot.Version, got.Version)
	assert.Equal(t, slot.Stale, got.Stale)

	// The artifact must come back as its concrete type, not the
	// map[string]interface{} the JSON column yields — downstream runners
	// type-assert it directly.
	effort, ok := got.Artifact.(*casemodel.EffortEstimate)
	require.True(t, ok, "artifact should be re-typed, got %T", got.Artifact)
	assert.Equal(t, slot.Artifact, effort)
	assert.NoError(t, effort.Validate())
}

func TestFromEntSlotRetypesCostEstimate(t *testing.T) {
	slot := &casemodel.ArtifactSlot{
		Artifact: &casemodel.CostEstimate{
			Breakdown: []casemodel.CostBreakdownLine{
				{Role: "Developer", Hours: 100, HourlyRateCents: 15_000, TotalCostCents: 1_500_000},
			},
			EstimatedCostCents: 1_500_000,
			Currency:           "USD",
			RateCardID:         "default_dev_rates",
			CalculationMethod:  "role_hours_times_rate",
		},
		Version: 1,
	}

	got := fromEntSlot(storedSlot(t, slot), &casemodel.CostEstimate{})
	require.NotNil(t, got)
	cost, ok := got.Artifact.(*casemodel.CostEstimate)
	require.True(t, ok, "artifact should be re-typed, got %T", got.Artifact)
	assert.Equal(t, int64(1_500_000), cost.EstimatedCostCents)
	assert.NoError(t, cost.Validate())
}

func TestToEntSlotNilPassesThrough(t *testing.T) {
	assert.Nil(t, toEntSlot(nil))
	assert.Nil(t, fromEntSlot(nil, &casemodel.PRDDraft{}))
}
