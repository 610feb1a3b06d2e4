package casemodel

import (
	"testing"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkDownstreamStaleCascadesTransitively(t *testing.T) {
	c := &Case{
		SystemDesign:     &ArtifactSlot{},
		EffortEstimate:   &ArtifactSlot{},
		CostEstimate:     &ArtifactSlot{},
		ValueProjection:  &ArtifactSlot{},
		FinancialSummary: &ArtifactSlot{},
	}
	require.False(t, c.HasStaleSlot())

	c.MarkDownstreamStale(statemachine.PhasePRD)

	assert.True(t, c.SystemDesign.Stale)
	assert.True(t, c.EffortEstimate.Stale)
	assert.True(t, c.CostEstimate.Stale)
	assert.True(t, c.ValueProjection.Stale)
	assert.True(t, c.FinancialSummary.Stale)
	assert.True(t, c.HasStaleSlot())
}

func TestMarkDownstreamStaleLeavesMissingSlotsNil(t *testing.T) {
	c := &Case{EffortEstimate: &ArtifactSlot{}}
	c.MarkDownstreamStale(statemachine.PhaseSystemDesign)
	assert.True(t, c.EffortEstimate.Stale)
	assert.Nil(t, c.CostEstimate)
	assert.Nil(t, c.ValueProjection)
}

func TestMarkDownstreamStaleOnlyAffectsDescendants(t *testing.T) {
	c := &Case{PRDDraft: &ArtifactSlot{}, CostEstimate: &ArtifactSlot{}}
	c.MarkDownstreamStale(statemachine.PhaseValue)
	assert.False(t, c.PRDDraft.Stale)
	assert.False(t, c.CostEstimate.Stale)
}
