package casemodel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffortEstimateValidate(t *testing.T) {
	e := &EffortEstimate{
		Roles: []EffortRole{
			{Role: "Backend Engineer", Hours: 60},
			{Role: "Frontend Engineer", Hours: 40},
			{Role: "QA Engineer", Hours: 20},
		},
		TotalHours:    120,
		DurationWeeks: 6,
	}
	assert.NoError(t, e.Validate())

	bad := &EffortEstimate{Roles: []EffortRole{{Role: "x", Hours: 10}}, TotalHours: 15, DurationWeeks: 2}
	assert.Error(t, bad.Validate())

	zeroWeeks := &EffortEstimate{Roles: []EffortRole{{Role: "x", Hours: 10}}, TotalHours: 10, DurationWeeks: 0}
	assert.Error(t, zeroWeeks.Validate())
}

func TestCostEstimateValidate(t *testing.T) {
	c := &CostEstimate{
		Breakdown: []CostBreakdownLine{
			{Role: "Backend Engineer", Hours: 60, HourlyRateCents: 15000, TotalCostCents: 900000},
			{Role: "Frontend Engineer", Hours: 40, HourlyRateCents: 15000, TotalCostCents: 600000},
			{Role: "QA Engineer", Hours: 20, HourlyRateCents: 15000, TotalCostCents: 300000},
		},
		EstimatedCostCents: 1800000,
		Currency:           "USD",
		RateCardID:         "default_dev_rates",
	}
	require.NoError(t, c.Validate())

	c.EstimatedCostCents = 1800001
	assert.Error(t, c.Validate())
}

func TestValueProjectionValidateRequiresAllThreeScenariosAndMonotonicity(t *testing.T) {
	v := &ValueProjection{
		Scenarios: []ValueScenario{
			{Case: ScenarioLow, ValueCents: 5000000},
			{Case: ScenarioBase, ValueCents: 12000000},
			{Case: ScenarioHigh, ValueCents: 25000000},
		},
		Currency:   "USD",
		TemplateID: "standard_saas",
	}
	assert.NoError(t, v.Validate())

	missing := &ValueProjection{Scenarios: []ValueScenario{{Case: ScenarioLow, ValueCents: 1}, {Case: ScenarioBase, ValueCents: 2}}}
	assert.Error(t, missing.Validate())

	outOfOrder := &ValueProjection{Scenarios: []ValueScenario{
		{Case: ScenarioLow, ValueCents: 30},
		{Case: ScenarioBase, ValueCents: 20},
		{Case: ScenarioHigh, ValueCents: 50},
	}}
	assert.Error(t, outOfOrder.Validate())
}

func TestFinancialSummaryValidateIdentities(t *testing.T) {
	roi := 100 * float64(10200000) / float64(1800000)
	f := &FinancialSummary{
		TotalEstimatedCostCents:      1800000,
		TotalProjectedValueBaseCents: 12000000,
		NetValueBaseCents:            10200000,
		ROIPercentageBase:            &roi,
		Currency:                     "USD",
	}
	require.NoError(t, f.Validate())

	wrongNet := &FinancialSummary{TotalEstimatedCostCents: 100, TotalProjectedValueBaseCents: 300, NetValueBaseCents: 150}
	assert.Error(t, wrongNet.Validate())

	zeroCostROI := float64(0)
	undefinedWhenZeroCost := &FinancialSummary{NetValueBaseCents: 0, ROIPercentageBase: &zeroCostROI}
	assert.Error(t, undefinedWhenZeroCost.Validate())
}

func TestArtifactRoundTripPreservesInvariants(t *testing.T) {
	orig := EffortEstimate{
		Roles:                 []EffortRole{{Role: "Backend Engineer", Hours: 80}, {Role: "QA Engineer", Hours: 40}},
		TotalHours:            120,
		DurationWeeks:         8,
		ComplexityAssessment:  "moderate",
	}
	require.NoError(t, orig.Validate())

	raw, err := json.Marshal(orig)
	require.NoError(t, err)

	var roundTripped EffortEstimate
	require.NoError(t, json.Unmarshal(raw, &roundTripped))
	require.NoError(t, roundTripped.Validate())
	assert.Equal(t, orig, roundTripped)
}
