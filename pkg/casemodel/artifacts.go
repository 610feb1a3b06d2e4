// Package casemodel defines the semantic shapes of the six case artifacts
// and the relevant-link / history value types that make up a Case
// aggregate, plus the invariant checks each artifact must satisfy before
// it is allowed to land in a Case's artifact slot.
package casemodel

import (
	"fmt"
	"strings"
	"time"
)

// RelevantLink is one entry of a Case's ordered relevant_links sequence.
type RelevantLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PRDDraft is the Product Manager agent's output.
type PRDDraft struct {
	Title           string `json:"title"`
	ContentMarkdown string `json:"content_markdown"`
	VersionLabel    string `json:"version_label"`
}

// Validate checks the PRD draft invariants: non-empty
// markdown. Mandatory-section enforcement is prompt-specific and left to
// the runner that knows which sections its prompt demanded.
func (d *PRDDraft) Validate() error {
	if strings.TrimSpace(d.ContentMarkdown) == "" {
		return fmt.Errorf("prd draft: content_markdown must not be empty")
	}
	return nil
}

// SystemDesign is the Architect agent's output.
type SystemDesign struct {
	ContentMarkdown string    `json:"content_markdown"`
	GeneratedBy     string    `json:"generated_by"`
	VersionLabel    string    `json:"version_label"`
	GeneratedAt     time.Time `json:"generated_at"`
}

func (d *SystemDesign) Validate() error {
	if strings.TrimSpace(d.ContentMarkdown) == "" {
		return fmt.Errorf("system design: content_markdown must not be empty")
	}
	return nil
}

// EffortRole is one role/hours line of an effort estimate.
type EffortRole struct {
	Role  string  `json:"role"`
	Hours float64 `json:"hours"`
}

// EffortEstimate is the Planner agent's output.
type EffortEstimate struct {
	Roles                []EffortRole `json:"roles"`
	TotalHours           float64      `json:"total_hours"`
	DurationWeeks        int          `json:"duration_weeks"`
	ComplexityAssessment string       `json:"complexity_assessment"`
	Notes                string       `json:"notes,omitempty"`
}

// hoursTolerance is the exact-equality check's practical epsilon
// against floating-point accumulation, not a design slack.
const hoursTolerance = 1e-9

// Validate enforces: total_hours == Σ roles[i].hours (tolerance 0),
// duration_weeks >= 1, and every role's hours >= 0.
func (e *EffortEstimate) Validate() error {
	var sum float64
	for _, r := range e.Roles {
		if r.Hours < 0 {
			return fmt.Errorf("effort estimate: role %q has negative hours", r.Role)
		}
		sum += r.Hours
	}
	if diff := sum - e.TotalHours; diff > hoursTolerance || diff < -hoursTolerance {
		return fmt.Errorf("effort estimate: total_hours %.4f does not equal sum of roles %.4f", e.TotalHours, sum)
	}
	if e.DurationWeeks < 1 {
		return fmt.Errorf("effort estimate: duration_weeks must be >= 1, got %d", e.DurationWeeks)
	}
	return nil
}

// CostBreakdownLine is one role's line in a cost estimate.
type CostBreakdownLine struct {
	Role       string `json:"role"`
	Hours      float64 `json:"hours"`
	HourlyRateCents int64 `json:"hourly_rate_cents"`
	TotalCostCents  int64 `json:"total_cost_cents"`
}

// CostEstimate is the Cost Analyst agent's output. Money is carried in
// integer cents throughout so the money-equality invariants are exact,
// never a floating-point comparison.
type CostEstimate struct {
	Breakdown         []CostBreakdownLine `json:"breakdown"`
	EstimatedCostCents int64              `json:"estimated_cost_cents"`
	Currency          string              `json:"currency"`
	RateCardID        string              `json:"rate_card_id"`
	CalculationMethod string              `json:"calculation_method"`
	Notes             string              `json:"notes,omitempty"`
}

// Validate enforces: total_cost == hours * hourly_rate (integer cents) per
// line, and estimated_cost == Σ total_cost. Rate-card role coverage is not
// checked here or by the Cost Analyst runner, which prices a role missing
// from the rate card at the card's default hourly rate.
func (c *CostEstimate) Validate() error {
	var sum int64
	for _, line := range c.Breakdown {
		want := int64(line.Hours*100+0.5) * line.HourlyRateCents / 100
		if want != line.TotalCostCents {
			return fmt.Errorf("cost estimate: role %q total_cost_cents %d does not equal hours*rate %d", line.Role, line.TotalCostCents, want)
		}
		sum += line.TotalCostCents
	}
	if sum != c.EstimatedCostCents {
		return fmt.Errorf("cost estimate: estimated_cost_cents %d does not equal sum of breakdown %d", c.EstimatedCostCents, sum)
	}
	return nil
}

// ScenarioCase is one of the three required value-projection scenarios.
type ScenarioCase string

const (
	ScenarioLow  ScenarioCase = "Low"
	ScenarioBase ScenarioCase = "Base"
	ScenarioHigh ScenarioCase = "High"
)

// ValueScenario is one scenario line of a value projection.
type ValueScenario struct {
	Case        ScenarioCase `json:"case"`
	ValueCents  int64        `json:"value_cents"`
	Description string       `json:"description,omitempty"`
}

// ValueProjection is the Sales Value Analyst agent's output.
type ValueProjection struct {
	Scenarios   []ValueScenario `json:"scenarios"`
	Currency    string          `json:"currency"`
	TemplateID  string          `json:"template_id"`
	Methodology string          `json:"methodology"`
	Assumptions []string        `json:"assumptions"`
}

// Validate enforces: all three scenario labels present exactly once, and
// Low <= Base <= High (never silently reordered — callers get an
// InvariantViolation instead).
func (v *ValueProjection) Validate() error {
	seen := map[ScenarioCase]int64{}
	for _, s := range v.Scenarios {
		if _, dup := seen[s.Case]; dup {
			return fmt.Errorf("value projection: scenario %q present more than once", s.Case)
		}
		seen[s.Case] = s.ValueCents
	}
	low, lok := seen[ScenarioLow]
	base, bok := seen[ScenarioBase]
	high, hok := seen[ScenarioHigh]
	if !lok || !bok || !hok {
		return fmt.Errorf("value projection: must contain exactly Low, Base, and High scenarios")
	}
	if low > base || base > high {
		return fmt.Errorf("value projection: scenarios must satisfy Low <= Base <= High, got %d/%d/%d", low, base, high)
	}
	return nil
}

// FinancialSummary is the Financial Model agent's output.
type FinancialSummary struct {
	TotalEstimatedCostCents      int64    `json:"total_estimated_cost_cents"`
	TotalProjectedValueBaseCents int64    `json:"total_projected_value_base_cents"`
	NetValueBaseCents            int64    `json:"net_value_base_cents"`
	ROIPercentageBase            *float64 `json:"roi_percentage_base,omitempty"`
	PaybackPeriodMonths          *float64 `json:"payback_period_months,omitempty"`
	Currency                     string   `json:"currency"`
	KeyAssumptions               []string `json:"key_assumptions"`
}

// Validate enforces the financial identities: net_value_base = projected_value -
// estimated_cost, and roi_percentage_base = 100 * net / cost when cost > 0
// (left nil otherwise).
func (f *FinancialSummary) Validate() error {
	wantNet := f.TotalProjectedValueBaseCents - f.TotalEstimatedCostCents
	if wantNet != f.NetValueBaseCents {
		return fmt.Errorf("financial summary: net_value_base_cents %d does not equal value-cost %d", f.NetValueBaseCents, wantNet)
	}
	if f.TotalEstimatedCostCents > 0 {
		wantROI := 100 * float64(f.NetValueBaseCents) / float64(f.TotalEstimatedCostCents)
		if f.ROIPercentageBase == nil {
			return fmt.Errorf("financial summary: roi_percentage_base must be set when cost > 0")
		}
		if diff := *f.ROIPercentageBase - wantROI; diff > 1e-6 || diff < -1e-6 {
			return fmt.Errorf("financial summary: roi_percentage_base %.4f does not equal 100*net/cost %.4f", *f.ROIPercentageBase, wantROI)
		}
	} else if f.ROIPercentageBase != nil {
		return fmt.Errorf("financial summary: roi_percentage_base must be undefined when cost is 0")
	}
	return nil
}
