package agents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/casemodel"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/llm"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/pricing"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/promptcatalog"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/ratecard"
	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
)

// stubBackend returns a canned completion, or an error, per call.
type stubBackend struct {
	text string
	err  error
}

func (b *stubBackend) Generate(ctx context.Context, renderedPrompt string, params llm.Params) (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return b.text, nil
}

// stubPersister serves one prompt per (agent, function) pair from memory.
type stubPersister struct {
	prompts map[string]*promptcatalog.Prompt
}

func newStubPersister(pairs ...[2]string) *stubPersister {
	p := &stubPersister{prompts: make(map[string]*promptcatalog.Prompt)}
	for _, pair := range pairs {
		key := pair[0] + "::" + pair[1]
		p.prompts[key] = &promptcatalog.Prompt{
			ID:            key,
			AgentName:     pair[0],
			AgentFunction: pair[1],
			IsEnabled:     true,
			Versions: []promptcatalog.Version{
				{Label: "v1", TemplateText: "Generate for {{title}}.", IsActive: true, CreatedAt: time.Now().UTC()},
			},
		}
	}
	return p
}

func (p *stubPersister) Get(ctx context.Context, promptID string) (*promptcatalog.Prompt, error) {
	if prompt, ok := p.prompts[promptID]; ok {
		return prompt, nil
	}
	return nil, errors.New("not found")
}

func (p *stubPersister) FindByAgentFunction(ctx context.Context, agentName, agentFunction string) (*promptcatalog.Prompt, error) {
	return p.Get(ctx, agentName+"::"+agentFunction)
}

func (p *stubPersister) List(ctx context.Context) ([]*promptcatalog.Prompt, error) { return nil, nil }
func (p *stubPersister) Create(ctx context.Context, prompt *promptcatalog.Prompt) error {
	return nil
}
func (p *stubPersister) UpdateMetadata(ctx context.Context, promptID string, title, description, category string, isEnabled bool) error {
	return nil
}
func (p *stubPersister) AddVersion(ctx context.Context, promptID string, v promptcatalog.Version) error {
	return nil
}
func (p *stubPersister) SetActiveVersion(ctx context.Context, promptID, label string) error {
	return nil
}
func (p *stubPersister) IncrementUsage(ctx context.Context, promptID string) error { return nil }

func catalogFor(pairs ...[2]string) *promptcatalog.Store {
	return promptcatalog.NewStore(newStubPersister(pairs...), time.Minute)
}

func agentErrorKind(t *testing.T, err error) statemachine.ErrorKind {
	t.Helper()
	var ae *AgentError
	require.ErrorAs(t, err, &ae)
	return ae.Kind
}

func TestProductManagerRunner(t *testing.T) {
	t.Run("parses and titles the draft", func(t *testing.T) {
		r := &ProductManagerRunner{
			Catalog: catalogFor([2]string{agentProductManager, fnDraftPRD}),
			Backend: &stubBackend{text: `{"content_markdown":"# Portal Refresh\n\n## Problem\n...","version_label":"v1"}`},
		}

		out, err := r.Run(context.Background(), Inputs{Case: &casemodel.Case{Title: "Portal Refresh", ProblemStatement: "Modernize"}})
		require.NoError(t, err)

		draft := out.(*casemodel.PRDDraft)
		assert.Equal(t, "Portal Refresh", draft.Title)
		assert.Contains(t, draft.ContentMarkdown, "## Problem")
	})

	t.Run("empty markdown is an invariant violation", func(t *testing.T) {
		r := &ProductManagerRunner{
			Catalog: catalogFor([2]string{agentProductManager, fnDraftPRD}),
			Backend: &stubBackend{text: `{"content_markdown":"  "}`},
		}

		_, err := r.Run(context.Background(), Inputs{Case: &casemodel.Case{Title: "X"}})
		assert.Equal(t, statemachine.ErrorKindInvariantViolation, agentErrorKind(t, err))
	})

	t.Run("non-JSON output is a parse failure", func(t *testing.T) {
		r := &ProductManagerRunner{
			Catalog: catalogFor([2]string{agentProductManager, fnDraftPRD}),
			Backend: &stubBackend{text: "Sorry, I can't help with that."},
		}

		_, err := r.Run(context.Background(), Inputs{Case: &casemodel.Case{Title: "X"}})
		assert.Equal(t, statemachine.ErrorKindParseFailure, agentErrorKind(t, err))
	})

	t.Run("missing prompt reported as PromptMissing", func(t *testing.T) {
		r := &ProductManagerRunner{
			Catalog: catalogFor(), // empty catalog
			Backend: &stubBackend{text: "{}"},
		}

		_, err := r.Run(context.Background(), Inputs{Case: &casemodel.Case{Title: "X"}})
		assert.Equal(t, statemachine.ErrorKindPromptMissing, agentErrorKind(t, err))
	})

	t.Run("backend timeout classified as LLMTimeout", func(t *testing.T) {
		r := &ProductManagerRunner{
			Catalog: catalogFor([2]string{agentProductManager, fnDraftPRD}),
			Backend: &stubBackend{err: llm.ErrTimeout},
		}

		_, err := r.Run(context.Background(), Inputs{Case: &casemodel.Case{Title: "X"}})
		assert.Equal(t, statemachine.ErrorKindLLMTimeout, agentErrorKind(t, err))
	})
}

func costTestCase() *casemodel.Case {
	return &casemodel.Case{
		CaseID: "case-1",
		Title:  "Portal Refresh",
		EffortEstimate: &casemodel.ArtifactSlot{Artifact: &casemodel.EffortEstimate{
			Roles: []casemodel.EffortRole{
				{Role: "developer", Hours: 100},
				{Role: "QA Engineer", Hours: 20},
			},
			TotalHours:    120,
			DurationWeeks: 3,
		}},
	}
}

func TestCostAnalystRunner(t *testing.T) {
	cards := ratecard.NewRegistry(map[string]*ratecard.RateCard{
		"default_dev_rates": {
			ID:                     "default_dev_rates",
			Name:                   "Default Dev Rates",
			IsActive:               true,
			DefaultHourlyRateCents: 10_000,
			Roles: []ratecard.Role{
				{RoleName: "Developer", HourlyRateCents: 15_000},
			},
		},
	})
	r := &CostAnalystRunner{
		Catalog: catalogFor([2]string{agentCostAnalyst, fnNarrateCost}),
		Backend: &stubBackend{text: "Cost derived from the default developer rate card."},
		Cards:   cards,
	}

	out, err := r.Run(context.Background(), Inputs{Case: costTestCase(), RateCardID: "default_dev_rates"})
	require.NoError(t, err)
	estimate := out.(*casemodel.CostEstimate)

	// Role resolution is case-insensitive; unlisted roles use the default.
	require.Len(t, estimate.Breakdown, 2)
	assert.Equal(t, int64(15_000), estimate.Breakdown[0].HourlyRateCents)
	assert.Equal(t, int64(1_500_000), estimate.Breakdown[0].TotalCostCents)
	assert.Equal(t, int64(10_000), estimate.Breakdown[1].HourlyRateCents)
	assert.Equal(t, int64(200_000), estimate.Breakdown[1].TotalCostCents)
	assert.Equal(t, int64(1_700_000), estimate.EstimatedCostCents)
	assert.Equal(t, "default_dev_rates", estimate.RateCardID)
	assert.NoError(t, estimate.Validate())

	// Mutating the registry afterward must not touch the generated
	// estimate — the breakdown is a snapshot, not a reference.
	cards.Replace(map[string]*ratecard.RateCard{
		"default_dev_rates": {ID: "default_dev_rates", DefaultHourlyRateCents: 99_999},
	})
	assert.Equal(t, int64(15_000), estimate.Breakdown[0].HourlyRateCents)
	assert.Equal(t, int64(1_700_000), estimate.EstimatedCostCents)
}

func TestCostAnalystRunner_MissingDependencies(t *testing.T) {
	cards := ratecard.NewRegistry(map[string]*ratecard.RateCard{})
	r := &CostAnalystRunner{
		Catalog: catalogFor([2]string{agentCostAnalyst, fnNarrateCost}),
		Backend: &stubBackend{text: "n/a"},
		Cards:   cards,
	}

	t.Run("no effort estimate", func(t *testing.T) {
		_, err := r.Run(context.Background(), Inputs{Case: &casemodel.Case{CaseID: "case-1"}, RateCardID: "default_dev_rates"})
		assert.Equal(t, statemachine.ErrorKindDependencyMissing, agentErrorKind(t, err))
	})

	t.Run("unknown rate card", func(t *testing.T) {
		_, err := r.Run(context.Background(), Inputs{Case: costTestCase(), RateCardID: "nope"})
		assert.Equal(t, statemachine.ErrorKindDependencyMissing, agentErrorKind(t, err))
	})
}

func valueTestCase() *casemodel.Case {
	c := costTestCase()
	c.CostEstimate = &casemodel.ArtifactSlot{Artifact: &casemodel.CostEstimate{
		EstimatedCostCents: 1_800_000,
		Currency:           "USD",
		RateCardID:         "default_dev_rates",
	}}
	return c
}

func TestSalesValueAnalystRunner(t *testing.T) {
	templates, err := pricing.NewRegistry(map[string]*pricing.Template{
		"standard_pricing": {ID: "standard_pricing", Name: "Standard", IsActive: true, Methodology: "comparable deals"},
	})
	require.NoError(t, err)

	t.Run("monotone projection accepted", func(t *testing.T) {
		r := &SalesValueAnalystRunner{
			Catalog: catalogFor([2]string{agentSalesValueAnalyst, fnProjectValue}),
			Backend: &stubBackend{text: `{
				"scenarios": [
					{"case": "Low", "value_cents": 5000000},
					{"case": "Base", "value_cents": 12000000},
					{"case": "High", "value_cents": 25000000}
				],
				"currency": "USD",
				"methodology": "comparable deals",
				"assumptions": ["adoption ramps over two quarters"]
			}`},
			Templates: templates,
		}

		out, err := r.Run(context.Background(), Inputs{Case: valueTestCase(), PricingTemplateID: "standard_pricing"})
		require.NoError(t, err)
		projection := out.(*casemodel.ValueProjection)
		assert.Equal(t, "standard_pricing", projection.TemplateID)
		assert.Len(t, projection.Scenarios, 3)
	})

	t.Run("non-monotone projection rejected, not reordered", func(t *testing.T) {
		r := &SalesValueAnalystRunner{
			Catalog: catalogFor([2]string{agentSalesValueAnalyst, fnProjectValue}),
			Backend: &stubBackend{text: `{
				"scenarios": [
					{"case": "Low", "value_cents": 12000000},
					{"case": "Base", "value_cents": 5000000},
					{"case": "High", "value_cents": 25000000}
				],
				"currency": "USD"
			}`},
			Templates: templates,
		}

		_, err := r.Run(context.Background(), Inputs{Case: valueTestCase(), PricingTemplateID: "standard_pricing"})
		assert.Equal(t, statemachine.ErrorKindInvariantViolation, agentErrorKind(t, err))
	})
}

func TestFinancialModelRunner(t *testing.T) {
	c := valueTestCase()
	c.ValueProjection = &casemodel.ArtifactSlot{Artifact: &casemodel.ValueProjection{
		Scenarios: []casemodel.ValueScenario{
			{Case: casemodel.ScenarioLow, ValueCents: 5_000_000},
			{Case: casemodel.ScenarioBase, ValueCents: 12_000_000},
			{Case: casemodel.ScenarioHigh, ValueCents: 25_000_000},
		},
		Currency:   "USD",
		TemplateID: "standard_pricing",
	}}

	r := &FinancialModelRunner{
		Catalog: catalogFor([2]string{agentFinancialModel, fnNarrateFinancial}),
		Backend: &stubBackend{text: "Payback expected inside the first year."},
	}

	out, err := r.Run(context.Background(), Inputs{Case: c})
	require.NoError(t, err)
	summary := out.(*casemodel.FinancialSummary)

	assert.Equal(t, int64(1_800_000), summary.TotalEstimatedCostCents)
	assert.Equal(t, int64(12_000_000), summary.TotalProjectedValueBaseCents)
	assert.Equal(t, int64(10_200_000), summary.NetValueBaseCents)
	require.NotNil(t, summary.ROIPercentageBase)
	assert.InDelta(t, 566.67, *summary.ROIPercentageBase, 0.01)
	assert.NoError(t, summary.Validate())
}
