package promptcatalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePersister struct {
	prompts map[string]*Prompt
	byFn    map[string]string // "agent::fn" -> promptID
	usage   map[string]int
	finds   int
}

func newFakePersister() *fakePersister {
	return &fakePersister{
		prompts: map[string]*Prompt{},
		byFn:    map[string]string{},
		usage:   map[string]int{},
	}
}

func (f *fakePersister) Get(ctx context.Context, promptID string) (*Prompt, error) {
	p, ok := f.prompts[promptID]
	if !ok {
		return nil, assert.AnError
	}
	cp := *p
	return &cp, nil
}

func (f *fakePersister) FindByAgentFunction(ctx context.Context, agentName, agentFunction string) (*Prompt, error) {
	f.finds++
	id, ok := f.byFn[agentName+"::"+agentFunction]
	if !ok {
		return nil, assert.AnError
	}
	return f.Get(ctx, id)
}

func (f *fakePersister) List(ctx context.Context) ([]*Prompt, error) {
	out := make([]*Prompt, 0, len(f.prompts))
	for _, p := range f.prompts {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePersister) Create(ctx context.Context, p *Prompt) error {
	f.prompts[p.ID] = p
	f.byFn[p.AgentName+"::"+p.AgentFunction] = p.ID
	return nil
}

func (f *fakePersister) UpdateMetadata(ctx context.Context, promptID string, title, description, category string, isEnabled bool) error {
	p := f.prompts[promptID]
	p.Title, p.Description, p.Category, p.IsEnabled = title, description, category, isEnabled
	return nil
}

func (f *fakePersister) AddVersion(ctx context.Context, promptID string, v Version) error {
	f.prompts[promptID].Versions = append(f.prompts[promptID].Versions, v)
	return nil
}

func (f *fakePersister) SetActiveVersion(ctx context.Context, promptID, label string) error {
	p := f.prompts[promptID]
	found := false
	for i := range p.Versions {
		if p.Versions[i].Label == label {
			p.Versions[i].IsActive = true
			found = true
		} else {
			p.Versions[i].IsActive = false
		}
	}
	if !found {
		return ErrVersionConflict
	}
	p.CurrentVersion = label
	return nil
}

func (f *fakePersister) IncrementUsage(ctx context.Context, promptID string) error {
	f.usage[promptID]++
	return nil
}

func seedPrompt(f *fakePersister, id, agent, fn string, active Version) {
	active.IsActive = true
	f.prompts[id] = &Prompt{
		ID: id, AgentName: agent, AgentFunction: fn, IsEnabled: true,
		Versions: []Version{active},
	}
	f.byFn[agent+"::"+fn] = id
}

func TestResolveActiveRendersAndIncrementsUsage(t *testing.T) {
	f := newFakePersister()
	seedPrompt(f, "p1", "product_manager", "draft_prd", Version{Label: "v1", TemplateText: "Title: {{title}}"})
	store := NewStore(f, time.Minute)

	rendered, err := store.ResolveActive(context.Background(), "product_manager", "draft_prd", map[string]string{"title": "Patient Portal Refresh"})
	require.NoError(t, err)
	assert.Equal(t, "Title: Patient Portal Refresh", rendered)
	assert.Equal(t, 1, f.usage["p1"])
}

func TestResolveActiveCachesBetweenCalls(t *testing.T) {
	f := newFakePersister()
	seedPrompt(f, "p1", "architect", "design", Version{Label: "v1", TemplateText: "{{prd}}"})
	store := NewStore(f, time.Minute)

	_, err := store.ResolveActive(context.Background(), "architect", "design", map[string]string{"prd": "x"})
	require.NoError(t, err)
	_, err = store.ResolveActive(context.Background(), "architect", "design", map[string]string{"prd": "y"})
	require.NoError(t, err)

	assert.Equal(t, 1, f.finds, "second resolve should be served from cache, not re-fetched")
	assert.Equal(t, 2, f.usage["p1"], "usage should still increment on every resolve even when cached")
}

func TestResolveActiveMissingPromptReturnsPromptMissing(t *testing.T) {
	f := newFakePersister()
	store := NewStore(f, time.Minute)

	_, err := store.ResolveActive(context.Background(), "cost_analyst", "estimate", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPromptMissing)
}

func TestResolveActiveDisabledPromptReturnsPromptMissing(t *testing.T) {
	f := newFakePersister()
	seedPrompt(f, "p1", "planner", "estimate", Version{Label: "v1", TemplateText: "x"})
	f.prompts["p1"].IsEnabled = false
	store := NewStore(f, time.Minute)

	_, err := store.ResolveActive(context.Background(), "planner", "estimate", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPromptMissing)
}

func TestSetActiveVersionInvalidatesResolveCache(t *testing.T) {
	f := newFakePersister()
	seedPrompt(f, "p1", "architect", "design", Version{Label: "v1", TemplateText: "old: {{x}}"})
	f.prompts["p1"].Versions = append(f.prompts["p1"].Versions, Version{Label: "v2", TemplateText: "new: {{x}}"})
	store := NewStore(f, time.Minute)

	rendered, err := store.ResolveActive(context.Background(), "architect", "design", map[string]string{"x": "1"})
	require.NoError(t, err)
	assert.Equal(t, "old: 1", rendered)

	require.NoError(t, store.SetActiveVersion(context.Background(), "p1", "v2"))

	rendered, err = store.ResolveActive(context.Background(), "architect", "design", map[string]string{"x": "1"})
	require.NoError(t, err)
	assert.Equal(t, "new: 1", rendered)
}

func TestAddVersionRejectsAlreadyActive(t *testing.T) {
	f := newFakePersister()
	seedPrompt(f, "p1", "planner", "estimate", Version{Label: "v1", TemplateText: "x"})
	store := NewStore(f, time.Minute)

	err := store.AddVersion(context.Background(), "p1", Version{Label: "v2", TemplateText: "y", IsActive: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVersionConflict)
}
