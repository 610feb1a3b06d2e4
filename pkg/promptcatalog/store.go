package promptcatalog

import (
	"context"
	"fmt"
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Persister is the storage seam Store relies on — implemented by
// EntPersister in production and a plain in-memory map in tests, the same
// split pkg/policy uses so ResolveActive's caching behavior can be
// exercised without a database.
type Persister interface {
	Get(ctx context.Context, promptID string) (*Prompt, error)
	FindByAgentFunction(ctx context.Context, agentName, agentFunction string) (*Prompt, error)
	List(ctx context.Context) ([]*Prompt, error)
	Create(ctx context.Context, p *Prompt) error
	UpdateMetadata(ctx context.Context, promptID string, title, description, category string, isEnabled bool) error
	AddVersion(ctx context.Context, promptID string, v Version) error
	SetActiveVersion(ctx context.Context, promptID, label string) error
	IncrementUsage(ctx context.Context, promptID string) error
}

// resolveCacheEntry is what ResolveActive caches per (agent_name,
// agent_function): the rendered template text is computed fresh per call
// (placeholders differ), but the resolved prompt/version pair is what's
// expensive to fetch repeatedly.
type resolveCacheEntry struct {
	promptID string
	version  Version
}

// Store resolves prompts and versions, backed by a TTL cache (process-wide,
// init-on-first-use, explicitly invalidated on write) so resolve_active — called on every agent run —
// doesn't round-trip to Postgres each time.
type Store struct {
	persister Persister
	cache     *cache.Cache
}

// NewStore builds a Store with the given resolve-cache TTL
// (prompt_cache_ttl_ms).
func NewStore(p Persister, ttl time.Duration) *Store {
	return &Store{
		persister: p,
		cache:     cache.New(ttl, 2*ttl),
	}
}

func cacheKeyFor(agentName, agentFunction string) string {
	return agentName + "::" + agentFunction
}

// ResolveActive resolves the active version of (agentName, agentFunction),
// renders it with values, and increments usage_count. Returns
// ErrPromptMissing if no prompt is registered or it has no active version
// (the AgentError taxonomy's PromptMissing).
func (s *Store) ResolveActive(ctx context.Context, agentName, agentFunction string, values map[string]string) (string, error) {
	key := cacheKeyFor(agentName, agentFunction)

	var entry resolveCacheEntry
	if v, ok := s.cache.Get(key); ok {
		entry = v.(resolveCacheEntry)
	} else {
		p, err := s.persister.FindByAgentFunction(ctx, agentName, agentFunction)
		if err != nil {
			return "", fmt.Errorf("%w: %s/%s: %v", ErrPromptMissing, agentName, agentFunction, err)
		}
		if !p.IsEnabled {
			return "", fmt.Errorf("%w: %s/%s is disabled", ErrPromptMissing, agentName, agentFunction)
		}
		active, ok := p.ActiveVersion()
		if !ok {
			return "", fmt.Errorf("%w: %s/%s has no active version", ErrPromptMissing, agentName, agentFunction)
		}
		entry = resolveCacheEntry{promptID: p.ID, version: *active}
		s.cache.Set(key, entry, cache.DefaultExpiration)
	}

	// Relaxed consistency: a small undercount under concurrency is
	// acceptable, so this is fire-and-forget from the caller's perspective —
	// but we still surface a real error if the write itself fails oddly, so
	// callers can log it.
	if err := s.persister.IncrementUsage(ctx, entry.promptID); err != nil {
		return "", fmt.Errorf("promptcatalog: increment usage: %w", err)
	}

	return Render(entry.version.TemplateText, values), nil
}

// List returns every catalog entry.
func (s *Store) List(ctx context.Context) ([]*Prompt, error) {
	return s.persister.List(ctx)
}

// Get returns one catalog entry by id.
func (s *Store) Get(ctx context.Context, promptID string) (*Prompt, error) {
	return s.persister.Get(ctx, promptID)
}

// CreatePrompt registers a brand-new prompt with no versions yet.
func (s *Store) CreatePrompt(ctx context.Context, p *Prompt) error {
	return s.persister.Create(ctx, p)
}

// UpdatePromptMetadata changes a prompt's descriptive fields without
// touching its versions.
func (s *Store) UpdatePromptMetadata(ctx context.Context, promptID, title, description, category string, isEnabled bool) error {
	return s.persister.UpdateMetadata(ctx, promptID, title, description, category, isEnabled)
}

// AddVersion appends a new, initially-inactive version to a prompt.
func (s *Store) AddVersion(ctx context.Context, promptID string, v Version) error {
	if v.IsActive {
		return fmt.Errorf("%w: new versions must be added inactive, then promoted via SetActiveVersion", ErrVersionConflict)
	}
	if err := s.persister.AddVersion(ctx, promptID, v); err != nil {
		return err
	}
	s.invalidate(ctx, promptID)
	return nil
}

// SetActiveVersion atomically makes label the sole active version of
// promptID — refusing any write that would leave zero or more than one
// active version is the persister's job (it runs inside one
// transaction); Store's role is invalidating the resolve cache afterward so
// the very next ResolveActive call observes the change.
func (s *Store) SetActiveVersion(ctx context.Context, promptID, label string) error {
	if err := s.persister.SetActiveVersion(ctx, promptID, label); err != nil {
		return err
	}
	s.invalidate(ctx, promptID)
	return nil
}

// invalidate drops every cache entry for promptID's (agent_name,
// agent_function) pair. Looked up by re-fetching the prompt — a single
// extra read on the rare write path, not the hot resolve path.
func (s *Store) invalidate(ctx context.Context, promptID string) {
	p, err := s.persister.Get(ctx, promptID)
	if err != nil {
		return
	}
	s.cache.Delete(cacheKeyFor(p.AgentName, p.AgentFunction))
}
