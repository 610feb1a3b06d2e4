// Package policy holds the singleton key-value policy document at
// config/approval_settings, cached process-wide with explicit invalidation
// on write; readers tolerate one extra round-trip after invalidation.
package policy

import (
	"context"
	"fmt"
	"time"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
	cache "github.com/patrickmn/go-cache"
)

const cacheKey = "policy_config"

// Config is the policy document, currently holding just the final-approver
// role, with room to grow further config_key-scoped values.
type Config struct {
	FinalApproverRoleName statemachine.Role
}

// DefaultFinalApproverRole is used when no policy row exists yet.
const DefaultFinalApproverRole = statemachine.RoleFinalApprover

// Persister is the storage seam Store relies on — implemented by
// EntPersister in production and by a plain map in tests, so the caching
// behavior below can be exercised without a database.
type Persister interface {
	Load(ctx context.Context) (role statemachine.Role, found bool, err error)
	Save(ctx context.Context, role statemachine.Role) error
}

// Store resolves and updates the policy document, backed by a TTL cache so
// hot reads of final_approver_role_name (consulted on every ApproveFinal/
// RejectFinal) don't round-trip to Postgres.
type Store struct {
	persister Persister
	cache     *cache.Cache
}

// NewStore builds a Store with the given cache TTL; policy reads reuse the
// prompt_cache_ttl_ms setting.
func NewStore(p Persister, ttl time.Duration) *Store {
	return &Store{
		persister: p,
		cache:     cache.New(ttl, 2*ttl),
	}
}

// Get resolves the current policy document, consulting the cache first.
func (s *Store) Get(ctx context.Context) (*Config, error) {
	if v, ok := s.cache.Get(cacheKey); ok {
		return v.(*Config), nil
	}

	role, found, err := s.persister.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("policy: load config: %w", err)
	}
	if !found {
		role = DefaultFinalApproverRole
	}

	cfg := &Config{FinalApproverRoleName: role}
	s.cache.Set(cacheKey, cfg, cache.DefaultExpiration)
	return cfg, nil
}

// SetFinalApproverRole persists a new final-approver role and invalidates
// the cache so the very next Get (and therefore the next ApproveFinal/
// RejectFinal) observes it.
func (s *Store) SetFinalApproverRole(ctx context.Context, role statemachine.Role) error {
	if err := s.persister.Save(ctx, role); err != nil {
		return fmt.Errorf("policy: write config: %w", err)
	}
	s.cache.Delete(cacheKey)
	return nil
}
