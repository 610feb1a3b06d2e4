package policy

import (
	"context"
	"testing"
	"time"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePersister struct {
	role  statemachine.Role
	found bool
	loads int
}

func (f *fakePersister) Load(ctx context.Context) (statemachine.Role, bool, error) {
	f.loads++
	return f.role, f.found, nil
}

func (f *fakePersister) Save(ctx context.Context, role statemachine.Role) error {
	f.role = role
	f.found = true
	return nil
}

func TestGetDefaultsWhenNoRowExists(t *testing.T) {
	p := &fakePersister{}
	store := NewStore(p, time.Minute)

	cfg, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultFinalApproverRole, cfg.FinalApproverRoleName)
}

func TestGetCachesBetweenCalls(t *testing.T) {
	p := &fakePersister{role: statemachine.RoleFinalApprover, found: true}
	store := NewStore(p, time.Minute)

	_, err := store.Get(context.Background())
	require.NoError(t, err)
	_, err = store.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, p.loads, "second Get should be served from cache")
}

func TestSetInvalidatesCacheWithinOneRequest(t *testing.T) {
	p := &fakePersister{role: statemachine.RoleFinalApprover, found: true}
	store := NewStore(p, time.Minute)

	cfg, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, statemachine.RoleFinalApprover, cfg.FinalApproverRoleName)

	require.NoError(t, store.SetFinalApproverRole(context.Background(), statemachine.RoleAdmin))

	cfg, err = store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, statemachine.RoleAdmin, cfg.FinalApproverRoleName)
	assert.Equal(t, 2, p.loads, "a write must force the next read to re-resolve, not serve the stale cached value")
}
