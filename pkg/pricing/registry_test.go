package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistryRejectsNonMonotonicSeed(t *testing.T) {
	_, err := NewRegistry(map[string]*Template{
		"broken": {ID: "broken", Example: &ScenarioExample{LowCents: 300, BaseCents: 200, HighCents: 500}},
	})
	assert.ErrorIs(t, err, ErrNonMonotonic)
}

func TestNewRegistryAcceptsMonotonicSeed(t *testing.T) {
	reg, err := NewRegistry(map[string]*Template{
		"standard_saas": {ID: "standard_saas", Example: &ScenarioExample{LowCents: 5000000, BaseCents: 12000000, HighCents: 25000000}},
	})
	require.NoError(t, err)

	got, err := reg.Get("standard_saas")
	require.NoError(t, err)
	assert.Equal(t, "standard_saas", got.ID)
}

func TestPutRejectsNonMonotonicWrite(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)

	err = reg.Put(&Template{ID: "bad", Example: &ScenarioExample{LowCents: 10, BaseCents: 5, HighCents: 20}})
	assert.ErrorIs(t, err, ErrNonMonotonic)

	_, getErr := reg.Get("bad")
	assert.ErrorIs(t, getErr, ErrNotFound)
}

func TestPutAcceptsTemplateWithNoExample(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)
	assert.NoError(t, reg.Put(&Template{ID: "freeform"}))
}
