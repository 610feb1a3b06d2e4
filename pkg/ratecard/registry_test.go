package ratecard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func devRates() *RateCard {
	return &RateCard{
		ID:                     "default_dev_rates",
		Name:                   "Default Dev Rates",
		IsActive:               true,
		DefaultHourlyRateCents: 10000,
		Roles: []Role{
			{RoleName: "Backend Engineer", HourlyRateCents: 15000},
			{RoleName: "QA Engineer", HourlyRateCents: 9000},
		},
	}
}

func TestRateResolvesCaseInsensitiveRoleMatch(t *testing.T) {
	card := devRates()
	assert.Equal(t, int64(15000), card.Rate("backend engineer"))
	assert.Equal(t, int64(9000), card.Rate("QA ENGINEER"))
}

func TestRateFallsBackToDefault(t *testing.T) {
	card := devRates()
	assert.Equal(t, int64(10000), card.Rate("Technical Writer"))
}

func TestRegistryGetAndReplace(t *testing.T) {
	reg := NewRegistry(map[string]*RateCard{"default_dev_rates": devRates()})

	got, err := reg.Get("default_dev_rates")
	require.NoError(t, err)
	assert.Equal(t, "Default Dev Rates", got.Name)

	_, err = reg.Get("unknown")
	assert.ErrorIs(t, err, ErrNotFound)

	reg.Replace(map[string]*RateCard{})
	_, err = reg.Get("default_dev_rates")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistryDefensiveCopyOnConstruction(t *testing.T) {
	src := map[string]*RateCard{"default_dev_rates": devRates()}
	reg := NewRegistry(src)
	delete(src, "default_dev_rates")

	_, err := reg.Get("default_dev_rates")
	assert.NoError(t, err)
}
