package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DefaultsOnly(t *testing.T) {
	cfg, err := Initialize(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 1_200_000*time.Millisecond, cfg.GenerationTimeout)
	assert.Equal(t, 3, cfg.ConcurrencyRetryLimit)
	assert.Equal(t, 2, cfg.LLMRetryLimit)
	assert.Equal(t, "FINAL_APPROVER", cfg.FinalApproverRoleName)
	assert.Equal(t, "default_dev_rates", cfg.DefaultRateCardID)
	assert.Equal(t, 60_000*time.Millisecond, cfg.PromptCacheTTL)
}

func TestInitialize_UserOverridesWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
concurrency_retry_limit: 5
final_approver_role_name: FINANCE_APPROVER
`), 0o644))

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.ConcurrencyRetryLimit)
	assert.Equal(t, "FINANCE_APPROVER", cfg.FinalApproverRoleName)
	// Unset fields keep their built-in default.
	assert.Equal(t, 2, cfg.LLMRetryLimit)
	assert.Equal(t, "default_dev_rates", cfg.DefaultRateCardID)
}

func TestInitialize_UnknownFinalApproverRoleRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`final_approver_role_name: NOT_A_ROLE`), 0o644))

	_, err := Initialize(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestInitialize_InvalidYAMLRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0o644))

	_, err := Initialize(context.Background(), path)
	require.Error(t, err)
}
