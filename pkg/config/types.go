// Package config loads and validates the system's recognized configuration
// options: one YAML document merged under built-in defaults, validated at
// startup.
package config

import "time"

// Config is every recognized option, already converted from its
// YAML millisecond form into a time.Duration where applicable.
type Config struct {
	GenerationTimeout        time.Duration `yaml:"-"`
	ConcurrencyRetryLimit    int           `yaml:"-"`
	LLMRetryLimit            int           `yaml:"-"`
	FinalApproverRoleName    string        `yaml:"-"`
	DefaultRateCardID        string        `yaml:"-"`
	PromptCacheTTL           time.Duration `yaml:"-"`
}

// yamlConfig is the on-disk shape: millisecond durations as plain ints, the
// way the operator actually writes the YAML file.
type yamlConfig struct {
	GenerationTimeoutMS   *int    `yaml:"generation_timeout_ms,omitempty" validate:"omitempty,min=1"`
	ConcurrencyRetryLimit *int    `yaml:"concurrency_retry_limit,omitempty" validate:"omitempty,min=0"`
	LLMRetryLimit         *int    `yaml:"llm_retry_limit,omitempty" validate:"omitempty,min=0"`
	FinalApproverRoleName string  `yaml:"final_approver_role_name,omitempty"`
	DefaultRateCardID     string  `yaml:"default_rate_card_id,omitempty"`
	PromptCacheTTLMS      *int    `yaml:"prompt_cache_ttl_ms,omitempty" validate:"omitempty,min=1"`
}

// defaultYAMLConfig is the built-in configuration merged under whatever the
// operator supplies, the same "builtin + user, user wins" shape as
// GetBuiltinConfig/mergeAgents.
func defaultYAMLConfig() yamlConfig {
	generationTimeoutMS := 1_200_000
	concurrencyRetryLimit := 3
	llmRetryLimit := 2
	promptCacheTTLMS := 60_000

	return yamlConfig{
		GenerationTimeoutMS:   &generationTimeoutMS,
		ConcurrencyRetryLimit: &concurrencyRetryLimit,
		LLMRetryLimit:         &llmRetryLimit,
		FinalApproverRoleName: "FINAL_APPROVER",
		DefaultRateCardID:     "default_dev_rates",
		PromptCacheTTLMS:      &promptCacheTTLMS,
	}
}

func (c yamlConfig) toConfig() *Config {
	return &Config{
		GenerationTimeout:     time.Duration(*c.GenerationTimeoutMS) * time.Millisecond,
		ConcurrencyRetryLimit: *c.ConcurrencyRetryLimit,
		LLMRetryLimit:         *c.LLMRetryLimit,
		FinalApproverRoleName: c.FinalApproverRoleName,
		DefaultRateCardID:     c.DefaultRateCardID,
		PromptCacheTTL:        time.Duration(*c.PromptCacheTTLMS) * time.Millisecond,
	}
}
