package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Initialize loads, validates, and returns ready-to-use configuration. This
// is the entry point cmd/ calls at startup.
//
// Steps: 1) read the YAML file at path, 2) expand environment variables,
// 3) parse into yamlConfig, 4) merge under the built-in defaults (user
// values win), 5) validate, 6) convert to Config.
func Initialize(ctx context.Context, path string) (*Config, error) {
	log := slog.With("config_path", path)
	log.Info("loading configuration")

	merged, err := load(path)
	if err != nil {
		return nil, fmt.Errorf("config: initialize: %w", err)
	}

	if err := validate(merged); err != nil {
		return nil, err
	}

	cfg := merged.toConfig()
	log.Info("configuration loaded",
		"generation_timeout", cfg.GenerationTimeout,
		"concurrency_retry_limit", cfg.ConcurrencyRetryLimit,
		"llm_retry_limit", cfg.LLMRetryLimit,
		"final_approver_role_name", cfg.FinalApproverRoleName,
		"default_rate_card_id", cfg.DefaultRateCardID,
	)
	return cfg, nil
}

func load(path string) (yamlConfig, error) {
	builtin := defaultYAMLConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No user file: run on defaults alone, the same as a user.yaml
			// that overrides nothing.
			return builtin, nil
		}
		return yamlConfig{}, &LoadError{File: path, Err: err}
	}

	expanded := os.ExpandEnv(string(raw))

	var user yamlConfig
	if err := yaml.Unmarshal([]byte(expanded), &user); err != nil {
		return yamlConfig{}, &LoadError{File: path, Err: fmt.Errorf("%w: %v", ErrInvalidYAML, err)}
	}

	if err := mergo.Merge(&builtin, user, mergo.WithOverride); err != nil {
		return yamlConfig{}, &LoadError{File: path, Err: err}
	}
	return builtin, nil
}
