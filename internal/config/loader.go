package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if PLAYCALL_CONFIG is set
//  3. env (prefix PLAYCALL_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("PLAYCALL_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: PLAYCALL_DATA_PATH, PLAYCALL_TRAIN_BEFORE, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("PLAYCALL_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "playcall_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DataPath == "" {
		return fmt.Errorf("%w: data_path must not be empty", ErrInvalidConfig)
	}
	if cfg.TrainBefore > cfg.TestAfter {
		return fmt.Errorf("%w: train_before %d exceeds test_after %d", ErrInvalidConfig, cfg.TrainBefore, cfg.TestAfter)
	}
	if cfg.TreeCriterion != "gini" && cfg.TreeCriterion != "entropy" {
		return fmt.Errorf("%w: tree_criterion must be gini or entropy", ErrInvalidConfig)
	}
	return nil
}
