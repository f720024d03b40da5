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
//  2. file (YAML) if COURTMATE_CONFIG is set
//  3. env (prefix COURTMATE_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("COURTMATE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: COURTMATE_ADDR, COURTMATE_CSV_PATH, ...
	// Map env keys like COURTMATE_CSV_PATH -> csv_path (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("COURTMATE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "courtmate_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.CSVPath == "":
		return fmt.Errorf("%w: csv_path must not be empty", ErrInvalidConfig)
	case c.IDColumn == "":
		return fmt.Errorf("%w: id_column must not be empty", ErrInvalidConfig)
	case c.MaxK < 1:
		return fmt.Errorf("%w: max_k must be at least 1", ErrInvalidConfig)
	case c.MaxCareerLimit < 1:
		return fmt.Errorf("%w: max_career_limit must be at least 1", ErrInvalidConfig)
	}
	switch c.Metric {
	case "euclidean", "cosine":
	default:
		return fmt.Errorf("%w: unknown metric %q", ErrInvalidConfig, c.Metric)
	}
	return nil
}
