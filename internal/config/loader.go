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
//  2. file (YAML) if DISBURSE_CONFIG is set
//  3. env (prefix DISBURSE_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("DISBURSE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// Environment variables: DISBURSE_ADDR, DISBURSE_UPSTREAM_URL, ...
	// Map env keys like DISBURSE_FETCH_TIMEOUT_MS -> fetch_timeout_ms,
	// preserving underscores to match the koanf tags on the struct.
	envProvider := env.Provider("DISBURSE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "disburse_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, ErrEmptyAddr
	}
	if cfg.UpstreamURL == "" {
		return nil, ErrEmptyUpstreamURL
	}
	if cfg.FetchTimeoutMS <= 0 {
		return nil, ErrBadFetchTimeout
	}
	if cfg.DefaultPerPage < 1 || cfg.MaxPerPage < cfg.DefaultPerPage {
		return nil, ErrBadPageSizes
	}
	return &cfg, nil
}
