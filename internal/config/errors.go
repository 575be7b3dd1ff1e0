package config

import "errors"

// Sentinel kinds for configuration validation errors.
var (
	ErrEmptyAddr        = errors.New("addr must not be empty")
	ErrEmptyUpstreamURL = errors.New("upstream_url must not be empty")
	ErrBadFetchTimeout  = errors.New("fetch_timeout_ms must be positive")
	ErrBadPageSizes     = errors.New("default_per_page must be >= 1 and <= max_per_page")
)
