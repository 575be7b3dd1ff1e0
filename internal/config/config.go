// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load() layers an optional YAML file and DISBURSE_-prefixed env vars on top.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// UpstreamURL is the disbursal records endpoint queried per request,
	// e.g. "https://api.example.com/v1/disbursals".
	UpstreamURL string `koanf:"upstream_url"`

	// FetchTimeoutMS bounds every individual candidate-window request.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// AuthToken is the capability token callers must present as a bearer
	// token on the report endpoints. Empty disables the gate (local dev).
	AuthToken string `koanf:"auth_token"`

	// DefaultPerPage is the table page size when per_page is not given.
	DefaultPerPage int `koanf:"default_per_page"`

	// MaxPerPage caps per_page on the table endpoint.
	MaxPerPage int `koanf:"max_per_page"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":8090",
		UpstreamURL:    "http://localhost:9090/disbursals",
		FetchTimeoutMS: 10_000,
		AuthToken:      "",
		DefaultPerPage: 10,
		MaxPerPage:     100,
	}
}
