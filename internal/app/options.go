package service

import (
	"time"

	"github.com/blinkr/disburse/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFetcher injects the fetcher used to retrieve raw records. Tests use
// this to place a double at the upstream boundary.
func WithFetcher(f Fetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// WithUpstreamURL sets the upstream records endpoint used to build the
// default fetcher when none is injected.
func WithUpstreamURL(u string) Option {
	return func(s *Service) {
		s.upstreamURL = u
	}
}

// WithFetchTimeoutMS bounds each candidate-window request.
func WithFetchTimeoutMS(ms int) Option {
	return func(s *Service) {
		if ms > 0 {
			s.fetchTimeout = ms
		}
	}
}

// WithDefaultPerPage sets the table page size used when per_page is absent.
func WithDefaultPerPage(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.defaultPerPage = n
		}
	}
}

// WithMaxPerPage caps the table page size.
func WithMaxPerPage(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxPerPage = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
