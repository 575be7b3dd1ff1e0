// Package service provides the report facade that implements the
// dependencies required by the HTTP API: fetch -> normalize -> filter ->
// project, one pass per request.
package service

import (
	"context"
	"sync"

	"github.com/blinkr/disburse/internal/adapters/upstream"
	"github.com/blinkr/disburse/internal/domain/filter"
	"github.com/blinkr/disburse/internal/domain/record"
	"github.com/blinkr/disburse/internal/domain/report"
	"github.com/blinkr/disburse/internal/domain/types"
	"github.com/blinkr/disburse/internal/domain/window"
	"github.com/blinkr/disburse/pkg/logger"
	"github.com/blinkr/disburse/pkg/metrics"
)

// Fetcher retrieves the raw record sequence for a date window. The
// production implementation is the upstream HTTP client; tests inject a
// double here instead of hardcoding sample data inside pipeline logic.
type Fetcher interface {
	Fetch(ctx context.Context, w window.Window) ([]record.Raw, error)
}

// Service implements the report operations. All pipeline stages operate on
// request-local data; the only shared state is lifecycle bookkeeping.
type Service struct {
	mu sync.RWMutex

	fetcher Fetcher

	// Fetcher construction inputs, used when no fetcher is injected.
	upstreamURL  string
	fetchTimeout int // milliseconds

	defaultPerPage int
	maxPerPage     int

	started bool

	logger logger.Logger
}

// Default pagination bounds.
const (
	defaultPerPage    = 10
	defaultMaxPerPage = 100
)

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		defaultPerPage: defaultPerPage,
		maxPerPage:     defaultMaxPerPage,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.fetcher == nil {
		if s.upstreamURL == "" {
			return ErrNoFetcher
		}
		opts := []upstream.Option{upstream.WithLogger(s.logger)}
		if s.fetchTimeout > 0 {
			opts = append(opts, upstream.WithTimeout(msToDuration(s.fetchTimeout)))
		}
		s.fetcher = upstream.New(s.upstreamURL, opts...)
	}

	s.started = true
	s.logger.Info(ctx, "report service started",
		logger.String("upstream", s.upstreamURL),
		logger.Int("defaultPerPage", s.defaultPerPage),
	)
	return nil
}

// Stop shuts the service down. The pipeline holds no resources beyond the
// shared HTTP client, so this only flips lifecycle state.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "report service stopped")
}

// Summary returns the scalar totals for the window and filters. A zero
// window is the "no dates supplied" case and yields a zeroed summary
// without touching the upstream; this asymmetry (the other report types
// require a window) is part of the API contract. The free-text search term
// scopes the table view only and never narrows the totals.
func (s *Service) Summary(ctx context.Context, w window.Window, spec filter.Spec) (types.Summary, error) {
	metrics.RecordReportServed("summary")
	if w.IsZero() {
		return types.Summary{}, nil
	}
	records, err := s.pipeline(ctx, w, spec.WithoutSearch())
	if err != nil {
		return types.Summary{}, err
	}
	return report.Summarize(records), nil
}

// Breakdown returns the state and city groupings for the charts view. Like
// Summary, the search term does not apply here.
func (s *Service) Breakdown(ctx context.Context, w window.Window, spec filter.Spec) (types.Breakdown, error) {
	metrics.RecordReportServed("breakdown")
	records, err := s.pipeline(ctx, w, spec.WithoutSearch())
	if err != nil {
		return types.Breakdown{}, err
	}
	return types.Breakdown{
		StateData: report.GroupBy(records, report.ByState),
		CityData:  report.GroupBy(records, report.ByCity),
	}, nil
}

// Table returns one page of the filtered-and-searched row listing.
func (s *Service) Table(ctx context.Context, w window.Window, spec filter.Spec, page, perPage int) (types.PagedTable, error) {
	metrics.RecordReportServed("table")
	if perPage < 1 {
		perPage = s.defaultPerPage
	}
	if perPage > s.maxPerPage {
		perPage = s.maxPerPage
	}
	records, err := s.pipeline(ctx, w, spec)
	if err != nil {
		return types.PagedTable{}, err
	}
	return report.Paginate(records, page, perPage), nil
}

// DistinctValues returns the cascading filter options: the distinct values
// still selectable under the current filters. The free-text search term is
// a table-view concern and is ignored here.
func (s *Service) DistinctValues(ctx context.Context, w window.Window, spec filter.Spec) (types.FilterOptions, error) {
	metrics.RecordReportServed("distinct_values")
	records, err := s.pipeline(ctx, w, spec.WithoutSearch())
	if err != nil {
		return types.FilterOptions{}, err
	}
	return report.DistinctValues(records), nil
}

// pipeline runs the shared fetch -> normalize -> filter stages.
func (s *Service) pipeline(ctx context.Context, w window.Window, spec filter.Spec) ([]record.Record, error) {
	raws, err := s.fetcher.Fetch(ctx, w)
	if err != nil {
		return nil, err
	}
	filtered := filter.Apply(record.NormalizeAll(raws), spec)
	metrics.RecordFilteredRecords(len(filtered))
	return filtered, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"started":        s.started,
		"upstreamURL":    s.upstreamURL,
		"defaultPerPage": s.defaultPerPage,
		"maxPerPage":     s.maxPerPage,
	}
}
