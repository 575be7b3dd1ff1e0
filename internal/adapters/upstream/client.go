// Package upstream implements the HTTP client that retrieves raw disbursal
// records for a date window, probing candidate windows in order.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/blinkr/disburse/internal/domain/record"
	"github.com/blinkr/disburse/internal/domain/window"
	"github.com/blinkr/disburse/pkg/logger"
	"github.com/blinkr/disburse/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultTimeout = 10 * time.Second

	// Upstream query parameter names, format YYYY-MM-DD.
	paramStart = "startDate"
	paramEnd   = "endDate"
)

// Client fetches raw records from the upstream disbursal API.
//
// The upstream's date-boundary semantics are not perfectly known at the
// edges, so Fetch walks the window's candidate list sequentially and keeps
// the first interpretation that yields data. Sequential on purpose: the
// candidates disambiguate upstream behavior, racing them would not preserve
// "first matching interpretation wins".
type Client struct {
	baseURL string
	timeout time.Duration
	hc      *http.Client
	log     logger.Logger
}

// New creates a Client for the given records endpoint.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.hc == nil {
		c.hc = &http.Client{}
	}
	if c.log == nil {
		c.log = logger.Get()
	}
	return c
}

// Fetch returns the raw record sequence for the requested window.
//
// It never fails on upstream trouble: transport errors, non-2xx statuses
// and undecodable bodies advance to the next candidate window, and an
// exhausted candidate list yields an empty sequence. Callers must treat
// empty as "no data", not as an error. Failures are still logged and
// counted so operators can tell "upstream down" from "genuinely no rows".
//
// Context cancellation is the one exception: when the caller goes away the
// in-flight request is aborted and ctx.Err() is returned.
func (c *Client) Fetch(ctx context.Context, w window.Window) ([]record.Raw, error) {
	start := time.Now()
	defer func() {
		metrics.RecordFetchDuration(float64(time.Since(start).Milliseconds()))
	}()

	for i, cand := range w.Candidates() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		metrics.RecordFetchAttempt()
		raws, err := c.fetchOne(ctx, cand)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.log.Warn(ctx, "candidate window failed",
				logger.String("start", cand.StartString()),
				logger.String("end", cand.EndString()),
				logger.Error(err),
			)
			continue
		}
		if len(raws) == 0 {
			continue
		}

		// First non-empty candidate wins; remaining ones are never tried.
		if i > 0 {
			metrics.RecordFetchFallback()
		}
		metrics.RecordFetchedRecords(len(raws))
		c.log.Debug(ctx, "fetched records",
			logger.String("start", cand.StartString()),
			logger.String("end", cand.EndString()),
			logger.Int("count", len(raws)),
			logger.Int("candidate", i+1),
		)
		return raws, nil
	}

	metrics.RecordFetchedRecords(0)
	return nil, nil
}

// fetchOne issues a single candidate-window request with a bounded timeout
// and decodes the response body. The body is a JSON object whose values,
// not array elements, are the individual records; keys are discarded.
func (c *Client) fetchOne(ctx context.Context, w window.Window) ([]record.Raw, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set(paramStart, w.StartString())
	q.Set(paramEnd, w.EndString())
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		metrics.RecordFetchFailure("transport")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordFetchFailure("status")
		return nil, fmt.Errorf("%w: status %d", ErrBadStatus, resp.StatusCode)
	}

	var payload map[string]record.Raw
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.RecordFetchFailure("decode")
		return nil, fmt.Errorf("%w: %v", ErrBadBody, err)
	}

	raws := make([]record.Raw, 0, len(payload))
	for _, r := range payload {
		raws = append(raws, r)
	}
	return raws, nil
}
