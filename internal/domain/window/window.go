// Package window models the requested disbursal date window and the
// candidate windows the fetcher probes against the upstream.
package window

import (
	"fmt"
	"time"
)

// Layout is the wire format for all dates in this system.
const Layout = "2006-01-02"

// Window is an inclusive-by-intent (start, end) date pair. It is
// request-scoped only and never persisted.
type Window struct {
	Start time.Time
	End   time.Time
}

// Parse builds a Window from "YYYY-MM-DD" bounds.
func Parse(start, end string) (Window, error) {
	s, err := time.Parse(Layout, start)
	if err != nil {
		return Window{}, fmt.Errorf("%w: start %q", ErrBadDate, start)
	}
	e, err := time.Parse(Layout, end)
	if err != nil {
		return Window{}, fmt.Errorf("%w: end %q", ErrBadDate, end)
	}
	if e.Before(s) {
		return Window{}, fmt.Errorf("%w: end %q before start %q", ErrBadRange, end, start)
	}
	return Window{Start: s, End: e}, nil
}

// IsZero reports whether the window carries no bounds at all.
func (w Window) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

// StartString returns the start bound in wire format.
func (w Window) StartString() string { return w.Start.Format(Layout) }

// EndString returns the end bound in wire format.
func (w Window) EndString() string { return w.End.Format(Layout) }

// Candidates returns the windows the fetcher should try against the
// upstream, in order. The upstream's end-bound semantics differ across
// deployments (some treat it as exclusive), so rather than fixing one
// interpretation the fetcher probes plausible ones and keeps the first that
// yields data.
//
// Single-day query (start == end):
//  1. the exact day
//  2. end extended by one day (covers exclusive-end deployments)
//  3. start pulled back one day
//
// Multi-day query: exactly one candidate, [start, end+1d], treating the
// caller's end date as inclusive against an exclusive upstream bound.
func (w Window) Candidates() []Window {
	if w.Start.Equal(w.End) {
		return []Window{
			w,
			{Start: w.Start, End: w.End.AddDate(0, 0, 1)},
			{Start: w.Start.AddDate(0, 0, -1), End: w.End},
		}
	}
	return []Window{
		{Start: w.Start, End: w.End.AddDate(0, 0, 1)},
	}
}
