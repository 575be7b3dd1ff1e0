// Package filter applies the user-selected predicates to canonical records.
package filter

import (
	"strconv"
	"strings"

	"github.com/blinkr/disburse/internal/domain/record"
)

// Reloan predicate values.
const (
	ReloanNew  = "new"
	ReloanOnly = "reloan"
)

// Active predicate values. "active" means open leads (lead not closed);
// the naming is inverted relative to intuition but the dashboard depends
// on this exact mapping.
const (
	ActiveOpen   = "active"
	ActiveClosed = "inactive"
)

// Spec is the immutable set of optional predicates supplied per request.
// An empty field disables that predicate. Tenure stays a raw string: a
// non-integer value makes the predicate unsatisfiable rather than ignored.
type Spec struct {
	Reloan string
	Active string
	Tenure string
	State  string
	City   string
	Search string
}

// WithoutSearch returns a copy of the spec with the free-text predicate
// disabled. The search term only applies to the table view; the distinct
// value extraction uses the remaining predicates.
func (s Spec) WithoutSearch() Spec {
	s.Search = ""
	return s
}

// Apply returns the records for which every non-empty predicate matches.
// It is a pure function over its inputs and therefore idempotent:
// Apply(Apply(r, s), s) == Apply(r, s).
func Apply(records []record.Record, spec Spec) []record.Record {
	tenure, tenureSet, tenureBad := parseTenure(spec.Tenure)
	if tenureBad {
		// Unsatisfiable by design: a malformed tenure filter matches nothing.
		return nil
	}

	out := make([]record.Record, 0, len(records))
	for _, r := range records {
		if !matchReloan(r, spec.Reloan) {
			continue
		}
		if !matchActive(r, spec.Active) {
			continue
		}
		if tenureSet && r.Tenure != tenure {
			continue
		}
		if spec.State != "" && r.State != spec.State {
			continue
		}
		if spec.City != "" && r.City != spec.City {
			continue
		}
		if spec.Search != "" && !strings.Contains(strings.ToLower(r.FullName), strings.ToLower(spec.Search)) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func parseTenure(raw string) (tenure int, set, bad bool) {
	if raw == "" {
		return 0, false, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false, true
	}
	return n, true, false
}

func matchReloan(r record.Record, want string) bool {
	switch want {
	case ReloanOnly:
		return r.IsReloanCase
	case ReloanNew:
		return !r.IsReloanCase
	default:
		return true
	}
}

func matchActive(r record.Record, want string) bool {
	switch want {
	case ActiveOpen:
		return !r.IsLeadClosed
	case ActiveClosed:
		return r.IsLeadClosed
	default:
		return true
	}
}
