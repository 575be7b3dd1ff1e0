// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/blinkr/disburse/internal/domain/filter"
	"github.com/blinkr/disburse/internal/domain/types"
	"github.com/blinkr/disburse/internal/domain/window"
)

// Dependencies required by HTTP handlers. An interface bundle keeps the
// handler layer loosely coupled to the service implementation.
type Dependencies interface {
	Summary(ctx context.Context, w window.Window, spec filter.Spec) (types.Summary, error)
	Breakdown(ctx context.Context, w window.Window, spec filter.Spec) (types.Breakdown, error)
	Table(ctx context.Context, w window.Window, spec filter.Spec, page, perPage int) (types.PagedTable, error)
	DistinctValues(ctx context.Context, w window.Window, spec filter.Spec) (types.FilterOptions, error)
}

// Server wires HTTP routes for the report API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	summaryHandler   *SummaryHandler
	breakdownHandler *BreakdownHandler
	tableHandler     *TableHandler
	distinctHandler  *DistinctHandler

	authToken string
}

// NewServer creates a new API server with all handlers. authToken is the
// capability callers must present on the report routes; empty disables the
// gate.
func NewServer(deps Dependencies, statsProvider StatsProvider, authToken string) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		summaryHandler:   NewSummaryHandler(deps),
		breakdownHandler: NewBreakdownHandler(deps),
		tableHandler:     NewTableHandler(deps),
		distinctHandler:  NewDistinctHandler(deps),
		authToken:        authToken,
	}
}

// Register attaches all HTTP routes to mux. Report routes sit behind the
// authorization gate; health and stats do not.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	gate := func(next http.HandlerFunc, endpoint string) http.HandlerFunc {
		return RequestIDMiddleware(MetricsMiddleware(AuthMiddleware(next, s.authToken, endpoint), endpoint))
	}

	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/summary", gate(s.summaryHandler.HandleGetSummary, "summary"))
	mux.HandleFunc("/api/breakdown", gate(s.breakdownHandler.HandleGetBreakdown, "breakdown"))
	mux.HandleFunc("/api/table", gate(s.tableHandler.HandleGetTable, "table"))
	mux.HandleFunc("/api/distinct-values", gate(s.distinctHandler.HandleGetDistinctValues, "distinct_values"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// filterSpecFromQuery reads the shared filter parameters. Absent parameters
// disable their predicates; the tenure value stays raw on purpose (a
// non-integer tenure filter is unsatisfiable, not ignored).
func filterSpecFromQuery(r *http.Request) filter.Spec {
	q := r.URL.Query()
	return filter.Spec{
		Reloan: q.Get("reloan"),
		Active: q.Get("active"),
		Tenure: q.Get("tenure"),
		State:  q.Get("state"),
		City:   q.Get("city"),
		Search: q.Get("search"),
	}
}

// windowFromQuery parses the start_date/end_date pair. Both absent returns
// a zero window with ok=false; exactly one present or an unparseable date
// writes a client error and returns written=true.
func windowFromQuery(w http.ResponseWriter, r *http.Request, op string) (win window.Window, ok, written bool) {
	q := r.URL.Query()
	start := q.Get("start_date")
	end := q.Get("end_date")

	if start == "" && end == "" {
		return window.Window{}, false, false
	}
	if start == "" || end == "" {
		writeError(w, http.StatusBadRequest, "missing_window", Wrap(op, ErrMissingWindow))
		return window.Window{}, false, true
	}
	win, err := window.Parse(start, end)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_window", Wrap(op, err))
		return window.Window{}, false, true
	}
	return win, true, false
}
