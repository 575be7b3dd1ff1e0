// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// BreakdownHandler handles grouped breakdown requests.
type BreakdownHandler struct {
	deps Dependencies
}

// NewBreakdownHandler creates a new breakdown handler.
func NewBreakdownHandler(deps Dependencies) *BreakdownHandler {
	return &BreakdownHandler{deps: deps}
}

// HandleGetBreakdown handles GET /api/breakdown requests.
func (h *BreakdownHandler) HandleGetBreakdown(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_breakdown"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	win, ok, written := windowFromQuery(w, r, op)
	if written {
		return
	}
	if !ok {
		writeError(w, http.StatusBadRequest, "missing_window", Wrap(op, ErrMissingWindow))
		return
	}
	breakdown, err := h.deps.Breakdown(r.Context(), win, filterSpecFromQuery(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, breakdown)
}
