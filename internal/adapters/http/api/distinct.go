// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// DistinctHandler handles cascading filter-option requests.
type DistinctHandler struct {
	deps Dependencies
}

// NewDistinctHandler creates a new distinct-values handler.
func NewDistinctHandler(deps Dependencies) *DistinctHandler {
	return &DistinctHandler{deps: deps}
}

// HandleGetDistinctValues handles GET /api/distinct-values requests.
func (h *DistinctHandler) HandleGetDistinctValues(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_distinct_values"
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
	opts, err := h.deps.DistinctValues(r.Context(), win, filterSpecFromQuery(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, opts)
}
