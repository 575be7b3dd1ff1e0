// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
)

// TableHandler handles paginated table listing requests.
type TableHandler struct {
	deps Dependencies
}

// NewTableHandler creates a new table handler.
func NewTableHandler(deps Dependencies) *TableHandler {
	return &TableHandler{deps: deps}
}

// HandleGetTable handles GET /api/table requests.
// page defaults to 1 and is clamped downstream; per_page of 0 asks the
// service for its configured default.
func (h *TableHandler) HandleGetTable(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_table"
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

	page := intQuery(r, "page", 1)
	perPage := intQuery(r, "per_page", 0)

	table, err := h.deps.Table(r.Context(), win, filterSpecFromQuery(r), page, perPage)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, table)
}

// intQuery parses an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func intQuery(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
