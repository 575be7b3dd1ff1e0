package mockupstream

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/blinkr/disburse/internal/domain/record"
	"github.com/blinkr/disburse/internal/domain/window"
)

// Handler serves the generated data set with the real upstream's contract:
// GET ?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD returning a JSON object
// whose values are the records. Like several production deployments, the
// end bound is treated as EXCLUSIVE, so the fetcher's candidate probing is
// exercised for real against this mock.
type Handler struct {
	data map[string]record.Raw
}

// NewHandler builds a handler over a generated data set.
func NewHandler(data map[string]record.Raw) *Handler {
	return &Handler{data: data}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	start, err := time.Parse(window.Layout, q.Get("startDate"))
	if err != nil {
		http.Error(w, "startDate required, format YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	end, err := time.Parse(window.Layout, q.Get("endDate"))
	if err != nil {
		http.Error(w, "endDate required, format YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	out := make(map[string]record.Raw)
	for key, raw := range h.data {
		d, ok := rawDate(raw)
		if !ok {
			continue
		}
		// Exclusive end bound on purpose, see type comment.
		if !d.Before(start) && d.Before(end) {
			out[key] = raw
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(out)
}

// rawDate digs the disbursal date out of a raw record regardless of which
// synonym the generator used for it.
func rawDate(raw record.Raw) (time.Time, bool) {
	for _, key := range []string{"disbursal_date", "disbursement_date", "disbursalDate", "disb_date"} {
		v, ok := raw[key]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		d, err := time.Parse(window.Layout, s)
		if err != nil {
			continue
		}
		return d, true
	}
	return time.Time{}, false
}
