package upstream

import "errors"

// Sentinel kinds for upstream fetch failures. These never escape Fetch;
// they classify per-candidate failures for logs and metrics.
var (
	ErrUnavailable = errors.New("upstream unreachable")
	ErrBadStatus   = errors.New("upstream returned non-success status")
	ErrBadBody     = errors.New("upstream body not decodable")
)
