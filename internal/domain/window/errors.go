package window

import "errors"

// Sentinel kinds for window parsing errors.
var (
	ErrBadDate  = errors.New("invalid date, want YYYY-MM-DD")
	ErrBadRange = errors.New("invalid date range")
)
