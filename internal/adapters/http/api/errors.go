package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrMissingWindow = errors.New("start_date and end_date are required")
	ErrUnauthorized  = errors.New("missing or invalid authorization token")
)

// Wrap annotates an error with the operation that produced it.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
