package service

import "errors"

// Sentinel kinds for service lifecycle errors.
var (
	ErrNoFetcher = errors.New("no fetcher configured and no upstream url to build one")
)
