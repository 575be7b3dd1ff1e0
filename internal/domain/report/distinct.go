package report

import (
	"sort"

	"github.com/blinkr/disburse/internal/domain/record"
	"github.com/blinkr/disburse/internal/domain/types"
)

// DistinctValues returns the sorted, deduplicated values observed per
// filterable dimension. Callers pass the already-filtered set so the option
// lists cascade: they reflect what remains selectable given the filters the
// user has already chosen. Zero tenures and empty strings are excluded.
func DistinctValues(records []record.Record) types.FilterOptions {
	tenures := make(map[int]struct{})
	states := make(map[string]struct{})
	cities := make(map[string]struct{})

	for _, r := range records {
		if r.Tenure != 0 {
			tenures[r.Tenure] = struct{}{}
		}
		if r.State != "" {
			states[r.State] = struct{}{}
		}
		if r.City != "" {
			cities[r.City] = struct{}{}
		}
	}

	opts := types.FilterOptions{
		Tenures: make([]int, 0, len(tenures)),
		States:  make([]string, 0, len(states)),
		Cities:  make([]string, 0, len(cities)),
	}
	for t := range tenures {
		opts.Tenures = append(opts.Tenures, t)
	}
	for s := range states {
		opts.States = append(opts.States, s)
	}
	for c := range cities {
		opts.Cities = append(opts.Cities, c)
	}
	sort.Ints(opts.Tenures)
	sort.Strings(opts.States)
	sort.Strings(opts.Cities)
	return opts
}
