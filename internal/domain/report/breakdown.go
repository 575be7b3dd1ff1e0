package report

import (
	"sort"

	"github.com/blinkr/disburse/internal/domain/record"
	"github.com/blinkr/disburse/internal/domain/types"
)

// NoDataGroup is the sentinel returned instead of an empty group list so
// the charts always have something to render.
const NoDataGroup = "No Data"

// unknownGroup is the display name for records whose dimension value is empty.
const unknownGroup = "Unknown"

// Dimension selects the grouping key for a breakdown.
type Dimension func(record.Record) string

// ByState groups on the record's state.
func ByState(r record.Record) string { return r.State }

// ByCity groups on the record's city.
func ByCity(r record.Record) string { return r.City }

// GroupBy sums DisbursedAmount per distinct dimension value and computes
// each group's share of the overall total, rounded to one decimal place
// (0 when the total is 0). Groups are sorted by value descending, ties by
// name, for stable chart presentation. An empty result is replaced by the
// single "No Data" sentinel entry.
func GroupBy(records []record.Record, dim Dimension) []types.Group {
	totals := make(map[string]float64)
	for _, r := range records {
		name := dim(r)
		if name == "" {
			name = unknownGroup
		}
		totals[name] += r.DisbursedAmount
	}

	if len(totals) == 0 {
		return []types.Group{{Name: NoDataGroup, Value: 0, Percentage: 0}}
	}

	var overall float64
	for _, v := range totals {
		overall += v
	}

	groups := make([]types.Group, 0, len(totals))
	for name, value := range totals {
		g := types.Group{Name: name, Value: value}
		if overall > 0 {
			g.Percentage = roundTo(100*value/overall, 1)
		}
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Value != groups[j].Value {
			return groups[i].Value > groups[j].Value
		}
		return groups[i].Name < groups[j].Name
	})
	return groups
}
