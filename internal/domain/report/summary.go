// Package report reduces filtered record sequences into the dashboard's
// projections: scalar summary, grouped breakdowns, paginated table, and
// distinct filter-option values.
package report

import (
	"math"

	"github.com/blinkr/disburse/internal/domain/record"
	"github.com/blinkr/disburse/internal/domain/types"
)

// Summarize computes the scalar totals over a filtered record set.
// An empty input yields the all-zero summary; avg_disbursal is defined as 0
// when there are no applications.
func Summarize(records []record.Record) types.Summary {
	s := types.Summary{TotalApplications: len(records)}
	for _, r := range records {
		s.TotalSanctionAmount += r.SanctionAmount
		s.TotalDisbursedAmount += r.DisbursedAmount
		s.TotalPFAmount += r.ProcessingFee
		s.TotalInterestAmount += r.InterestAmount
		s.TotalRepaymentAmount += r.RepaymentAmount
	}
	if s.TotalApplications > 0 {
		s.AvgDisbursal = roundTo(s.TotalDisbursedAmount/float64(s.TotalApplications), 2)
	}
	return s
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
