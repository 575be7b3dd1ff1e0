package report

import (
	"github.com/blinkr/disburse/internal/domain/record"
	"github.com/blinkr/disburse/internal/domain/types"
)

// Paginate assigns each surviving record a 1-based sequential id (its
// position in the filtered-then-searched sequence, not the fetch order) and
// returns the requested page. The page number is clamped into
// [1, total_pages], or 1 when there are no pages at all.
func Paginate(records []record.Record, page, perPage int) types.PagedTable {
	if perPage < 1 {
		perPage = 1
	}

	total := len(records)
	totalPages := (total + perPage - 1) / perPage

	switch {
	case totalPages == 0:
		page = 1
	case page < 1:
		page = 1
	case page > totalPages:
		page = totalPages
	}

	t := types.PagedTable{
		Applications: []types.Row{},
		TotalItems:   total,
		TotalPages:   totalPages,
		CurrentPage:  page,
		PerPage:      perPage,
	}
	if total == 0 {
		return t
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}

	t.Applications = make([]types.Row, 0, end-start)
	for i := start; i < end; i++ {
		t.Applications = append(t.Applications, toRow(i+1, records[i]))
	}
	t.StartIndex = start + 1
	t.EndIndex = end
	return t
}

func toRow(id int, r record.Record) types.Row {
	return types.Row{
		ID:              id,
		DisbursalDate:   r.DisbursalDate,
		FullName:        r.FullName,
		SanctionAmount:  r.SanctionAmount,
		DisbursedAmount: r.DisbursedAmount,
		ProcessingFee:   r.ProcessingFee,
		InterestAmount:  r.InterestAmount,
		RepaymentAmount: r.RepaymentAmount,
		State:           r.State,
		City:            r.City,
		Tenure:          r.Tenure,
		IsReloanCase:    r.IsReloanCase,
		IsLeadClosed:    r.IsLeadClosed,
	}
}
