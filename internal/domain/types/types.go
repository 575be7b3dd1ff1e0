// Package types contains common result shapes used across the application.
package types

// Summary holds the scalar totals over a filtered record set.
// JSON field names match what the dashboard frontend consumes.
type Summary struct {
	TotalApplications    int     `json:"total_applications"`
	TotalSanctionAmount  float64 `json:"total_sanction_amount"`
	TotalDisbursedAmount float64 `json:"total_disbursed_amount"`
	TotalPFAmount        float64 `json:"total_pf_amount"`
	TotalInterestAmount  float64 `json:"total_interest_amount"`
	TotalRepaymentAmount float64 `json:"total_repayment_amount"`
	AvgDisbursal         float64 `json:"avg_disbursal"`
}

// Group is one entry of a grouped breakdown (one state or one city).
type Group struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// Breakdown carries the state and city groupings for the charts view.
type Breakdown struct {
	StateData []Group `json:"state_data"`
	CityData  []Group `json:"city_data"`
}

// Row is one table listing entry: a canonical record plus its 1-based
// position in the filtered sequence.
type Row struct {
	ID              int     `json:"id"`
	DisbursalDate   string  `json:"disbursal_date"`
	FullName        string  `json:"full_name"`
	SanctionAmount  float64 `json:"sanction_amount"`
	DisbursedAmount float64 `json:"disbursed_amount"`
	ProcessingFee   float64 `json:"processing_fee"`
	InterestAmount  float64 `json:"interest_amount"`
	RepaymentAmount float64 `json:"repayment_amount"`
	State           string  `json:"state"`
	City            string  `json:"city"`
	Tenure          int     `json:"tenure"`
	IsReloanCase    bool    `json:"is_reloan_case"`
	IsLeadClosed    bool    `json:"is_lead_closed"`
}

// PagedTable is one page of the table listing plus paging metadata.
// StartIndex and EndIndex are 1-based inclusive display bounds; both are 0
// when the page is empty.
type PagedTable struct {
	Applications []Row `json:"applications"`
	TotalItems   int   `json:"total_items"`
	TotalPages   int   `json:"total_pages"`
	CurrentPage  int   `json:"current_page"`
	PerPage      int   `json:"per_page"`
	StartIndex   int   `json:"start_index"`
	EndIndex     int   `json:"end_index"`
}

// FilterOptions lists the distinct values observed per filterable dimension,
// computed over the already-filtered set so cascading filters only offer
// selectable combinations.
type FilterOptions struct {
	Tenures []int    `json:"tenures"`
	States  []string `json:"states"`
	Cities  []string `json:"cities"`
}
